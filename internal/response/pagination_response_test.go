package response

import "testing"

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 25)
	if p.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", p.TotalPages)
	}
	if p.From != 11 || p.To != 20 {
		t.Errorf("window = [%d,%d], want [11,20]", p.From, p.To)
	}
	if !p.HasMore {
		t.Error("page 2 of 3 should have more")
	}

	last := NewPagination(3, 10, 25)
	if last.From != 21 || last.To != 25 {
		t.Errorf("last window = [%d,%d], want [21,25]", last.From, last.To)
	}
	if last.HasMore {
		t.Error("last page should not have more")
	}
}

func TestNewPaginationOutOfRange(t *testing.T) {
	p := NewPagination(5, 10, 25)
	if p.From != 0 || p.To != 0 {
		t.Errorf("out-of-range window = [%d,%d], want [0,0]", p.From, p.To)
	}
	if p.HasMore {
		t.Error("past the end should not have more")
	}
}

func TestNewPaginationDefaults(t *testing.T) {
	p := NewPagination(0, 0, 5)
	if p.Page != 1 || p.PageSize != 20 {
		t.Errorf("defaults = page %d size %d, want 1 and 20", p.Page, p.PageSize)
	}
	if p.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", p.TotalPages)
	}
}
