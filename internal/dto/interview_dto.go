package dto

import "github.com/brandlab/positioning-api/internal/model"

// UpdateInterviewRequest carries a partial update. Nil fields are left
// untouched so two PATCHes never clobber each other's columns.
type UpdateInterviewRequest struct {
	Synthesis       *model.Synthesis `json:"synthesis"`
	Status          *string          `json:"status"`
	Title           *string          `json:"title"`
	IdentifierLabel *string          `json:"identifier_label"`
	IdentifierValue *string          `json:"identifier_value"`
	Sector          *string          `json:"sector"`
	BrandType       *string          `json:"brand_type"`
	CurrentStage    *string          `json:"current_stage"`
}

// Updates flattens the set fields into a column map for a partial update.
func (r *UpdateInterviewRequest) Updates() map[string]any {
	updates := map[string]any{}
	if r.Synthesis != nil {
		updates["synthesis"] = *r.Synthesis
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.IdentifierLabel != nil {
		updates["identifier_label"] = *r.IdentifierLabel
	}
	if r.IdentifierValue != nil {
		updates["identifier_value"] = *r.IdentifierValue
	}
	if r.Sector != nil {
		updates["sector"] = *r.Sector
	}
	if r.BrandType != nil {
		updates["brand_type"] = *r.BrandType
	}
	if r.CurrentStage != nil {
		updates["current_stage"] = *r.CurrentStage
	}
	return updates
}

type InterviewWithMessages struct {
	Interview *model.Interview         `json:"interview"`
	Messages  []model.InterviewMessage `json:"messages"`
}