package util

import (
	"strings"

	"github.com/brandlab/positioning-api/internal/dto"
)

// ParseBatchRows reads pasted or uploaded question/answer data. The first
// line is treated as a header and skipped. Lines split on tab when one is
// present, otherwise on comma; surrounding quotes are stripped.
func ParseBatchRows(text string) []dto.BatchRow {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil
	}

	var rows []dto.BatchRow
	for _, line := range lines[1:] {
		sep := ","
		if strings.Contains(line, "\t") {
			sep = "\t"
		}
		parts := strings.Split(line, sep)
		row := dto.BatchRow{
			Question: cleanField(parts, 0),
			Answer:   cleanField(parts, 1),
		}
		if row.Question != "" || row.Answer != "" {
			rows = append(rows, row)
		}
	}
	return rows
}

func cleanField(parts []string, i int) string {
	if i >= len(parts) {
		return ""
	}
	s := strings.TrimSpace(parts[i])
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return s
}
