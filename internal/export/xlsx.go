// Package export builds the downloadable workbook for a finished (or
// in-flight) interview. Sheet and label names stay in Portuguese because
// the workbook is a client-facing deliverable.
package export

import (
	"fmt"
	"sort"

	"github.com/brandlab/positioning-api/internal/model"
	"github.com/xuri/excelize/v2"
)

const dateLayout = "02/01/2006"

// Filename derives the download name. The identifier value is preferred
// over the raw id when the client filled one in.
func Filename(iv *model.Interview) string {
	name := iv.ID.String()
	if iv.IdentifierValue != nil && *iv.IdentifierValue != "" {
		name = *iv.IdentifierValue
	}
	return "posicionamento-" + name + ".xlsx"
}

// InterviewWorkbook renders three sheets: session metadata, the raw
// transcript with the start trigger removed, and the synthesis decisions.
func InterviewWorkbook(iv *model.Interview, msgs []model.InterviewMessage) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeControle(f, iv); err != nil {
		return nil, err
	}
	if err := writeRespostas(f, msgs); err != nil {
		return nil, err
	}
	if err := writeSintese(f, iv.Synthesis); err != nil {
		return nil, err
	}
	return f, nil
}

func writeControle(f *excelize.File, iv *model.Interview) error {
	const sheet = "CONTROLE"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	status := "Em andamento"
	if iv.Status == model.InterviewCompleted {
		status = "Concluido"
	}
	identifier := fmt.Sprintf("%s: %s", deref(iv.IdentifierLabel), deref(iv.IdentifierValue))

	rows := [][]any{
		{"Campo", "Valor"},
		{"Identificador", identifier},
		{"Setor", deref(iv.Sector)},
		{"Tipo de marca", deref(iv.BrandType)},
		{"Status", status},
		{"Etapa atual", deref(iv.CurrentStage)},
		{"Data inicio", iv.CreatedAt.Format(dateLayout)},
		{"Data ultima atualizacao", iv.UpdatedAt.Format(dateLayout)},
	}
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "A", 25); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "B", "B", 50)
}

func writeRespostas(f *excelize.File, msgs []model.InterviewMessage) error {
	const sheet = "RESPOSTAS (RAW)"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]any{{"Papel", "Mensagem"}}
	for _, msg := range msgs {
		if msg.Role == model.RoleUser && msg.Content == model.StartTriggerMessage {
			continue
		}
		speaker := "Voce"
		if msg.Role == model.RoleModel {
			speaker = "Entrevistador"
		}
		rows = append(rows, []any{speaker, msg.Content})
	}
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "A", 15); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "B", "B", 80)
}

func writeSintese(f *excelize.File, s *model.Synthesis) error {
	const sheet = "SINTESE (DECISOES)"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]any{{"Campo", "Valor"}}
	if s != nil {
		for _, k := range sortedKeys(s.Decisions) {
			rows = append(rows, []any{k, s.Decisions[k]})
		}
		if s.PositioningStatement != "" {
			rows = append(rows, []any{"Positioning Statement", s.PositioningStatement})
		}
		if v := s.Variations; v != nil {
			if v.Precise != "" {
				rows = append(rows, []any{"Variacao Precisa", v.Precise})
			}
			if v.Bold != "" {
				rows = append(rows, []any{"Variacao Ousada", v.Bold})
			}
			if v.Premium != "" {
				rows = append(rows, []any{"Variacao Premium", v.Premium})
			}
		}
		if s.UVP != "" {
			rows = append(rows, []any{"UVP", s.UVP})
		}
		for _, k := range sortedKeys(s.BrandKey) {
			rows = append(rows, []any{"Brand Key - " + k, s.BrandKey[k]})
		}
	}
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "A", 30); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "B", "B", 60)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// sortedKeys keeps map-driven rows in a stable order across exports.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
