package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// a nil usecase panics if the handler reaches past validation, which is
// exactly what these tests assert never happens
func newValidationApp() *fiber.App {
	app := fiber.New()
	NewProcessorHandler(nil).RegisterRoutes(app.Group("/api"))
	return app
}

func TestProcessRejectsMissingPrompt(t *testing.T) {
	app := newValidationApp()
	body := `{"rows":[{"question":"q","answer":"a"}]}`
	req := httptest.NewRequest("POST", "/api/processor", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestProcessRejectsEmptyRows(t *testing.T) {
	app := newValidationApp()
	body := `{"prompt":"Resuma:","rows":[]}`
	req := httptest.NewRequest("POST", "/api/processor", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestParseReturnsRows(t *testing.T) {
	app := newValidationApp()
	body := "Pergunta\tResposta\nQual seu nome?\tJoao"
	req := httptest.NewRequest("POST", "/api/processor/parse", strings.NewReader(body))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	raw, _ := io.ReadAll(resp.Body)
	var envelope struct {
		Data struct {
			Rows []struct {
				Question string `json:"question"`
				Answer   string `json:"answer"`
			} `json:"rows"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(envelope.Data.Rows))
	}
	if envelope.Data.Rows[0].Question != "Qual seu nome?" || envelope.Data.Rows[0].Answer != "Joao" {
		t.Fatalf("unexpected row: %+v", envelope.Data.Rows[0])
	}
}
