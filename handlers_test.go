package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testApp(t *testing.T, debug bool) *fiber.App {
	t.Helper()

	cfg := testConfig(debug)
	dispatcher, err := NewDispatcher(cfg, DefaultCatalog(), zap.NewNop())
	if err != nil {
		t.Fatalf("new dispatcher: %v", err)
	}

	return newApp(NewHandler(dispatcher, cfg, zap.NewNop()))
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("unmarshal %q: %v", body, err)
	}
}

func TestWebhookBookAppointment(t *testing.T) {
	t.Parallel()

	app := testApp(t, false)
	resp := postJSON(t, app, "/api/chatbot", `{
		"responseId": "abc-123",
		"queryResult": {
			"queryText": "book an appointment",
			"languageCode": "en-US",
			"intent": {"displayName": "appointment.book"}
		}
	}`)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out WebhookResponse
	decode(t, resp, &out)

	want := DefaultCatalog()[IntentBookAppointment]["en"]
	if out.FulfillmentText != want {
		t.Errorf("fulfillmentText = %q, want %q", out.FulfillmentText, want)
	}
	if out.DebugInfo != nil {
		t.Errorf("debugInfo present without debug mode")
	}
}

func TestWebhookMissingQueryResult(t *testing.T) {
	t.Parallel()

	app := testApp(t, false)
	resp := postJSON(t, app, "/api/chatbot", `{"responseId": "abc-123"}`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var out ErrorResponse
	decode(t, resp, &out)

	if out.FulfillmentText != apologyText {
		t.Errorf("fulfillmentText = %q, want apology", out.FulfillmentText)
	}
	if out.Error == "" {
		t.Errorf("expected a non-empty error detail")
	}
}

func TestWebhookInvalidJSON(t *testing.T) {
	t.Parallel()

	app := testApp(t, false)
	resp := postJSON(t, app, "/api/chatbot", `{"queryResult":`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var out ErrorResponse
	decode(t, resp, &out)

	if out.FulfillmentText != apologyText {
		t.Errorf("fulfillmentText = %q, want apology", out.FulfillmentText)
	}
}

func TestWebhookDebugInfo(t *testing.T) {
	t.Parallel()

	app := testApp(t, true)
	resp := postJSON(t, app, "/api/chatbot", `{
		"queryResult": {
			"languageCode": "hi-IN",
			"intent": {"displayName": "appointment.book"}
		}
	}`)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out WebhookResponse
	decode(t, resp, &out)

	if out.DebugInfo == nil {
		t.Fatalf("expected debugInfo in debug mode")
	}
	if out.DebugInfo.DetectedIntent != "BookAppointment" {
		t.Errorf("detectedIntent = %q, want BookAppointment", out.DebugInfo.DetectedIntent)
	}
	if out.DebugInfo.DetectedLanguage != "hi" {
		t.Errorf("detectedLanguage = %q, want hi", out.DebugInfo.DetectedLanguage)
	}
}

func TestInternalErrorReturnsApologyAndLogs(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.ErrorLevel)

	cfg := testConfig(false)
	dispatcher, err := NewDispatcher(cfg, DefaultCatalog(), zap.NewNop())
	if err != nil {
		t.Fatalf("new dispatcher: %v", err)
	}

	app := newApp(NewHandler(dispatcher, cfg, zap.New(core)))
	app.Get("/corrupt", func(c *fiber.Ctx) error {
		panic("catalog corruption")
	})

	req := httptest.NewRequest(http.MethodGet, "/corrupt", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}

	var out ErrorResponse
	decode(t, resp, &out)

	if out.FulfillmentText != apologyText {
		t.Errorf("fulfillmentText = %q, want apology", out.FulfillmentText)
	}
	if !strings.Contains(out.Error, "catalog corruption") {
		t.Errorf("error detail = %q, want it to carry the fault", out.Error)
	}

	if logs.Len() == 0 {
		t.Fatalf("expected an error-level log entry for the 500 path")
	}
	if entry := logs.All()[0]; entry.Message != "Error processing webhook request" {
		t.Errorf("log message = %q", entry.Message)
	}
}

func TestWebhookUnsupportedLanguageFallsBack(t *testing.T) {
	t.Parallel()

	app := testApp(t, false)
	resp := postJSON(t, app, "/api/chatbot", `{
		"queryResult": {
			"languageCode": "fr",
			"intent": {"displayName": "xyz.unknown"}
		}
	}`)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out WebhookResponse
	decode(t, resp, &out)

	want := DefaultCatalog()[IntentDefault]["en"]
	if out.FulfillmentText != want {
		t.Errorf("fulfillmentText = %q, want %q", out.FulfillmentText, want)
	}
}

func TestTestEndpoint(t *testing.T) {
	t.Parallel()

	app := testApp(t, false)
	resp := postJSON(t, app, "/api/chatbot/test?intent=faq&language=te", "")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out TestResponse
	decode(t, resp, &out)

	if out.Intent != "FAQ" {
		t.Errorf("intent = %q, want FAQ", out.Intent)
	}
	if out.Language != "te" {
		t.Errorf("language = %q, want te", out.Language)
	}
	if want := DefaultCatalog()[IntentFAQ]["te"]; out.Response != want {
		t.Errorf("response = %q, want %q", out.Response, want)
	}
}

func TestTestEndpointDefaultsLanguage(t *testing.T) {
	t.Parallel()

	app := testApp(t, false)
	resp := postJSON(t, app, "/api/chatbot/test?intent=help", "")

	var out TestResponse
	decode(t, resp, &out)

	if out.Language != "en" {
		t.Errorf("language = %q, want en", out.Language)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	app := testApp(t, false)

	req := httptest.NewRequest(http.MethodGet, "/api/chatbot/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out HealthResponse
	decode(t, resp, &out)

	if out.Status != "healthy" {
		t.Errorf("status = %q, want healthy", out.Status)
	}
	if len(out.SupportedLanguages) != 3 {
		t.Errorf("supportedLanguages = %v, want 3 entries", out.SupportedLanguages)
	}
	if out.Timestamp == 0 {
		t.Errorf("timestamp not set")
	}
}

func TestRoot(t *testing.T) {
	t.Parallel()

	app := testApp(t, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
