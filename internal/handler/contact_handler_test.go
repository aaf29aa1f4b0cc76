package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cornerstone/internal/service"
	"github.com/gin-gonic/gin"
)

func newContactRouter(api *API) *gin.Engine {
	r := gin.New()
	r.POST("/api/contact", api.SubmitContact)
	return r
}

func TestSubmitContactMissingFields(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()
	r := newContactRouter(api)

	w := performJSON(r, http.MethodPost, "/api/contact", `{"name":"Ada","email":"ada@example.com"}`)
	assertErrorResponse(t, w, http.StatusBadRequest, "Missing required fields")

	w = performJSON(r, http.MethodPost, "/api/contact", `{"email":"ada@example.com","message":"hi"}`)
	assertErrorResponse(t, w, http.StatusBadRequest, "Missing required fields")
}

func TestSubmitContactUnconfiguredWebhook(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()
	r := newContactRouter(api)

	w := performJSON(r, http.MethodPost, "/api/contact", `{"name":"Ada","email":"ada@example.com","message":"hi"}`)
	assertErrorResponse(t, w, http.StatusInternalServerError, "Server configuration error. Please contact the administrator.")
}

func TestSubmitContactForwardsLead(t *testing.T) {
	var received map[string]string
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		received = map[string]string{
			"name":     r.PostFormValue("name"),
			"brand":    r.PostFormValue("brand"),
			"whatsapp": r.PostFormValue("whatsapp"),
			"email":    r.PostFormValue("email"),
			"services": r.PostFormValue("services"),
			"message":  r.PostFormValue("message"),
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer webhook.Close()

	api, cleanup := setupTestAPI(t)
	defer cleanup()
	api.contact = service.NewContactService(webhook.URL)
	r := newContactRouter(api)

	w := performJSON(r, http.MethodPost, "/api/contact", `{
		"name": "Ada",
		"brand": "Analytical Engines",
		"whatsapp": "+44 20 7946 0000",
		"email": "ada@example.com",
		"services": "Brand Identity",
		"message": "Looking for a rebrand"
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Form submitted successfully and saved to Google Sheets") {
		t.Fatalf("expected confirmation message: %s", w.Body.String())
	}
	if received["name"] != "Ada" || received["brand"] != "Analytical Engines" || received["message"] != "Looking for a rebrand" {
		t.Fatalf("lead fields not forwarded: %v", received)
	}
}

func TestSubmitContactWebhookDeclines(t *testing.T) {
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"sheet is full"}`))
	}))
	defer webhook.Close()

	api, cleanup := setupTestAPI(t)
	defer cleanup()
	api.contact = service.NewContactService(webhook.URL)
	r := newContactRouter(api)

	w := performJSON(r, http.MethodPost, "/api/contact", `{"name":"Ada","email":"ada@example.com","message":"hi"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "sheet is full") {
		t.Fatalf("webhook detail must surface in the response: %s", w.Body.String())
	}
}
