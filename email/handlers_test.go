package email

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func fakeResend(t *testing.T, status int) (*httptest.Server, *Mailer) {
	t.Helper()
	n := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/emails" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("missing bearer auth, got %q", got)
		}
		n++
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]string{"id": "em_" + strings.Repeat("x", n)})
	}))
	mailer := &Mailer{
		apiKey:     "test-key",
		from:       "store@test.dev",
		adminEmail: "admin@test.dev",
		client:     &http.Client{Timeout: 2 * time.Second},
		baseURL:    srv.URL,
	}
	return srv, mailer
}

func TestContactEndpointPreflightAndMethods(t *testing.T) {
	srv, mailer := fakeResend(t, http.StatusOK)
	defer srv.Close()
	handler := SendContactEmail(mailer)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodOptions, "/api/send-contact-email", nil), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("OPTIONS: expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected permissive CORS, got %q", got)
	}

	w = httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/api/send-contact-email", nil), nil)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET: expected 405, got %d", w.Code)
	}
}

func TestContactEndpointValidation(t *testing.T) {
	srv, mailer := fakeResend(t, http.StatusOK)
	defer srv.Close()
	handler := SendContactEmail(mailer)

	body := `{"firstName":"","email":"a@b.c","message":"hi"}`
	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodPost, "/api/send-contact-email", strings.NewReader(body)), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing firstName, got %d", w.Code)
	}
}

func TestContactEndpointSuccess(t *testing.T) {
	srv, mailer := fakeResend(t, http.StatusOK)
	defer srv.Close()
	handler := SendContactEmail(mailer)

	body := `{"firstName":"Ravi","email":"ravi@example.com","subject":"Bulk order","message":"Do you ship to Pune?"}`
	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodPost, "/api/send-contact-email", strings.NewReader(body)), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		EmailID string `json:"emailId"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.EmailID == "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestContactEndpointProviderFailure(t *testing.T) {
	srv, mailer := fakeResend(t, http.StatusBadGateway)
	defer srv.Close()
	handler := SendContactEmail(mailer)

	body := `{"firstName":"Ravi","email":"ravi@example.com","message":"hello"}`
	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodPost, "/api/send-contact-email", strings.NewReader(body)), nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp["error"] == "" || resp["details"] == "" {
		t.Fatalf("expected error and details fields, got %v", resp)
	}
}

func TestOrderEmailEndpointRequiresCustomerEmail(t *testing.T) {
	srv, mailer := fakeResend(t, http.StatusOK)
	defer srv.Close()
	handler := SendOrderEmails(mailer)

	body := `{"orderId":"SAAJ-1-AAAA","customer":{"name":"X","phone":"1","address":"Y"}}`
	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodPost, "/api/send-order-emails", strings.NewReader(body)), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestOrderEmailEndpointSendsBothEmails(t *testing.T) {
	srv, mailer := fakeResend(t, http.StatusOK)
	defer srv.Close()
	handler := SendOrderEmails(mailer)

	body := `{"orderId":"SAAJ-1-AAAA","customer":{"name":"X","email":"x@y.z","phone":"1","address":"Y"},` +
		`"items":[{"id":"p1","name":"Toy Car","price":200,"quantity":1}],"subtotal":200,"total":200,"status":"pending"}`
	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodPost, "/api/send-order-emails", strings.NewReader(body)), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success         bool   `json:"success"`
		CustomerEmailID string `json:"customerEmailId"`
		AdminEmailID    string `json:"adminEmailId"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.CustomerEmailID == "" || resp.AdminEmailID == "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.CustomerEmailID == resp.AdminEmailID {
		t.Fatal("expected two distinct provider ids")
	}
}
