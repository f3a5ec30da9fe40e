package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ardentnum/mpint/api"
)

func doRequest(t *testing.T, server *api.Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	server := api.NewServer(0)
	w := doRequest(t, server, http.MethodGet, "/api/v1/health", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp api.HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("Status = %q, want ok", resp.Status)
	}
}

func TestGCDEndpoint(t *testing.T) {
	server := api.NewServer(0)
	body := api.BinaryOpRequest{
		A: api.Operand{Value: "462"},
		B: api.Operand{Value: "1071"},
	}
	w := doRequest(t, server, http.MethodPost, "/api/v1/gcd", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", w.Code, w.Body.String())
	}
	var resp api.ResultResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Decimal != "21" {
		t.Errorf("Decimal = %q, want 21", resp.Decimal)
	}
}

func TestExpModEndpoint(t *testing.T) {
	server := api.NewServer(0)
	body := api.ExpModRequest{
		A: api.Operand{Value: "3"},
		E: api.Operand{Value: "7"},
		N: api.Operand{Value: "13"},
	}
	w := doRequest(t, server, http.MethodPost, "/api/v1/modexp", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", w.Code, w.Body.String())
	}
	var resp api.ResultResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Decimal != "3" {
		t.Errorf("Decimal = %q, want 3", resp.Decimal)
	}
}

func TestInvModEndpoint(t *testing.T) {
	server := api.NewServer(0)
	body := api.InvModRequest{
		A: api.Operand{Value: "3"},
		N: api.Operand{Value: "11"},
	}
	w := doRequest(t, server, http.MethodPost, "/api/v1/invmod", body)

	var resp api.ResultResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Decimal != "4" {
		t.Errorf("Decimal = %q, want 4", resp.Decimal)
	}
}

func TestIsPrimeEndpoint(t *testing.T) {
	server := api.NewServer(0)
	body := api.IsPrimeRequest{X: api.Operand{Value: "97"}}
	w := doRequest(t, server, http.MethodPost, "/api/v1/isprime", body)

	var resp api.IsPrimeResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.IsPrime {
		t.Error("IsPrime = false, want true for 97")
	}
}

func TestConvertEndpoint(t *testing.T) {
	server := api.NewServer(0)
	body := api.ConvertRequest{X: api.Operand{Value: "255"}, OutputRadix: 16}
	w := doRequest(t, server, http.MethodPost, "/api/v1/convert", body)

	var resp api.ConvertResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Value != "ff" {
		t.Errorf("Value = %q, want ff", resp.Value)
	}
}

func TestBadOperandReturns400(t *testing.T) {
	server := api.NewServer(0)
	body := api.BinaryOpRequest{
		A: api.Operand{Value: "not-a-number"},
		B: api.Operand{Value: "2"},
	}
	w := doRequest(t, server, http.MethodPost, "/api/v1/add", body)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestWrongMethodIsRejected(t *testing.T) {
	server := api.NewServer(0)
	w := doRequest(t, server, http.MethodGet, "/api/v1/add", nil)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
}

func TestCORSHeadersSetForLocalhostOrigin(t *testing.T) {
	server := api.NewServer(0)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q, want http://localhost:3000", got)
	}
}
