package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	type deactivation struct {
		Deactivated bool     `json:"deactivated"`
		Messages    []string `json:"messages"`
	}

	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{name: "struct", data: deactivation{Deactivated: true, Messages: []string{}}, status: http.StatusOK, wantBody: `{"deactivated":true,"messages":[]}`},
		{name: "false is a body", data: false, status: http.StatusOK, wantBody: `false`},
		{name: "bare string", data: "ok", status: http.StatusOK, wantBody: `"ok"`},
		{name: "nil", data: nil, status: http.StatusOK, wantBody: `null`},
		{name: "empty list", data: []int{}, status: http.StatusOK, wantBody: `[]`},
		{name: "custom status", data: map[string]string{"k": "v"}, status: http.StatusCreated, wantBody: `{"k":"v"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if n != len(tt.wantBody) {
				t.Errorf("expected %d bytes written, got %d", len(tt.wantBody), n)
			}
			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != ContentTypeJSON {
				t.Errorf("expected Content-Type %q, got %q", ContentTypeJSON, ct)
			}
			if got := w.Body.String(); got != tt.wantBody {
				t.Errorf("expected body %s, got %s", tt.wantBody, got)
			}
		})
	}
}

func TestWriteJSON_EncodingFailure(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct == ContentTypeJSON {
		t.Error("expected no JSON content type on failure")
	}
}
