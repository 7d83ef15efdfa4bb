package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"message": "operation successful"}

	n, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteJSON_StatusCodePassedThrough(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, map[string]string{"error": "poem not found"}, http.StatusNotFound)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestWriteJSON_NonSerializable(t *testing.T) {
	w := httptest.NewRecorder()

	// channels have no JSON representation
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteJSON_BodyShapes(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{"nil", nil, "null"},
		{"empty struct", struct{}{}, "{}"},
		{"slice", []int64{1, 2, 3}, "[1,2,3]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			if _, err := WriteJSON(w, tt.data, http.StatusOK); err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if w.Body.String() != tt.want {
				t.Errorf("expected body '%s', got '%s'", tt.want, w.Body.String())
			}
		})
	}
}

func TestWriteJSON_NestedStruct(t *testing.T) {
	type Poem struct {
		Title string   `json:"title"`
		Tags  []string `json:"tags"`
	}
	type Result struct {
		Success bool `json:"success"`
		Poem    Poem `json:"poem"`
	}

	w := httptest.NewRecorder()
	data := Result{Success: true, Poem: Poem{Title: "静夜思", Tags: []string{"思乡"}}}

	_, err := WriteJSON(w, data, http.StatusCreated)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, w.Code)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}
