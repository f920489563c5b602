package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestHelpWrappedShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/help" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var req map[string]string
		if err := json.Unmarshal(body, &req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if req["lang"] != "Dutch" || req["level"] != "Basic" {
			t.Errorf("unexpected payload: %v", req)
		}
		_, _ = w.Write([]byte(`{
			"content": {"daily_tasks": ["a", "b"], "purpose": "help"},
			"task_classification": {"daily_tasks": true},
			"metadata": {"employer": "Example"}
		}`))
	}))
	defer srv.Close()

	c := &HelpClient{BaseURL: srv.URL}
	resp, err := c.RequestHelp(context.Background(), "Dutch", "Basic")
	if err != nil {
		t.Fatalf("RequestHelp: %v", err)
	}
	if !resp.Classification["daily_tasks"] {
		t.Fatalf("classification lost: %v", resp.Classification)
	}

	d, err := resp.Document()
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	keys := d.VisibleKeys()
	if len(keys) != 2 || keys[0] != "daily_tasks" || keys[1] != "purpose" {
		t.Fatalf("unexpected keys %v", keys)
	}
}

func TestRequestHelpTopLevelShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"metadata": {"filename": "f"}, "daily_tasks": ["x"]}`))
	}))
	defer srv.Close()

	c := &HelpClient{BaseURL: srv.URL}
	resp, err := c.RequestHelp(context.Background(), "Dutch", "Basic")
	if err != nil {
		t.Fatalf("RequestHelp: %v", err)
	}
	d, err := resp.Document()
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	if keys := d.VisibleKeys(); len(keys) != 1 || keys[0] != "daily_tasks" {
		t.Fatalf("unexpected keys %v", keys)
	}
}

func TestRequestHelpErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := &HelpClient{BaseURL: srv.URL}
	if _, err := c.RequestHelp(context.Background(), "Dutch", "Basic"); err == nil {
		t.Fatalf("expected error for 500 response")
	}
}
