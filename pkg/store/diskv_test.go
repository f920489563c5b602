package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPutAssignsSortableKey(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	rec := &Record{
		FetchedAt: time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC),
		Language:  "Dutch",
		Level:     "Basic",
		Content:   []byte(`{"daily_tasks": ["x"]}`),
	}
	if err := p.Put(rec); err != nil {
		t.Fatalf("put: %v", err)
	}
	if rec.Key != "20260831_103000_dutch_basic" {
		t.Fatalf("unexpected key %q", rec.Key)
	}
}

func TestLatestPicksNewest(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	for i, lang := range []string{"Dutch", "Polish", "Spanish"} {
		rec := &Record{
			FetchedAt: base.Add(time.Duration(i) * time.Hour),
			Language:  lang,
			Level:     "Basic",
			Content:   []byte(`{"purpose": "help"}`),
		}
		if err := p.Put(rec); err != nil {
			t.Fatalf("put %s: %v", lang, err)
		}
	}

	latest, err := p.Latest(context.Background())
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.Language != "Spanish" {
		t.Fatalf("expected newest record, got %q", latest.Language)
	}
}

func TestLatestEmpty(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := p.Latest(context.Background()); !errors.Is(err, ErrNoDocuments) {
		t.Fatalf("expected ErrNoDocuments, got %v", err)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	in := &Record{
		Language:       "Dutch",
		Level:          "Intermediate",
		Content:        []byte(`{"daily_tasks": ["a", "b"], "purpose": "p"}`),
		Classification: map[string]bool{"daily_tasks": true},
	}
	if err := p.Put(in); err != nil {
		t.Fatalf("put: %v", err)
	}

	out, err := p.Get(in.Key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.Language != "Dutch" || out.Level != "Intermediate" {
		t.Fatalf("metadata lost: %+v", out)
	}
	if !out.Classification["daily_tasks"] {
		t.Fatalf("classification lost: %+v", out.Classification)
	}

	d, err := out.Document()
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	keys := d.VisibleKeys()
	if len(keys) != 2 || keys[0] != "daily_tasks" {
		t.Fatalf("document order lost: %v", keys)
	}
}
