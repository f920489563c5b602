// Package store caches fetched help documents on disk so the checklist can be
// reopened, exported, and watched without refetching.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/helpdeck/pkg/doc"
)

// ErrNoDocuments is returned when the cache holds nothing.
var ErrNoDocuments = errors.New("store: no cached documents")

// Record is one fetched document. Content keeps the raw JSON so the ordered
// document can be decoded on demand.
type Record struct {
	Key            string          `json:"-"`
	FetchedAt      time.Time       `json:"fetched_at"`
	Language       string          `json:"language"`
	Level          string          `json:"level"`
	Content        json.RawMessage `json:"content"`
	Classification map[string]bool `json:"task_classification,omitempty"`
}

// Document decodes the record's ordered document.
func (r *Record) Document() (*doc.Document, error) {
	return doc.DecodeBytes(r.Content)
}

// Persistence is the cache contract for fetched documents.
type Persistence interface {
	Put(r *Record) error
	Get(key string) (*Record, error)
	Latest(ctx context.Context) (*Record, error)
	Keys(ctx context.Context) []string
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

const keyTimeFormat = "20060102_150405"

// Put stores the record, assigning a timestamped key when it has none. Keys
// sort lexically by fetch time so the newest key is always the largest.
func (p *persistence) Put(r *Record) error {
	if r == nil {
		return errors.New("store: nil record")
	}
	if r.FetchedAt.IsZero() {
		r.FetchedAt = time.Now()
	}
	if r.Key == "" {
		r.Key = recordKey(r.FetchedAt, r.Language, r.Level)
	}
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("store: encode record: %w", err)
	}
	return p.d.Write(r.Key, data)
}

func (p *persistence) Get(key string) (*Record, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	r := &Record{}
	if err := json.Unmarshal(val, r); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", key, err)
	}
	r.Key = key
	return r, nil
}

func (p *persistence) Keys(ctx context.Context) []string {
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Latest returns the most recently fetched record.
func (p *persistence) Latest(ctx context.Context) (*Record, error) {
	keys := p.Keys(ctx)
	if len(keys) == 0 {
		return nil, ErrNoDocuments
	}
	return p.Get(keys[len(keys)-1])
}

func recordKey(at time.Time, language, level string) string {
	sanitize := func(s string) string {
		s = strings.TrimSpace(strings.ToLower(s))
		return strings.Map(func(r rune) rune {
			switch {
			case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
				return r
			default:
				return '-'
			}
		}, s)
	}
	return fmt.Sprintf("%s_%s_%s", at.Format(keyTimeFormat), sanitize(language), sanitize(level))
}

func (p *persistence) ensureBasePath() error {
	if p.basePath == "" {
		return errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return fmt.Errorf("store: ensure base path: %w", err)
	}
	return nil
}
