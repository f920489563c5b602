// Package profile persists the user profile: display name and the languages
// being learned with their proficiency levels.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
)

// Language pairs a language name with a proficiency level.
type Language struct {
	Language string `json:"language"`
	Level    Level  `json:"level"`
}

// Profile is the persisted user record. Missing fields read as zero values.
type Profile struct {
	Name      string     `json:"name"`
	Surname   string     `json:"surname"`
	Languages []Language `json:"languages"`
}

// FullName joins name and surname, tolerating either being empty.
func (p *Profile) FullName() string {
	return strings.TrimSpace(p.Name + " " + p.Surname)
}

// AddLanguage adds or updates a language entry, matching case-insensitively.
func (p *Profile) AddLanguage(language string, level Level) {
	for i, l := range p.Languages {
		if strings.EqualFold(l.Language, language) {
			p.Languages[i].Level = level
			return
		}
	}
	p.Languages = append(p.Languages, Language{Language: language, Level: level})
}

// RemoveLanguage drops a language entry; returns whether anything was removed.
func (p *Profile) RemoveLanguage(language string) bool {
	for i, l := range p.Languages {
		if strings.EqualFold(l.Language, language) {
			p.Languages = append(p.Languages[:i], p.Languages[i+1:]...)
			return true
		}
	}
	return false
}

// DefaultPath is where the profile lives unless overridden.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("profile: resolve home: %w", err)
	}
	return filepath.Join(home, ".helpdeck", "user_data.json"), nil
}

// Load reads the profile at path. A missing file is not an error: it yields
// an empty profile, matching first-run behavior.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Profile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("profile: read: %w", err)
	}
	p := &Profile{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("profile: decode: %w", err)
	}
	return p, nil
}

// Save writes the profile to path, creating parent directories as needed.
func Save(path string, p *Profile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("profile: ensure directory: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("profile: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("profile: write: %w", err)
	}
	return nil
}
