// Package profile provides the runners for showing and editing who the
// checklist belongs to and which languages they are learning.
package profile

import (
	"context"
	"fmt"

	"tableflip.dev/helpdeck/pkg/printers"
	"tableflip.dev/helpdeck/pkg/profile"
)

// Show prints the stored profile.
type Show struct {
	Path string
}

// Do prints the profile's name and languages.
func (s *Show) Do(ctx context.Context) error {
	p, err := profile.Load(s.Path)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	name := p.FullName()
	if name == "" {
		name = "(no name set)"
	}
	pp.Title(name)
	pp.Languages(p)
	return nil
}

// Set updates the profile's name and surname, keeping languages intact.
type Set struct {
	Path    string
	Name    string
	Surname string
}

// Do applies the name change.
func (s *Set) Do(ctx context.Context) error {
	p, err := profile.Load(s.Path)
	if err != nil {
		return err
	}
	if s.Name != "" {
		p.Name = s.Name
	}
	if s.Surname != "" {
		p.Surname = s.Surname
	}
	if err := profile.Save(s.Path, p); err != nil {
		return err
	}
	fmt.Printf("saved profile for %s\n", p.FullName())
	return nil
}

// AddLanguage adds or updates one language entry.
type AddLanguage struct {
	Path     string
	Language string
	Level    profile.Level
}

// Do stores the language.
func (a *AddLanguage) Do(ctx context.Context) error {
	p, err := profile.Load(a.Path)
	if err != nil {
		return err
	}
	p.AddLanguage(a.Language, a.Level)
	if err := profile.Save(a.Path, p); err != nil {
		return err
	}
	fmt.Printf("%s %s (%s)\n", profile.Flag(a.Language), a.Language, a.Level)
	return nil
}

// RemoveLanguage drops one language entry.
type RemoveLanguage struct {
	Path     string
	Language string
}

// Do removes the language if present.
func (r *RemoveLanguage) Do(ctx context.Context) error {
	p, err := profile.Load(r.Path)
	if err != nil {
		return err
	}
	if !p.RemoveLanguage(r.Language) {
		return fmt.Errorf("profile: language %q not found", r.Language)
	}
	return profile.Save(r.Path, p)
}
