package rules

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader reads the rules file and falls back to the built-in defaults when
// the file is missing or broken. A bad rules file is never fatal: card
// building continues with the defaults.
type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

func (l *Loader) Run() *Rules {
	if l.path == "" {
		slog.Warn("No rules file configured, using built-in defaults")
		return Defaults()
	}

	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		slog.Warn("Rules file not found, using built-in defaults", "path", l.path)
		return Defaults()
	}

	loaded, err := l.parseFile(l.path)
	if err != nil {
		slog.Error("Failed to load rules file, using built-in defaults", "path", l.path, "error", err)
		return Defaults()
	}

	l.setDefaults(loaded)

	if err := l.validate(loaded); err != nil {
		slog.Error("Invalid rules file, using built-in defaults", "path", l.path, "error", err)
		return Defaults()
	}

	slog.Debug("Rules loaded",
		"path", l.path,
		"groups", len(loaded.Groups),
		"attributes", len(loaded.Attributes),
		"doc_types", len(loaded.DocTypes))

	return loaded
}

func (l *Loader) parseFile(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &r, nil
}

// setDefaults fills unset sections of a partial rules file from the built-in
// set. Groups and attributes are kept as configured even when empty: an empty
// vocabulary is a legal configuration.
func (l *Loader) setDefaults(r *Rules) {
	d := Defaults()

	if r.DefaultGroup == "" {
		r.DefaultGroup = d.DefaultGroup
	}
	if r.ExtractFields == nil {
		r.ExtractFields = d.ExtractFields
	}
	if r.DisplayBooleans == nil {
		r.DisplayBooleans = d.DisplayBooleans
	}
	if r.AttributeBooleans == nil {
		r.AttributeBooleans = d.AttributeBooleans
	}
	if r.AffirmativeToken == "" {
		r.AffirmativeToken = d.AffirmativeToken
	}
	if r.Info == (InfoFields{}) {
		r.Info = d.Info
	}
	if len(r.DocTypes) == 0 {
		r.DocTypes = d.DocTypes
	}
	if r.DefaultLinkWord == "" {
		r.DefaultLinkWord = d.DefaultLinkWord
	}
	if r.IconsPath == "" {
		r.IconsPath = d.IconsPath
	}
	if r.DefaultIcon == "" {
		r.DefaultIcon = d.DefaultIcon
	}
	if r.FileIcons == nil {
		r.FileIcons = d.FileIcons
	}
	if r.FileLabels == nil {
		r.FileLabels = d.FileLabels
	}
	if r.ExcerptMaxLength <= 0 {
		r.ExcerptMaxLength = d.ExcerptMaxLength
	}
}

func (l *Loader) validate(r *Rules) error {
	for i, g := range r.Groups {
		if g.Name == "" {
			return fmt.Errorf("group at index %d has no name", i)
		}
		if len(g.Keywords) == 0 {
			return fmt.Errorf("group %q has no keywords", g.Name)
		}
	}

	for i, a := range r.Attributes {
		if a.Key == "" {
			return fmt.Errorf("attribute at index %d has no key", i)
		}
		if a.Slug == "" {
			return fmt.Errorf("attribute %q has no slug", a.Key)
		}
	}

	for i, dt := range r.DocTypes {
		if dt.Name == "" {
			return fmt.Errorf("document type at index %d has no name", i)
		}
	}

	return nil
}
