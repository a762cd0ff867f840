// Package plan applies declarative edit plans to widget documents.
//
// A plan is a YAML or JSONC file listing the edits to make. Every field is
// optional; empty fields leave the document alone.
//
//	version: 1.2.3
//	preferences:
//	  - {name: Fullscreen, value: true}
//	access:
//	  - {origin: "https://api.example.com", attrs: {subdomains: "true"}}
//	hooks:
//	  - {type: before_build, src: scripts/lint.js}
package plan

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/widgetkit/pkg/widget"
)

// Format selects the plan syntax.
type Format int

const (
	FormatYAML  Format = iota // .yaml, .yml
	FormatJSONC               // .json, .jsonc: JSON with comments and trailing commas
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSONC:
		return "jsonc"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ErrUnknownFormat is returned for plan files with an unrecognized extension.
var ErrUnknownFormat = errors.New("unknown plan format")

// FormatFromPath picks a Format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSONC, nil
	default:
		return 0, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// Plan is a set of edits. Scalar fields are applied only when non-empty.
type Plan struct {
	ID                  string `yaml:"id" json:"id"`
	Version             string `yaml:"version" json:"version"`
	AndroidVersionCode  any    `yaml:"android-version-code" json:"android-version-code"`
	AndroidPackageName  string `yaml:"android-package-name" json:"android-package-name"`
	IOSBundleVersion    string `yaml:"ios-bundle-version" json:"ios-bundle-version"`
	IOSBundleIdentifier string `yaml:"ios-bundle-identifier" json:"ios-bundle-identifier"`

	Name        string  `yaml:"name" json:"name"`
	Description string  `yaml:"description" json:"description"`
	Content     string  `yaml:"content" json:"content"`
	Author      *Author `yaml:"author" json:"author"`

	Preferences         []Preference  `yaml:"preferences" json:"preferences"`
	RemoveAccessOrigins bool          `yaml:"remove-access-origins" json:"remove-access-origins"`
	RemoveAccess        []string      `yaml:"remove-access" json:"remove-access"`
	Access              []Access      `yaml:"access" json:"access"`
	Plugins             []Plugin      `yaml:"plugins" json:"plugins"`
	Hooks               []widget.Hook `yaml:"hooks" json:"hooks"`
	Raw                 []string      `yaml:"raw" json:"raw"`
}

type Author struct {
	Name  string `yaml:"name" json:"name"`
	Email string `yaml:"email" json:"email"`
	Href  string `yaml:"href" json:"href"`
}

// Preference values may be strings, numbers or booleans.
type Preference struct {
	Name  string `yaml:"name" json:"name"`
	Value any    `yaml:"value" json:"value"`
}

// Access is one whitelist entry. Attrs are written in key order.
type Access struct {
	Origin string            `yaml:"origin" json:"origin"`
	Attrs  map[string]string `yaml:"attrs" json:"attrs"`
}

type Plugin struct {
	Name      string     `yaml:"name" json:"name"`
	Variables []Variable `yaml:"variables" json:"variables"`
}

type Variable struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

// Load reads a plan file, choosing the syntax from its extension.
func Load(path string) (*Plan, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	p, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Decode parses a plan. Unknown keys are rejected in both formats.
func Decode(data []byte, format Format) (*Plan, error) {
	var p Plan
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing plan: %w", err)
		}
	case FormatJSONC:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("parsing plan: %w", err)
		}
	default:
		return nil, fmt.Errorf("%v: %w", format, ErrUnknownFormat)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// validate catches entries that would otherwise be applied as empty keys.
func (p *Plan) validate() error {
	for i, pref := range p.Preferences {
		if pref.Name == "" {
			return fmt.Errorf("preferences[%d]: name is required", i)
		}
	}
	for i, a := range p.Access {
		if a.Origin == "" {
			return fmt.Errorf("access[%d]: origin is required", i)
		}
	}
	for i, pl := range p.Plugins {
		if pl.Name == "" {
			return fmt.Errorf("plugins[%d]: name is required", i)
		}
		for j, v := range pl.Variables {
			if v.Name == "" {
				return fmt.Errorf("plugins[%d].variables[%d]: name is required", i, j)
			}
		}
	}
	return nil
}
