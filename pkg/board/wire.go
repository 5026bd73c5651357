package board

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/askoeller/menuboard/pkg/errors"
)

// =============================================================================
// FORMATS
// =============================================================================

const (
	// FormatTOML is the primary authoring format for templates.
	FormatTOML = "toml"
	// FormatJSON is the interchange format used by the HTTP API.
	FormatJSON = "json"
)

// envelope carries just enough of the document to route it: decoded first so
// that future versions can change everything below it.
type envelope struct {
	Version int    `json:"version" toml:"version"`
	Type    string `json:"type" toml:"type"`
}

func (e envelope) check() error {
	if e.Version == 0 {
		return errors.New(errors.ErrCodeInvalidTemplate, "template is missing a version")
	}
	if e.Version != SupportedVersion {
		return errors.New(errors.ErrCodeUnsupportedSchema, "template version %d is not supported (supported: %d)", e.Version, SupportedVersion)
	}
	if e.Type != TypeMenu {
		return errors.New(errors.ErrCodeInvalidTemplate, "template type %q is not supported (supported: %q)", e.Type, TypeMenu)
	}
	return nil
}

// =============================================================================
// DECODING
// =============================================================================

// Decode parses a template document in the given format. The version and
// type fields are checked before the rest of the document is read.
func Decode(data []byte, format string) (*Template, error) {
	switch format {
	case FormatTOML:
		return decodeTOML(data)
	case FormatJSON:
		return decodeJSON(data)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported template format %q (supported: toml, json)", format)
	}
}

// DecodeFile reads and parses a template document, picking the format from
// the file extension.
func DecodeFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "template %s not found", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	t, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", path, err)
	}
	return t, nil
}

// FormatForPath maps a file extension to a template format.
func FormatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot tell template format from %q (use .toml or .json)", filepath.Base(path))
	}
}

func decodeTOML(data []byte) (*Template, error) {
	var env envelope
	if _, err := toml.Decode(string(data), &env); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "parse TOML")
	}
	if err := env.check(); err != nil {
		return nil, err
	}

	var t Template
	md, err := toml.Decode(string(data), &t)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "parse TOML")
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidTemplate, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return &t, nil
}

func decodeJSON(data []byte) (*Template, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "parse JSON")
	}
	if err := env.check(); err != nil {
		return nil, err
	}

	var t Template
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "parse JSON")
	}
	return &t, nil
}

// =============================================================================
// ENCODING
// =============================================================================

// Marshal serializes the template to indented JSON, the form served by the
// HTTP API.
func (t *Template) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal template: %w", err)
	}
	return data, nil
}
