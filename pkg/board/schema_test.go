package board

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSchema(t *testing.T) {
	s := Schema()
	if s == nil {
		t.Fatal("Schema() returned nil")
	}

	props := s.Properties
	if props == nil {
		t.Fatal("Schema() has no properties")
	}
	for _, want := range []string{"version", "type", "fonts", "slides"} {
		if _, ok := props.Get(want); !ok {
			t.Errorf("schema missing property %q", want)
		}
	}
}

func TestSchemaJSON(t *testing.T) {
	data, err := SchemaJSON()
	if err != nil {
		t.Fatalf("SchemaJSON() error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}

	out := string(data)
	for _, want := range []string{"group_selections", "background_product_id", "auto_scale", "density_threshold"} {
		if !strings.Contains(out, want) {
			t.Errorf("schema missing %q", want)
		}
	}

	// Unknown keys in documents must be rejected by consumers of the schema
	// just like the TOML decoder does.
	if !strings.Contains(out, `"additionalProperties": false`) {
		t.Error("schema should disallow additional properties")
	}
}
