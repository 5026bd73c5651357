package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/askoeller/menuboard/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "json", []string{"json"}},
		{"multiple formats", "svg,json,text", []string{"svg", "json", "text"}},
		{"text only", "text", []string{"text"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Errorf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
				return
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"empty output strips input extension", "", "board.toml", "board"},
		{"output with artifact extension", "menu.svg", "board.toml", "menu"},
		{"output with json extension", "out/menu.json", "board.toml", "out/menu"},
		{"output without extension", "menu", "board.toml", "menu"},
		{"output with unrelated extension", "menu.bak", "board.toml", "menu.bak"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestArtifactExt(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{pipeline.FormatSVG, ".svg"},
		{pipeline.FormatJSON, ".json"},
		{pipeline.FormatText, ".txt"},
	}

	for _, tt := range tests {
		if got := artifactExt(tt.format); got != tt.want {
			t.Errorf("artifactExt(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestWriteArtifactsSingleWithOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "menu.svg")

	artifacts := map[string][]byte{"svg": []byte("<svg/>")}
	written, err := writeArtifacts(artifacts, []string{"svg"}, "board.toml", out)
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}
	if len(written) != 1 || written[0] != out {
		t.Fatalf("written = %v, want [%s]", written, out)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("output = %q, want %q", data, "<svg/>")
	}
}

func TestWriteArtifactsMultipleFormats(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "board.toml")

	artifacts := map[string][]byte{
		"svg":  []byte("<svg/>"),
		"json": []byte("{}"),
		"text": []byte("menu"),
	}
	written, err := writeArtifacts(artifacts, []string{"svg", "json", "text"}, input, "")
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}

	want := []string{
		filepath.Join(dir, "board.svg"),
		filepath.Join(dir, "board.json"),
		filepath.Join(dir, "board.txt"),
	}
	if len(written) != len(want) {
		t.Fatalf("written %d paths, want %d", len(written), len(want))
	}
	for i, path := range want {
		if written[i] != path {
			t.Errorf("written[%d] = %q, want %q", i, written[i], path)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("artifact %s not written: %v", path, err)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"valid svg", []string{"svg"}, false},
		{"valid json", []string{"json"}, false},
		{"valid text", []string{"text"}, false},
		{"valid multiple", []string{"svg", "json", "text"}, false},
		{"invalid format", []string{"pdf"}, true},
		{"mixed valid invalid", []string{"svg", "invalid"}, true},
		{"empty slice", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pipeline.ValidateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}

func TestValidateStyle(t *testing.T) {
	tests := []struct {
		name    string
		style   string
		wantErr bool
	}{
		{"dark", "dark", false},
		{"light", "light", false},
		{"invalid", "neon", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pipeline.ValidateStyle(tt.style)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStyle(%q) error = %v, wantErr %v", tt.style, err, tt.wantErr)
			}
		})
	}
}
