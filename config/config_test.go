package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/swixbase/log/writer"
)

func TestParse(t *testing.T) {
	doc := []byte(`
path: /var/log/app.log
encoding: ISO-8859-1
time_format: "2006-01-02"
`)

	cfg, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Path != "/var/log/app.log" {
		t.Errorf("Path = %q", cfg.Path)
	}
	if cfg.Encoding != "ISO-8859-1" {
		t.Errorf("Encoding = %q", cfg.Encoding)
	}
	if cfg.TimeFormat != "2006-01-02" {
		t.Errorf("TimeFormat = %q", cfg.TimeFormat)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("path: [unclosed")); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.yaml")
	if err := os.WriteFile(path, []byte("path: out.log\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Path != "out.log" {
		t.Errorf("Path = %q", cfg.Path)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestConfig_Writer(t *testing.T) {
	cfg := Config{Path: "out.log", Encoding: "utf-16le"}

	wcfg, err := cfg.Writer()
	if err != nil {
		t.Fatalf("Writer failed: %v", err)
	}
	if wcfg.Path != "out.log" {
		t.Errorf("Path = %q", wcfg.Path)
	}
	if wcfg.Encoding != writer.UTF16LE {
		t.Errorf("Encoding = %v, want UTF16LE", wcfg.Encoding)
	}
}

func TestConfig_Writer_Defaults(t *testing.T) {
	cfg := Config{Path: "out.log"}

	wcfg, err := cfg.Writer()
	if err != nil {
		t.Fatalf("Writer failed: %v", err)
	}
	if wcfg.Encoding != writer.UTF8 {
		t.Errorf("Encoding = %v, want UTF8", wcfg.Encoding)
	}
	if wcfg.TimestampFormat != "" {
		t.Errorf("TimestampFormat = %q, want empty (writer default)", wcfg.TimestampFormat)
	}
}

func TestConfig_Writer_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"missing path", Config{}, "path is required"},
		{"bad encoding", Config{Path: "out.log", Encoding: "EBCDIC"}, "unsupported encoding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.Writer()
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want substring %q", err, tt.want)
			}
		})
	}
}
