package meta

import (
	"strings"
	"testing"
)

func TestParseManifest(t *testing.T) {
	manifest := `# A package manifest
[package]
script_dir = scripts
description = Log writer for PostgreSQL.
    Supports rotation and custom types.
depends = zeek >=4.0.0
    foo *
tags = log writer, postgresql
user_vars =
    pg_host [localhost] "PostgreSQL host"

[template]
source = https://example.com/template
`

	md, err := ParseManifest(strings.NewReader(manifest))
	if err != nil {
		t.Fatalf("ParseManifest() error = %v", err)
	}

	if got := md["script_dir"]; got != "scripts" {
		t.Errorf("script_dir = %q", got)
	}
	if got := md["description"]; got != "Log writer for PostgreSQL.\nSupports rotation and custom types." {
		t.Errorf("description = %q", got)
	}

	deps, err := Dependencies(md, "depends")
	if err != nil {
		t.Fatalf("Dependencies() error = %v", err)
	}
	if deps["zeek"] != ">=4.0.0" || deps["foo"] != "*" {
		t.Errorf("Dependencies() = %v", deps)
	}

	uvars, err := UserVars(md)
	if err != nil {
		t.Fatalf("UserVars() error = %v", err)
	}
	if len(uvars) != 1 || uvars[0].Name != "pg_host" || uvars[0].Val != "localhost" {
		t.Errorf("UserVars() = %+v", uvars)
	}

	// The [template] section must not leak into the metadata.
	if _, ok := md["source"]; ok {
		t.Error("template section key leaked into metadata")
	}
}

func TestParseManifestErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "bare word",
			content: "[package]\nnot-a-key-value\n",
		},
		{
			name:    "continuation without key",
			content: "[package]\n    orphaned continuation\n",
		},
		{
			name:    "empty key",
			content: "[package]\n= value\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseManifest(strings.NewReader(tt.content)); err == nil {
				t.Error("ParseManifest() expected error")
			}
		})
	}
}

func TestParseManifestIgnoresTopLevelKeys(t *testing.T) {
	md, err := ParseManifest(strings.NewReader("stray = value\n[package]\ntags = a\n"))
	if err != nil {
		t.Fatalf("ParseManifest() error = %v", err)
	}
	if _, ok := md["stray"]; ok {
		t.Error("key outside [package] section kept")
	}
	if md["tags"] != "a" {
		t.Errorf("tags = %q", md["tags"])
	}
}
