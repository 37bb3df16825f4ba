package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/ansimark/pkg/ansi"
	"github.com/matzehuels/ansimark/pkg/errors"
)

const sunset = `
name = "sunset"
description = "warm accents"

[styles]
orange    = "\u001b[38;5;208m"
warning   = "orange"
highlight = ["orange", "reverse"]
nested    = [["bright", "orange"], "underline"]
`

func writeTheme(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name+".toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestParse(t *testing.T) {
	th, err := Parse([]byte(sunset))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if th.Name != "sunset" {
		t.Errorf("Name = %q, want %q", th.Name, "sunset")
	}
	if th.Description != "warm accents" {
		t.Errorf("Description = %q", th.Description)
	}

	tests := []struct {
		name string
		want string
	}{
		{"orange", "\x1b[38;5;208m"},
		{"warning", "\x1b[38;5;208m"},
		{"highlight", "\x1b[38;5;208m\x1b[7m"},
		{"nested", "\x1b[1m\x1b[38;5;208m\x1b[4m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := th.Styles.Resolve(ansi.Style(tt.name))
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{
			name:  "bad toml",
			input: "[styles\n",
			code:  errors.ErrCodeInvalidTheme,
		},
		{
			name:  "unknown alias",
			input: "[styles]\nwarning = \"ochre\"\n",
			code:  errors.ErrCodeUnknownStyle,
		},
		{
			name:  "cycle",
			input: "[styles]\na = \"b\"\nb = \"a\"\n",
			code:  errors.ErrCodeCyclicTheme,
		},
		{
			name:  "number value",
			input: "[styles]\na = 42\n",
			code:  errors.ErrCodeInvalidTheme,
		},
		{
			name:  "alias with space",
			input: "[styles]\na = \"light red\"\n",
			code:  errors.ErrCodeInvalidStyle,
		},
		{
			name:  "missing parent",
			input: "extends = \"nope\"\n",
			code:  errors.ErrCodeThemeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			if !hasCode(err, tt.code) {
				t.Errorf("Parse() error = %v, want code %s in chain", err, tt.code)
			}
		})
	}
}

// hasCode reports whether any *errors.Error in err's chain carries code.
func hasCode(err error, code errors.Code) bool {
	for err != nil {
		if errors.GetCode(err) == code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

func TestParseUndecoded(t *testing.T) {
	th, err := Parse([]byte("name = \"x\"\nauthor = \"me\"\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(th.Undecoded) != 1 || th.Undecoded[0] != "author" {
		t.Errorf("Undecoded = %v, want [author]", th.Undecoded)
	}
}

func TestExtendsBuiltin(t *testing.T) {
	th, err := Parse([]byte("extends = \"default\"\n[styles]\nsuccess = \"light_green\"\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got, err := th.Styles.Resolve("success")
	if err != nil || got != "\x1b[92m" {
		t.Errorf("success = %q, %v; want light green", got, err)
	}
	got, err = th.Styles.Resolve("warning")
	if err != nil || got != "\x1b[33m" {
		t.Errorf("warning = %q, %v; want inherited yellow", got, err)
	}
}

func TestLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "sunset", sunset)
	writeTheme(t, dir, "child", "extends = \"sunset\"\n[styles]\nalert = \"highlight\"\n")

	l := NewLoader(dir)

	th, err := l.Load("child")
	if err != nil {
		t.Fatalf("Load(child) error = %v", err)
	}
	if th.Name != "child" {
		t.Errorf("Name = %q, want file basename", th.Name)
	}
	if th.Path != filepath.Join(dir, "child.toml") {
		t.Errorf("Path = %q", th.Path)
	}
	got, err := th.Styles.Resolve("alert")
	if err != nil || got != "\x1b[38;5;208m\x1b[7m" {
		t.Errorf("alert = %q, %v", got, err)
	}

	th, err = l.Load(filepath.Join(dir, "sunset.toml"))
	if err != nil {
		t.Fatalf("Load(path) error = %v", err)
	}
	if th.Name != "sunset" {
		t.Errorf("Name = %q, want sunset", th.Name)
	}

	th, err = l.Load("mono")
	if err != nil {
		t.Fatalf("Load(mono) error = %v", err)
	}
	if th.Name != "mono" {
		t.Errorf("Name = %q, want mono", th.Name)
	}
	if th.Path != "" {
		t.Errorf("built-in Path = %q, want empty", th.Path)
	}
}

func TestLoaderShadowsBuiltin(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "default", "[styles]\nsuccess = \"blue\"\n")

	th, err := NewLoader(dir).Load("default")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, ok := th.Styles["warning"]; ok {
		t.Error("file theme should replace the built-in, not extend it")
	}
}

func TestLoaderErrors(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "loop", "extends = \"loop\"\n")
	writeTheme(t, dir, "ping", "extends = \"pong\"\n")
	writeTheme(t, dir, "pong", "extends = \"ping\"\n")

	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"missing", "nothing-here", errors.ErrCodeThemeNotFound},
		{"traversal", "..", errors.ErrCodeInvalidTheme},
		{"missing file", filepath.Join(dir, "absent.toml"), errors.ErrCodeFileNotFound},
		{"self extends", "loop", errors.ErrCodeInvalidTheme},
		{"mutual extends", "ping", errors.ErrCodeInvalidTheme},
	}

	l := NewLoader(dir)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Load(tt.input)
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !hasCode(err, tt.code) {
				t.Errorf("Load() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLoaderNames(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "sunset", sunset)
	writeTheme(t, dir, "mono", "[styles]\n")

	got := NewLoader(dir).Names()
	want := []string{"mono", "sunset", "default"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuiltinsAreValidAndIsolated(t *testing.T) {
	for _, name := range BuiltinNames() {
		th, ok := Builtin(name)
		if !ok {
			t.Fatalf("Builtin(%q) not found", name)
		}
		if err := th.Styles.Validate(); err != nil {
			t.Errorf("Builtin(%q) invalid: %v", name, err)
		}
		th.Styles["success"] = ansi.Seq("x")
		again, _ := Builtin(name)
		if again.Styles["success"] == ansi.Seq("x") {
			t.Errorf("Builtin(%q) returned shared styles", name)
		}
	}
}

func TestBuiltinsShareNames(t *testing.T) {
	def, _ := Builtin(DefaultName)
	mono, _ := Builtin("mono")
	for _, name := range def.Styles.Names() {
		if _, ok := mono.Styles[name]; !ok {
			t.Errorf("mono theme lacks %q", name)
		}
	}
}

func TestExampleThemes(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "themes", "*.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Skip("no example themes")
	}

	want, _ := Builtin(DefaultName)
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			th, err := NewLoader().LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			if len(th.Undecoded) > 0 {
				t.Errorf("Undecoded = %v", th.Undecoded)
			}
			for _, name := range want.Styles.Names() {
				if _, ok := th.Styles[name]; !ok {
					t.Errorf("missing semantic style %q", name)
				}
			}
		})
	}
}

func TestLoadWithoutDirs(t *testing.T) {
	th, err := Load(DefaultName)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if th.Name != DefaultName {
		t.Errorf("Name = %q", th.Name)
	}

	path := writeTheme(t, t.TempDir(), "sunset", sunset)
	if th, err = Load(path); err != nil || th.Name != "sunset" {
		t.Errorf("Load(path) = %v, %v", th, err)
	}

	if _, err := Load("sunset"); !errors.Is(err, errors.ErrCodeThemeNotFound) {
		t.Errorf("Load(sunset) error = %v, want THEME_NOT_FOUND", err)
	}
}
