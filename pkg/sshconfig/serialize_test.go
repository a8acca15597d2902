package sshconfig

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestRender_PerKind(t *testing.T) {
	doc := NewDocument()
	doc.Lines = []*Line{
		{Kind: LineComment, Text: "# top comment", Source: "main"},
		{Kind: LineEmpty, Source: "main"},
		{Kind: LineGlobalOption, Key: "Compression", Value: "yes", Source: "main"},
		{Kind: LineInclude, IncludePath: "conf.d/*.conf", Source: "main"},
		{Kind: LineHost, Pattern: "web", Options: []Option{
			{Key: "HostName", Value: "web.example.com"},
			{Key: "Port", Value: "2222"},
		}, Source: "main"},
	}

	got := doc.Render("main")
	want := "# top comment\n" +
		"\n" +
		"Compression yes\n" +
		"Include conf.d/*.conf\n" +
		"Host web\n" +
		"    HostName web.example.com\n" +
		"    Port 2222\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_FiltersBySource(t *testing.T) {
	doc := NewDocument()
	doc.Lines = []*Line{
		{Kind: LineHost, Pattern: "a", Source: "main"},
		{Kind: LineHost, Pattern: "b", Source: "included"},
		{Kind: LineHost, Pattern: "c", Source: "main"},
	}

	got := doc.Render("included")
	if got != "Host b\n" {
		t.Errorf("Render(included) = %q, want %q", got, "Host b\n")
	}
	if strings.Contains(doc.Render("main"), "Host b") {
		t.Error("Render(main) must not contain lines from other files")
	}
}

func TestRender_NormalizesOptionIndent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	writeFile(t, path, "Host foo\n\tUser bob\n  Port 22\n")

	doc, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got := doc.Render(path)
	want := "Host foo\n    User bob\n    Port 22\n"
	if got != want {
		t.Errorf("Render() = %q, want %q (indent normalized to 4 spaces)", got, want)
	}
}

func TestRender_EditReflectedOnlyInTargetFile(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub.config")
	subContent := "Host x\n    Port 1\n"
	writeFile(t, sub, subContent)
	path := filepath.Join(dir, "config")
	writeFile(t, path, "Host foo\n    User bob\nInclude sub.config\n")

	doc, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	doc.FindHost("foo").AddOption("Port", "2222")

	if got := doc.Render(path); !strings.Contains(got, "    Port 2222\n") {
		t.Errorf("Render(main) = %q, want added option line", got)
	}
	if got := doc.Render(sub); got != subContent {
		t.Errorf("Render(sub) = %q, want untouched %q", got, subContent)
	}
}

func TestRender_DanglingIncludeReEmitted(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	writeFile(t, path, "Include gone.d/*.conf\n")

	doc, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := doc.Render(path); got != "Include gone.d/*.conf\n" {
		t.Errorf("Render() = %q, want the directive re-emitted as parsed", got)
	}
}
