package sshconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveInclude_Relative(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "extra.conf")
	writeFile(t, target, "Host x\n    Port 1\n")

	got := ResolveInclude("extra.conf", dir)
	if len(got) != 1 || got[0] != target {
		t.Errorf("ResolveInclude() = %v, want [%s]", got, target)
	}
}

func TestResolveInclude_Absolute(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "abs.conf")
	writeFile(t, target, "Host x\n    Port 1\n")

	// baseDir must be ignored for absolute patterns.
	got := ResolveInclude(target, t.TempDir())
	if len(got) != 1 || got[0] != target {
		t.Errorf("ResolveInclude() = %v, want [%s]", got, target)
	}
}

func TestResolveInclude_TildeExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	sshDir := filepath.Join(home, ".ssh")
	if err := os.Mkdir(sshDir, 0700); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(sshDir, "work.conf")
	writeFile(t, target, "Host w\n    Port 1\n")

	got := ResolveInclude("~/.ssh/work.conf", "/unrelated")
	if len(got) != 1 || got[0] != target {
		t.Errorf("ResolveInclude() = %v, want [%s]", got, target)
	}
}

func TestResolveInclude_Glob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.conf"), "Host b\n    Port 2\n")
	writeFile(t, filepath.Join(dir, "a.conf"), "Host a\n    Port 1\n")
	if err := os.Mkdir(filepath.Join(dir, "c.conf"), 0700); err != nil {
		t.Fatal(err)
	}

	got := ResolveInclude("*.conf", dir)
	want := []string{filepath.Join(dir, "a.conf"), filepath.Join(dir, "b.conf")}
	if len(got) != 2 {
		t.Fatalf("ResolveInclude() = %v, want %v (directory skipped)", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("match %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestResolveInclude_NoMatch(t *testing.T) {
	got := ResolveInclude("nothing/*.conf", t.TempDir())
	if len(got) != 0 {
		t.Errorf("ResolveInclude() = %v, want empty (dangling include is not fatal)", got)
	}
}

func TestResolveInclude_BrokenSymlinkSkipped(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "dangling.conf")
	if err := os.Symlink(filepath.Join(dir, "gone"), link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	got := ResolveInclude("*.conf", dir)
	if len(got) != 0 {
		t.Errorf("ResolveInclude() = %v, want empty (broken symlink skipped)", got)
	}
}

func TestCanonicalPath_FallsBackOnMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	got := canonicalPath(missing)
	if got != missing {
		t.Errorf("canonicalPath(%q) = %q, want literal path back", missing, got)
	}
}
