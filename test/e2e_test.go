package test

import (
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/sshconf/sshconf/pkg/output"
)

var (
	binPath   string
	buildOnce sync.Once
	buildErr  error
)

// binary builds the sshconf binary once per test run.
func binary(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		_, filename, _, _ := runtime.Caller(0)
		root := filepath.Dir(filepath.Dir(filename))

		dir, err := os.MkdirTemp("", "sshconf-e2e")
		if err != nil {
			buildErr = err
			return
		}
		binPath = filepath.Join(dir, "sshconf")

		cmd := exec.Command("go", "build", "-o", binPath, "./cmd/cli")
		cmd.Dir = root
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = err
			binPath = string(out)
		}
	})
	if buildErr != nil {
		t.Fatalf("Failed to build binary: %v\n%s", buildErr, binPath)
	}
	return binPath
}

// run executes the binary with HOME pointed at an empty directory so no
// real user configuration interferes.
func run(t *testing.T, home string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binary(t), args...)
	cmd.Env = append(os.Environ(), "HOME="+home)
	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return string(out), exitErr.ExitCode()
		}
		t.Fatalf("Failed to run %v: %v\n%s", args, err, out)
	}
	return string(out), 0
}

func writeFixture(t *testing.T) (home, mainPath, subPath string) {
	t.Helper()
	home = t.TempDir()
	dir := t.TempDir()
	subPath = filepath.Join(dir, "work.conf")
	if err := os.WriteFile(subPath, []byte("Host db\n    Port 5432\n"), 0600); err != nil {
		t.Fatal(err)
	}
	mainPath = filepath.Join(dir, "config")
	content := "# main\n\nHost web\n    HostName web.example.com\n\nInclude work.conf\n"
	if err := os.WriteFile(mainPath, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return home, mainPath, subPath
}

func TestE2E_EditCycle(t *testing.T) {
	home, mainPath, subPath := writeFixture(t)

	// List hosts across the main file and the include.
	out, code := run(t, home, "hosts", "-c", mainPath, "-o", "json")
	if code != 0 {
		t.Fatalf("hosts exit = %d\n%s", code, out)
	}
	var report output.Report
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("hosts output is not JSON: %v\n%s", err, out)
	}
	if len(report.Hosts) != 2 {
		t.Fatalf("hosts = %d, want 2", len(report.Hosts))
	}

	// Edit a host in the included file and save.
	out, code = run(t, home, "set", "db", "Port", "5433", "-c", mainPath)
	if code != 0 {
		t.Fatalf("set exit = %d\n%s", code, out)
	}

	sub, err := os.ReadFile(subPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(sub) != "Host db\n    Port 5433\n" {
		t.Errorf("Included file after set = %q", sub)
	}

	mainData, err := os.ReadFile(mainPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(mainData), "# main\n") || !strings.Contains(string(mainData), "Include work.conf\n") {
		t.Errorf("Main file lost verbatim lines: %q", mainData)
	}

	// The edit survives a reparse.
	out, code = run(t, home, "show", "db", "-c", mainPath)
	if code != 0 {
		t.Fatalf("show exit = %d\n%s", code, out)
	}
	if !strings.Contains(out, "Port 5433") {
		t.Errorf("show output = %q", out)
	}
}

func TestE2E_CheckExitCodes(t *testing.T) {
	home, mainPath, _ := writeFixture(t)

	out, code := run(t, home, "check", "-c", mainPath)
	if code != 0 {
		t.Errorf("check exit = %d, want 0\n%s", code, out)
	}

	dir := t.TempDir()
	badPath := filepath.Join(dir, "config")
	if err := os.WriteFile(badPath, []byte("Include gone.d/*.conf\n"), 0600); err != nil {
		t.Fatal(err)
	}
	out, code = run(t, home, "check", "-c", badPath)
	if code != 1 {
		t.Errorf("check exit = %d, want 1\n%s", code, out)
	}

	_, code = run(t, home, "check", "-c", filepath.Join(dir, "missing"))
	if code != 2 {
		t.Errorf("check exit = %d, want 2 for unreadable root", code)
	}
}

func TestE2E_Version(t *testing.T) {
	home := t.TempDir()
	out, code := run(t, home, "version")
	if code != 0 {
		t.Fatalf("version exit = %d", code)
	}
	if !strings.HasPrefix(out, "sshconf ") {
		t.Errorf("version output = %q", out)
	}
}
