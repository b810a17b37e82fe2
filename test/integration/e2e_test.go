//go:build integration

package integration_test

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// binPath is the fsmod binary built once for the whole package.
var binPath string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "fsmod-e2e")
	if err != nil {
		panic(err)
	}
	binPath = filepath.Join(dir, "fsmod")

	build := exec.Command("go", "build", "-o", binPath, "../..")
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		os.RemoveAll(dir)
		panic("building fsmod: " + err.Error())
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestExitCodes(t *testing.T) {
	work := t.TempDir()

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"help", []string{"-help"}, 0},
		{"version", []string{"-version"}, 0},
		{"help with extra argument", []string{"-help", "x"}, 1},
		{"no arguments", nil, 1},
		{"unknown mode", []string{"-nope", filepath.Join(work, "a")}, 1},
		{"stdm", []string{"-stdm", filepath.Join(work, "b")}, 0},
		{"stdmc tbl", []string{"-stdmc", filepath.Join(work, "c"), "-tbl"}, 0},
		{"stdmc tbm", []string{"-stdmc", filepath.Join(work, "d"), "-tbm", "FOO"}, 0},
		{"stdmc tbm without prefix", []string{"-stdmc", filepath.Join(work, "e"), "-tbm"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runBinary(t, work, tt.args...); got != tt.want {
				t.Errorf("exit code = %d, want %d", got, tt.want)
			}
		})
	}

	if _, err := os.Stat(filepath.Join(work, "e")); !os.IsNotExist(err) {
		t.Errorf("failed run should not create its root (stat err: %v)", err)
	}
}

func TestScenarioModular(t *testing.T) {
	work := t.TempDir()
	root := filepath.Join(work, "mymod")

	if code := runBinary(t, work, "-stdmc", root, "-tbm", "FOO", "-debug"); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}

	for _, p := range []string{"tables/FOO-aic.tbm", "tables/armor.tbl"} {
		info, err := os.Stat(filepath.Join(root, p))
		if err != nil {
			t.Fatalf("%s missing: %v", p, err)
		}
		if info.Size() != 0 {
			t.Errorf("%s is %d bytes, want 0", p, info.Size())
		}
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 29 {
		t.Errorf("got %d top-level directories, want 29", len(entries))
	}

	log, err := os.ReadFile(filepath.Join(work, "log.txt"))
	if err != nil {
		t.Fatalf("debug log missing: %v", err)
	}
	if !strings.Contains(string(log), "FOO-aic.tbm") {
		t.Error("debug log does not mention FOO-aic.tbm")
	}
}

func runBinary(t *testing.T, dir string, args ...string) int {
	t.Helper()
	cmd := exec.Command(binPath, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "FSMOD_COLOR=false", "FSMOD_LOG_FILE=")
	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exitErr):
		return exitErr.ExitCode()
	default:
		t.Fatalf("running fsmod: %v", err)
		return -1
	}
}
