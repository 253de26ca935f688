// SPDX-License-Identifier: EPL-2.0

package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeEnv(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFiles_Priority(t *testing.T) {
	dir := t.TempDir()
	local := writeEnv(t, dir, "local.env", "AUDXFORM_TEST_A=local\nAUDXFORM_TEST_B=local\n")
	user := writeEnv(t, dir, "user.env", "AUDXFORM_TEST_B=user\nAUDXFORM_TEST_C=user\n")
	missing := filepath.Join(dir, "missing.env")

	t.Setenv("AUDXFORM_TEST_A", "process")
	for _, key := range []string{"AUDXFORM_TEST_B", "AUDXFORM_TEST_C"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	loaded, err := LoadFiles(local, missing, user)
	if err != nil {
		t.Fatalf("LoadFiles() error = %v", err)
	}
	if !slices.Equal(loaded, []string{local, user}) {
		t.Errorf("LoadFiles() loaded %v, want %v", loaded, []string{local, user})
	}

	want := map[string]string{
		"AUDXFORM_TEST_A": "process",
		"AUDXFORM_TEST_B": "local",
		"AUDXFORM_TEST_C": "user",
	}
	for key, v := range want {
		if got := os.Getenv(key); got != v {
			t.Errorf("%s = %q, want %q", key, got, v)
		}
	}
}

func TestLoadFiles_BadFile(t *testing.T) {
	dir := t.TempDir()

	// a directory cannot be parsed as an env file
	if _, err := LoadFiles(dir); err == nil {
		t.Error("LoadFiles(dir) error = nil")
	}
}
