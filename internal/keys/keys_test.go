package keys

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewStore(t *testing.T) {
	t.Setenv("LUCKYGEN_CONFIG_DIR", t.TempDir())

	store, err := NewStore()
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if store == nil {
		t.Fatal("NewStore() returned nil")
	}
	if store.Path() == "" {
		t.Error("Store.Path() should not be empty")
	}
}

func TestStore_SetGetDelete(t *testing.T) {
	tmpDir := t.TempDir()
	store := &Store{configDir: tmpDir}

	// Test Set
	err := store.Set(ServiceGemini, "AIza-test-key-12345")
	if err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// Verify file was created with correct permissions
	keyFile := filepath.Join(tmpDir, "keys.json")
	info, err := os.Stat(keyFile)
	if err != nil {
		t.Fatalf("keys.json not created: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("keys.json permissions = %v, want 0600", info.Mode().Perm())
	}

	// Test Get
	key, err := store.Get(ServiceGemini)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if key != "AIza-test-key-12345" {
		t.Errorf("Get() = %v, want AIza-test-key-12345", key)
	}

	// Test Get non-existent key
	key, err = store.Get("other")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if key != "" {
		t.Errorf("Get(non-existent) = %v, want empty string", key)
	}

	// Test Exists
	exists, err := store.Exists(ServiceGemini)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !exists {
		t.Error("Exists(gemini) = false, want true")
	}

	// Test Delete
	if err := store.Delete(ServiceGemini); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	exists, err = store.Exists(ServiceGemini)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() after Delete = true, want false")
	}

	// Deleting again is an error
	if err := store.Delete(ServiceGemini); err == nil {
		t.Error("Delete() of missing key succeeded, want error")
	}
}

func TestConfigDir_EnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("LUCKYGEN_CONFIG_DIR", tmpDir)

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error = %v", err)
	}
	if dir != tmpDir {
		t.Errorf("ConfigDir() = %q, want %q", dir, tmpDir)
	}
}

func TestMaskKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"short key fully masked", "abc123", "******"},
		{"long key keeps edges", "AIzaSyD-1234567890abcd", "AIza**************abcd"},
		{"empty key", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskKey(tt.key); got != tt.want {
				t.Errorf("MaskKey(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestGetAPIKey_Priority(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("LUCKYGEN_CONFIG_DIR", tmpDir)
	t.Setenv(EnvAPIKey, "env-key")

	// Explicit flag wins over everything.
	key, source, err := GetAPIKey("flag-key")
	if err != nil {
		t.Fatalf("GetAPIKey() error = %v", err)
	}
	if key != "flag-key" || source != "command-line flag" {
		t.Errorf("GetAPIKey() = %q from %q, want flag-key from command-line flag", key, source)
	}

	// Stored key beats the environment.
	store := &Store{configDir: tmpDir}
	if err := store.Set(ServiceGemini, "stored-key"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	key, _, err = GetAPIKey("")
	if err != nil {
		t.Fatalf("GetAPIKey() error = %v", err)
	}
	if key != "stored-key" {
		t.Errorf("GetAPIKey() = %q, want stored-key", key)
	}

	// Environment is the last fallback.
	if err := store.Delete(ServiceGemini); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	key, _, err = GetAPIKey("")
	if err != nil {
		t.Fatalf("GetAPIKey() error = %v", err)
	}
	if key != "env-key" {
		t.Errorf("GetAPIKey() = %q, want env-key", key)
	}

	// Nothing configured at all.
	t.Setenv(EnvAPIKey, "")
	if _, _, err := GetAPIKey(""); err == nil {
		t.Error("GetAPIKey() with no sources succeeded, want error")
	}
}

func TestMaskKey_ExactWidth(t *testing.T) {
	key := "12345678"
	if got := MaskKey(key); got != "********" {
		t.Errorf("MaskKey(%q) = %q, want ********", key, got)
	}
}
