package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ValidConfig(t *testing.T) {
	t.Parallel()
	content := `
project: research
location: westeurope
storage:
  quotaGiB: 250
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "azcap.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Project != "research" {
		t.Errorf("Project = %q, want %q", cfg.Project, "research")
	}
	if cfg.Location != "westeurope" {
		t.Errorf("Location = %q, want %q", cfg.Location, "westeurope")
	}
	if cfg.Storage.QuotaGiB != 250 {
		t.Errorf("Storage.QuotaGiB = %d, want 250", cfg.Storage.QuotaGiB)
	}
	// Defaults are applied during load
	if cfg.ResourceGroup != "research-rg" {
		t.Errorf("ResourceGroup = %q, want the derived default", cfg.ResourceGroup)
	}
	if cfg.Registry.Name != "researchacr" {
		t.Errorf("Registry.Name = %q, want the derived default", cfg.Registry.Name)
	}
}

func TestLoad_MinimalConfig(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "azcap.yaml")
	if err := os.WriteFile(configPath, []byte("project: demo\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Location != DefaultLocation {
		t.Errorf("Location = %q, want %q", cfg.Location, DefaultLocation)
	}
	if cfg.Storage.Account != "demostor" {
		t.Errorf("Storage.Account = %q, want %q", cfg.Storage.Account, "demostor")
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() = nil, want error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "azcap.yaml")
	if err := os.WriteFile(configPath, []byte("project: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("Load() = nil, want error for invalid YAML")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "azcap.yaml")
	if err := os.WriteFile(configPath, []byte("project: Invalid_Name\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("Load() = nil, want validation error")
	}
}

func TestLoadFromBytes(t *testing.T) {
	t.Parallel()
	cfg, err := LoadFromBytes([]byte("project: demo\n"))
	if err != nil {
		t.Fatalf("LoadFromBytes() error = %v", err)
	}
	if cfg.Project != "demo" {
		t.Errorf("Project = %q, want %q", cfg.Project, "demo")
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()
	cfg := &Config{Project: "roundtrip", Location: "uksouth"}
	cfg.ApplyDefaults()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "azcap.yaml")
	if err := Save(cfg, configPath); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Project != "roundtrip" {
		t.Errorf("Project = %q, want %q", loaded.Project, "roundtrip")
	}
	if loaded.Location != "uksouth" {
		t.Errorf("Location = %q, want %q", loaded.Location, "uksouth")
	}
}

func TestFindConfigFile(t *testing.T) {
	// Resolve symlinks so the comparison holds on systems where TempDir
	// returns a symlinked path.
	tmpDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}
	configPath := filepath.Join(tmpDir, "azcap.yaml")
	if err := os.WriteFile(configPath, []byte("project: test\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	t.Chdir(tmpDir)

	found, err := FindConfigFile()
	if err != nil {
		t.Fatalf("FindConfigFile() error = %v", err)
	}
	if found != configPath {
		t.Errorf("FindConfigFile() = %q, want %q", found, configPath)
	}
}

func TestFindConfigFile_WalksUp(t *testing.T) {
	tmpDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}
	configPath := filepath.Join(tmpDir, "azcap.yaml")
	if err := os.WriteFile(configPath, []byte("project: test\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	nested := filepath.Join(tmpDir, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("Failed to create nested dirs: %v", err)
	}

	t.Chdir(nested)

	found, err := FindConfigFile()
	if err != nil {
		t.Fatalf("FindConfigFile() error = %v", err)
	}
	if found != configPath {
		t.Errorf("FindConfigFile() = %q, want %q", found, configPath)
	}
}

func TestFindConfigFile_NotFound(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := FindConfigFile(); err == nil {
		t.Fatal("FindConfigFile() = nil, want error when no config exists")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Parallel()
	path := DefaultConfigPath()
	if filepath.Base(path) != DefaultConfigFilename {
		t.Errorf("DefaultConfigPath() = %q, want basename %q", path, DefaultConfigFilename)
	}
}
