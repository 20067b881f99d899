package config

import (
	"os"
	"path/filepath"
	"testing"

	mdwerror "github.com/msto63/mystring/foundation/core/error"
	"github.com/msto63/mystring/foundation/core/log"
	"github.com/msto63/mystring/foundation/utils/textvalue"
)

func TestConfig_applyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.General.Name != "mystring" {
		t.Errorf("General.Name = %v, want mystring", cfg.General.Name)
	}
	if cfg.General.LogLevel != "warn" {
		t.Errorf("General.LogLevel = %v, want warn", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "console" {
		t.Errorf("General.LogFormat = %v, want console", cfg.General.LogFormat)
	}
	if cfg.TextValue.Policy != "defensive" {
		t.Errorf("TextValue.Policy = %v, want defensive", cfg.TextValue.Policy)
	}
	if cfg.Shell.Prompt != "mystring> " {
		t.Errorf("Shell.Prompt = %q, want %q", cfg.Shell.Prompt, "mystring> ")
	}
	if cfg.Shell.HistorySize != 100 {
		t.Errorf("Shell.HistorySize = %v, want 100", cfg.Shell.HistorySize)
	}
}

func TestConfig_applyDefaultsKeepsValues(t *testing.T) {
	cfg := &Config{
		General:   GeneralConfig{Name: "custom", LogLevel: "debug", LogFormat: "json"},
		TextValue: TextValueConfig{Policy: "permissive"},
		Shell:     ShellConfig{Prompt: "> ", HistorySize: 7},
	}
	cfg.applyDefaults()

	if cfg.General.Name != "custom" || cfg.General.LogLevel != "debug" || cfg.General.LogFormat != "json" {
		t.Errorf("General overwritten: %+v", cfg.General)
	}
	if cfg.TextValue.Policy != "permissive" {
		t.Errorf("TextValue.Policy overwritten: %v", cfg.TextValue.Policy)
	}
	if cfg.Shell.Prompt != "> " || cfg.Shell.HistorySize != 7 {
		t.Errorf("Shell overwritten: %+v", cfg.Shell)
	}
}

func TestLoad_TOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[general]
name = "test"
log_level = "debug"
log_format = "logfmt"

[textvalue]
policy = "permissive"

[shell]
prompt = "tv> "
history_size = 5
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.Name != "test" {
		t.Errorf("General.Name = %v, want test", cfg.General.Name)
	}
	if cfg.LogLevel() != log.LevelDebug {
		t.Errorf("LogLevel() = %v, want debug", cfg.LogLevel())
	}
	if cfg.LogFormat() != log.FormatLogfmt {
		t.Errorf("LogFormat() = %v, want logfmt", cfg.LogFormat())
	}
	if cfg.Policy() != textvalue.PolicyPermissive {
		t.Errorf("Policy() = %v, want permissive", cfg.Policy())
	}
	if cfg.Shell.Prompt != "tv> " || cfg.Shell.HistorySize != 5 {
		t.Errorf("Shell = %+v", cfg.Shell)
	}
	if cfg.Path() != configPath {
		t.Errorf("Path() = %v, want %v", cfg.Path(), configPath)
	}
}

func TestLoad_YAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
general:
  log_level: warn
textvalue:
  policy: permissive
shell:
  history_size: 3
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LogLevel() != log.LevelWarn {
		t.Errorf("LogLevel() = %v, want warn", cfg.LogLevel())
	}
	if cfg.Policy() != textvalue.PolicyPermissive {
		t.Errorf("Policy() = %v, want permissive", cfg.Policy())
	}
	if cfg.Shell.HistorySize != 3 {
		t.Errorf("Shell.HistorySize = %v, want 3", cfg.Shell.HistorySize)
	}
	if cfg.General.Name != "mystring" {
		t.Errorf("General.Name = %v, want default", cfg.General.Name)
	}
}

func TestLoad_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	badSyntax := filepath.Join(tmpDir, "bad.toml")
	if err := os.WriteFile(badSyntax, []byte("[general\nname ="), 0644); err != nil {
		t.Fatal(err)
	}
	badValue := filepath.Join(tmpDir, "value.toml")
	if err := os.WriteFile(badValue, []byte("[textvalue]\npolicy = \"lenient\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		code mdwerror.Code
	}{
		{"missing file", filepath.Join(tmpDir, "nope.toml"), mdwerror.CodeMissingConfig},
		{"empty path", "", mdwerror.CodeMissingConfig},
		{"syntax error", badSyntax, mdwerror.CodeConfigError},
		{"invalid policy", badValue, mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("Load() error code = %v, want %v", mdwerror.GetCode(err), tt.code)
			}
		})
	}
}

func TestLoadFromString(t *testing.T) {
	cfg, err := LoadFromString("textvalue:\n  policy: legacy\n", FormatYAML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	if cfg.Policy() != textvalue.PolicyPermissive {
		t.Errorf("Policy() = %v, want permissive", cfg.Policy())
	}

	if _, err := LoadFromString("[shell]\nhistory_size = 0\n", FormatAuto); err != nil {
		t.Errorf("zero history size should fall back to default, got %v", err)
	}
	if _, err := LoadFromString("[shell]\nhistory_size = -1\n", FormatTOML); !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("negative history size error = %v, want INVALID_CONFIG", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"strict alias", func(c *Config) { c.TextValue.Policy = "Strict" }, false},
		{"bad policy", func(c *Config) { c.TextValue.Policy = "loose" }, true},
		{"bad level", func(c *Config) { c.General.LogLevel = "loud" }, true},
		{"bad format", func(c *Config) { c.General.LogFormat = "xml" }, true},
		{"zero history", func(c *Config) { c.Shell.HistorySize = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "env.toml")
		if err := os.WriteFile(configPath, []byte("[general]\nname = \"from-env\"\n"), 0644); err != nil {
			t.Fatal(err)
		}
		t.Setenv(EnvConfig, configPath)

		cfg, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if cfg.General.Name != "from-env" {
			t.Errorf("General.Name = %v, want from-env", cfg.General.Name)
		}
	})

	t.Run("explicit path missing", func(t *testing.T) {
		t.Setenv(EnvConfig, filepath.Join(t.TempDir(), "missing.toml"))
		if _, err := LoadFromEnv(); !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
			t.Errorf("LoadFromEnv() error = %v, want MISSING_CONFIG", err)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "env.toml")
		if err := os.WriteFile(configPath, []byte("[textvalue]\npolicy = \"defensive\"\n"), 0644); err != nil {
			t.Fatal(err)
		}
		t.Setenv(EnvConfig, configPath)
		t.Setenv(EnvPolicy, "permissive")
		t.Setenv(EnvLogLevel, "error")

		cfg, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if cfg.Policy() != textvalue.PolicyPermissive {
			t.Errorf("Policy() = %v, want permissive", cfg.Policy())
		}
		if cfg.LogLevel() != log.LevelError {
			t.Errorf("LogLevel() = %v, want error", cfg.LogLevel())
		}
	})
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"config.toml", FormatTOML},
		{"config.yaml", FormatYAML},
		{"CONFIG.YML", FormatYAML},
		{"config", FormatTOML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := detectFormat(tt.path); got != tt.expected {
				t.Errorf("detectFormat(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestLoadFromEnvDotEnv(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "dotenv.toml")
	if err := os.WriteFile(configPath, []byte("[general]\nname = \"dotenv\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	dotenv := "MYSTRING_CONFIG=" + configPath + "\nMYSTRING_POLICY=permissive\nMYSTRING_LOG_LEVEL=debug\n"
	if err := os.WriteFile(filepath.Join(dir, DotEnvFile), []byte(dotenv), 0644); err != nil {
		t.Fatal(err)
	}

	// Registers the restore; the variables must be absent for the file to apply.
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvPolicy, "")
	t.Setenv(EnvLogLevel, "error")
	os.Unsetenv(EnvConfig)
	os.Unsetenv(EnvPolicy)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.General.Name != "dotenv" {
		t.Errorf("General.Name = %v, want dotenv", cfg.General.Name)
	}
	if cfg.Policy() != textvalue.PolicyPermissive {
		t.Errorf("Policy() = %v, want permissive", cfg.Policy())
	}
	if cfg.LogLevel() != log.LevelError {
		t.Errorf("env file overrode an existing variable: LogLevel() = %v", cfg.LogLevel())
	}
}
