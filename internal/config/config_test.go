package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ".", cfg.Directory)
	assert.True(t, cfg.ShowReport)
	assert.Equal(t, ColorAuto, cfg.ColorMode)
	assert.False(t, cfg.SkipUnknown)
	assert.False(t, cfg.DryRun)
	assert.NotNil(t, cfg.Extensions)
}

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/data/etl", "/data/etl"},
		{"single trailing slash", "/data/etl/", "/data/etl"},
		{"multiple trailing slashes", "/data/etl///", "/data/etl"},
		{"root path", "/", "/"},
		{"relative path", "etl", "etl"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDirArg(tt.in))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(c *Config) {}, ""},
		{"always color", func(c *Config) { c.ColorMode = ColorAlways }, ""},
		{"bad color mode", func(c *Config) { c.ColorMode = "rainbow" }, "invalid color mode"},
		{"empty directory", func(c *Config) { c.Directory = "" }, "directory must not be empty"},
		{"ext key without dot", func(c *Config) { c.Extensions["py"] = []string{"python"} }, "invalid extension key"},
		{"ext key only dot", func(c *Config) { c.Extensions["."] = []string{"python"} }, "invalid extension key"},
		{"ext empty command", func(c *Config) { c.Extensions[".py"] = nil }, "empty command"},
		{"valid custom ext", func(c *Config) { c.Extensions[".xyz"] = []string{"mytool", "-f"} }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseFlags(t *testing.T) {
	cfg := DefaultConfig()
	_, err := ParseFlags(&cfg, "test", []string{
		"--directory", "/data/etl/",
		"--ext", ".xyz=mytool -f",
		"--ext", ".py=python3",
		"--skip-unknown",
		"--dry-run",
		"--no-report",
		"--color", "never",
	})
	require.NoError(t, err)

	assert.Equal(t, "/data/etl", cfg.Directory, "trailing slash stripped")
	assert.Equal(t, []string{"mytool", "-f"}, cfg.Extensions[".xyz"])
	assert.Equal(t, []string{"python3"}, cfg.Extensions[".py"])
	assert.True(t, cfg.SkipUnknown)
	assert.True(t, cfg.DryRun)
	assert.False(t, cfg.ShowReport)
	assert.Equal(t, ColorNever, cfg.ColorMode)
}

func TestParseFlags_ShortFlags(t *testing.T) {
	cfg := DefaultConfig()
	_, err := ParseFlags(&cfg, "test", []string{"-d", "steps", "-n", "-v"})
	require.NoError(t, err)
	assert.Equal(t, "steps", cfg.Directory)
	assert.True(t, cfg.DryRun)
	assert.True(t, cfg.Verbose)
}

func TestParseFlags_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	fs, err := ParseFlags(&cfg, "test", nil)
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Directory)
	assert.True(t, cfg.ShowReport)
	assert.False(t, fs.Changed("directory"))
}

func TestParseFlags_RejectsPositionalArgs(t *testing.T) {
	cfg := DefaultConfig()
	_, err := ParseFlags(&cfg, "test", []string{"somedir"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected argument")
}

func TestParseExtFlag(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		ext     string
		argv    []string
		wantErr bool
	}{
		{"simple", ".py=python3", ".py", []string{"python3"}, false},
		{"with args", ".hql=hive -f", ".hql", []string{"hive", "-f"}, false},
		{"extra spaces", ".sh= bash ", ".sh", []string{"bash"}, false},
		{"missing equals", ".py python", "", nil, true},
		{"missing dot", "py=python", "", nil, true},
		{"bare dot", ".=python", "", nil, true},
		{"empty command", ".py=", "", nil, true},
		{"blank command", ".py=   ", "", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, argv, err := parseExtFlag(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ext, ext)
			assert.Equal(t, tt.argv, argv)
		})
	}
}
