package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ",", cfg.Input.Delimiter)
	assert.Equal(t, ',', cfg.Input.DelimiterRune())
	assert.Equal(t, "figures", cfg.Figures.Outdir)
	assert.InDelta(t, 7.0, cfg.Figures.WidthIn, 0.001)
	assert.InDelta(t, 5.0, cfg.Figures.HeightIn, 0.001)
	assert.Equal(t, 150, cfg.Figures.DPI)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
input:
  delimiter: ";"
figures:
  outdir: charts
  dpi: 96
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ';', cfg.Input.DelimiterRune())
	assert.Equal(t, "charts", cfg.Figures.Outdir)
	assert.Equal(t, 96, cfg.Figures.DPI)
	// untouched keys keep defaults
	assert.InDelta(t, 7.0, cfg.Figures.WidthIn, 0.001)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestDelimiterRuneEmptyFallsBack(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ',', InputConfig{}.DelimiterRune())
	assert.Equal(t, '\t', InputConfig{Delimiter: "\t"}.DelimiterRune())
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LogConfig
		wantErr bool
	}{
		{"console", LogConfig{Level: "debug", Format: "console"}, false},
		{"json", LogConfig{Level: "info", Format: "json"}, false},
		{"bad level", LogConfig{Level: "loud", Format: "console"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, zap.L())
		})
	}
}
