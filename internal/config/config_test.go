package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	scbind "github.com/reoring/scbind"
	"github.com/reoring/scbind/internal/config"
	"github.com/reoring/scbind/internal/gen"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "en", cfg.Lang)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "console", cfg.Log.Format)
	require.Equal(t, gen.DefaultHnameImport, cfg.Gen.HnameImport)
	require.Equal(t, scbind.UnknownStrip, cfg.Decode.Opt().Unknown)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scbind.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
lang: ja
log:
  level: debug
  format: json
decode:
  unknown: strict
  fail_fast: true
`), 0o644))
	t.Setenv("SCBIND_LOG_LEVEL", "warn")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "ja", cfg.Lang)
	require.Equal(t, "warn", cfg.Log.Level, "environment overrides the file")
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, scbind.DecodeOpt{Unknown: scbind.UnknownStrict, FailFast: true}, cfg.Decode.Opt())
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("SCBIND_LOG_FORMAT", "xml")
	_, err := config.Load("")
	require.ErrorContains(t, err, "log.format")

	t.Setenv("SCBIND_LOG_FORMAT", "json")
	t.Setenv("SCBIND_DECODE_UNKNOWN", "lenient")
	_, err = config.Load("")
	require.ErrorContains(t, err, "decode.unknown")

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
