package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesLiteralConstants(t *testing.T) {
	def := Default()
	require.Equal(t, 0.30, def.Camera.DeadZoneRatioNear)
	require.Equal(t, 0.18, def.Camera.DeadZoneRatioFar)
	require.Equal(t, 120.0, def.Camera.TensionPerRate)
	require.Equal(t, 25.0, def.Camera.FrictionPerRate)
	require.Equal(t, 400.0, def.Camera.ClusterMinHoldMs)

	require.Equal(t, 0.9, def.Cursor.JitterRadiusMin)
	require.Equal(t, 2.5, def.Cursor.JitterRadiusMax)
	require.Equal(t, 512, def.Cursor.CacheSize)

	require.Equal(t, 800.0, def.Keystroke.FlushIdleMs)
	require.Equal(t, 2500.0, def.Keystroke.VisibleMs)

	require.Equal(t, 200.0, def.Effects.FadeInMs)
	require.Equal(t, 200.0, def.Effects.FadeOutMs)

	require.Equal(t, 1920, def.Output.Width)
	require.Equal(t, 30, def.Output.FPS)
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadMergesConfigFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := "camera:\n  dead_zone_ratio_near: 0.5\noutput:\n  fps: 60\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 0.5, cfg.Camera.DeadZoneRatioNear)
	require.Equal(t, 60, cfg.Output.FPS)
	// Unrelated fields keep their defaults.
	require.Equal(t, 0.18, cfg.Camera.DeadZoneRatioFar)
	require.Equal(t, 800.0, cfg.Keystroke.FlushIdleMs)
}

func TestLoadEnvOverridesDefault(t *testing.T) {
	t.Setenv("COMPOSITOR_OUTPUT_FPS", "24")
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 24, cfg.Output.FPS)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	require.Error(t, err)
}

func TestStructToMapUsesMapstructureTags(t *testing.T) {
	m := structToMap(Effects{FadeInMs: 1, FadeOutMs: 2})
	require.Equal(t, 1.0, m["fade_in_ms"])
	require.Equal(t, 2.0, m["fade_out_ms"])
}
