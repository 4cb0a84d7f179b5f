package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"honnef.co/go/rings"
)

func TestRunDump(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-dump"}, &stdout, &stderr))
	require.Contains(t, stdout.String(), "ring_count: 40")
	require.Contains(t, stdout.String(), "mode: horizontalJitter")
}

func TestRunDumpNoiseSeed(t *testing.T) {
	var plain, reseeded, stderr bytes.Buffer
	require.NoError(t, run([]string{"-preset", "woodgrain", "-dump"}, &plain, &stderr))
	require.NoError(t, run([]string{"-preset", "woodgrain", "-noise-seed", "3", "-dump"}, &reseeded, &stderr))
	require.NotEqual(t, plain.String(), reseeded.String())

	cfg, err := rings.LoadConfig(&reseeded)
	require.NoError(t, err)
	want, err := rings.Preset("woodgrain")
	require.NoError(t, err)
	require.Equal(t, want.ReseedNoise(3), cfg)
}

func TestRunSVGToStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-preset", "strata", "-seed", "4", "-svg", "-"}, &stdout, &stderr))
	require.Contains(t, stdout.String(), "<svg")
	require.Contains(t, stdout.String(), "<path")
	require.Contains(t, stderr.String(), "50 rings on 1 layers")
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "small.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("ring_count: 5\ninitial_radius: 1\n"), 0o644))
	svgPath := filepath.Join(dir, "out.svg")
	pngPath := filepath.Join(dir, "out.png")

	var stdout, stderr bytes.Buffer
	args := []string{"-config", cfgPath, "-svg", svgPath, "-png", pngPath, "-ppu", "4"}
	require.NoError(t, run(args, &stdout, &stderr))
	require.Empty(t, stdout.String())

	svg, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	require.Equal(t, 5, strings.Count(string(svg), "<path"))

	png, err := os.ReadFile(pngPath)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestRunErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-preset", "nope"}, &stdout, &stderr)
	require.ErrorIs(t, err, rings.ErrUnknownPreset)

	err = run([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &stdout, &stderr)
	require.ErrorIs(t, err, os.ErrNotExist)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("gap_probability: 2\n"), 0o644))
	err = run([]string{"-config", bad}, &stdout, &stderr)
	require.ErrorIs(t, err, rings.ErrInvalidConfig)

	require.Error(t, run([]string{"-bogus"}, &stdout, &stderr))
}
