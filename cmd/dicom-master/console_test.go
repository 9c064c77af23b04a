package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "0m 0s", formatElapsed(300*time.Millisecond))
	assert.Equal(t, "0m 59s", formatElapsed(59*time.Second))
	assert.Equal(t, "2m 5s", formatElapsed(125*time.Second+900*time.Millisecond))
	assert.Equal(t, "61m 1s", formatElapsed(time.Hour+time.Minute+time.Second))
}

func TestWaitForEnterSkipsNonInteractive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stdin")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var out bytes.Buffer
	waitForEnter(f, &out)
	waitForEnter(nil, &out)
	assert.Empty(t, out.String())
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "data")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Top", "S1", "scan"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Top", "S1", "scan", "meas.dat"), []byte("x"), 0o644))

	excel := filepath.Join(dir, "out", "master.xlsx")
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "root_folder: " + root + "\nexcel_path: " + excel + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	t.Setenv("DICOM_MASTER_ROOT", "")
	t.Setenv("DICOM_MASTER_EXCEL", "")
	t.Setenv("DICOM_MASTER_API_URL", "")

	require.NoError(t, run(cfgPath))
	_, err := os.Stat(excel)
	assert.NoError(t, err)
}

func TestRunMissingRoot(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "root_folder: " + filepath.Join(dir, "missing") + "\nexcel_path: " + filepath.Join(dir, "master.xlsx") + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	t.Setenv("DICOM_MASTER_ROOT", "")
	t.Setenv("DICOM_MASTER_EXCEL", "")
	t.Setenv("DICOM_MASTER_API_URL", "")

	assert.Error(t, run(cfgPath))
	_, err := os.Stat(filepath.Join(dir, "master.xlsx"))
	assert.True(t, os.IsNotExist(err))
}
