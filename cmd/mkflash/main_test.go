//go:build !tinygo

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drawbot/config"
	"drawbot/hal"
)

func TestParseArgs(t *testing.T) {
	m := map[string]string{"A": "1"}
	require.NoError(t, parseArgs([]string{"A=2", "MESSAGE=a=b", "EMPTY="}, m))
	assert.Equal(t, map[string]string{"A": "2", "MESSAGE": "a=b", "EMPTY": ""}, m)

	assert.Error(t, parseArgs([]string{"nope"}, m))
	assert.Error(t, parseArgs([]string{"=x"}, m))
}

func TestWritesReadableImage(t *testing.T) {
	dir := t.TempDir()
	from := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(from, []byte("MESSAGE: hello\nAP_NAME: Shop\n"), 0o644))

	outPath = filepath.Join(dir, "out.flash")
	fromPath = from
	flashSize = defaultFlashSize
	noDefault = false
	rootCmd.SetArgs([]string{"--out", outPath, "--from", from, "AP_PASS=password1"})
	require.NoError(t, rootCmd.Execute())

	fl, err := hal.OpenFileFlash(outPath, defaultFlashSize)
	require.NoError(t, err)
	store := config.Open(config.FlashBackend{Flash: fl}, nil)

	assert.Equal(t, "Shop", store.Get(config.KeyAPName))
	assert.Equal(t, "password1", store.Get(config.KeyAPPass))
	assert.Equal(t, "hello", store.Get(config.KeyMessage))
}
