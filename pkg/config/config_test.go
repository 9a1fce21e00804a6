package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetForTest() {
	initialized = false
	Settings = conf{}
	Settings.Search.MaxDepth = 4
	Settings.Search.IterativeDeepening = true
	Settings.Search.Seed = 1
	Settings.Eval.NoiseLimit = 10
	Settings.Eval.Seed = 1
}

func TestSetupWithNoPathKeepsDefaults(t *testing.T) {
	resetForTest()
	Setup("")
	assert.Equal(t, 4, Settings.Search.MaxDepth)
	assert.True(t, Settings.Search.IterativeDeepening)
	assert.Equal(t, 10, Settings.Eval.NoiseLimit)
}

func TestSetupOverlaysFromFile(t *testing.T) {
	resetForTest()

	dir := t.TempDir()
	path := filepath.Join(dir, "negamax.toml")
	body := `
[Search]
MaxDepth = 6
IterativeDeepening = false

[Eval]
NoiseLimit = 0
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	Setup(path)
	assert.Equal(t, 6, Settings.Search.MaxDepth)
	assert.False(t, Settings.Search.IterativeDeepening)
	assert.Equal(t, 0, Settings.Eval.NoiseLimit)
}

func TestSetupIsIdempotent(t *testing.T) {
	resetForTest()

	Setup("")
	Settings.Search.MaxDepth = 99 // simulate a caller having since overridden it

	Setup("/does/not/matter")
	assert.Equal(t, 99, Settings.Search.MaxDepth, "a second Setup call must not re-apply defaults or a file")
}

func TestSetupMissingFileFallsBackToDefaults(t *testing.T) {
	resetForTest()
	Setup("/no/such/file.toml")
	assert.Equal(t, 4, Settings.Search.MaxDepth)
}
