package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesToFile(t *testing.T) {
	dir := t.TempDir()
	path := Init(Options{Level: "debug", Dir: dir, ConsoleQuiet: true})
	require.Equal(t, filepath.Join(dir, "kairos.log"), path)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	log.Info().Str("op", "prueba").Msg("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"op":"prueba"`)
}

func TestInitUnknownLevelFallsBackToInfo(t *testing.T) {
	Init(Options{Level: "chatty", Dir: t.TempDir(), ConsoleQuiet: true})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
