package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"intrack/internal/logging"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLog(t *testing.T) {
	buff := bytes.NewBuffer([]byte{})
	templogger, err := logging.New().FromBuffer(buff).Make()
	require.NoError(t, err)
	require.NotNil(t, templogger)
	require.Equal(t, 0, buff.Len())

	templogger.Logger.Info().Msg("Test")
	require.Contains(t, buff.String(), `"message":"Test"`)

	templogger.Logger.Debug().Msg("hidden")
	require.NotContains(t, buff.String(), "hidden")
	require.NoError(t, templogger.Close())
}

func TestLogLevel(t *testing.T) {
	buff := bytes.NewBuffer([]byte{})
	templogger, err := logging.New().FromBuffer(buff).WithLevel(zerolog.DebugLevel).Make()
	require.NoError(t, err)
	templogger.Logger.Debug().Msg("shown")
	require.Contains(t, buff.String(), "shown")
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "intrack.log")
	templogger, err := logging.New().FromPath(path).Make()
	require.NoError(t, err)
	templogger.Logger.Info().Str("k", "v").Msg("to file")
	require.NoError(t, templogger.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"k":"v"`)
}

func TestLogDiscard(t *testing.T) {
	templogger, err := logging.New().Make()
	require.NoError(t, err)
	templogger.Logger.Info().Msg("nowhere")
	require.Nil(t, templogger.LogFile)
}
