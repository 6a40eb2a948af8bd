package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/db47h/pulsesim/internal/logging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_renamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(&buf, slog.LevelInfo)
	l.Info("failed", "error", errors.New("boom"))
	l.Debug("hidden")
	assert.Contains(t, buf.String(), "err=boom")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestParseLevel(t *testing.T) {
	td := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, exp := range td {
		l, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, exp, l, in)
	}
	_, err := logging.ParseLevel("verbose")
	assert.Error(t, err)
}
