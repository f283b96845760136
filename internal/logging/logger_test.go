// SPDX-License-Identifier: MIT

package logging_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvstats/internal/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"WARN":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := logging.ParseLevel("loud")
	require.Error(t, err)
}

func TestNewRejectsBadLevel(t *testing.T) {
	t.Parallel()

	_, err := logging.New(logging.Config{Level: "loud"})
	require.Error(t, err)
}

func TestNewWritesJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "log.json")
	l, err := logging.New(logging.Config{Level: "info", OutputPaths: []string{path}})
	require.NoError(t, err)

	l.Debug("dropped")
	l.Info("evaluated", zap.String("fn", "qt"), zap.Int("n", 4))
	require.NoError(t, l.Sync())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "info", rec["level"])
	assert.Equal(t, "lvstats", rec["logger"])
	assert.Equal(t, "evaluated", rec["message"])
	assert.Equal(t, "qt", rec["fn"])
	assert.EqualValues(t, 4, rec["n"])
}

func TestDefaultsAndNop(t *testing.T) {
	t.Parallel()

	cfg := logging.DefaultConfig()
	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, []string{"stderr"}, cfg.OutputPaths)
	require.NotNil(t, logging.NewDefault())

	nop := logging.NewNop()
	nop.Error("nothing happens")
	require.NotNil(t, logging.FromZap(nil).Logger)
}

func TestFromZap(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	l := logging.FromZap(zap.New(core))
	l.Info("batch job", zap.String("name", "tails"))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "tails", logs.All()[0].ContextMap()["name"])
}
