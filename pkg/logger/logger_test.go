package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GlebRadaev/stockvote/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	tests := []struct {
		lvl       string
		expected  zapcore.Level
		expectErr bool
	}{
		{lvl: "info", expected: zapcore.InfoLevel},
		{lvl: "warn", expected: zapcore.WarnLevel},
		{lvl: "error", expected: zapcore.ErrorLevel},
		{lvl: "debug", expected: zapcore.DebugLevel},
		{lvl: " DEBUG ", expected: zapcore.DebugLevel},
		{lvl: "verbose", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.lvl, func(t *testing.T) {
			err := InitLogger(&config.Config{LogLvl: tt.lvl})
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, zap.L().Core().Enabled(tt.expected))
			if tt.expected > zapcore.DebugLevel {
				assert.False(t, zap.L().Core().Enabled(tt.expected-1))
			}
		})
	}
}

func TestNewConfig_TagsService(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.log")
	cfg := newConfig(zapcore.InfoLevel)
	cfg.Encoding = "json"
	cfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	cfg.OutputPaths = []string{out}

	logger, err := cfg.Build(zap.Fields(zap.String("service", ServiceName)))
	require.NoError(t, err)
	logger.Info("settled")
	logger.Debug("skipped")
	_ = logger.Sync()

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, ServiceName, entry["service"])
	assert.Equal(t, "settled", entry["msg"])
}
