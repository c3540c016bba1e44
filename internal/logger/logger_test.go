package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		debugOn bool
	}{
		{name: "defaults", cfg: Config{}},
		{name: "debug console", cfg: Config{Level: "DEBUG", Encoding: "console"}, debugOn: true},
		{name: "invalid level falls back to info", cfg: Config{Level: "loud", Encoding: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, log)
			assert.Equal(t, tt.debugOn, log.Core().Enabled(zap.DebugLevel))
			assert.True(t, log.Core().Enabled(zap.InfoLevel))
		})
	}
}
