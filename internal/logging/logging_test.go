package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		mode      string
		verbose   bool
		wantLevel zapcore.Level
		wantErr   bool
	}{
		{name: "default is production", mode: "", wantLevel: zapcore.InfoLevel},
		{name: "production", mode: "production", wantLevel: zapcore.InfoLevel},
		{name: "development", mode: "Development", wantLevel: zapcore.InfoLevel},
		{name: "verbose", mode: "production", verbose: true, wantLevel: zapcore.DebugLevel},
		{name: "unknown", mode: "chatty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.mode, tt.verbose)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.wantLevel))
			assert.False(t, logger.Core().Enabled(tt.wantLevel-1))
		})
	}
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
}
