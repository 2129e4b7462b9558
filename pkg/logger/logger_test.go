package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/clubledger/internal/config"
	"github.com/GlebRadaev/clubledger/pkg/auth"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name           string
		config         *config.Config
		expectedError  bool
		expectedLogLvl zapcore.Level
	}{
		{
			name:           "Console info",
			config:         &config.Config{LogLvl: "info", LogFormat: "console"},
			expectedLogLvl: zapcore.InfoLevel,
		},
		{
			name:           "JSON error",
			config:         &config.Config{LogLvl: "error", LogFormat: "json"},
			expectedLogLvl: zapcore.ErrorLevel,
		},
		{
			name:           "Empty format falls back to console",
			config:         &config.Config{LogLvl: "debug"},
			expectedLogLvl: zapcore.DebugLevel,
		},
		{
			name:          "Invalid log level",
			config:        &config.Config{LogLvl: "invalid", LogFormat: "console"},
			expectedError: true,
		},
		{
			name:          "Invalid log format",
			config:        &config.Config{LogLvl: "info", LogFormat: "xml"},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(tt.config)

			if tt.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, zap.L().Core().Enabled(tt.expectedLogLvl))
			assert.False(t, zap.L().Core().Enabled(tt.expectedLogLvl-1))
		})
	}
}

func TestNewTagsService(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger, err := New(&config.Config{LogLvl: "info", LogFormat: "json"},
		zap.WrapCore(func(zapcore.Core) zapcore.Core { return core }))
	require.NoError(t, err)

	logger.Info("payment applied")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "clubledger", logs.All()[0].ContextMap()["service"])
}

func TestFromRequest(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	r := httptest.NewRequest("PATCH", "/api/billing/payments/7/apply", nil)
	ctx := context.WithValue(r.Context(), middleware.RequestIDKey, "host/000001")
	ctx = context.WithValue(ctx, auth.OperatorIDKey, 3)
	FromRequest(r.WithContext(ctx)).Info("request failed")

	FromRequest(httptest.NewRequest("GET", "/api/orders/summary", nil)).Info("anonymous")

	require.Equal(t, 2, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "host/000001", fields["request_id"])
	assert.Equal(t, int64(3), fields["operator_id"])
	assert.Equal(t, "/api/billing/payments/7/apply", fields["path"])

	anonymous := logs.All()[1].ContextMap()
	assert.NotContains(t, anonymous, "request_id")
	assert.NotContains(t, anonymous, "operator_id")
}
