package logger_test

import (
	"context"
	"fanvote/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name    string
		opts    logger.Options
		debug   bool
		wantErr bool
	}{
		{name: "development", opts: logger.Options{Environment: logger.DevelopmentEnvironment}, debug: true},
		{name: "production", opts: logger.Options{Environment: logger.ProductionEnvironment}},
		{name: "level override", opts: logger.Options{Environment: logger.ProductionEnvironment, Level: "debug"}, debug: true},
		{name: "bad level", opts: logger.Options{Level: "chatty"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := logger.Setup(tt.opts)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.debug, logger.IsDebug(context.Background()))
		})
	}
}

func TestContextLogger(t *testing.T) {
	require.NoError(t, logger.Setup(logger.Options{Environment: logger.DevelopmentEnvironment}))

	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	ctx = logger.WithFields(ctx, zap.String("organizationID", "org-1"))

	logger.Debug(ctx, "hidden")
	logger.Info(ctx, "vote cast", zap.Int64("votes", 3))
	logger.Warn(ctx, "conflict")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "vote cast", entries[0].Message)
	require.Equal(t, map[string]any{"organizationID": "org-1", "votes": int64(3)}, entries[0].ContextMap())
	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
	require.False(t, logger.IsDebug(ctx))
}

func TestGetFallsBackToDefault(t *testing.T) {
	require.NotNil(t, logger.Get(context.Background()))
}

func TestSlogBridge(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Slog(ctx).Info("from river", "queue", "default")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "from river", entries[0].Message)
	require.Equal(t, "default", entries[0].ContextMap()["queue"])
}
