package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/cg-tech-git/pmo-v2/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewStdoutAuditLogger(zap.New(core))
	l.now = func() time.Time { return time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC) }

	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	ctx = contextutil.WithUserEmail(ctx, "jane@allaith.com")

	l.Log(ctx, AuditLog{Action: "SERVER_SHUTDOWN", Message: "bye", Meta: map[string]any{"signal": "terminated"}})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "audit", entry.LoggerName)
	fields := entry.ContextMap()
	assert.Equal(t, "2025-02-01T08:00:00Z", fields["timestamp"])
	assert.Equal(t, "SERVER_SHUTDOWN", fields["action"])
	assert.Equal(t, "rid-1", fields["request_id"])
	assert.Equal(t, "jane@allaith.com", fields["user_email"])
}
