package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger records process lifecycle events. Implementations must not block.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
