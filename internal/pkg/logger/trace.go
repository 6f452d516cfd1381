package logger

import (
	"context"
	log "log/slog"
)

const (
	// TraceIDKey Context 与 gin.Context 中 trace id 的 key
	TraceIDKey = "trace_id"
	// UserIDKey 鉴权通过后写入的当前用户 id
	UserIDKey = "user_id"
)

// ContextHandler 从 ctx 中取出 trace_id 和 user_id 附加到日志
type ContextHandler struct {
	log.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if ctx != nil {
		if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
			r.AddAttrs(log.String(TraceIDKey, traceID))
		}
		if userID, ok := ctx.Value(UserIDKey).(uint64); ok {
			r.AddAttrs(log.Uint64(UserIDKey, userID))
		}
	}
	return h.Handler.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []log.Attr) log.Handler {
	return &ContextHandler{h.Handler.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) log.Handler {
	return &ContextHandler{h.Handler.WithGroup(name)}
}
