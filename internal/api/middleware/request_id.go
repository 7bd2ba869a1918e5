package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type contextKey string

const (
	// RequestIDHeader is the HTTP header for request tracing.
	RequestIDHeader = "X-Request-ID"

	// ActorHeader identifies the acting user for audit trails. The
	// platform sits behind an authenticating gateway, so the header is
	// trusted as-is here.
	ActorHeader = "X-Actor"

	ctxKeyRequestID contextKey = "request_id"
	ctxKeyActor     contextKey = "actor"
)

// RequestID injects a unique request ID into the context and response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			id, _ := uuid.NewV7()
			rid = id.String()
		}
		c.Set(string(ctxKeyRequestID), rid)
		c.Writer.Header().Set(RequestIDHeader, rid)

		ctx := context.WithValue(c.Request.Context(), ctxKeyRequestID, rid)
		if actor := c.GetHeader(ActorHeader); actor != "" {
			ctx = context.WithValue(ctx, ctxKeyActor, actor)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetRequestID extracts the request ID from context.
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		return v
	}
	return ""
}

// GetActor extracts the acting user from context, defaulting to
// "anonymous".
func GetActor(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyActor).(string); ok && v != "" {
		return v
	}
	return "anonymous"
}
