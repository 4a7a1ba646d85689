package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestIdentity is a mutable holder the logger places in the context before
// the rest of the chain runs. Authenticate fills it in once the token is
// validated, so the log line written after the chain returns can carry the
// authenticated identity even though the logger never sees the derived
// request.
type requestIdentity struct {
	userID string
	role   string
	set    bool
}

const identityKey contextKey = "request_identity"

func contextWithIdentity(ctx context.Context, identity *requestIdentity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func identityFromContext(ctx context.Context) (*requestIdentity, bool) {
	identity, ok := ctx.Value(identityKey).(*requestIdentity)
	return identity, ok
}

// RequestLoggerMiddleware emits one structured log line per request.
type RequestLoggerMiddleware struct {
	log *logrus.Logger
}

func NewRequestLoggerMiddleware(log *logrus.Logger) *RequestLoggerMiddleware {
	return &RequestLoggerMiddleware{log: log}
}

func (m *RequestLoggerMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		identity := &requestIdentity{}

		ctx := contextWithIdentity(r.Context(), identity)
		next.ServeHTTP(recorder, r.WithContext(ctx))

		fields := logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   recorder.status,
			"duration": time.Since(start).String(),
		}
		if identity.set {
			fields["user_id"] = identity.userID
			fields["role"] = identity.role
		}

		m.log.WithFields(fields).Info("request completed")
	})
}
