package http

import (
	"net/http"

	"github.com/google/uuid"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID puts a request logger tagged with trace_id into the context and
// echoes the id back. A caller-supplied X-Trace-ID is kept.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		w.Header().Set(traceIDHeader, traceID)

		ctx := h.logger.WithTraceID(traceID).WithContext(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
