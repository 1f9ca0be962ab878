package middleware

import (
	"log/slog"
	"net/http"

	"github.com/jaekwang-park/todo-lists/internal/session"
)

// sessionWriter persists the session cookie right before the response
// header goes out.
type sessionWriter struct {
	http.ResponseWriter
	store     *session.Store
	sess      *session.Session
	logger    *slog.Logger
	committed bool
}

func (sw *sessionWriter) commit() {
	if sw.committed {
		return
	}
	sw.committed = true
	if err := sw.store.Save(sw.ResponseWriter, sw.sess); err != nil {
		sw.logger.Error("failed to save session", "error", err)
	}
}

func (sw *sessionWriter) WriteHeader(code int) {
	sw.commit()
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *sessionWriter) Write(b []byte) (int, error) {
	sw.commit()
	return sw.ResponseWriter.Write(b)
}

func (sw *sessionWriter) Unwrap() http.ResponseWriter {
	return sw.ResponseWriter
}

// Session loads the flash session for each request and exposes it through
// session.FromContext.
func Session(store *session.Store, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := store.Load(r)
			sw := &sessionWriter{ResponseWriter: w, store: store, sess: sess, logger: logger}

			next.ServeHTTP(sw, r.WithContext(session.NewContext(r.Context(), sess)))

			sw.commit()
		})
	}
}
