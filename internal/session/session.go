// Package session carries one-shot flash messages across redirects.
//
// Flash state lives in a cookie signed as an HS256 JWT. Handlers reach the
// current request's Session through FromContext; the first render that
// calls Pop consumes the messages.
package session

import "context"

// Flash holds the user-facing status messages of a request.
type Flash struct {
	Error   string `json:"error,omitempty"`
	Success string `json:"success,omitempty"`
}

func (f Flash) Empty() bool {
	return f.Error == "" && f.Success == ""
}

type Session struct {
	flash Flash
	dirty bool
}

func New() *Session {
	return &Session{}
}

func (s *Session) SetError(msg string) {
	s.flash.Error = msg
	s.dirty = true
}

func (s *Session) SetSuccess(msg string) {
	s.flash.Success = msg
	s.dirty = true
}

// Pop returns the pending messages and clears them.
func (s *Session) Pop() Flash {
	f := s.flash
	if !f.Empty() {
		s.flash = Flash{}
		s.dirty = true
	}
	return f
}

// Peek returns the pending messages without clearing them.
func (s *Session) Peek() Flash {
	return s.flash
}

// Dirty reports whether the session changed since it was loaded.
func (s *Session) Dirty() bool {
	return s.dirty
}

type contextKey struct{}

func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the request's session. Without one a fresh detached
// session is returned, so writes to it are dropped.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(contextKey{}).(*Session); ok {
		return s
	}
	return New()
}
