package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	CookieName = "todo_session"
	DefaultTTL = time.Hour
)

type claims struct {
	Flash
	jwt.RegisteredClaims
}

type Store struct {
	secret []byte
	secure bool
	ttl    time.Duration
	now    func() time.Time
}

func NewStore(secret []byte, secure bool) (*Store, error) {
	if len(secret) == 0 {
		return nil, errors.New("session: secret is required")
	}
	return &Store{
		secret: secret,
		secure: secure,
		ttl:    DefaultTTL,
		now:    time.Now,
	}, nil
}

// Load reads the session cookie. Missing, expired or tampered cookies give
// an empty session; the latter two are marked dirty so Save clears them.
func (s *Store) Load(r *http.Request) *Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return New()
	}

	var c claims
	_, err = jwt.ParseWithClaims(cookie.Value, &c, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return &Session{dirty: true}
	}

	return &Session{flash: c.Flash}
}

// Save writes the session cookie if the session changed. It must run
// before the response header is written.
func (s *Store) Save(w http.ResponseWriter, sess *Session) error {
	if !sess.Dirty() {
		return nil
	}

	if sess.flash.Empty() {
		http.SetCookie(w, s.cookie("", -1))
		return nil
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Flash: sess.flash,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return fmt.Errorf("failed to sign session: %w", err)
	}

	http.SetCookie(w, s.cookie(signed, int(s.ttl.Seconds())))
	return nil
}

func (s *Store) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
