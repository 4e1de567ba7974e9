package httpserver

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/samabhi804-sketch/hangman/internal/game"
	"github.com/samabhi804-sketch/hangman/internal/store"
)

const (
	sessionCookieName = "hangman_session"
	sessionHeader     = "X-Session-Token"
)

// ctxSessionKey is the context key type for storing *store.Session.
type ctxSessionKey struct{}

// sessionFrom returns the session placed by withSession.
func sessionFrom(ctx context.Context) *store.Session {
	sess, _ := ctx.Value(ctxSessionKey{}).(*store.Session)
	return sess
}

// withSession resolves the caller's session from a signed token, creating a
// fresh session (and engine) when the token is missing, invalid, or stale.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := s.lookupSession(r)
		if sess == nil {
			var err error
			sess, err = s.newSession(w, r)
			if err != nil {
				log.Error().Err(err).Msg("create session")
				writeError(w, http.StatusInternalServerError, "session_failed")
				return
			}
		}
		ctx := context.WithValue(r.Context(), ctxSessionKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) lookupSession(r *http.Request) *store.Session {
	tok := bearerOrCookie(r)
	if tok == "" {
		return nil
	}
	id, err := s.parseToken(tok)
	if err != nil {
		log.Debug().Err(err).Msg("reject session token")
		return nil
	}
	sess, err := s.store.Get(r.Context(), id)
	if err != nil {
		return nil
	}
	return sess
}

func (s *Server) newSession(w http.ResponseWriter, r *http.Request) (*store.Session, error) {
	var opts []game.Option
	if s.opts.Picker != nil {
		opts = append(opts, game.WithPicker(s.opts.Picker))
	}
	e, err := game.NewEngine(s.words.Bank(), s.words.Stages(), opts...)
	if err != nil {
		return nil, err
	}
	sess := store.NewSession(genID(), e)
	if err := s.store.Save(r.Context(), sess); err != nil {
		return nil, err
	}
	tok, exp, err := s.signToken(sess.ID)
	if err != nil {
		return nil, err
	}
	s.setSessionCookie(w, tok, exp)
	w.Header().Set(sessionHeader, tok)
	log.Info().Str("session", sess.ID).Msg("session created")
	return sess, nil
}

// signToken creates an HS256 JWT carrying the session ID.
func (s *Server) signToken(sid string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.opts.SessionTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sid,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	})
	ss, err := t.SignedString([]byte(s.opts.SessionSecret))
	return ss, exp, err
}

// parseToken verifies a session JWT and returns its session ID.
func (s *Server) parseToken(tok string) (string, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.opts.SessionSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !t.Valid {
		return "", errors.New("invalid token")
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", errors.New("token without sid")
	}
	return sid, nil
}

// setSessionCookie writes the session cookie with appropriate security attributes.
func (s *Server) setSessionCookie(w http.ResponseWriter, token string, exp time.Time) {
	sameSite := http.SameSiteLaxMode
	if s.opts.CookieSecure {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.CookieSecure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a bearer token from Authorization header or session cookie.
func bearerOrCookie(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(sessionCookieName); err == nil {
		return c.Value
	}
	return ""
}

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
