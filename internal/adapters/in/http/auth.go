package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/principal"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

var (
	ErrMissingToken = errors.New("missing or invalid Authorization header")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims are issued by the auth service. The subject is the principal id.
type Claims struct {
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	IsStaff bool   `json:"is_staff"`
	jwt.RegisteredClaims
}

// PrincipalStore mirrors authenticated principals so that the notifier can
// resolve them by id and email later on.
type PrincipalStore interface {
	Save(ctx context.Context, p principal.Principal) error
}

// MirrorTTL is how long a saved principal is trusted before the middleware
// saves it again. Changed claims are saved right away.
const MirrorTTL = 5 * time.Minute

// TokenAuthenticator verifies HS256 bearer tokens.
type TokenAuthenticator struct {
	secret []byte
	store  PrincipalStore
	now    func() time.Time

	mu       sync.Mutex
	mirrored map[string]mirroredPrincipal
}

type mirroredPrincipal struct {
	principal principal.Principal
	savedAt   time.Time
}

// NewTokenAuthenticator creates an authenticator. store may be nil.
func NewTokenAuthenticator(secret string, store PrincipalStore) *TokenAuthenticator {
	return &TokenAuthenticator{
		secret:   []byte(secret),
		store:    store,
		now:      time.Now,
		mirrored: make(map[string]mirroredPrincipal),
	}
}

// Issue signs a token for p. Used by tests and local tooling; production tokens
// come from the auth service.
func (a *TokenAuthenticator) Issue(p principal.Principal, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:   p.Email(),
		Name:    p.Name(),
		IsStaff: p.IsStaff(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Parse validates the token and returns its principal.
func (a *TokenAuthenticator) Parse(token string) (principal.Principal, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return principal.Principal{}, ErrInvalidToken
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return principal.Principal{}, ErrInvalidToken
	}
	return principal.NewPrincipal(id, claims.Email, claims.Name, claims.IsStaff)
}

// Middleware rejects requests without a valid bearer token and stores the
// principal in the echo context.
func (a *TokenAuthenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				return c.JSON(http.StatusUnauthorized, errorBody(http.StatusUnauthorized, ErrMissingToken.Error()))
			}

			p, err := a.Parse(strings.TrimSpace(token))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorBody(http.StatusUnauthorized, ErrInvalidToken.Error()))
			}

			if err = a.mirror(c.Request().Context(), p); err != nil {
				return err
			}

			c.Set(principalKey, p)
			return next(c)
		}
	}
}

// mirror saves p unless the same claims were saved within MirrorTTL.
func (a *TokenAuthenticator) mirror(ctx context.Context, p principal.Principal) error {
	if a.store == nil {
		return nil
	}

	key := p.ID().String()
	now := a.now()

	a.mu.Lock()
	last, ok := a.mirrored[key]
	a.mu.Unlock()
	if ok && sameClaims(last.principal, p) && now.Sub(last.savedAt) < MirrorTTL {
		return nil
	}

	if err := a.store.Save(ctx, p); err != nil {
		return err
	}

	a.mu.Lock()
	for id, m := range a.mirrored {
		if now.Sub(m.savedAt) >= MirrorTTL {
			delete(a.mirrored, id)
		}
	}
	a.mirrored[key] = mirroredPrincipal{principal: p, savedAt: now}
	a.mu.Unlock()
	return nil
}

func sameClaims(a, b principal.Principal) bool {
	return a.Email() == b.Email() && a.Name() == b.Name() && a.IsStaff() == b.IsStaff()
}

func currentPrincipal(c echo.Context) (principal.Principal, bool) {
	p, ok := c.Get(principalKey).(principal.Principal)
	return p, ok
}
