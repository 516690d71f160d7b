package identity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("invalid or expired token")
	ErrInvalidHeader = errors.New("invalid authorization header format")
)

// Claims is the token payload: the subject is the user id.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Provider verifies HS256 bearer tokens and turns them into viewers.
type Provider struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewProvider(secret string, ttl time.Duration) *Provider {
	return &Provider{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue mints a token for the user.
func (p *Provider) Issue(v Viewer) (string, error) {
	if v.IsAnonymous() {
		return "", errors.New("cannot issue a token for the anonymous viewer")
	}

	now := p.now()
	claims := Claims{
		Username: v.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  strconv.Itoa(v.UserID),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if p.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(p.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

// Verify parses a raw token.
func (p *Provider) Verify(raw string) (Viewer, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	}, jwt.WithTimeFunc(p.now))
	if err != nil || !token.Valid {
		return Anonymous, ErrInvalidToken
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil || userID <= 0 {
		return Anonymous, ErrInvalidToken
	}

	return Viewer{UserID: userID, Username: claims.Username}, nil
}

// FromHeader resolves an Authorization header value. An empty header is the anonymous
// viewer, not an error.
func (p *Provider) FromHeader(header string) (Viewer, error) {
	if header == "" {
		return Anonymous, nil
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return Anonymous, ErrInvalidHeader
	}

	return p.Verify(parts[1])
}
