// Package token issues and verifies the signed session tokens that carry
// tenant identity across stateless requests. The organization ID travels
// inside the signed payload, so no storage lookup happens per request;
// the trade-off is that tokens stay valid until natural expiry even if
// the user or organization is deactivated in the meantime.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned when the signature fails, required
	// claims are absent, or the encoding is malformed
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired is returned when the token's expiry has passed
	ErrTokenExpired = errors.New("token expired")
)

// DefaultTTL is the token lifetime used when none is configured
const DefaultTTL = 24 * time.Hour

// Claims is the authenticated pair embedded in a verified token.
// Callers must not trust any other field from the token.
type Claims struct {
	UserID string
	OrgID  string
}

// Config holds token issuer settings
type Config struct {
	// Secret is the process-wide HMAC signing key
	Secret string
	// TTL is the absolute token lifetime (default: 24h)
	TTL time.Duration
	// Issuer is the optional iss claim value
	Issuer string
}

// Issuer signs and verifies HS256 session tokens
type Issuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewIssuer creates a new Issuer from the given configuration
func NewIssuer(cfg *Config) *Issuer {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		issuer: cfg.Issuer,
		now:    time.Now,
	}
}

// Issue creates a signed token embedding the user and organization IDs
// with an absolute expiry of now + TTL
func (i *Issuer) Issue(userID, orgID string) (string, error) {
	now := i.now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"org_id":  orgID,
		"iat":     now.Unix(),
		"exp":     now.Add(i.ttl).Unix(),
	}
	if i.issuer != "" {
		claims["iss"] = i.issuer
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify validates the token's signature and expiry and returns the
// embedded user/organization pair. It returns ErrTokenExpired for
// expired tokens and ErrInvalidToken for everything else that fails.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)

	token, err := parser.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := mapClaims["user_id"].(string)
	if !ok || userID == "" {
		return nil, ErrInvalidToken
	}
	orgID, ok := mapClaims["org_id"].(string)
	if !ok || orgID == "" {
		return nil, ErrInvalidToken
	}

	return &Claims{UserID: userID, OrgID: orgID}, nil
}
