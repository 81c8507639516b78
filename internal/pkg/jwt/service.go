package jwt

import (
	"errors"
	"strings"
	"time"

	"talentx/internal/domain/user"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
	ErrInvalidRole  = errors.New("invalid user role")
)

// Claims carries the subject id in "sub" and the caller role in "role".
type Claims struct {
	Role user.Role `json:"role"`

	jwtlib.RegisteredClaims
}

type Service interface {
	Issue(identity user.Identity) (string, error)
	Verify(tokenString string) (user.Identity, error)
}

type HMACService struct {
	secret    []byte
	issuer    string
	expiresIn time.Duration

	now func() time.Time
}

func NewHMACService(secret, issuer string, expiresIn time.Duration) *HMACService {
	return &HMACService{
		secret:    []byte(secret),
		issuer:    issuer,
		expiresIn: expiresIn,
		now:       time.Now,
	}
}

func (s *HMACService) Issue(identity user.Identity) (string, error) {
	if len(s.secret) == 0 || s.expiresIn <= 0 || identity.ID == uuid.Nil {
		return "", ErrTokenInvalid
	}
	if !identity.Role.Valid() {
		return "", ErrInvalidRole
	}

	now := s.now().UTC()
	c := Claims{
		Role: identity.Role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   identity.ID.String(),
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.expiresIn)),
		},
	}

	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c)
	return t.SignedString(s.secret)
}

// Verify accepts any HS256 token signed with the secret whose subject is a UUID
// and whose role is known. The issuer is not checked so tokens minted by other
// tools sharing the secret keep working.
func (s *HMACService) Verify(tokenString string) (user.Identity, error) {
	if len(s.secret) == 0 {
		return user.Identity{}, ErrTokenInvalid
	}

	p := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(s.now),
	)

	var c Claims
	tok, err := p.ParseWithClaims(strings.TrimSpace(tokenString), &c, func(*jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return user.Identity{}, ErrTokenExpired
		}
		return user.Identity{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return user.Identity{}, ErrTokenInvalid
	}

	id, err := uuid.Parse(c.Subject)
	if err != nil || id == uuid.Nil {
		return user.Identity{}, ErrTokenInvalid
	}
	if !c.Role.Valid() {
		return user.Identity{}, ErrInvalidRole
	}

	return user.Identity{ID: id, Role: c.Role}, nil
}
