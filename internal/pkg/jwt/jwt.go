package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	// GenerateToken signs a token whose subject is the user id.
	GenerateToken(userID int64) (token string, expiresAt int64, err error)
	// ParseSubject returns the user id carried by a verified token.
	ParseSubject(token jwt.Token) (int64, error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	expiration time.Duration
	tokenAuth  *jwtauth.JWTAuth
	now        func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, expiration time.Duration) Service {
	return &JWTService{
		expiration: expiration,
		tokenAuth:  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:        time.Now,
	}
}

func (j *JWTService) GenerateToken(userID int64) (token string, expiresAt int64, err error) {
	issuedAt := j.now()
	expiresAt = issuedAt.Add(j.expiration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		jwt.SubjectKey:    strconv.FormatInt(userID, 10),
		jwt.IssuedAtKey:   issuedAt.Unix(),
		jwt.ExpirationKey: expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) ParseSubject(token jwt.Token) (int64, error) {
	if token == nil {
		return 0, jwt.ErrInvalidJWT()
	}
	id, err := strconv.ParseInt(token.Subject(), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid subject %q: %w", token.Subject(), jwt.ErrInvalidJWT())
	}
	return id, nil
}
