package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const FormTokenField = "token"

var ErrFormToken = errors.New("invalid form token")

// FormClaims bind a form to one post and one browser.
type FormClaims struct {
	PostID string `json:"pid"`
	jwt.RegisteredClaims
}

type FormTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewFormTokens(secret string, ttl time.Duration) *FormTokens {
	return &FormTokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (f *FormTokens) Issue(browserID, postID string) (string, error) {
	now := f.now()
	claims := FormClaims{
		PostID: postID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   browserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(f.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(f.secret)
}

func (f *FormTokens) Verify(tokenStr, browserID, postID string) error {
	var claims FormClaims
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		func(t *jwt.Token) (any, error) {
			return f.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(f.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return ErrFormToken
	}
	if browserID == "" || claims.Subject != browserID || claims.PostID != postID {
		return ErrFormToken
	}
	return nil
}

// RequireFormToken rejects form posts for :id that lack a token issued to
// this browser.
func RequireFormToken(f *FormTokens) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := f.Verify(c.FormValue(FormTokenField), BrowserIDFrom(c), c.Params("id")); err != nil {
			return fiber.NewError(fiber.StatusForbidden, "invalid form token")
		}
		return c.Next()
	}
}
