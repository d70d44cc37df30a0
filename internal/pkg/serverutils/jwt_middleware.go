package serverutils

import (
	"strings"

	"notepad-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// UserIdLocal is the fiber.Ctx Locals key holding the authenticated principal.
const UserIdLocal = "user_id"

type JwtAuth struct {
	secret []byte
}

func NewJwtAuth(secret string) *JwtAuth {
	return &JwtAuth{secret: []byte(secret)}
}

// Required rejects requests without a valid bearer token.
func (a *JwtAuth) Required(ctx *fiber.Ctx) error {
	userId, err := a.principal(ctx.Get("Authorization"))
	if err != nil {
		return err
	}
	ctx.Locals(UserIdLocal, userId)
	return ctx.Next()
}

// Optional sets the principal when a valid token is present and otherwise
// lets the request through anonymously. Handlers decide what anonymous means.
func (a *JwtAuth) Optional(ctx *fiber.Ctx) error {
	if userId, err := a.principal(ctx.Get("Authorization")); err == nil {
		ctx.Locals(UserIdLocal, userId)
	}
	return ctx.Next()
}

func (a *JwtAuth) principal(authHeader string) (string, error) {
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return "", apperror.NewUnauthenticatedError("Missing token")
	}
	tokenStr := strings.TrimSpace(authHeader[7:])

	if len(a.secret) == 0 {
		return "", apperror.NewUnauthenticatedError("Invalid token")
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", apperror.NewUnauthenticatedError("Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperror.NewUnauthenticatedError("Invalid claims")
	}

	if userId, ok := claims["user_id"].(string); ok && userId != "" {
		return userId, nil
	}
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		return sub, nil
	}

	return "", apperror.NewUnauthenticatedError("Invalid claims")
}

// UserId returns the principal stored by the auth middleware, or "".
func UserId(ctx *fiber.Ctx) string {
	userId, _ := ctx.Locals(UserIdLocal).(string)
	return userId
}
