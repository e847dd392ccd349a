package serverutils

import (
	"strings"

	"dinedesk-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const AccessTokenCookie = "access_token"

// JwtMiddleware guards API routes. The token comes from the Authorization
// header or, for the browser pages, the access_token cookie.
func JwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if err := authenticate(ctx, secret); err != nil {
			return err
		}
		return ctx.Next()
	}
}

// PageAuthMiddleware guards HTML pages, redirecting to loginPath instead of
// answering 401.
func PageAuthMiddleware(secret, loginPath string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if err := authenticate(ctx, secret); err != nil {
			return ctx.Redirect(loginPath)
		}
		return ctx.Next()
	}
}

func authenticate(ctx *fiber.Ctx, secret string) error {
	tokenStr := ctx.Cookies(AccessTokenCookie)
	if header := ctx.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		tokenStr = strings.TrimPrefix(header, "Bearer ")
	}
	if tokenStr == "" {
		return apperror.Unauthorized("Missing token")
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return apperror.Unauthorized("Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return apperror.Unauthorized("Invalid claims")
	}
	userId, _ := claims["user_id"].(string)
	if _, err := uuid.Parse(userId); err != nil {
		return apperror.Unauthorized("Invalid claims")
	}
	name, _ := claims["name"].(string)

	ctx.Locals("user_id", userId)
	ctx.Locals("user_name", name)
	return nil
}

// CurrentUser reads what JwtMiddleware stored on the request.
func CurrentUser(ctx *fiber.Ctx) (uuid.UUID, string, error) {
	raw, _ := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, "", apperror.Unauthorized("Missing user")
	}
	name, _ := ctx.Locals("user_name").(string)
	return userId, name, nil
}
