package middleware

import (
	"fmt"
	"strings"

	"bank-sampah-service/src/internal/model"
	httpError "bank-sampah-service/src/pkg/http-error"
	"bank-sampah-service/src/pkg/token"
	"bank-sampah-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

const authLocalKey = "auth"

func VerifyBearer(cfg *viper.Viper) fiber.Handler {
	secret := []byte(cfg.GetString("jwt.secret"))

	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "missing bearer token"
			return utils.ResponseError(errObj, ctx)
		}

		claims := &token.Claim{}
		parsed, err := jwt.ParseWithClaims(strings.TrimPrefix(authHeader, "Bearer "), claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !parsed.Valid {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "invalid or expired token"
			return utils.ResponseError(errObj, ctx)
		}

		ctx.Locals(authLocalKey, &model.Auth{
			UserID:   claims.Metadata.UserID,
			FullName: claims.Metadata.FullName,
			Email:    claims.Metadata.Email,
			Role:     claims.Metadata.Role,
		})
		return ctx.Next()
	}
}

// AdminOnly must run after VerifyBearer.
func AdminOnly() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		auth := GetUser(ctx)
		if auth == nil || auth.Role != "admin" {
			errObj := httpError.NewForbidden()
			errObj.Message = "admin access required"
			return utils.ResponseError(errObj, ctx)
		}
		return ctx.Next()
	}
}

func GetUser(ctx *fiber.Ctx) *model.Auth {
	auth, _ := ctx.Locals(authLocalKey).(*model.Auth)
	return auth
}
