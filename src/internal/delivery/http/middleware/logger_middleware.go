package middleware

import (
	"fmt"
	"time"

	"bank-sampah-service/src/pkg/log"

	"github.com/gofiber/fiber/v2"
)

func NewLogger() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		elapsed := time.Since(start)

		logger := log.GetLogger()
		meta := fmt.Sprintf("%s %s status=%d duration=%s", ctx.Method(), ctx.Path(), ctx.Response().StatusCode(), elapsed)
		logger.Info("http", "request handled", "access-log", meta)
		if elapsed > time.Second {
			logger.Error("http", "slow request", "access-log", meta)
		}
		return err
	}
}
