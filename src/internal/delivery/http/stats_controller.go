package http

import (
	"bank-sampah-service/src/internal/delivery/http/middleware"
	"bank-sampah-service/src/internal/model"
	"bank-sampah-service/src/internal/usecase"
	"bank-sampah-service/src/pkg/log"
	"bank-sampah-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type StatsController struct {
	Log     log.Log
	UseCase *usecase.StatsUseCase
}

func NewStatsController(useCase *usecase.StatsUseCase, logger log.Log) *StatsController {
	return &StatsController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *StatsController) MyStats(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.GetUserStatsRequest{
		UserID: auth.UserID,
		From:   ctx.Query("from"),
		To:     ctx.Query("to"),
	}
	result := c.UseCase.GetUserStats(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "MyStats", fiber.StatusOK, ctx)
}

func (c *StatsController) UserStats(ctx *fiber.Ctx) error {
	request := &model.GetUserStatsRequest{
		UserID: ctx.Params("id"),
		From:   ctx.Query("from"),
		To:     ctx.Query("to"),
	}
	result := c.UseCase.GetUserStats(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "UserStats", fiber.StatusOK, ctx)
}

func (c *StatsController) PlatformStats(ctx *fiber.Ctx) error {
	request := &model.GetPlatformStatsRequest{
		Months: ctx.QueryInt("months", 6),
	}
	result := c.UseCase.GetPlatformStats(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "PlatformStats", fiber.StatusOK, ctx)
}

func (c *StatsController) Leaderboard(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.LeaderboardRequest{
		Metric: ctx.Query("metric"),
		Limit:  ctx.QueryInt("limit", 10),
		UserID: auth.UserID,
	}
	result := c.UseCase.GetLeaderboard(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Leaderboard", fiber.StatusOK, ctx)
}

func (c *StatsController) MonthComparison(ctx *fiber.Ctx) error {
	result := c.UseCase.GetMonthComparison(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "MonthComparison", fiber.StatusOK, ctx)
}
