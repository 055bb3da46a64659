package http

import (
	"strconv"

	"bank-sampah-service/src/internal/delivery/http/middleware"
	"bank-sampah-service/src/internal/model"
	"bank-sampah-service/src/internal/usecase"
	"bank-sampah-service/src/pkg/log"
	"bank-sampah-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type WasteBankController struct {
	Log     log.Log
	UseCase *usecase.WasteBankUseCase
}

func NewWasteBankController(useCase *usecase.WasteBankUseCase, logger log.Log) *WasteBankController {
	return &WasteBankController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *WasteBankController) Search(ctx *fiber.Ctx) error {
	request := &model.SearchWasteBankRequest{
		Search:    ctx.Query("search"),
		City:      ctx.Query("city"),
		WasteType: ctx.Query("waste_type"),
		RadiusKm:  queryFloat(ctx, "radius", 0),
		SortBy:    ctx.Query("sort_by"),
		Page:      ctx.QueryInt("page", 1),
		Limit:     ctx.QueryInt("limit", 10),
	}
	if lat, ok := queryFloatOptional(ctx, "lat"); ok {
		request.Latitude = &lat
	}
	if lng, ok := queryFloatOptional(ctx, "lng"); ok {
		request.Longitude = &lng
	}

	result := c.UseCase.SearchWasteBanks(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.ResponsePaginate(result.Data, result.MetaData, "SearchWasteBanks", fiber.StatusOK, ctx)
}

func (c *WasteBankController) Get(ctx *fiber.Ctx) error {
	result := c.UseCase.GetWasteBank(ctx.Context(), ctx.Params("id"))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "GetWasteBank", fiber.StatusOK, ctx)
}

func (c *WasteBankController) SubmitReview(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.SubmitReviewRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("WasteBankController.SubmitReview", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.WasteBankID = ctx.Params("id")
	request.UserID = auth.UserID
	request.UserName = auth.FullName
	result := c.UseCase.SubmitReview(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "SubmitReview", fiber.StatusOK, ctx)
}

func (c *WasteBankController) ListReviews(ctx *fiber.Ctx) error {
	request := &model.ListReviewsRequest{
		WasteBankID: ctx.Params("id"),
		Sort:        ctx.Query("sort"),
		Page:        ctx.QueryInt("page", 1),
		Limit:       ctx.QueryInt("limit", 10),
	}
	result := c.UseCase.ListReviews(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.ResponsePaginate(result.Data, result.MetaData, "ListReviews", fiber.StatusOK, ctx)
}

func (c *WasteBankController) Create(ctx *fiber.Ctx) error {
	request := new(model.CreateWasteBankRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("WasteBankController.Create", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.CreateWasteBank(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "CreateWasteBank", fiber.StatusCreated, ctx)
}

func (c *WasteBankController) Update(ctx *fiber.Ctx) error {
	request := new(model.UpdateWasteBankRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("WasteBankController.Update", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ID = ctx.Params("id")
	result := c.UseCase.UpdateWasteBank(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "UpdateWasteBank", fiber.StatusOK, ctx)
}

func queryFloat(ctx *fiber.Ctx, key string, def float64) float64 {
	value, ok := queryFloatOptional(ctx, key)
	if !ok {
		return def
	}
	return value
}

func queryFloatOptional(ctx *fiber.Ctx, key string) (float64, bool) {
	raw := ctx.Query(key)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
