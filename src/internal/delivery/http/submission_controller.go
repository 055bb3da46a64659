package http

import (
	"bank-sampah-service/src/internal/delivery/http/middleware"
	"bank-sampah-service/src/internal/model"
	"bank-sampah-service/src/internal/usecase"
	"bank-sampah-service/src/pkg/log"
	"bank-sampah-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type SubmissionController struct {
	Log     log.Log
	UseCase *usecase.SubmissionUseCase
}

func NewSubmissionController(useCase *usecase.SubmissionUseCase, logger log.Log) *SubmissionController {
	return &SubmissionController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *SubmissionController) Create(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.CreateSubmissionRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("SubmissionController.Create", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID
	result := c.UseCase.CreateSubmission(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "CreateSubmission", fiber.StatusCreated, ctx)
}

func (c *SubmissionController) List(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.ListSubmissionsRequest{
		UserID: auth.UserID,
		Status: ctx.Query("status"),
		Page:   ctx.QueryInt("page", 1),
		Limit:  ctx.QueryInt("limit", 10),
	}
	result := c.UseCase.ListSubmissions(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.ResponsePaginate(result.Data, result.MetaData, "ListSubmissions", fiber.StatusOK, ctx)
}

// ListAll is the admin view: no owner filter, optional user/status filters.
func (c *SubmissionController) ListAll(ctx *fiber.Ctx) error {
	request := &model.ListSubmissionsRequest{
		UserID: ctx.Query("user_id"),
		Status: ctx.Query("status"),
		Page:   ctx.QueryInt("page", 1),
		Limit:  ctx.QueryInt("limit", 10),
	}
	result := c.UseCase.ListSubmissions(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.ResponsePaginate(result.Data, result.MetaData, "ListAllSubmissions", fiber.StatusOK, ctx)
}

func (c *SubmissionController) Get(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.GetSubmissionRequest{
		SubmissionID: ctx.Params("id"),
		ActorID:      auth.UserID,
		ActorRole:    auth.Role,
	}
	result := c.UseCase.GetSubmission(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "GetSubmission", fiber.StatusOK, ctx)
}

func (c *SubmissionController) Cancel(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.CancelSubmissionRequest{
		SubmissionID: ctx.Params("id"),
		ActorID:      auth.UserID,
	}
	result := c.UseCase.CancelSubmission(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "CancelSubmission", fiber.StatusOK, ctx)
}

func (c *SubmissionController) UpdateStatus(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.UpdateSubmissionStatusRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("SubmissionController.UpdateStatus", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.SubmissionID = ctx.Params("id")
	request.ActorID = auth.UserID
	request.ActorRole = auth.Role
	result := c.UseCase.UpdateStatus(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "UpdateSubmissionStatus", fiber.StatusOK, ctx)
}

func (c *SubmissionController) PriceList(ctx *fiber.Ctx) error {
	result := c.UseCase.GetPriceList()
	return utils.Response(result.Data, "PriceList", fiber.StatusOK, ctx)
}
