package http

import (
	"bank-sampah-service/src/internal/delivery/http/middleware"
	"bank-sampah-service/src/internal/model"
	"bank-sampah-service/src/internal/usecase"
	"bank-sampah-service/src/pkg/log"
	"bank-sampah-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	Log     log.Log
	UseCase *usecase.UserUseCase
}

func NewUserController(useCase *usecase.UserUseCase, logger log.Log) *UserController {
	return &UserController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *UserController) Register(ctx *fiber.Ctx) error {
	request := new(model.RegisterUserRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("UserController.Register", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.Register(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Register", fiber.StatusCreated, ctx)
}

func (c *UserController) Login(ctx *fiber.Ctx) error {
	request := new(model.LoginUserRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("UserController.Login", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.Login(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Login", fiber.StatusOK, ctx)
}

func (c *UserController) GetProfile(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.GetUserRequest{
		ID: auth.UserID,
	}
	result := c.UseCase.GetUser(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "GetProfile", fiber.StatusOK, ctx)
}

func (c *UserController) UpdateProfile(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.UpdateUserRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("UserController.UpdateProfile", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ID = auth.UserID
	result := c.UseCase.UpdateUser(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "UpdateProfile", fiber.StatusOK, ctx)
}

func (c *UserController) ChangePassword(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.ChangePasswordRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("UserController.ChangePassword", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ID = auth.UserID
	result := c.UseCase.ChangePassword(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "ChangePassword", fiber.StatusOK, ctx)
}

func (c *UserController) RegisterEwallet(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.RegisterEwalletRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("UserController.RegisterEwallet", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID
	result := c.UseCase.RegisterEwallet(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "RegisterEwallet", fiber.StatusOK, ctx)
}

func (c *UserController) SetUserActive(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.SetUserActiveRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("UserController.SetUserActive", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = ctx.Params("id")
	request.AdminID = auth.UserID
	result := c.UseCase.SetUserActive(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "SetUserActive", fiber.StatusOK, ctx)
}
