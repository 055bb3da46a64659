package usecase

import (
	"context"
	"fmt"
	"time"

	"bank-sampah-service/src/internal/entity"
	"bank-sampah-service/src/internal/model"
	"bank-sampah-service/src/internal/model/converter"
	"bank-sampah-service/src/internal/repository"
	httpError "bank-sampah-service/src/pkg/http-error"
	"bank-sampah-service/src/pkg/log"
	"bank-sampah-service/src/pkg/token"
	"bank-sampah-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

type UserUseCase struct {
	Log            log.Log
	Validate       *validator.Validate
	UserRepository repository.UserRepository
	Config         *viper.Viper
}

func NewUserUseCase(
	logger log.Log,
	validate *validator.Validate,
	userRepository repository.UserRepository,
	cfg *viper.Viper,
) *UserUseCase {
	return &UserUseCase{
		Log:            logger,
		Validate:       validate,
		UserRepository: userRepository,
		Config:         cfg,
	}
}

func (c *UserUseCase) Register(ctx context.Context, request *model.RegisterUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "Register", request.Email)
		return result
	}

	if existing, err := c.UserRepository.FindByEmail(ctx, request.Email); err == nil && existing != nil {
		errObj := httpError.NewConflict()
		errObj.Message = "email is already registered"
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "Register", request.Email)
		return result
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to hash password: %v", err)
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "Register", "")
		return result
	}

	user := &entity.User{
		UserID:    uuid.NewString(),
		FullName:  request.FullName,
		Email:     request.Email,
		Password:  string(hashed),
		Phone:     request.Phone,
		Address:   request.Address,
		Role:      entity.RoleUser,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	if err = c.UserRepository.Insert(ctx, user); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to save user: %v", err)
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "Register", utils.ConvertString(err))
		return result
	}

	c.Log.Info("user-usecase", "user registered", "Register", user.UserID)
	result.Data = converter.UserToResponse(user)
	return result
}

func (c *UserUseCase) Login(ctx context.Context, request *model.LoginUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "Login", request.Email)
		return result
	}

	user, err := c.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "invalid email or password"
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "Login", request.Email)
		return result
	}

	if !user.IsActive {
		errObj := httpError.NewForbidden()
		errObj.Message = "account is deactivated"
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "Login", user.UserID)
		return result
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "invalid email or password"
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "Login", user.UserID)
		return result
	}

	signed, err := c.signToken(user)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to sign token: %v", err)
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "Login", user.UserID)
		return result
	}

	result.Data = &model.LoginResponse{
		Token: signed,
		User:  converter.UserToResponse(user),
	}
	return result
}

func (c *UserUseCase) GetUser(ctx context.Context, request *model.GetUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "GetUser", utils.ConvertString(request))
		return result
	}

	user, err := c.UserRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("user with id %s not found", request.ID)
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "GetUser", utils.ConvertString(err))
		return result
	}

	result.Data = converter.UserToResponse(user)
	return result
}

func (c *UserUseCase) UpdateUser(ctx context.Context, request *model.UpdateUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "UpdateUser", utils.ConvertString(request))
		return result
	}

	user, err := c.UserRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("user with id %s not found", request.ID)
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "UpdateUser", utils.ConvertString(err))
		return result
	}

	if request.FullName != "" {
		user.FullName = request.FullName
	}
	if request.Phone != "" {
		user.Phone = request.Phone
	}
	if request.Address != "" {
		user.Address = request.Address
	}

	if err = c.UserRepository.Update(ctx, user); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to update user: %v", err)
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "UpdateUser", utils.ConvertString(err))
		return result
	}

	result.Data = converter.UserToResponse(user)
	return result
}

func (c *UserUseCase) ChangePassword(ctx context.Context, request *model.ChangePasswordRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "ChangePassword", request.ID)
		return result
	}

	user, err := c.UserRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("user with id %s not found", request.ID)
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "ChangePassword", utils.ConvertString(err))
		return result
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.OldPassword)); err != nil {
		errObj := httpError.NewForbidden()
		errObj.Message = "old password does not match"
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "ChangePassword", user.UserID)
		return result
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to hash password: %v", err)
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "ChangePassword", "")
		return result
	}

	if err = c.UserRepository.UpdatePassword(ctx, user.UserID, string(hashed)); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to update password: %v", err)
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "ChangePassword", utils.ConvertString(err))
		return result
	}

	result.Data = map[string]string{"message": "password updated"}
	return result
}

func (c *UserUseCase) RegisterEwallet(ctx context.Context, request *model.RegisterEwalletRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "RegisterEwallet", utils.ConvertString(request))
		return result
	}

	user, err := c.UserRepository.FindByID(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("user with id %s not found", request.UserID)
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "RegisterEwallet", utils.ConvertString(err))
		return result
	}

	now := time.Now()
	wallet := &entity.EWallet{
		ID:        uuid.NewString(),
		UserID:    user.UserID,
		Provider:  request.Provider,
		Account:   request.Account,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if existing, ok := user.EwalletFor(request.Provider); ok {
		wallet.ID = existing.ID
		wallet.CreatedAt = existing.CreatedAt
	}

	if err = c.UserRepository.UpsertEwallet(ctx, wallet); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to save e-wallet: %v", err)
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "RegisterEwallet", utils.ConvertString(err))
		return result
	}

	result.Data = wallet
	return result
}

// SetUserActive is the admin activation toggle; accounts are never hard
// deleted, and every toggle leaves an admin note behind.
func (c *UserUseCase) SetUserActive(ctx context.Context, request *model.SetUserActiveRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "SetUserActive", utils.ConvertString(request))
		return result
	}

	user, err := c.UserRepository.FindByID(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("user with id %s not found", request.UserID)
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "SetUserActive", utils.ConvertString(err))
		return result
	}

	action := "deactivate"
	if request.IsActive {
		action = "activate"
	}
	note := &entity.AdminNote{
		ID:        uuid.NewString(),
		UserID:    user.UserID,
		Action:    action,
		Reason:    request.Reason,
		AdminID:   request.AdminID,
		CreatedAt: time.Now(),
	}

	if err = c.UserRepository.SetActive(ctx, user.UserID, request.IsActive, note); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to update user status: %v", err)
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "SetUserActive", utils.ConvertString(err))
		return result
	}

	user.IsActive = request.IsActive
	c.Log.Info("user-usecase", fmt.Sprintf("user %sd by admin", action), "SetUserActive", user.UserID)
	result.Data = converter.UserToResponse(user)
	return result
}

func (c *UserUseCase) signToken(user *entity.User) (string, error) {
	expiryHours := c.Config.GetInt("jwt.expiry_hours")
	if expiryHours <= 0 {
		expiryHours = 24
	}

	claims := token.Claim{
		Metadata: token.Metadata{
			UserID:   user.UserID,
			FullName: user.FullName,
			Email:    user.Email,
			Role:     user.Role,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.Config.GetString("app.name"),
			Subject:   user.UserID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiryHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(c.Config.GetString("jwt.secret")))
}
