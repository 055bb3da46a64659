package converter

import (
	"bank-sampah-service/src/internal/entity"
	"bank-sampah-service/src/internal/model"
)

func UserToResponse(user *entity.User) *model.UserResponse {
	ewallets := make(map[string]string, len(user.Ewallets))
	for _, w := range user.Ewallets {
		ewallets[w.Provider] = w.Account
	}
	return &model.UserResponse{
		ID:        user.UserID,
		FullName:  user.FullName,
		Email:     user.Email,
		Phone:     user.Phone,
		Address:   user.Address,
		Role:      user.Role,
		IsActive:  user.IsActive,
		Ewallets:  ewallets,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
