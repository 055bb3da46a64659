package repository

import (
	"context"

	"bank-sampah-service/src/internal/entity"
)

// The usecases depend on these interfaces, never on the sqlx types directly,
// so the persistence engine stays swappable and tests can use fakes.

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAllActive(ctx context.Context) ([]entity.User, error)
	Insert(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	UpdatePassword(ctx context.Context, userID, hashed string) error
	UpsertEwallet(ctx context.Context, wallet *entity.EWallet) error
	SetActive(ctx context.Context, userID string, active bool, note *entity.AdminNote) error
}

type SubmissionRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Submission, error)
	FindFiltered(ctx context.Context, filter entity.SubmissionFilter) ([]entity.Submission, error)
	FindAll(ctx context.Context) ([]entity.Submission, error)
	Insert(ctx context.Context, submission *entity.Submission) error
	UpdateWithHistory(ctx context.Context, submission *entity.Submission, history *entity.StatusHistory) error
}

type WasteBankRepository interface {
	FindByID(ctx context.Context, id string) (*entity.WasteBank, error)
	FindAllActive(ctx context.Context) ([]entity.WasteBank, error)
	Insert(ctx context.Context, bank *entity.WasteBank) error
	Update(ctx context.Context, bank *entity.WasteBank) error
	FindReviews(ctx context.Context, bankID string) ([]entity.Review, error)
	SaveReview(ctx context.Context, review *entity.Review, isNew bool, rating float64, totalReviews int) error
}
