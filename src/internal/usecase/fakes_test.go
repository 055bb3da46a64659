package usecase_test

import (
	"context"
	"errors"

	"bank-sampah-service/src/internal/entity"
)

// In-memory repository fakes. They keep insertion order, which is what the
// ranking tests rely on.

type fakeUserRepository struct {
	users []*entity.User
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.UserID == id {
			return u, nil
		}
	}
	return nil, errors.New("user not found")
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.New("user not found")
}

func (f *fakeUserRepository) FindAllActive(ctx context.Context) ([]entity.User, error) {
	active := make([]entity.User, 0, len(f.users))
	for _, u := range f.users {
		if u.IsActive {
			active = append(active, *u)
		}
	}
	return active, nil
}

func (f *fakeUserRepository) Insert(ctx context.Context, user *entity.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepository) Update(ctx context.Context, user *entity.User) error {
	return nil
}

func (f *fakeUserRepository) UpdatePassword(ctx context.Context, userID, hashed string) error {
	u, err := f.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	u.Password = hashed
	return nil
}

func (f *fakeUserRepository) UpsertEwallet(ctx context.Context, wallet *entity.EWallet) error {
	u, err := f.FindByID(ctx, wallet.UserID)
	if err != nil {
		return err
	}
	for i := range u.Ewallets {
		if u.Ewallets[i].Provider == wallet.Provider {
			u.Ewallets[i] = *wallet
			return nil
		}
	}
	u.Ewallets = append(u.Ewallets, *wallet)
	return nil
}

func (f *fakeUserRepository) SetActive(ctx context.Context, userID string, active bool, note *entity.AdminNote) error {
	u, err := f.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	u.IsActive = active
	u.AdminNotes = append(u.AdminNotes, *note)
	return nil
}

type fakeSubmissionRepository struct {
	submissions []*entity.Submission
	histories   []entity.StatusHistory
}

func (f *fakeSubmissionRepository) FindByID(ctx context.Context, id string) (*entity.Submission, error) {
	for _, s := range f.submissions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, errors.New("submission not found")
}

func (f *fakeSubmissionRepository) FindFiltered(ctx context.Context, filter entity.SubmissionFilter) ([]entity.Submission, error) {
	matched := make([]entity.Submission, 0, len(f.submissions))
	for _, s := range f.submissions {
		if filter.UserID != nil && s.UserID != *filter.UserID {
			continue
		}
		if filter.Status != nil && s.Status != *filter.Status {
			continue
		}
		matched = append(matched, *s)
	}
	return matched, nil
}

func (f *fakeSubmissionRepository) FindAll(ctx context.Context) ([]entity.Submission, error) {
	all := make([]entity.Submission, 0, len(f.submissions))
	for _, s := range f.submissions {
		all = append(all, *s)
	}
	return all, nil
}

func (f *fakeSubmissionRepository) Insert(ctx context.Context, submission *entity.Submission) error {
	f.submissions = append(f.submissions, submission)
	f.histories = append(f.histories, submission.StatusHistory...)
	return nil
}

func (f *fakeSubmissionRepository) UpdateWithHistory(ctx context.Context, submission *entity.Submission, history *entity.StatusHistory) error {
	f.histories = append(f.histories, *history)
	return nil
}

type fakeWasteBankRepository struct {
	banks   []*entity.WasteBank
	reviews map[string][]entity.Review
}

func newFakeWasteBankRepository() *fakeWasteBankRepository {
	return &fakeWasteBankRepository{reviews: map[string][]entity.Review{}}
}

func (f *fakeWasteBankRepository) FindByID(ctx context.Context, id string) (*entity.WasteBank, error) {
	for _, b := range f.banks {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, errors.New("waste bank not found")
}

func (f *fakeWasteBankRepository) FindAllActive(ctx context.Context) ([]entity.WasteBank, error) {
	active := make([]entity.WasteBank, 0, len(f.banks))
	for _, b := range f.banks {
		if b.IsActive {
			active = append(active, *b)
		}
	}
	return active, nil
}

func (f *fakeWasteBankRepository) Insert(ctx context.Context, bank *entity.WasteBank) error {
	f.banks = append(f.banks, bank)
	return nil
}

func (f *fakeWasteBankRepository) Update(ctx context.Context, bank *entity.WasteBank) error {
	for i := range f.banks {
		if f.banks[i].ID == bank.ID {
			f.banks[i] = bank
			return nil
		}
	}
	return errors.New("waste bank not found")
}

func (f *fakeWasteBankRepository) FindReviews(ctx context.Context, bankID string) ([]entity.Review, error) {
	return append([]entity.Review{}, f.reviews[bankID]...), nil
}

func (f *fakeWasteBankRepository) SaveReview(ctx context.Context, review *entity.Review, isNew bool, rating float64, totalReviews int) error {
	if isNew {
		f.reviews[review.WasteBankID] = append(f.reviews[review.WasteBankID], *review)
	} else {
		list := f.reviews[review.WasteBankID]
		for i := range list {
			if list[i].ID == review.ID {
				list[i] = *review
			}
		}
	}
	for _, b := range f.banks {
		if b.ID == review.WasteBankID {
			b.Rating = rating
			b.TotalReviews = totalReviews
		}
	}
	return nil
}

func f64(v float64) *float64 {
	return &v
}
