package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"bank-sampah-service/src/internal/entity"
	"bank-sampah-service/src/internal/model"
	"bank-sampah-service/src/internal/model/converter"
	"bank-sampah-service/src/internal/repository"
	httpError "bank-sampah-service/src/pkg/http-error"
	"bank-sampah-service/src/pkg/log"
	"bank-sampah-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

type WasteBankUseCase struct {
	Log                 log.Log
	Validate            *validator.Validate
	WasteBankRepository repository.WasteBankRepository
	Config              *viper.Viper
}

func NewWasteBankUseCase(
	logger log.Log,
	validate *validator.Validate,
	wasteBankRepository repository.WasteBankRepository,
	cfg *viper.Viper,
) *WasteBankUseCase {
	return &WasteBankUseCase{
		Log:                 logger,
		Validate:            validate,
		WasteBankRepository: wasteBankRepository,
		Config:              cfg,
	}
}

type rankedBank struct {
	bank     entity.WasteBank
	distance *float64
}

// SearchWasteBanks filters, ranks and paginates the active directory. The
// unrounded distance drives both the radius filter and the distance sort;
// rounding happens only at the response edge.
func (c *WasteBankUseCase) SearchWasteBanks(ctx context.Context, request *model.SearchWasteBankRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("wastebank-usecase", errObj.Message, "SearchWasteBanks", utils.ConvertString(request))
		return result
	}

	banks, err := c.WasteBankRepository.FindAllActive(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to load waste banks: %v", err)
		result.Error = errObj
		c.Log.Error("wastebank-usecase", errObj.Message, "SearchWasteBanks", utils.ConvertString(err))
		return result
	}

	hasCoords := request.Latitude != nil && request.Longitude != nil
	search := strings.ToLower(strings.TrimSpace(request.Search))

	ranked := make([]rankedBank, 0, len(banks))
	for _, bank := range banks {
		if search != "" && !matchesSearch(&bank, search) {
			continue
		}
		if request.City != "" && !strings.EqualFold(bank.City, request.City) {
			continue
		}
		if request.WasteType != "" && !bank.AcceptsType(request.WasteType) {
			continue
		}

		entry := rankedBank{bank: bank}
		if hasCoords {
			d := utils.Haversine(*request.Latitude, *request.Longitude, bank.Latitude, bank.Longitude)
			if request.RadiusKm > 0 && d > request.RadiusKm {
				continue
			}
			entry.distance = &d
		}
		ranked = append(ranked, entry)
	}

	sortBy := request.SortBy
	if sortBy == "" {
		sortBy = "rating"
	}
	switch sortBy {
	case "distance":
		// without coordinates there is nothing to sort by; keep the
		// collection order rather than erroring
		if hasCoords {
			sort.SliceStable(ranked, func(i, j int) bool {
				return *ranked[i].distance < *ranked[j].distance
			})
		}
	case "name":
		sort.SliceStable(ranked, func(i, j int) bool {
			return strings.ToLower(ranked[i].bank.Name) < strings.ToLower(ranked[j].bank.Name)
		})
	default:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].bank.Rating > ranked[j].bank.Rating
		})
	}

	page, limit := normalizePage(request.Page, request.Limit)
	pageItems := utils.Paginate(ranked, page, limit)
	responses := make([]*model.WasteBankResponse, 0, len(pageItems))
	for i := range pageItems {
		responses = append(responses, converter.WasteBankToResponse(&pageItems[i].bank, pageItems[i].distance))
	}

	result.Data = responses
	result.MetaData = utils.Meta{Page: page, Limit: limit, Total: len(ranked)}
	return result
}

func (c *WasteBankUseCase) GetWasteBank(ctx context.Context, id string) utils.Result {
	var result utils.Result

	bank, err := c.WasteBankRepository.FindByID(ctx, id)
	if err != nil || !bank.IsActive {
		errObj := httpError.NewNotFound()
		errObj.Message = "waste bank not found"
		result.Error = errObj
		c.Log.Error("wastebank-usecase", errObj.Message, "GetWasteBank", id)
		return result
	}

	result.Data = converter.WasteBankToResponse(bank, nil)
	return result
}

// SubmitReview upserts the caller's review: a second review from the same
// user replaces the first under the same id instead of appending.
func (c *WasteBankUseCase) SubmitReview(ctx context.Context, request *model.SubmitReviewRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("wastebank-usecase", errObj.Message, "SubmitReview", utils.ConvertString(request))
		return result
	}

	bank, err := c.WasteBankRepository.FindByID(ctx, request.WasteBankID)
	if err != nil || !bank.IsActive {
		errObj := httpError.NewNotFound()
		errObj.Message = "waste bank not found"
		result.Error = errObj
		c.Log.Error("wastebank-usecase", errObj.Message, "SubmitReview", request.WasteBankID)
		return result
	}

	reviews, err := c.WasteBankRepository.FindReviews(ctx, bank.ID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to load reviews: %v", err)
		result.Error = errObj
		c.Log.Error("wastebank-usecase", errObj.Message, "SubmitReview", utils.ConvertString(err))
		return result
	}

	now := time.Now()
	var review *entity.Review
	isNew := true
	for i := range reviews {
		if reviews[i].UserID == request.UserID {
			reviews[i].Rating = request.Rating
			reviews[i].Comment = request.Comment
			reviews[i].UserName = request.UserName
			reviews[i].UpdatedAt = now
			review = &reviews[i]
			isNew = false
			break
		}
	}
	if isNew {
		reviews = append(reviews, entity.Review{
			ID:          uuid.NewString(),
			WasteBankID: bank.ID,
			UserID:      request.UserID,
			UserName:    request.UserName,
			Rating:      request.Rating,
			Comment:     request.Comment,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		review = &reviews[len(reviews)-1]
	}

	bank.RecomputeRating(reviews)

	if err = c.WasteBankRepository.SaveReview(ctx, review, isNew, bank.Rating, bank.TotalReviews); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to save review: %v", err)
		result.Error = errObj
		c.Log.Error("wastebank-usecase", errObj.Message, "SubmitReview", utils.ConvertString(err))
		return result
	}

	c.Log.Info("wastebank-usecase", "review saved", "SubmitReview", review.ID)
	result.Data = &model.SubmitReviewResponse{
		Review:     converter.ReviewToResponse(review),
		BankRating: bank.Rating,
	}
	return result
}

func (c *WasteBankUseCase) ListReviews(ctx context.Context, request *model.ListReviewsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("wastebank-usecase", errObj.Message, "ListReviews", utils.ConvertString(request))
		return result
	}

	bank, err := c.WasteBankRepository.FindByID(ctx, request.WasteBankID)
	if err != nil || !bank.IsActive {
		errObj := httpError.NewNotFound()
		errObj.Message = "waste bank not found"
		result.Error = errObj
		c.Log.Error("wastebank-usecase", errObj.Message, "ListReviews", request.WasteBankID)
		return result
	}

	reviews, err := c.WasteBankRepository.FindReviews(ctx, request.WasteBankID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to load reviews: %v", err)
		result.Error = errObj
		c.Log.Error("wastebank-usecase", errObj.Message, "ListReviews", utils.ConvertString(err))
		return result
	}

	// histogram covers the full collection, not just the returned page
	histogram := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, r := range reviews {
		histogram[r.Rating]++
	}

	switch request.Sort {
	case "oldest":
		sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].CreatedAt.Before(reviews[j].CreatedAt) })
	case "rating_high":
		sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].Rating > reviews[j].Rating })
	case "rating_low":
		sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].Rating < reviews[j].Rating })
	default: // newest
		sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].CreatedAt.After(reviews[j].CreatedAt) })
	}

	page, limit := normalizePage(request.Page, request.Limit)
	pageItems := utils.Paginate(reviews, page, limit)
	responses := make([]model.ReviewResponse, 0, len(pageItems))
	for i := range pageItems {
		responses = append(responses, converter.ReviewToResponse(&pageItems[i]))
	}

	result.Data = &model.ReviewListResponse{Reviews: responses, Histogram: histogram}
	result.MetaData = utils.Meta{Page: page, Limit: limit, Total: len(reviews)}
	return result
}

func (c *WasteBankUseCase) CreateWasteBank(ctx context.Context, request *model.CreateWasteBankRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("wastebank-usecase", errObj.Message, "CreateWasteBank", utils.ConvertString(request))
		return result
	}

	now := time.Now()
	bank := &entity.WasteBank{
		ID:             uuid.NewString(),
		Name:           request.Name,
		Description:    request.Description,
		Address:        request.Address,
		City:           request.City,
		Province:       request.Province,
		Latitude:       request.Latitude,
		Longitude:      request.Longitude,
		OperatingHours: request.OperatingHours,
		AcceptedTypes:  request.AcceptedTypes,
		IsActive:       true,
		IsPartner:      request.IsPartner,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := c.WasteBankRepository.Insert(ctx, bank); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to save waste bank: %v", err)
		result.Error = errObj
		c.Log.Error("wastebank-usecase", errObj.Message, "CreateWasteBank", utils.ConvertString(err))
		return result
	}

	c.Log.Info("wastebank-usecase", "waste bank created", "CreateWasteBank", bank.ID)
	result.Data = converter.WasteBankToResponse(bank, nil)
	return result
}

func (c *WasteBankUseCase) UpdateWasteBank(ctx context.Context, request *model.UpdateWasteBankRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("wastebank-usecase", errObj.Message, "UpdateWasteBank", utils.ConvertString(request))
		return result
	}

	bank, err := c.WasteBankRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "waste bank not found"
		result.Error = errObj
		c.Log.Error("wastebank-usecase", errObj.Message, "UpdateWasteBank", request.ID)
		return result
	}

	if request.Name != "" {
		bank.Name = request.Name
	}
	if request.Description != "" {
		bank.Description = request.Description
	}
	if request.Address != "" {
		bank.Address = request.Address
	}
	if request.City != "" {
		bank.City = request.City
	}
	if request.Province != "" {
		bank.Province = request.Province
	}
	if request.OperatingHours != "" {
		bank.OperatingHours = request.OperatingHours
	}
	if len(request.AcceptedTypes) > 0 {
		bank.AcceptedTypes = request.AcceptedTypes
	}
	if request.IsActive != nil {
		bank.IsActive = *request.IsActive
	}
	if request.IsPartner != nil {
		bank.IsPartner = *request.IsPartner
	}
	bank.UpdatedAt = time.Now()

	if err = c.WasteBankRepository.Update(ctx, bank); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to update waste bank: %v", err)
		result.Error = errObj
		c.Log.Error("wastebank-usecase", errObj.Message, "UpdateWasteBank", utils.ConvertString(err))
		return result
	}

	result.Data = converter.WasteBankToResponse(bank, nil)
	return result
}

func matchesSearch(bank *entity.WasteBank, search string) bool {
	return strings.Contains(strings.ToLower(bank.Name), search) ||
		strings.Contains(strings.ToLower(bank.Address), search) ||
		strings.Contains(strings.ToLower(bank.Description), search)
}
