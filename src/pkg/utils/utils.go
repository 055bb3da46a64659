package utils

import (
	"encoding/json"
	"fmt"
	"math"

	httpError "bank-sampah-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

// Result is what every usecase method hands back to the controller.
type Result struct {
	Data     interface{}
	MetaData interface{}
	Error    error
}

// Meta carries pagination info next to a page of data.
type Meta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

type baseResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
	Message string      `json:"message"`
	Code    int         `json:"code"`
}

func Response(data interface{}, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(baseResponse{
		Success: true,
		Data:    data,
		Message: message,
		Code:    code,
	})
}

func ResponsePaginate(data interface{}, meta interface{}, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(baseResponse{
		Success: true,
		Data:    data,
		Meta:    meta,
		Message: message,
		Code:    code,
	})
}

func ResponseError(err error, ctx *fiber.Ctx) error {
	if commonErr, ok := err.(*httpError.CommonError); ok {
		return ctx.Status(commonErr.Code).JSON(baseResponse{
			Success: false,
			Message: commonErr.Message,
			Code:    commonErr.Code,
		})
	}
	return ctx.Status(fiber.StatusBadRequest).JSON(baseResponse{
		Success: false,
		Message: err.Error(),
		Code:    fiber.StatusBadRequest,
	})
}

// ConvertString marshals anything into a loggable string.
func ConvertString(data interface{}) string {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Sprintf("%+v", data)
	}
	return string(out)
}

// Round2 rounds to 2 decimal places, used for money and display distances.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to 1 decimal place, used for ratings.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Paginate slices a full result set. Page is 1-based; out-of-range pages
// yield an empty slice, never an error.
func Paginate[T any](items []T, page, limit int) []T {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
