package httperror

import "net/http"

// CommonError is the error shape every usecase returns. Code maps straight
// to the HTTP status the delivery layer responds with.
type CommonError struct {
	Code    int    `json:"code"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (e *CommonError) Error() string {
	return e.Message
}

func NewBadRequest() *CommonError {
	return &CommonError{Code: http.StatusBadRequest, Name: "BAD_REQUEST", Message: "bad request"}
}

func NewUnauthorized() *CommonError {
	return &CommonError{Code: http.StatusUnauthorized, Name: "UNAUTHORIZED", Message: "unauthorized"}
}

func NewForbidden() *CommonError {
	return &CommonError{Code: http.StatusForbidden, Name: "FORBIDDEN", Message: "forbidden"}
}

func NewNotFound() *CommonError {
	return &CommonError{Code: http.StatusNotFound, Name: "NOT_FOUND", Message: "not found"}
}

func NewConflict() *CommonError {
	return &CommonError{Code: http.StatusConflict, Name: "CONFLICT", Message: "conflict"}
}

func NewInternalServerError() *CommonError {
	return &CommonError{Code: http.StatusInternalServerError, Name: "INTERNAL_SERVER_ERROR", Message: "internal server error"}
}
