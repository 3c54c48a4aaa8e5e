package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Response is the envelope returned by every endpoint
type Response struct {
	Meta Meta        `json:"meta"`
	Data interface{} `json:"data,omitempty"`
}

// Meta carries the status code and message for a response
type Meta struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail describes one invalid request field
type ErrorDetail struct {
	Path string `json:"path"`
	Info string `json:"info"`
}

// success writes a 200 envelope with data
func success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Meta: Meta{Code: http.StatusOK, Message: "OK"},
		Data: data,
	})
}

// fail writes an error envelope with the given HTTP status
func fail(c *gin.Context, httpCode int, message string) {
	c.JSON(httpCode, Response{
		Meta: Meta{Code: httpCode, Message: message},
	})
}

// failBinding writes a 400 envelope, expanding validator errors into
// per-field details
func failBinding(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]ErrorDetail, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, ErrorDetail{
				Path: fieldErr.Field(),
				Info: "failed validation: " + fieldErr.Tag(),
			})
		}
		c.JSON(http.StatusBadRequest, Response{
			Meta: Meta{
				Code:    http.StatusBadRequest,
				Message: "invalid request",
				Details: details,
			},
		})
		return
	}
	fail(c, http.StatusBadRequest, err.Error())
}
