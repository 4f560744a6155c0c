package http

import (
	"errors"
	"net/http"
	"strconv"

	"pjeseza-web/domain/dto"
	"pjeseza-web/infrastructure/clients/pjeseza"
	"pjeseza-web/usecase"

	"github.com/gin-gonic/gin"
)

func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.Res{
		ResponseCode:    "200",
		ResponseMessage: "Success",
		Data:            data,
	})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.Res{
		ResponseCode:    "400",
		ResponseMessage: message,
	})
}

// fail translates layered errors into the browser-facing envelope. Backend
// errors keep their status and detail so the form can show the real reason.
func fail(c *gin.Context, err error) {
	var vErr *usecase.ValidationError
	if errors.As(err, &vErr) {
		badRequest(c, vErr.Message)
		return
	}

	var apiErr *pjeseza.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, dto.Res{
			ResponseCode:    strconv.Itoa(apiErr.StatusCode),
			ResponseMessage: apiErr.Detail,
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, usecase.ErrNoWizard), errors.Is(err, usecase.ErrDraftNotFound):
		status = http.StatusNotFound
	case errors.Is(err, usecase.ErrInvalidCount),
		errors.Is(err, usecase.ErrUnknownFeature),
		errors.Is(err, usecase.ErrInvalidStep),
		errors.Is(err, usecase.ErrDraftsInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, usecase.ErrProcessing):
		status = http.StatusConflict
	case errors.Is(err, usecase.ErrAccessDenied):
		status = http.StatusForbidden
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Something went wrong"
	}
	c.JSON(status, dto.Res{
		ResponseCode:    strconv.Itoa(status),
		ResponseMessage: message,
	})
}
