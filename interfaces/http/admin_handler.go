package http

import (
	"pjeseza-web/interfaces/middleware"
	"pjeseza-web/usecase"

	"github.com/gin-gonic/gin"
)

type IAdminHandler interface {
	Stats(c *gin.Context)
	Users(c *gin.Context)
}

type adminHandler struct {
	dashboard usecase.IDashboardUsecase
}

func NewAdminHandler(dashboard usecase.IDashboardUsecase) IAdminHandler {
	return &adminHandler{dashboard: dashboard}
}

func (h *adminHandler) Stats(c *gin.Context) {
	session := middleware.CurrentSession(c)
	stats, err := h.dashboard.Stats(c.Request.Context(), session)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, stats)
}

func (h *adminHandler) Users(c *gin.Context) {
	session := middleware.CurrentSession(c)
	users, err := h.dashboard.Users(c.Request.Context(), session)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"users": users})
}
