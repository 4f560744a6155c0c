package http

import (
	"net/http"

	"pjeseza-web/domain/dto"
	"pjeseza-web/infrastructure/i18n"
	"pjeseza-web/infrastructure/logger"
	"pjeseza-web/interfaces/middleware"
	"pjeseza-web/usecase"

	"github.com/gin-gonic/gin"
)

type IUserHandler interface {
	Login(c *gin.Context)
	Register(c *gin.Context)
	Logout(c *gin.Context)
	Me(c *gin.Context)
	SetLanguage(c *gin.Context)
}

type userHandler struct {
	sessions   usecase.ISessionUsecase
	wizard     usecase.IWizardUsecase
	translator *i18n.Translator
}

func NewUserHandler(sessions usecase.ISessionUsecase, wizard usecase.IWizardUsecase, translator *i18n.Translator) IUserHandler {
	return &userHandler{sessions: sessions, wizard: wizard, translator: translator}
}

func (h *userHandler) Login(c *gin.Context) {
	var req dto.ReqLogin
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	sessionID := c.GetString(middleware.ContextSessionID)
	user, err := h.sessions.Login(c.Request.Context(), sessionID, req)
	if err != nil {
		fail(c, err)
		return
	}

	logger.GetLogger().WithField("username", user.Username).Info("User logged in")
	ok(c, user)
}

func (h *userHandler) Register(c *gin.Context) {
	var req dto.ReqRegister
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	sessionID := c.GetString(middleware.ContextSessionID)
	user, err := h.sessions.Register(c.Request.Context(), sessionID, req, requestLanguage(c, h.translator))
	if err != nil {
		fail(c, err)
		return
	}

	logger.GetLogger().WithField("username", user.Username).Info("User registered")
	ok(c, user)
}

// Logout drops the persisted session and any wizard attached to it.
func (h *userHandler) Logout(c *gin.Context) {
	sessionID := c.GetString(middleware.ContextSessionID)
	if err := h.sessions.Logout(c.Request.Context(), sessionID); err != nil {
		fail(c, err)
		return
	}
	_ = h.wizard.Discard(c.Request.Context(), sessionID)
	ok(c, nil)
}

// Me re-validates the restored session against the backend and returns the
// refreshed user record.
func (h *userHandler) Me(c *gin.Context) {
	sessionID := c.GetString(middleware.ContextSessionID)
	user, err := h.sessions.Refresh(c.Request.Context(), sessionID)
	if err != nil {
		fail(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, dto.Res{ResponseCode: "401", ResponseMessage: "Not authenticated"})
		return
	}
	ok(c, user)
}

// SetLanguage stores the interface language in its own cookie so it
// survives logouts.
func (h *userHandler) SetLanguage(c *gin.Context) {
	var req dto.ReqLanguage
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if !h.translator.Supported(req.Language) {
		badRequest(c, "Unsupported language")
		return
	}
	c.SetCookie("pjeseza_lang", req.Language, 60*60*24*365, "/", "", false, false)
	ok(c, gin.H{"language": req.Language})
}
