package http

import (
	"net/http"

	"pjeseza-web/domain/model"
	"pjeseza-web/infrastructure/configuration"
	"pjeseza-web/infrastructure/i18n"
	"pjeseza-web/interfaces/middleware"
	"pjeseza-web/usecase"

	"github.com/gin-gonic/gin"
)

type IPageHandler interface {
	Home(c *gin.Context)
	Dashboard(c *gin.Context)
	Admin(c *gin.Context)
	Editor(c *gin.Context)
}

type pageHandler struct {
	sessions   usecase.ISessionUsecase
	wizard     usecase.IWizardUsecase
	translator *i18n.Translator
}

func NewPageHandler(sessions usecase.ISessionUsecase, wizard usecase.IWizardUsecase, translator *i18n.Translator) IPageHandler {
	return &pageHandler{sessions: sessions, wizard: wizard, translator: translator}
}

// requestLanguage reads the interface language cookie, falling back to the
// configured default when it is missing or unsupported.
func requestLanguage(c *gin.Context, translator *i18n.Translator) string {
	lang, err := c.Cookie("pjeseza_lang")
	if err != nil || !translator.Supported(lang) {
		return configuration.C.App.DefaultLanguage
	}
	return lang
}

// base assembles the template data every page shares.
func (h *pageHandler) base(c *gin.Context, session *model.Session) gin.H {
	lang := requestLanguage(c, h.translator)
	data := gin.H{
		"Lang": lang,
		"T":    h.translator.Table(lang),
	}
	if session != nil {
		data["User"] = session.User
	}
	return data
}

// currentSession restores the login for pages, which sit outside the Auth
// middleware so anonymous visitors still get the marketing content.
func (h *pageHandler) currentSession(c *gin.Context) *model.Session {
	sessionID := c.GetString(middleware.ContextSessionID)
	session, err := h.sessions.Current(c.Request.Context(), sessionID)
	if err != nil {
		return nil
	}
	return session
}

func (h *pageHandler) Home(c *gin.Context) {
	data := h.base(c, h.currentSession(c))
	data["Features"] = model.HomeFeatures()
	data["AITools"] = model.AITools()
	data["PricingPlans"] = model.PricingPlans()
	data["Testimonials"] = model.Testimonials()
	c.HTML(http.StatusOK, "home.tmpl", data)
}

func (h *pageHandler) Dashboard(c *gin.Context) {
	session := h.currentSession(c)
	if session == nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "dashboard.tmpl", h.base(c, session))
}

func (h *pageHandler) Admin(c *gin.Context) {
	session := h.currentSession(c)
	if session == nil || !session.User.IsAdmin() {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "admin.tmpl", h.base(c, session))
}

func (h *pageHandler) Editor(c *gin.Context) {
	session := h.currentSession(c)
	if session == nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	data := h.base(c, session)
	sessionID := c.GetString(middleware.ContextSessionID)
	if view, err := h.wizard.View(c.Request.Context(), sessionID); err == nil {
		data["Wizard"] = view
	}
	c.HTML(http.StatusOK, "editor.tmpl", data)
}
