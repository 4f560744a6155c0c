package http

import (
	"io"
	"mime"
	"net/http"
	"strconv"

	"pjeseza-web/domain/dto"
	"pjeseza-web/infrastructure/logger"
	"pjeseza-web/interfaces/middleware"
	"pjeseza-web/usecase"

	"github.com/gin-gonic/gin"
)

type IVideoHandler interface {
	VideoInfo(c *gin.Context)
	WizardView(c *gin.Context)
	SetClipCount(c *gin.Context)
	UpdateDraft(c *gin.Context)
	ToggleFeature(c *gin.Context)
	Advance(c *gin.Context)
	Back(c *gin.Context)
	Generate(c *gin.Context)
	Reset(c *gin.Context)
	MyClips(c *gin.Context)
	Download(c *gin.Context)
}

type videoHandler struct {
	wizard    usecase.IWizardUsecase
	dashboard usecase.IDashboardUsecase
}

func NewVideoHandler(wizard usecase.IWizardUsecase, dashboard usecase.IDashboardUsecase) IVideoHandler {
	return &videoHandler{wizard: wizard, dashboard: dashboard}
}

// VideoInfo resolves the pasted URL and opens a fresh wizard on success.
func (h *videoHandler) VideoInfo(c *gin.Context) {
	var req dto.ReqVideoInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	session := middleware.CurrentSession(c)
	sessionID := c.GetString(middleware.ContextSessionID)
	view, err := h.wizard.Start(c.Request.Context(), sessionID, session.Token, req.URL)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, view)
}

func (h *videoHandler) WizardView(c *gin.Context) {
	sessionID := c.GetString(middleware.ContextSessionID)
	view, err := h.wizard.View(c.Request.Context(), sessionID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, view)
}

func (h *videoHandler) SetClipCount(c *gin.Context) {
	var req dto.ReqClipCount
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	sessionID := c.GetString(middleware.ContextSessionID)
	view, err := h.wizard.SetClipCount(c.Request.Context(), sessionID, req.Count)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, view)
}

func (h *videoHandler) UpdateDraft(c *gin.Context) {
	var req dto.ReqDraftTimes
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	sessionID := c.GetString(middleware.ContextSessionID)
	view, err := h.wizard.UpdateDraftTimes(c.Request.Context(), sessionID, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, view)
}

func (h *videoHandler) ToggleFeature(c *gin.Context) {
	var req dto.ReqFeatureToggle
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	sessionID := c.GetString(middleware.ContextSessionID)
	view, err := h.wizard.ToggleFeature(c.Request.Context(), sessionID, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, view)
}

func (h *videoHandler) Advance(c *gin.Context) {
	sessionID := c.GetString(middleware.ContextSessionID)
	view, err := h.wizard.Advance(c.Request.Context(), sessionID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, view)
}

func (h *videoHandler) Back(c *gin.Context) {
	sessionID := c.GetString(middleware.ContextSessionID)
	view, err := h.wizard.Back(c.Request.Context(), sessionID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, view)
}

func (h *videoHandler) Generate(c *gin.Context) {
	session := middleware.CurrentSession(c)
	sessionID := c.GetString(middleware.ContextSessionID)
	view, err := h.wizard.Generate(c.Request.Context(), sessionID, session.Token)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, view)
}

func (h *videoHandler) Reset(c *gin.Context) {
	sessionID := c.GetString(middleware.ContextSessionID)
	view, err := h.wizard.Reset(c.Request.Context(), sessionID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, view)
}

func (h *videoHandler) MyClips(c *gin.Context) {
	session := middleware.CurrentSession(c)

	var q dto.ClipListQuery
	q.Status = c.Query("status")
	if limit := c.Query("limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			q.Limit = n
		}
	}

	clips, err := h.dashboard.MyClips(c.Request.Context(), session.Token, q)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"clips": clips})
}

// Download proxies the rendered clip to the browser as an attachment.
func (h *videoHandler) Download(c *gin.Context) {
	session := middleware.CurrentSession(c)
	clipID := c.Param("id")

	body, filename, err := h.dashboard.Download(c.Request.Context(), session.Token, clipID)
	if err != nil {
		fail(c, err)
		return
	}
	defer body.Close()

	// The filename comes from the backend; FormatMediaType escapes any
	// quotes it may carry.
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, body); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Clip download interrupted")
	}
}
