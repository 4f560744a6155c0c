package http

import (
	"context"
	"io"
	"strings"

	"pjeseza-web/domain/dto"
	"pjeseza-web/domain/model"
	"pjeseza-web/usecase"

	"github.com/gin-gonic/gin"
	"pjeseza-web/interfaces/middleware"
)

// stubSessionUsecase scripts ISessionUsecase per test.
type stubSessionUsecase struct {
	user        *model.User
	session     *model.Session
	err         error
	gotLanguage string
}

func (s *stubSessionUsecase) Login(ctx context.Context, sessionID string, req dto.ReqLogin) (*model.User, error) {
	return s.user, s.err
}

func (s *stubSessionUsecase) Register(ctx context.Context, sessionID string, req dto.ReqRegister, language string) (*model.User, error) {
	s.gotLanguage = language
	return s.user, s.err
}

func (s *stubSessionUsecase) Current(ctx context.Context, sessionID string) (*model.Session, error) {
	return s.session, nil
}

func (s *stubSessionUsecase) Refresh(ctx context.Context, sessionID string) (*model.User, error) {
	return s.user, s.err
}

func (s *stubSessionUsecase) Logout(ctx context.Context, sessionID string) error {
	return s.err
}

// stubWizardUsecase returns the same view or error for every call.
type stubWizardUsecase struct {
	view *usecase.WizardView
	err  error
}

func (s *stubWizardUsecase) Start(ctx context.Context, sessionID, token, url string) (*usecase.WizardView, error) {
	return s.view, s.err
}

func (s *stubWizardUsecase) SetClipCount(ctx context.Context, sessionID string, count int) (*usecase.WizardView, error) {
	return s.view, s.err
}

func (s *stubWizardUsecase) UpdateDraftTimes(ctx context.Context, sessionID string, req dto.ReqDraftTimes) (*usecase.WizardView, error) {
	return s.view, s.err
}

func (s *stubWizardUsecase) ToggleFeature(ctx context.Context, sessionID string, req dto.ReqFeatureToggle) (*usecase.WizardView, error) {
	return s.view, s.err
}

func (s *stubWizardUsecase) Advance(ctx context.Context, sessionID string) (*usecase.WizardView, error) {
	return s.view, s.err
}

func (s *stubWizardUsecase) Back(ctx context.Context, sessionID string) (*usecase.WizardView, error) {
	return s.view, s.err
}

func (s *stubWizardUsecase) Generate(ctx context.Context, sessionID, token string) (*usecase.WizardView, error) {
	return s.view, s.err
}

func (s *stubWizardUsecase) Reset(ctx context.Context, sessionID string) (*usecase.WizardView, error) {
	return s.view, s.err
}

func (s *stubWizardUsecase) Discard(ctx context.Context, sessionID string) error {
	return s.err
}

func (s *stubWizardUsecase) View(ctx context.Context, sessionID string) (*usecase.WizardView, error) {
	return s.view, s.err
}

type stubDashboardUsecase struct {
	clips    []model.ClipResult
	stats    *dto.AdminStats
	users    []model.User
	filename string
	err      error
}

func (s *stubDashboardUsecase) MyClips(ctx context.Context, token string, q dto.ClipListQuery) ([]model.ClipResult, error) {
	return s.clips, s.err
}

func (s *stubDashboardUsecase) Download(ctx context.Context, token, clipID string) (io.ReadCloser, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	filename := s.filename
	if filename == "" {
		filename = clipID + ".mp4"
	}
	return io.NopCloser(strings.NewReader("clip-bytes")), filename, nil
}

func (s *stubDashboardUsecase) Stats(ctx context.Context, session *model.Session) (*dto.AdminStats, error) {
	if !session.User.IsAdmin() {
		return nil, usecase.ErrAccessDenied
	}
	return s.stats, s.err
}

func (s *stubDashboardUsecase) Users(ctx context.Context, session *model.Session) ([]model.User, error) {
	if !session.User.IsAdmin() {
		return nil, usecase.ErrAccessDenied
	}
	return s.users, s.err
}

// withTestSession injects the context values the middlewares normally set.
func withTestSession(session *model.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextSessionID, "test-session-id")
		if session != nil {
			c.Set(middleware.ContextSession, session)
		}
		c.Next()
	}
}
