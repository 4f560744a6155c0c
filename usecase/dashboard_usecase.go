package usecase

import (
	"context"
	"errors"
	"io"

	"pjeseza-web/domain/dto"
	"pjeseza-web/domain/model"
	"pjeseza-web/domain/repository"
)

// ErrAccessDenied marks an admin operation attempted by a non-admin user.
var ErrAccessDenied = errors.New("admin access required")

type IDashboardUsecase interface {
	MyClips(ctx context.Context, token string, q dto.ClipListQuery) ([]model.ClipResult, error)
	Download(ctx context.Context, token, clipID string) (io.ReadCloser, string, error)
	Stats(ctx context.Context, session *model.Session) (*dto.AdminStats, error)
	Users(ctx context.Context, session *model.Session) ([]model.User, error)
}

type dashboardUsecase struct {
	api repository.IVideoAPI
}

func NewDashboardUsecase(api repository.IVideoAPI) IDashboardUsecase {
	return &dashboardUsecase{api: api}
}

func (u *dashboardUsecase) MyClips(ctx context.Context, token string, q dto.ClipListQuery) ([]model.ClipResult, error) {
	clips, err := u.api.ListClips(ctx, token, q)
	if err != nil {
		return nil, err
	}
	if clips == nil {
		clips = []model.ClipResult{}
	}
	return clips, nil
}

func (u *dashboardUsecase) Download(ctx context.Context, token, clipID string) (io.ReadCloser, string, error) {
	return u.api.DownloadClip(ctx, token, clipID)
}

// Stats checks the role locally before calling out; the backend enforces it
// again on its side.
func (u *dashboardUsecase) Stats(ctx context.Context, session *model.Session) (*dto.AdminStats, error) {
	if !session.User.IsAdmin() {
		return nil, ErrAccessDenied
	}
	return u.api.AdminStats(ctx, session.Token)
}

func (u *dashboardUsecase) Users(ctx context.Context, session *model.Session) ([]model.User, error) {
	if !session.User.IsAdmin() {
		return nil, ErrAccessDenied
	}
	return u.api.AdminUsers(ctx, session.Token)
}
