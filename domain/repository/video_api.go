package repository

import (
	"context"
	"io"

	"pjeseza-web/domain/dto"
	"pjeseza-web/domain/model"
)

// IVideoAPI is the processing backend as seen from this app. Every call is
// a plain REST round-trip; token is the bearer token of the session making
// the call (empty for the auth endpoints).
type IVideoAPI interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error)
	Me(ctx context.Context, token string) (*model.User, error)

	VideoInfo(ctx context.Context, token, url string) (*dto.VideoInfoResponse, error)
	CreateClip(ctx context.Context, token string, req dto.ClipCreateRequest, requestID string) (*dto.ClipCreateResponse, error)
	ListClips(ctx context.Context, token string, q dto.ClipListQuery) ([]model.ClipResult, error)
	// DownloadClip streams the rendered binary. The caller owns the reader.
	DownloadClip(ctx context.Context, token, clipID string) (io.ReadCloser, string, error)

	AdminStats(ctx context.Context, token string) (*dto.AdminStats, error)
	AdminUsers(ctx context.Context, token string) ([]model.User, error)
}
