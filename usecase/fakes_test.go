package usecase

import (
	"context"
	"io"
	"strings"
	"sync"

	"pjeseza-web/domain/dto"
	"pjeseza-web/domain/model"
	"pjeseza-web/domain/repository"
)

// fakeStore is an in-memory ISessionStore.
type fakeStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}}
}

func (s *fakeStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return "", repository.ErrKeyNotFound
	}
	return v, nil
}

func (s *fakeStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *fakeStore) Clear(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// clipCall records one CreateClip invocation.
type clipCall struct {
	req       dto.ClipCreateRequest
	requestID string
}

// fakeAPI is a scriptable IVideoAPI that records calls.
type fakeAPI struct {
	mu sync.Mutex

	loginRes    *dto.TokenResponse
	loginErr    error
	registerRes *dto.TokenResponse
	registerErr error
	registerReq *dto.RegisterRequest

	meUser *model.User
	meErr  error

	infoRes   *dto.VideoInfoResponse
	infoErr   error
	infoCalls int

	clipCalls   []clipCall
	failAtClip  int // 1-based index of the call that fails, 0 = never
	clipErr     error
	clipCounter int
	clipBlock   chan struct{} // when set, CreateClip waits on it first

	clips    []model.ClipResult
	listErr  error
	stats    *dto.AdminStats
	users    []model.User
	adminErr error
}

func (a *fakeAPI) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	if a.loginErr != nil {
		return nil, a.loginErr
	}
	return a.loginRes, nil
}

func (a *fakeAPI) Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error) {
	a.registerReq = &req
	if a.registerErr != nil {
		return nil, a.registerErr
	}
	return a.registerRes, nil
}

func (a *fakeAPI) Me(ctx context.Context, token string) (*model.User, error) {
	if a.meErr != nil {
		return nil, a.meErr
	}
	if a.meUser != nil {
		return a.meUser, nil
	}
	return &model.User{ID: "u1"}, nil
}

func (a *fakeAPI) VideoInfo(ctx context.Context, token, url string) (*dto.VideoInfoResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.infoCalls++
	if a.infoErr != nil {
		return nil, a.infoErr
	}
	return a.infoRes, nil
}

func (a *fakeAPI) CreateClip(ctx context.Context, token string, req dto.ClipCreateRequest, requestID string) (*dto.ClipCreateResponse, error) {
	if a.clipBlock != nil {
		<-a.clipBlock
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.clipCounter++
	a.clipCalls = append(a.clipCalls, clipCall{req: req, requestID: requestID})
	if a.failAtClip != 0 && a.clipCounter == a.failAtClip {
		return nil, a.clipErr
	}
	return &dto.ClipCreateResponse{
		Success: true,
		ClipID:  req.ClipName,
		Clip: model.ClipResult{
			ID:        req.ClipName,
			Name:      req.ClipName,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Status:    "processing",
		},
	}, nil
}

func (a *fakeAPI) ListClips(ctx context.Context, token string, q dto.ClipListQuery) ([]model.ClipResult, error) {
	if a.listErr != nil {
		return nil, a.listErr
	}
	return a.clips, nil
}

func (a *fakeAPI) DownloadClip(ctx context.Context, token, clipID string) (io.ReadCloser, string, error) {
	return io.NopCloser(strings.NewReader("bytes")), clipID + ".mp4", nil
}

func (a *fakeAPI) AdminStats(ctx context.Context, token string) (*dto.AdminStats, error) {
	if a.adminErr != nil {
		return nil, a.adminErr
	}
	return a.stats, nil
}

func (a *fakeAPI) AdminUsers(ctx context.Context, token string) ([]model.User, error) {
	if a.adminErr != nil {
		return nil, a.adminErr
	}
	return a.users, nil
}
