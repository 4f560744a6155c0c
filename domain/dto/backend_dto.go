package dto

import "pjeseza-web/domain/model"

// Wire types of the processing API this app consumes.

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username           string `json:"username"`
	Email              string `json:"email"`
	Password           string `json:"password"`
	LanguagePreference string `json:"language_preference"`
}

// TokenResponse is returned by both auth endpoints.
type TokenResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	User        model.User `json:"user"`
}

// VideoInfoRequest is the body of POST /api/video/info.
type VideoInfoRequest struct {
	URL string `json:"url"`
}

// VideoInfoResponse is the metadata resolved for a URL.
type VideoInfoResponse struct {
	Success   bool            `json:"success"`
	VideoInfo model.VideoInfo `json:"video_info"`
	VideoID   string          `json:"video_id"`
}

// ClipCreateRequest is the body of POST /api/video/clip, one per draft.
type ClipCreateRequest struct {
	YouTubeURL string   `json:"youtube_url"`
	StartTime  int64    `json:"start_time"`
	EndTime    int64    `json:"end_time"`
	ClipName   string   `json:"clip_name"`
	Features   []string `json:"features"`
}

// ClipCreateResponse wraps the created clip record.
type ClipCreateResponse struct {
	Success bool             `json:"success"`
	ClipID  string           `json:"clip_id"`
	Message string           `json:"message"`
	Clip    model.ClipResult `json:"clip"`
}

// ClipListQuery encodes optional parameters of GET /api/video/clips.
type ClipListQuery struct {
	Limit  int    `url:"limit,omitempty"`
	Status string `url:"status,omitempty"`
}

// ClipListResponse is the current user's clip collection.
type ClipListResponse struct {
	Clips []model.ClipResult `json:"clips"`
}

// AdminStats are the platform counters shown on the admin panel.
type AdminStats struct {
	TotalUsers  int64 `json:"total_users"`
	TotalClips  int64 `json:"total_clips"`
	TotalVideos int64 `json:"total_videos"`
	ActiveUsers int64 `json:"active_users"`
}

// AdminUsersResponse is the user listing for the admin panel.
type AdminUsersResponse struct {
	Users []model.User `json:"users"`
}

// BackendError is the error body the processing API returns with non-2xx
// statuses.
type BackendError struct {
	Detail string `json:"detail"`
}
