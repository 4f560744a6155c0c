package model

import "time"

// VideoInfo is the metadata the backend resolves for a YouTube URL.
// It is fetched per URL and never persisted by this application.
type VideoInfo struct {
	Title       string `json:"title"`
	Thumbnail   string `json:"thumbnail"`
	Duration    int64  `json:"duration"` // seconds
	ViewCount   int64  `json:"view_count"`
	Uploader    string `json:"uploader"`
	Description string `json:"description"`
}

// ClipDraft is the locally held, unsaved definition of one requested
// output clip. It exists only while the wizard session is open.
type ClipDraft struct {
	ID               int      `json:"id"` // ordinal within the wizard, 1-based
	Name             string   `json:"name"`
	StartTime        int64    `json:"start_time"`
	EndTime          int64    `json:"end_time"`
	SelectedFeatures []string `json:"selected_features"`
}

func (d *ClipDraft) HasFeature(featureID string) bool {
	for _, f := range d.SelectedFeatures {
		if f == featureID {
			return true
		}
	}
	return false
}

// InBounds reports whether the draft window is usable for submission:
// 0 <= start < end <= duration.
func (d *ClipDraft) InBounds(duration int64) bool {
	return d.StartTime >= 0 && d.StartTime < d.EndTime && d.EndTime <= duration
}

// AppliedFeature is the backend's report of one enhancement run on a clip.
type AppliedFeature struct {
	FeatureID  string  `json:"feature_id"`
	Name       string  `json:"name"`
	Result     string  `json:"result"`
	Confidence float64 `json:"confidence"`
}

// ClipResult is the backend record of a submitted clip. Status is an opaque
// string; the UI only distinguishes completed from everything else.
type ClipResult struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	YouTubeURL      string           `json:"youtube_url,omitempty"`
	StartTime       int64            `json:"start_time"`
	EndTime         int64            `json:"end_time"`
	Status          string           `json:"status"`
	DownloadURL     string           `json:"download_url,omitempty"`
	AppliedFeatures []AppliedFeature `json:"applied_features,omitempty"`
	CreatedAt       time.Time        `json:"created_at,omitempty"`
	VideoInfo       *VideoInfo       `json:"video_info,omitempty"`
}

func (c *ClipResult) Completed() bool {
	return c.Status == "completed"
}
