package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"pjeseza-web/domain/dto"
	"pjeseza-web/domain/model"
	"pjeseza-web/domain/repository"
	"pjeseza-web/infrastructure/cache"
	"pjeseza-web/infrastructure/logger"

	"github.com/google/uuid"
)

var (
	ErrNoWizard       = errors.New("no wizard in progress for this session")
	ErrInvalidCount   = errors.New("clip count must be between 1 and 3")
	ErrUnknownFeature = errors.New("unknown feature")
	ErrDraftNotFound  = errors.New("clip draft not found")
	ErrInvalidStep    = errors.New("action not allowed at this step")
	ErrDraftsInvalid  = errors.New("every clip needs a valid time range")
	ErrProcessing     = errors.New("generation already in progress")
)

// WizardView is the immutable snapshot handed to handlers and templates.
type WizardView struct {
	Step       model.WizardStep   `json:"step"`
	StepName   string             `json:"step_name"`
	VideoURL   string             `json:"video_url"`
	VideoInfo  model.VideoInfo    `json:"video_info"`
	ClipCount  int                `json:"clip_count"`
	Drafts     []model.ClipDraft  `json:"drafts"`
	Processing bool               `json:"processing"`
	Results    []model.ClipResult `json:"results"`
	Features   []model.AIFeature  `json:"features"`
}

type IWizardUsecase interface {
	// Start resolves the video metadata and opens a fresh wizard for the
	// session, replacing any previous one. A wizard whose generation is
	// still in flight cannot be replaced.
	Start(ctx context.Context, sessionID, token, url string) (*WizardView, error)
	SetClipCount(ctx context.Context, sessionID string, count int) (*WizardView, error)
	UpdateDraftTimes(ctx context.Context, sessionID string, req dto.ReqDraftTimes) (*WizardView, error)
	ToggleFeature(ctx context.Context, sessionID string, req dto.ReqFeatureToggle) (*WizardView, error)
	Advance(ctx context.Context, sessionID string) (*WizardView, error)
	Back(ctx context.Context, sessionID string) (*WizardView, error)
	// Generate submits the drafts one by one, stopping at the first
	// failure. Results accumulated before the failure are kept.
	Generate(ctx context.Context, sessionID, token string) (*WizardView, error)
	// Reset returns to the first step keeping the source video.
	Reset(ctx context.Context, sessionID string) (*WizardView, error)
	// Discard drops the wizard entirely, as on logout.
	Discard(ctx context.Context, sessionID string) error
	View(ctx context.Context, sessionID string) (*WizardView, error)
}

type wizardState struct {
	url        string
	info       model.VideoInfo
	step       model.WizardStep
	clipCount  int
	drafts     []model.ClipDraft
	processing bool
	results    []model.ClipResult
}

type wizardUsecase struct {
	mu      sync.Mutex
	states  map[string]*wizardState
	api     repository.IVideoAPI
	infoCch *cache.VideoInfoCache
}

func NewWizardUsecase(api repository.IVideoAPI, infoCache *cache.VideoInfoCache) IWizardUsecase {
	return &wizardUsecase{
		states:  make(map[string]*wizardState),
		api:     api,
		infoCch: infoCache,
	}
}

func (u *wizardUsecase) Start(ctx context.Context, sessionID, token, url string) (*WizardView, error) {
	var info model.VideoInfo
	if cached := u.infoCch.Get(ctx, url); cached != nil {
		info = *cached
	} else {
		res, err := u.api.VideoInfo(ctx, token, url)
		if err != nil {
			return nil, err
		}
		info = res.VideoInfo
		u.infoCch.Set(ctx, url, info)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	// Replacing a wizard mid-generation would orphan the state the
	// running submission loop writes its results into.
	if existing, ok := u.states[sessionID]; ok && existing.processing {
		return nil, ErrProcessing
	}

	state := &wizardState{
		url:       url,
		info:      info,
		step:      model.StepConfigureCount,
		clipCount: 1,
	}
	state.drafts = defaultDrafts(1)
	u.states[sessionID] = state

	logger.GetLogger().WithField("url", url).Info("Wizard started")
	return state.view(), nil
}

// defaultDrafts lays out count back-to-back 30 second windows. Windows past
// the video end are caught by the advance guard, not here.
func defaultDrafts(count int) []model.ClipDraft {
	drafts := make([]model.ClipDraft, count)
	for i := 0; i < count; i++ {
		drafts[i] = model.ClipDraft{
			ID:               i + 1,
			Name:             fmt.Sprintf("Clip %d", i+1),
			StartTime:        int64(i) * 30,
			EndTime:          int64(i+1) * 30,
			SelectedFeatures: []string{},
		}
	}
	return drafts
}

func (u *wizardUsecase) SetClipCount(ctx context.Context, sessionID string, count int) (*WizardView, error) {
	if count < 1 || count > 3 {
		return nil, ErrInvalidCount
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	state, ok := u.states[sessionID]
	if !ok {
		return nil, ErrNoWizard
	}
	if state.processing {
		return nil, ErrProcessing
	}

	// Changing the count always rebuilds the drafts; edits made to the
	// previous set are intentionally discarded.
	state.clipCount = count
	state.drafts = defaultDrafts(count)
	state.step = model.StepConfigureFeatures
	return state.view(), nil
}

func (u *wizardUsecase) UpdateDraftTimes(ctx context.Context, sessionID string, req dto.ReqDraftTimes) (*WizardView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	state, ok := u.states[sessionID]
	if !ok {
		return nil, ErrNoWizard
	}
	if state.processing {
		return nil, ErrProcessing
	}

	draft := state.draft(req.ID)
	if draft == nil {
		return nil, ErrDraftNotFound
	}

	duration := state.info.Duration
	if req.StartTime != nil {
		start := *req.StartTime
		if start < 0 {
			start = 0
		}
		if start > draft.EndTime-1 {
			start = draft.EndTime - 1
		}
		// Default windows can overrun short videos, so the end-based
		// clamp alone is not enough.
		if start > duration {
			start = duration
		}
		draft.StartTime = start
	}
	if req.EndTime != nil {
		end := *req.EndTime
		if end < draft.StartTime+1 {
			end = draft.StartTime + 1
		}
		if end > duration {
			end = duration
		}
		draft.EndTime = end
	}
	return state.view(), nil
}

func (u *wizardUsecase) ToggleFeature(ctx context.Context, sessionID string, req dto.ReqFeatureToggle) (*WizardView, error) {
	if !model.KnownFeature(req.Feature) {
		return nil, ErrUnknownFeature
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	state, ok := u.states[sessionID]
	if !ok {
		return nil, ErrNoWizard
	}
	if state.processing {
		return nil, ErrProcessing
	}

	draft := state.draft(req.ID)
	if draft == nil {
		return nil, ErrDraftNotFound
	}

	if draft.HasFeature(req.Feature) {
		kept := draft.SelectedFeatures[:0]
		for _, f := range draft.SelectedFeatures {
			if f != req.Feature {
				kept = append(kept, f)
			}
		}
		draft.SelectedFeatures = kept
	} else {
		draft.SelectedFeatures = append(draft.SelectedFeatures, req.Feature)
	}
	return state.view(), nil
}

func (u *wizardUsecase) Advance(ctx context.Context, sessionID string) (*WizardView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	state, ok := u.states[sessionID]
	if !ok {
		return nil, ErrNoWizard
	}
	if state.processing {
		return nil, ErrProcessing
	}

	switch state.step {
	case model.StepConfigureCount:
		state.step = model.StepConfigureFeatures
	case model.StepConfigureFeatures:
		for i := range state.drafts {
			if !state.drafts[i].InBounds(state.info.Duration) {
				return nil, ErrDraftsInvalid
			}
		}
		state.step = model.StepReview
	default:
		return nil, ErrInvalidStep
	}
	return state.view(), nil
}

func (u *wizardUsecase) Back(ctx context.Context, sessionID string) (*WizardView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	state, ok := u.states[sessionID]
	if !ok {
		return nil, ErrNoWizard
	}
	if state.processing {
		return nil, ErrProcessing
	}
	if state.step > model.StepConfigureCount {
		state.step--
	}
	return state.view(), nil
}

func (u *wizardUsecase) Generate(ctx context.Context, sessionID, token string) (*WizardView, error) {
	u.mu.Lock()
	state, ok := u.states[sessionID]
	if !ok {
		u.mu.Unlock()
		return nil, ErrNoWizard
	}
	if state.processing {
		u.mu.Unlock()
		return nil, ErrProcessing
	}
	if state.step != model.StepReview {
		u.mu.Unlock()
		return nil, ErrInvalidStep
	}
	for i := range state.drafts {
		if !state.drafts[i].InBounds(state.info.Duration) {
			u.mu.Unlock()
			return nil, ErrDraftsInvalid
		}
	}

	state.processing = true
	state.results = nil
	url := state.url
	drafts := make([]model.ClipDraft, len(state.drafts))
	copy(drafts, state.drafts)
	u.mu.Unlock()

	// Submissions run outside the lock so other sessions are not blocked
	// behind the backend. Each draft carries its own request id so a retry
	// after a network failure cannot double-create a clip.
	results := make([]model.ClipResult, 0, len(drafts))
	var submitErr error
	for _, draft := range drafts {
		features := draft.SelectedFeatures
		if features == nil {
			features = []string{}
		}
		res, err := u.api.CreateClip(ctx, token, dto.ClipCreateRequest{
			YouTubeURL: url,
			StartTime:  draft.StartTime,
			EndTime:    draft.EndTime,
			ClipName:   draft.Name,
			Features:   features,
		}, uuid.NewString())
		if err != nil {
			logger.GetLogger().WithFields(map[string]interface{}{
				"clip":  draft.Name,
				"error": err,
			}).Error("Clip submission failed")
			submitErr = err
			break
		}
		results = append(results, res.Clip)
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	state.processing = false
	state.results = results
	if submitErr != nil {
		return nil, submitErr
	}
	logger.GetLogger().WithField("clips", len(results)).Info("All clips submitted")
	return state.view(), nil
}

func (u *wizardUsecase) Reset(ctx context.Context, sessionID string) (*WizardView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	state, ok := u.states[sessionID]
	if !ok {
		return nil, ErrNoWizard
	}
	if state.processing {
		return nil, ErrProcessing
	}

	state.step = model.StepConfigureCount
	state.clipCount = 1
	state.drafts = defaultDrafts(1)
	state.results = nil
	return state.view(), nil
}

func (u *wizardUsecase) Discard(ctx context.Context, sessionID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.states, sessionID)
	return nil
}

func (u *wizardUsecase) View(ctx context.Context, sessionID string) (*WizardView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	state, ok := u.states[sessionID]
	if !ok {
		return nil, ErrNoWizard
	}
	return state.view(), nil
}

func (s *wizardState) draft(id int) *model.ClipDraft {
	for i := range s.drafts {
		if s.drafts[i].ID == id {
			return &s.drafts[i]
		}
	}
	return nil
}

// view deep-copies the mutable slices so callers never alias wizard state.
func (s *wizardState) view() *WizardView {
	drafts := make([]model.ClipDraft, len(s.drafts))
	for i, d := range s.drafts {
		features := make([]string, len(d.SelectedFeatures))
		copy(features, d.SelectedFeatures)
		d.SelectedFeatures = features
		drafts[i] = d
	}
	results := make([]model.ClipResult, len(s.results))
	copy(results, s.results)

	return &WizardView{
		Step:       s.step,
		StepName:   s.step.String(),
		VideoURL:   s.url,
		VideoInfo:  s.info,
		ClipCount:  s.clipCount,
		Drafts:     drafts,
		Processing: s.processing,
		Results:    results,
		Features:   model.FeatureCatalog(),
	}
}
