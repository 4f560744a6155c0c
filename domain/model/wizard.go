package model

// WizardStep is the explicit state of the clip configuration flow.
// Transitions only move through the guard methods on the wizard usecase.
type WizardStep int

const (
	StepConfigureCount WizardStep = iota + 1
	StepConfigureFeatures
	StepReview
)

func (s WizardStep) String() string {
	switch s {
	case StepConfigureCount:
		return "configure_count"
	case StepConfigureFeatures:
		return "configure_features"
	case StepReview:
		return "review"
	}
	return "unknown"
}

// AIFeature is one entry of the fixed enhancement catalog offered per clip.
// Premium entries are informational only; no entitlement is enforced here.
type AIFeature struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Premium     bool   `json:"premium"`
}

var featureCatalog = []AIFeature{
	{ID: "auto_clipping", Name: "Auto Clipping", Description: "AI automatically detects viral-worthy moments"},
	{ID: "face_tracking", Name: "Auto Face Tracking", Description: "Keep faces centered when converting to vertical"},
	{ID: "auto_captions", Name: "Auto Captioning", Description: "AI listens and automatically adds captions"},
	{ID: "translation", Name: "Caption Translation", Description: "Translate captions into 37+ languages"},
	{ID: "hook_titles", Name: "Auto Hook Titles", Description: "Generate compelling titles and CTAs", Premium: true},
	{ID: "b_roll", Name: "Auto B-roll", Description: "Add relevant background footage", Premium: true},
	{ID: "background_removal", Name: "Background Remover", Description: "Remove or replace video backgrounds", Premium: true},
	{ID: "voice_enhancement", Name: "Voice Enhancement", Description: "Improve audio quality and add voiceovers", Premium: true},
}

// FeatureCatalog returns a copy of the catalog so callers cannot reorder or
// mutate the canonical list.
func FeatureCatalog() []AIFeature {
	out := make([]AIFeature, len(featureCatalog))
	copy(out, featureCatalog)
	return out
}

func KnownFeature(id string) bool {
	for _, f := range featureCatalog {
		if f.ID == id {
			return true
		}
	}
	return false
}
