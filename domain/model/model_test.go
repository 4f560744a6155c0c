package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClipDraftInBounds(t *testing.T) {
	cases := []struct {
		name     string
		start    int64
		end      int64
		duration int64
		want     bool
	}{
		{name: "full_window", start: 0, end: 100, duration: 100, want: true},
		{name: "interior_window", start: 10, end: 40, duration: 100, want: true},
		{name: "negative_start", start: -1, end: 40, duration: 100, want: false},
		{name: "end_past_duration", start: 30, end: 101, duration: 100, want: false},
		{name: "zero_length", start: 30, end: 30, duration: 100, want: false},
		{name: "inverted", start: 50, end: 40, duration: 100, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := ClipDraft{StartTime: tc.start, EndTime: tc.end}
			assert.Equal(t, tc.want, d.InBounds(tc.duration))
		})
	}
}

func TestFeatureCatalog(t *testing.T) {
	t.Run("has_eight_entries_four_premium", func(t *testing.T) {
		catalog := FeatureCatalog()
		assert.Len(t, catalog, 8)
		premium := 0
		for _, f := range catalog {
			if f.Premium {
				premium++
			}
		}
		assert.Equal(t, 4, premium)
	})

	t.Run("returned_slice_is_a_copy", func(t *testing.T) {
		catalog := FeatureCatalog()
		catalog[0].ID = "mutated"
		assert.Equal(t, "auto_clipping", FeatureCatalog()[0].ID)
	})

	t.Run("known_feature", func(t *testing.T) {
		assert.True(t, KnownFeature("auto_captions"))
		assert.False(t, KnownFeature("time_travel"))
	})
}

func TestSessionValid(t *testing.T) {
	assert.False(t, (&Session{}).Valid())
	assert.False(t, (&Session{Token: "tok"}).Valid())
	assert.False(t, (&Session{User: &User{ID: "u1"}}).Valid())
	assert.True(t, (&Session{Token: "tok", User: &User{ID: "u1"}}).Valid())

	var nilSession *Session
	assert.False(t, nilSession.Valid())
}

func TestUserIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: "admin"}).IsAdmin())
	assert.False(t, (&User{Role: "user"}).IsAdmin())

	var nilUser *User
	assert.False(t, nilUser.IsAdmin())
}

func TestClipResultCompleted(t *testing.T) {
	assert.True(t, (&ClipResult{Status: "completed"}).Completed())
	assert.False(t, (&ClipResult{Status: "processing"}).Completed())
}
