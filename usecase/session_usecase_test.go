package usecase

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"pjeseza-web/domain/dto"
	"pjeseza-web/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenWithExp(exp time.Time) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(fmt.Sprintf(`{"exp":%d,"sub":"u1"}`, exp.Unix())))
	return header + "." + payload + ".sig"
}

func TestSessionLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success_persists_session", func(t *testing.T) {
		store := newFakeStore()
		api := &fakeAPI{loginRes: &dto.TokenResponse{
			AccessToken: "tok-1",
			TokenType:   "bearer",
			User:        model.User{ID: "u1", Username: "alex", Email: "alex@example.com", Role: "user", IsActive: true},
		}}
		u := NewSessionUsecase(store, api)

		user, err := u.Login(ctx, "s1", dto.ReqLogin{Email: "alex@example.com", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, "alex", user.Username)

		raw, err := store.Get(ctx, "session:s1")
		require.NoError(t, err)
		var session model.Session
		require.NoError(t, json.Unmarshal([]byte(raw), &session))
		assert.Equal(t, "tok-1", session.Token)
		assert.Equal(t, "alex", session.User.Username)
	})

	t.Run("invalid_form_never_reaches_backend", func(t *testing.T) {
		store := newFakeStore()
		api := &fakeAPI{loginErr: assert.AnError}
		u := NewSessionUsecase(store, api)

		_, err := u.Login(ctx, "s1", dto.ReqLogin{Email: "not-an-email", Password: "x"})
		require.Error(t, err)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("backend_failure_leaves_no_session", func(t *testing.T) {
		store := newFakeStore()
		api := &fakeAPI{loginErr: assert.AnError}
		u := NewSessionUsecase(store, api)

		_, err := u.Login(ctx, "s1", dto.ReqLogin{Email: "alex@example.com", Password: "wrong"})
		require.Error(t, err)

		session, err := u.Current(ctx, "s1")
		require.NoError(t, err)
		assert.Nil(t, session)
	})
}

func TestSessionRegister(t *testing.T) {
	ctx := context.Background()

	okReq := dto.ReqRegister{
		Username:        "alex",
		Email:           "alex@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}

	t.Run("success", func(t *testing.T) {
		store := newFakeStore()
		api := &fakeAPI{registerRes: &dto.TokenResponse{
			AccessToken: "tok-1",
			User:        model.User{ID: "u1", Username: "alex"},
		}}
		u := NewSessionUsecase(store, api)

		user, err := u.Register(ctx, "s1", okReq, "en")
		require.NoError(t, err)
		assert.Equal(t, "alex", user.Username)
	})

	t.Run("interface_language_reaches_the_backend", func(t *testing.T) {
		api := &fakeAPI{registerRes: &dto.TokenResponse{
			AccessToken: "tok-1",
			User:        model.User{ID: "u1", Username: "alex"},
		}}
		u := NewSessionUsecase(newFakeStore(), api)

		_, err := u.Register(ctx, "s1", okReq, "sq")
		require.NoError(t, err)
		require.NotNil(t, api.registerReq)
		assert.Equal(t, "sq", api.registerReq.LanguagePreference)
	})

	t.Run("validation_messages", func(t *testing.T) {
		cases := []struct {
			name string
			req  dto.ReqRegister
			want string
		}{
			{
				name: "short_username",
				req:  dto.ReqRegister{Username: "ab", Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret1"},
				want: "Username must be at least 3 characters",
			},
			{
				name: "short_password",
				req:  dto.ReqRegister{Username: "alex", Email: "a@b.co", Password: "abc", ConfirmPassword: "abc"},
				want: "Password must be at least 6 characters",
			},
			{
				name: "mismatched_passwords",
				req:  dto.ReqRegister{Username: "alex", Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret2"},
				want: "Passwords do not match",
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				u := NewSessionUsecase(newFakeStore(), &fakeAPI{})
				_, err := u.Register(ctx, "s1", tc.req, "en")
				require.Error(t, err)
				assert.Equal(t, tc.want, err.Error())
			})
		}
	})
}

func TestSessionCurrent(t *testing.T) {
	ctx := context.Background()

	t.Run("no_record_yields_nil", func(t *testing.T) {
		u := NewSessionUsecase(newFakeStore(), &fakeAPI{})
		session, err := u.Current(ctx, "s1")
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("corrupted_record_is_cleared", func(t *testing.T) {
		store := newFakeStore()
		require.NoError(t, store.Set(ctx, "session:s1", "{not json"))
		u := NewSessionUsecase(store, &fakeAPI{})

		session, err := u.Current(ctx, "s1")
		require.NoError(t, err)
		assert.Nil(t, session)

		_, err = store.Get(ctx, "session:s1")
		assert.Error(t, err, "corrupted record should be removed")
	})

	t.Run("token_without_user_is_discarded_whole", func(t *testing.T) {
		store := newFakeStore()
		require.NoError(t, store.Set(ctx, "session:s1", `{"token":"tok-1","user":null}`))
		u := NewSessionUsecase(store, &fakeAPI{})

		session, err := u.Current(ctx, "s1")
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("expired_jwt_is_cleared", func(t *testing.T) {
		store := newFakeStore()
		raw, _ := json.Marshal(model.Session{
			Token: tokenWithExp(time.Now().Add(-time.Hour)),
			User:  &model.User{ID: "u1"},
		})
		require.NoError(t, store.Set(ctx, "session:s1", string(raw)))
		u := NewSessionUsecase(store, &fakeAPI{})

		session, err := u.Current(ctx, "s1")
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("live_jwt_is_restored", func(t *testing.T) {
		store := newFakeStore()
		raw, _ := json.Marshal(model.Session{
			Token: tokenWithExp(time.Now().Add(time.Hour)),
			User:  &model.User{ID: "u1", Username: "alex"},
		})
		require.NoError(t, store.Set(ctx, "session:s1", string(raw)))
		u := NewSessionUsecase(store, &fakeAPI{})

		session, err := u.Current(ctx, "s1")
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, "alex", session.User.Username)
	})

	t.Run("opaque_token_is_restored", func(t *testing.T) {
		store := newFakeStore()
		raw, _ := json.Marshal(model.Session{Token: "opaque-token", User: &model.User{ID: "u1"}})
		require.NoError(t, store.Set(ctx, "session:s1", string(raw)))
		u := NewSessionUsecase(store, &fakeAPI{})

		session, err := u.Current(ctx, "s1")
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, "opaque-token", session.Token)
	})
}

type staleTokenError struct{}

func (staleTokenError) Error() string     { return "backend returned 401" }
func (staleTokenError) IsAuthError() bool { return true }

func TestSessionRefresh(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, store *fakeStore) {
		t.Helper()
		raw, _ := json.Marshal(model.Session{Token: "tok-1", User: &model.User{ID: "u1", Username: "alex", Role: "user"}})
		require.NoError(t, store.Set(ctx, "session:s1", string(raw)))
	}

	t.Run("updates_mirrored_user", func(t *testing.T) {
		store := newFakeStore()
		seed(t, store)
		api := &fakeAPI{meUser: &model.User{ID: "u1", Username: "alex", Role: "admin"}}
		u := NewSessionUsecase(store, api)

		user, err := u.Refresh(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "admin", user.Role)

		session, err := u.Current(ctx, "s1")
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, "admin", session.User.Role, "refreshed role is persisted")
	})

	t.Run("backend_401_clears_session", func(t *testing.T) {
		store := newFakeStore()
		seed(t, store)
		u := NewSessionUsecase(store, &fakeAPI{meErr: staleTokenError{}})

		user, err := u.Refresh(ctx, "s1")
		require.NoError(t, err)
		assert.Nil(t, user)

		session, err := u.Current(ctx, "s1")
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("transient_failure_keeps_session", func(t *testing.T) {
		store := newFakeStore()
		seed(t, store)
		u := NewSessionUsecase(store, &fakeAPI{meErr: assert.AnError})

		user, err := u.Refresh(ctx, "s1")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "alex", user.Username)
	})

	t.Run("anonymous_refresh_is_nil", func(t *testing.T) {
		u := NewSessionUsecase(newFakeStore(), &fakeAPI{})
		user, err := u.Refresh(ctx, "s1")
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestSessionLogout(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	require.NoError(t, store.Set(ctx, "session:s1", `{"token":"tok-1","user":{"id":"u1"}}`))
	u := NewSessionUsecase(store, &fakeAPI{})

	require.NoError(t, u.Logout(ctx, "s1"))

	session, err := u.Current(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, session)
}
