package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"pjeseza-web/domain/dto"
	"pjeseza-web/domain/model"
	"pjeseza-web/domain/repository"
	"pjeseza-web/infrastructure/logger"

	"github.com/go-playground/validator/v10"
	jwt "github.com/golang-jwt/jwt"
)

// ValidationError is a form problem detected before any backend call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type ISessionUsecase interface {
	Login(ctx context.Context, sessionID string, req dto.ReqLogin) (*model.User, error)
	// Register creates the account with the caller's interface language so
	// the backend stores it as the user's preference.
	Register(ctx context.Context, sessionID string, req dto.ReqRegister, language string) (*model.User, error)
	// Current restores the persisted session. A missing, corrupted or
	// expired record yields (nil, nil); corruption is cleared on the way.
	Current(ctx context.Context, sessionID string) (*model.Session, error)
	// Refresh re-validates the restored session against the backend and
	// updates the mirrored user record. A backend 401 clears the session;
	// transient failures keep the stored record.
	Refresh(ctx context.Context, sessionID string) (*model.User, error)
	Logout(ctx context.Context, sessionID string) error
}

type sessionUsecase struct {
	store    repository.ISessionStore
	api      repository.IVideoAPI
	validate *validator.Validate
}

func NewSessionUsecase(store repository.ISessionStore, api repository.IVideoAPI) ISessionUsecase {
	return &sessionUsecase{
		store:    store,
		api:      api,
		validate: validator.New(),
	}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (u *sessionUsecase) Login(ctx context.Context, sessionID string, req dto.ReqLogin) (*model.User, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, &ValidationError{Message: "Email and password are required"}
	}

	res, err := u.api.Login(ctx, dto.LoginRequest{Email: req.Email, Password: req.Password})
	if err != nil {
		return nil, err
	}
	if err := u.persist(ctx, sessionID, res); err != nil {
		return nil, err
	}
	return &res.User, nil
}

func (u *sessionUsecase) Register(ctx context.Context, sessionID string, req dto.ReqRegister, language string) (*model.User, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, &ValidationError{Message: registerMessage(err)}
	}

	res, err := u.api.Register(ctx, dto.RegisterRequest{
		Username:           req.Username,
		Email:              req.Email,
		Password:           req.Password,
		LanguagePreference: language,
	})
	if err != nil {
		return nil, err
	}
	if err := u.persist(ctx, sessionID, res); err != nil {
		return nil, err
	}
	return &res.User, nil
}

// registerMessage maps the first failing field to the message the form shows.
func registerMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Invalid registration details"
	}
	fe := fieldErrs[0]
	switch fe.Field() {
	case "ConfirmPassword":
		return "Passwords do not match"
	case "Password":
		return "Password must be at least 6 characters"
	case "Username":
		return "Username must be at least 3 characters"
	case "Email":
		return "A valid email is required"
	}
	return "Invalid registration details"
}

func (u *sessionUsecase) persist(ctx context.Context, sessionID string, res *dto.TokenResponse) error {
	user := res.User
	session := model.Session{Token: res.AccessToken, User: &user}
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return u.store.Set(ctx, sessionKey(sessionID), string(raw))
}

func (u *sessionUsecase) Current(ctx context.Context, sessionID string) (*model.Session, error) {
	raw, err := u.store.Get(ctx, sessionKey(sessionID))
	if errors.Is(err, repository.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Discarding corrupted session record")
		_ = u.store.Clear(ctx, sessionKey(sessionID))
		return nil, nil
	}
	if !session.Valid() {
		_ = u.store.Clear(ctx, sessionKey(sessionID))
		return nil, nil
	}
	if tokenExpired(session.Token) {
		logger.GetLogger().Info("Stored session token expired")
		_ = u.store.Clear(ctx, sessionKey(sessionID))
		return nil, nil
	}
	return &session, nil
}

// tokenExpired checks the exp claim without verifying the signature; the
// backend remains the authority and still rejects bad tokens. Tokens that do
// not parse as JWTs pass through so opaque tokens keep working.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	parser := &jwt.Parser{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}
	return time.Now().After(time.Unix(int64(exp), 0))
}

func (u *sessionUsecase) Refresh(ctx context.Context, sessionID string) (*model.User, error) {
	session, err := u.Current(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	user, err := u.api.Me(ctx, session.Token)
	if err != nil {
		var authErr interface{ IsAuthError() bool }
		if errors.As(err, &authErr) && authErr.IsAuthError() {
			logger.GetLogger().Info("Backend rejected stored token, clearing session")
			_ = u.store.Clear(ctx, sessionKey(sessionID))
			return nil, nil
		}
		// Transient failure: keep the stored record rather than logging
		// the user out over a blip.
		return session.User, nil
	}

	session.User = user
	raw, err := json.Marshal(session)
	if err != nil {
		return user, nil
	}
	_ = u.store.Set(ctx, sessionKey(sessionID), string(raw))
	return user, nil
}

func (u *sessionUsecase) Logout(ctx context.Context, sessionID string) error {
	return u.store.Clear(ctx, sessionKey(sessionID))
}
