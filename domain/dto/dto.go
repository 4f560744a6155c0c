package dto

// Res is the common envelope for JSON responses rendered by this app's
// handlers.
type Res struct {
	ResponseCode    string      `json:"response_code"`
	ResponseMessage string      `json:"response_message"`
	Data            interface{} `json:"data,omitempty"`
}

// ReqLogin represents the sign-in form.
type ReqLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ReqRegister represents the account creation form. The validate tags are
// checked before any backend call is made.
type ReqRegister struct {
	Username        string `json:"username" validate:"required,min=3"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// ReqVideoInfo carries the pasted YouTube URL. The binding tag rejects
// non-URLs before the wizard is touched.
type ReqVideoInfo struct {
	URL string `json:"url" binding:"required,url"`
}

// ReqClipCount sets how many clips the wizard should prepare.
type ReqClipCount struct {
	Count int `json:"count"`
}

// ReqDraftTimes updates one draft's window. Nil fields are left untouched.
type ReqDraftTimes struct {
	ID        int    `json:"id"`
	StartTime *int64 `json:"start_time"`
	EndTime   *int64 `json:"end_time"`
}

// ReqFeatureToggle flips one feature's membership on one draft.
type ReqFeatureToggle struct {
	ID      int    `json:"id"`
	Feature string `json:"feature"`
}

// ReqLanguage switches the interface language.
type ReqLanguage struct {
	Language string `json:"language"`
}
