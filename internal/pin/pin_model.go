package pin

import (
	"time"
)

const (
	// settingKey is the app_settings row holding the bcrypt hash.
	settingKey = "pin_hash"

	// SessionKey marks an unlocked session.
	SessionKey = "pin_unlocked"

	// MinLength is the shortest accepted PIN.
	MinLength = 4
)

// Setting is a row of the 'app_settings' table.
type Setting struct {
	Key       string    `db:"setting_key"`
	Value     string    `db:"setting_value"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Status is the response of GET /api/pin/status.
type Status struct {
	Configured bool `json:"configured"`
	Required   bool `json:"required"`
	Unlocked   bool `json:"unlocked"`
}

// SetupRequest is the body of POST /api/pin/setup and the lock page form.
type SetupRequest struct {
	PIN        string `json:"pin" form:"pin"`
	ConfirmPIN string `json:"confirm_pin" form:"confirm_pin"`
}

// VerifyRequest is the body of POST /api/pin/verify.
type VerifyRequest struct {
	PIN string `json:"pin" form:"pin"`
}

// ChangeRequest is the body of POST /api/pin/change.
type ChangeRequest struct {
	CurrentPIN string `json:"current_pin"`
	NewPIN     string `json:"new_pin"`
	ConfirmPIN string `json:"confirm_pin"`
}
