package profile

import (
	"time"
)

// Profile is a row of the 'facebook_profiles' table.
type Profile struct {
	ID          string    `json:"id" db:"id"`
	ProfileName string    `json:"profile_name" db:"profile_name"`
	TemplateID  *string   `json:"template_id" db:"template_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
