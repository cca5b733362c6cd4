package founder

import (
	"time"

	"founderreach/internal/tool"
)

// Founder is a row of the 'founders' table.
type Founder struct {
	ID               string    `json:"id" db:"id"`
	FounderName      string    `json:"founder_name" db:"founder_name"`
	SocialProfileURL *string   `json:"social_profile_url" db:"social_profile_url"`
	ToolID           *string   `json:"tool_id" db:"tool_id"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`

	// Tool is filled on reads when ToolID points at an existing tool.
	Tool *tool.Tool `json:"tool" db:"-"`
}

// ToolFounder is the result of the combined create.
type ToolFounder struct {
	Tool    *tool.Tool `json:"tool"`
	Founder *Founder   `json:"founder"`
}
