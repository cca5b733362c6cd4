package tool

import (
	"time"
)

// Tool is a row of the 'tools' table.
type Tool struct {
	ID              string    `json:"id" db:"id"`
	ToolName        string    `json:"tool_name" db:"tool_name"`
	ToolDescription *string   `json:"tool_description" db:"tool_description"`
	WebsiteURL      *string   `json:"website_url" db:"website_url"`
	SourceURL       *string   `json:"source_url" db:"source_url"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// Description returns the tool description, or "" when unset.
func (t *Tool) Description() string {
	if t.ToolDescription == nil {
		return ""
	}
	return *t.ToolDescription
}

// CascadeResult counts the dependents removed with a tool.
type CascadeResult struct {
	Founders int64 `json:"deleted_founders"`
	Records  int64 `json:"deleted_outreach_records"`
}
