package template

import (
	"time"
)

// Template is a row of the 'templates' table.
type Template struct {
	ID              string    `json:"id" db:"id"`
	TemplateName    string    `json:"template_name" db:"template_name"`
	TemplateContent string    `json:"template_content" db:"template_content"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// Placeholders understood by Render.
const (
	PlaceholderFounderName     = "{founder_name}"
	PlaceholderToolName        = "{tool_name}"
	PlaceholderToolDescription = "{tool_description}"
)

// Values fills the placeholders of a template.
type Values struct {
	FounderName     string
	ToolName        string
	ToolDescription string
}
