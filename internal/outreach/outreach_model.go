package outreach

import (
	"time"

	"founderreach/internal/founder"
	"founderreach/internal/profile"
	"founderreach/internal/template"
	"founderreach/internal/tool"
)

// Status is the lifecycle label of an outreach record.
// Any status may follow any other.
type Status string

const (
	StatusMessageGenerated Status = "message_generated"
	StatusMessageSent      Status = "message_sent"
	StatusReplied          Status = "replied"
	StatusClosed           Status = "closed"
	StatusGiveawayRunning  Status = "giveaway_running"
)

// Statuses lists every accepted status in lifecycle order.
var Statuses = []Status{
	StatusMessageGenerated,
	StatusMessageSent,
	StatusReplied,
	StatusClosed,
	StatusGiveawayRunning,
}

// SentStatuses are the statuses of a message that left the outbox.
var SentStatuses = []Status{StatusMessageSent, StatusReplied, StatusClosed, StatusGiveawayRunning}

// RepliedStatuses are the statuses of a message that got an answer.
var RepliedStatuses = []Status{StatusReplied, StatusGiveawayRunning}

// Valid reports whether s is one of Statuses.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Record is a row of the 'outreach_records' table.
// ToolID and TemplateID are copied from the founder and profile at generation time.
type Record struct {
	ID               string    `json:"id" db:"id"`
	FounderID        string    `json:"founder_id" db:"founder_id"`
	ToolID           string    `json:"tool_id" db:"tool_id"`
	FBProfileID      string    `json:"fb_profile_id" db:"fb_profile_id"`
	TemplateID       *string   `json:"template_id" db:"template_id"`
	GeneratedMessage *string   `json:"generated_message" db:"generated_message"`
	Note             *string   `json:"note" db:"note"`
	Status           Status    `json:"status" db:"status"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`

	Founder         *founder.Founder   `json:"founder" db:"-"`
	Tool            *tool.Tool         `json:"tool" db:"-"`
	FacebookProfile *profile.Profile   `json:"facebook_profile" db:"-"`
	Template        *template.Template `json:"template" db:"-"`
}

// Filter narrows ListRecords. Empty fields match everything.
type Filter struct {
	ToolID    string
	FounderID string
	ProfileID string
	Status    Status
	Limit     int
}
