package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// JSONB is a custom type for JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	if len(bytes) == 0 || string(bytes) == "null" {
		*j = make(JSONB)
		return nil
	}

	result := make(JSONB)
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*j = result
	return nil
}

// Campaign represents an influencer marketing campaign
type Campaign struct {
	ID                uuid.UUID `db:"id" json:"id"`
	Name              string    `db:"name" json:"name"`
	Brand             string    `db:"brand" json:"brand"`
	Budget            float64   `db:"budget" json:"budget"`
	Spent             float64   `db:"spent" json:"spent"`
	Platform          string    `db:"platform" json:"platform"`
	MinFollowers      int       `db:"min_followers" json:"min_followers"`
	MaxEngagementRate float64   `db:"max_engagement_rate" json:"max_engagement_rate"`
	Goals             *string   `db:"goals" json:"goals,omitempty"`
	Audience          *string   `db:"audience" json:"audience,omitempty"`
	Deliverables      *string   `db:"deliverables" json:"deliverables,omitempty"`
	Timeline          *string   `db:"timeline" json:"timeline,omitempty"`
	CreatorsAssigned  bool      `db:"creators_assigned" json:"creators_assigned"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// Creator represents a content creator who may be contacted for a campaign
type Creator struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Email          string    `db:"email" json:"email"`
	Phone          *string   `db:"phone" json:"phone,omitempty"`
	Platform       string    `db:"platform" json:"platform"`
	Followers      int       `db:"followers" json:"followers"`
	EngagementRate float64   `db:"engagement_rate" json:"engagement_rate"`
	RelevanceScore float64   `db:"relevance_score" json:"relevance_score"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// ContractContent is the JSONB payload persisted with each contract
type ContractContent struct {
	Deliverables string `json:"deliverables"`
	Timeline     string `json:"timeline"`
	Compensation string `json:"compensation"`
}

// Value implements the driver.Valuer interface for ContractContent
func (c ContractContent) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements the sql.Scanner interface for ContractContent
func (c *ContractContent) Scan(value interface{}) error {
	if value == nil {
		*c = ContractContent{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for ContractContent")
	}
	return json.Unmarshal(bytes, c)
}

// Contract represents an outreach contract generated for a creator
type Contract struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	CampaignID uuid.UUID       `db:"campaign_id" json:"campaign_id"`
	CreatorID  uuid.UUID       `db:"creator_id" json:"creator_id"`
	Status     string          `db:"status" json:"status"`
	Content    ContractContent `db:"content" json:"content"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at" json:"updated_at"`
}

// AutomationLogRecord is the per-session header row of the automation audit log
type AutomationLogRecord struct {
	ID         uuid.UUID `db:"id" json:"id"`
	CampaignID uuid.UUID `db:"campaign_id" json:"campaign_id"`
	UserID     uuid.UUID `db:"user_id" json:"user_id"`
	Mode       string    `db:"mode" json:"mode"`
	Status     string    `db:"status" json:"status"`
	Metrics    JSONB     `db:"metrics" json:"metrics"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// AutomationStep is a single step entry appended to an automation log
type AutomationStep struct {
	Name    string                 `json:"name"`
	Status  string                 `json:"status"` // STARTED or COMPLETED
	Details map[string]interface{} `json:"details,omitempty"`
	At      time.Time              `json:"at"`
}

// AutomationMetrics is the running metrics record for an automation session
type AutomationMetrics struct {
	CreatorsFound        int     `json:"creators_found"`
	ContractsGenerated   int     `json:"contracts_generated"`
	EmailsSent           int     `json:"emails_sent"`
	CallsMade            int     `json:"calls_made"`
	CommunicationsSent   int     `json:"communications_sent"`
	CommunicationsFailed int     `json:"communications_failed"`
	SuccessRate          float64 `json:"success_rate"`
	Failed               bool    `json:"failed"`
}
