package automation

import (
	"time"

	"outreach-server/internal/store"

	"github.com/google/uuid"
)

// CampaignStatus is the stage a campaign automation run is currently in.
type CampaignStatus string

const (
	StatusInitiated          CampaignStatus = "INITIATED"
	StatusCreatorSearch      CampaignStatus = "CREATOR_SEARCH"
	StatusContractPhase      CampaignStatus = "CONTRACT_PHASE"
	StatusOutreach           CampaignStatus = "OUTREACH"
	StatusResponseProcessing CampaignStatus = "RESPONSE_PROCESSING"
	StatusCompleted          CampaignStatus = "COMPLETED"
	StatusFailed             CampaignStatus = "FAILED"
)

// Mode selects how a run is driven.
type Mode string

const (
	ModeAutomatic Mode = "AUTOMATIC"
	ModeManual    Mode = "MANUAL"
)

// Channel is the medium a communication went through.
type Channel string

const (
	ChannelEmail  Channel = "EMAIL"
	ChannelPhone  Channel = "PHONE"
	ChannelSystem Channel = "SYSTEM"
)

// ContactPreference is the caller-chosen outreach channel for one creator.
type ContactPreference string

const (
	PreferenceEmail ContactPreference = "EMAIL"
	PreferencePhone ContactPreference = "PHONE"
	PreferenceNone  ContactPreference = "NONE"
)

// CommStatus records whether a communication went out.
type CommStatus string

const (
	CommStatusSent   CommStatus = "SENT"
	CommStatusFailed CommStatus = "FAILED"
)

// SystemActor is the creator id used for orchestrator-level narration entries.
const SystemActor = "system"

// Creator is a campaign candidate annotated with the caller's contact
// preference for this run.
type Creator struct {
	ID             uuid.UUID         `json:"id"`
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Phone          *string           `json:"phone,omitempty"`
	Platform       string            `json:"platform"`
	Followers      int               `json:"followers"`
	EngagementRate float64           `json:"engagement_rate"`
	RelevanceScore float64           `json:"relevance_score"`
	Preference     ContactPreference `json:"preference"`
}

func creatorFromRow(row store.Creator) Creator {
	return Creator{
		ID:             row.ID,
		Name:           row.Name,
		Email:          row.Email,
		Phone:          row.Phone,
		Platform:       row.Platform,
		Followers:      row.Followers,
		EngagementRate: row.EngagementRate,
		RelevanceScore: row.RelevanceScore,
		Preference:     PreferenceNone,
	}
}

// Communication is one append-only audit entry in the run's trail.
type Communication struct {
	ID        uuid.UUID  `json:"id"`
	CreatorID string     `json:"creator_id"`
	Channel   Channel    `json:"channel"`
	Status    CommStatus `json:"status"`
	Content   string     `json:"content"`
	Timestamp time.Time  `json:"timestamp"`
}

// CreatorPreference is one caller-supplied preference assignment.
type CreatorPreference struct {
	CreatorID  uuid.UUID         `json:"creator_id"`
	Preference ContactPreference `json:"preference"`
}

// PlannedAction is one step of an execution plan. CreatorID stays a raw
// string because the value round-trips through model output.
type PlannedAction struct {
	Type      Channel `json:"type"`
	CreatorID string  `json:"creator_id"`
	Priority  int     `json:"priority"`
	Reasoning string  `json:"reasoning"`
}

// ExecutionPlan is the prioritized outreach sequence produced by the planner.
type ExecutionPlan struct {
	Sequence          []PlannedAction `json:"sequence"`
	StrategyReasoning string          `json:"strategy_reasoning"`
}

// CampaignState is the aggregate snapshot of one automation run. It is
// replaced wholesale on every mutation and broadcast to the progress
// callback; consumers must treat each delivery as a full snapshot.
type CampaignState struct {
	Status           CampaignStatus      `json:"status"`
	SelectedCreators []Creator           `json:"selected_creators"`
	SentContracts    []store.Contract    `json:"sent_contracts"`
	Communications   []Communication     `json:"communications"`
	Preferences      []CreatorPreference `json:"preferences,omitempty"`
	ExecutionPlan    *ExecutionPlan      `json:"execution_plan,omitempty"`
}

func newCampaignState() CampaignState {
	return CampaignState{
		Status:           StatusInitiated,
		SelectedCreators: []Creator{},
		SentContracts:    []store.Contract{},
		Communications:   []Communication{},
	}
}

// clone copies the state so callers can never observe a half-applied update.
func (s CampaignState) clone() CampaignState {
	out := s
	out.SelectedCreators = append([]Creator(nil), s.SelectedCreators...)
	out.SentContracts = append([]store.Contract(nil), s.SentContracts...)
	out.Communications = append([]Communication(nil), s.Communications...)
	out.Preferences = append([]CreatorPreference(nil), s.Preferences...)
	if s.ExecutionPlan != nil {
		plan := *s.ExecutionPlan
		plan.Sequence = append([]PlannedAction(nil), s.ExecutionPlan.Sequence...)
		out.ExecutionPlan = &plan
	}
	return out
}
