package automation

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=automation

import (
	"context"

	"outreach-server/internal/email"
	"outreach-server/internal/store"

	"github.com/google/uuid"
)

// AutomationStore defines the database operations required by the orchestrator
type AutomationStore interface {
	GetCampaignWithCreators(ctx context.Context, campaignID uuid.UUID) (store.Campaign, []store.Creator, error)
	SearchCreators(ctx context.Context, params store.SearchCreatorsParams) ([]store.Creator, error)
	CreateContract(ctx context.Context, params store.CreateContractParams) (store.Contract, error)
}

// EmailSender is the bulk-capable outreach email boundary. Per-item results
// arrive through the callback in no particular order.
type EmailSender interface {
	SendOutreachBulk(ctx context.Context, content email.OutreachContent,
		recipients []email.OutreachRecipient, onResult func(email.OutreachResult)) email.OutreachSummary
}

// PhoneCaller initiates a single outbound call with a JSON context payload.
type PhoneCaller interface {
	PlaceCall(ctx context.Context, to string, payload any) (string, error)
}

// PlanModel is the text-in/text-out planning collaborator.
type PlanModel interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// AutomationLog is the append-only observability record for one session.
// All calls are best-effort from the orchestrator's point of view.
type AutomationLog interface {
	StartAutomationLog(ctx context.Context, campaignID, userID uuid.UUID, mode string) (uuid.UUID, error)
	AddAutomationStep(ctx context.Context, logID uuid.UUID, step store.AutomationStep) error
	AddAutomationError(ctx context.Context, logID uuid.UUID, kind, message string) error
	UpdateAutomationMetrics(ctx context.Context, logID uuid.UUID, metrics store.AutomationMetrics) error
}
