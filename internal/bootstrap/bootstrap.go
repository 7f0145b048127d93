package bootstrap

import (
	"context"
	"fmt"

	"outreach-server/internal/automation"
	automationHandler "outreach-server/internal/automation/handler"
	campaignHandler "outreach-server/internal/campaign/handler"
	googleaiClient "outreach-server/internal/clients/googleai"
	"outreach-server/internal/clients/mail"
	openaiClient "outreach-server/internal/clients/openai"
	twilioClient "outreach-server/internal/clients/twilio"
	"outreach-server/internal/config"
	"outreach-server/internal/email"
	"outreach-server/internal/observability"
	"outreach-server/internal/store"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	Store  store.Store
	Logger *observability.Logger

	CampaignHandler   campaignHandler.Handler
	AutomationHandler *automationHandler.Handler

	// planModelCloser is non-nil when the planning backend holds a
	// connection that needs releasing on shutdown.
	planModelCloser interface{ Close() error }
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create resend client: %w", err)
	}
	emailService := email.New(mailClient, cfg.Services.DefaultEmailSender, logger)

	phoneClient, err := twilioClient.NewClient(cfg.Twilio, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create twilio client: %w", err)
	}

	planModel, err := newPlanModel(ctx, cfg, logger, deps)
	if err != nil {
		return nil, err
	}

	deps.CampaignHandler = campaignHandler.New(&deps.Store, logger)
	deps.AutomationHandler = automationHandler.New(automationHandler.Collaborators{
		Store:               &deps.Store,
		Email:               emailService,
		Phone:               phoneClient,
		AuditLog:            &deps.Store,
		PlanModel:           planModel,
		CollaboratorTimeout: cfg.Automation.CollaboratorTimeout,
	}, logger)

	return deps, nil
}

func newPlanModel(ctx context.Context, cfg *config.Config, logger *observability.Logger,
	deps *Dependencies) (automation.PlanModel, error) {
	switch cfg.Services.PlannerBackend {
	case "googleai":
		client, err := googleaiClient.NewClient(ctx, cfg.Services.GoogleAIAPIKey, "", logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create google ai client: %w", err)
		}
		deps.planModelCloser = client
		return client, nil
	case "openai", "":
		client, err := openaiClient.NewClient(cfg.Services.OpenAIAPIKey, "", logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown planner backend %q", cfg.Services.PlannerBackend)
	}
}

// Cleanup releases connections held by the dependency graph.
func (d *Dependencies) Cleanup() {
	if d.planModelCloser != nil {
		if err := d.planModelCloser.Close(); err != nil {
			d.Logger.Error(context.Background(), "failed to close plan model client", err)
		}
	}
	if db := d.Store.DB(); db != nil {
		if err := db.Close(); err != nil {
			d.Logger.Error(context.Background(), "failed to close database connection", err)
		}
	}
}
