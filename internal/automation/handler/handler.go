package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"outreach-server/internal/apierrors"
	"outreach-server/internal/automation"
	"outreach-server/internal/observability"
	"outreach-server/internal/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Collaborators bundles everything a new orchestrator needs. The handler
// builds one orchestrator per campaign and keeps it for the lifetime of
// the process.
type Collaborators struct {
	Store     automation.AutomationStore
	Email     automation.EmailSender
	Phone     automation.PhoneCaller
	AuditLog  automation.AutomationLog
	PlanModel automation.PlanModel

	// CollaboratorTimeout bounds each external call made during a run.
	CollaboratorTimeout time.Duration
}

type campaignRun struct {
	orchestrator *automation.Orchestrator
	hub          *progressHub
}

type Handler struct {
	collaborators Collaborators
	logger        *observability.Logger

	mu   sync.Mutex
	runs map[uuid.UUID]*campaignRun
}

func New(collaborators Collaborators, logger *observability.Logger) *Handler {
	return &Handler{
		collaborators: collaborators,
		logger:        logger,
		runs:          make(map[uuid.UUID]*campaignRun),
	}
}

// PreferenceRequest is one creator's contact channel choice.
type PreferenceRequest struct {
	CreatorID  string `json:"creator_id" binding:"required,uuid"`
	Preference string `json:"preference" binding:"required,oneof=EMAIL PHONE NONE"`
}

// StartRequest kicks off an automation run for a campaign.
type StartRequest struct {
	UserID      string              `json:"user_id" binding:"required,uuid"`
	Mode        string              `json:"mode" binding:"omitempty,oneof=AUTOMATIC MANUAL"`
	Preferences []PreferenceRequest `json:"preferences" binding:"dive"`
}

// PreferencesRequest replaces the preference set for a campaign's run.
type PreferencesRequest struct {
	Preferences []PreferenceRequest `json:"preferences" binding:"required,dive"`
}

// HandleStart launches a campaign automation run in the background and
// returns the initial state snapshot.
func (h *Handler) HandleStart(c *gin.Context) {
	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	var req StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid user ID format")
		return
	}

	run, err := h.runFor(campaignID, userID, automation.Mode(req.Mode))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	if prefs := toPreferences(req.Preferences); len(prefs) > 0 {
		run.orchestrator.SetCreatorPreferences(prefs)
	}

	// The run outlives the request; the websocket stream and the state
	// endpoint are how callers follow it.
	ctx := context.WithoutCancel(c.Request.Context())
	go func() {
		if _, err := run.orchestrator.ExecuteCampaign(ctx); err != nil {
			h.logger.Error(ctx, "campaign automation run finished with error", err)
		}
	}()

	c.JSON(http.StatusAccepted, run.orchestrator.State())
}

// HandleSetPreferences stores contact preferences ahead of a run.
func (h *Handler) HandleSetPreferences(c *gin.Context) {
	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	var req PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	run := h.existingRun(campaignID)
	if run == nil {
		apierrors.NotFound(c, "No automation run for this campaign")
		return
	}

	run.orchestrator.SetCreatorPreferences(toPreferences(req.Preferences))
	c.JSON(http.StatusOK, run.orchestrator.State())
}

// HandleGetState returns the current run snapshot.
func (h *Handler) HandleGetState(c *gin.Context) {
	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	run := h.existingRun(campaignID)
	if run == nil {
		apierrors.NotFound(c, "No automation run for this campaign")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":                 run.orchestrator.State(),
		"degraded_audit_events": run.orchestrator.DegradedAuditEvents(),
	})
}

// HandleReset discards run state so the campaign can be driven again.
func (h *Handler) HandleReset(c *gin.Context) {
	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	run := h.existingRun(campaignID)
	if run == nil {
		apierrors.NotFound(c, "No automation run for this campaign")
		return
	}

	run.orchestrator.Reset()
	c.JSON(http.StatusOK, run.orchestrator.State())
}

// HandleProgress upgrades to a websocket and streams full state snapshots
// as the run progresses.
func (h *Handler) HandleProgress(c *gin.Context) {
	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	run := h.existingRun(campaignID)
	if run == nil {
		apierrors.NotFound(c, "No automation run for this campaign")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error(c.Request.Context(), "websocket upgrade failed", err)
		return
	}

	run.hub.serve(c.Request.Context(), conn, run.orchestrator.State())
}

func (h *Handler) campaignID(c *gin.Context) (uuid.UUID, bool) {
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid campaign ID format")
		return uuid.Nil, false
	}
	return campaignID, true
}

// runFor returns the existing run for a campaign or builds a fresh one.
// Each run gets its own limiter so campaigns do not throttle each other.
func (h *Handler) runFor(campaignID, userID uuid.UUID, mode automation.Mode) (*campaignRun, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if run, ok := h.runs[campaignID]; ok {
		return run, nil
	}

	hub := newProgressHub(h.logger)
	orchestrator, err := automation.New(automation.Params{
		CampaignID:          campaignID,
		UserID:              userID,
		Mode:                mode,
		Store:               h.collaborators.Store,
		Email:               h.collaborators.Email,
		Phone:               h.collaborators.Phone,
		AuditLog:            h.collaborators.AuditLog,
		PlanModel:           h.collaborators.PlanModel,
		Limiter:             ratelimit.New(ratelimit.DefaultPolicy()),
		Logger:              h.logger,
		CollaboratorTimeout: h.collaborators.CollaboratorTimeout,
		OnProgress:          hub.publish,
	})
	if err != nil {
		return nil, err
	}

	run := &campaignRun{orchestrator: orchestrator, hub: hub}
	h.runs[campaignID] = run
	return run, nil
}

func (h *Handler) existingRun(campaignID uuid.UUID) *campaignRun {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.runs[campaignID]
}

func toPreferences(reqs []PreferenceRequest) []automation.CreatorPreference {
	prefs := make([]automation.CreatorPreference, 0, len(reqs))
	for _, req := range reqs {
		creatorID, err := uuid.Parse(req.CreatorID)
		if err != nil {
			continue
		}
		prefs = append(prefs, automation.CreatorPreference{
			CreatorID:  creatorID,
			Preference: automation.ContactPreference(req.Preference),
		})
	}
	return prefs
}
