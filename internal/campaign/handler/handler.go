package handler

import (
	"context"
	"net/http"

	"outreach-server/internal/apierrors"
	"outreach-server/internal/observability"
	"outreach-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

// CampaignStore defines the read operations the dashboard needs.
type CampaignStore interface {
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	GetCreatorByID(ctx context.Context, creatorID uuid.UUID) (store.Creator, error)
	GetContractsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]store.Contract, error)
}

type Handler struct {
	store  CampaignStore
	logger *observability.Logger
}

func New(store CampaignStore, logger *observability.Logger) Handler {
	return Handler{
		store:  store,
		logger: logger,
	}
}

// HandleGetCampaign returns one campaign by id.
func (h Handler) HandleGetCampaign(c *gin.Context) {
	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	campaign, err := h.store.GetCampaignByID(c.Request.Context(), campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleGetCreator returns one creator by id.
func (h Handler) HandleGetCreator(c *gin.Context) {
	creatorID, err := uuid.Parse(c.Param("creator_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid creator ID format")
		return
	}

	creator, err := h.store.GetCreatorByID(c.Request.Context(), creatorID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, creator)
}

// HandleGetContracts lists the contracts generated for a campaign.
func (h Handler) HandleGetContracts(c *gin.Context) {
	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	contracts, err := h.store.GetContractsByCampaign(c.Request.Context(), campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contracts": contracts,
		"count":     len(contracts),
	})
}

func (h Handler) campaignID(c *gin.Context) (uuid.UUID, bool) {
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid campaign ID format")
		return uuid.Nil, false
	}
	return campaignID, true
}
