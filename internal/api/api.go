package api

import (
	"net/http"

	automationHandler "outreach-server/internal/automation/handler"
	campaignHandler "outreach-server/internal/campaign/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router            *gin.RouterGroup
	campaignHandler   campaignHandler.Handler
	automationHandler *automationHandler.Handler
}

func New(router *gin.RouterGroup, campaignHandler campaignHandler.Handler,
	automationHandler *automationHandler.Handler) API {
	return API{
		router:            router,
		campaignHandler:   campaignHandler,
		automationHandler: automationHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		apiGroup.GET("/creators/:creator_id", a.campaignHandler.HandleGetCreator)

		campaignGroup := apiGroup.Group("/campaigns/:campaign_id")
		campaignGroup.GET("", a.campaignHandler.HandleGetCampaign)
		campaignGroup.GET("/contracts", a.campaignHandler.HandleGetContracts)

		automationGroup := campaignGroup.Group("/automation")
		automationGroup.POST("/start", a.automationHandler.HandleStart)
		automationGroup.POST("/preferences", a.automationHandler.HandleSetPreferences)
		automationGroup.GET("/state", a.automationHandler.HandleGetState)
		automationGroup.POST("/reset", a.automationHandler.HandleReset)
		automationGroup.GET("/progress", a.automationHandler.HandleProgress)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
