package apierrors

import (
	"errors"
	"strings"

	"outreach-server/internal/automation"
	"outreach-server/internal/email"
	"outreach-server/internal/store"

	"github.com/gin-gonic/gin"
)

// RespondWithError converts domain errors into consistent API responses.
// Unknown errors come back as a sanitized 500.
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var parseErr *automation.PlanParseError

	switch {
	case errors.Is(err, store.ErrNotFound):
		NotFound(c, "Resource not found")

	case errors.Is(err, store.ErrAssociationsNotReady):
		ServiceUnavailable(c, "CAMPAIGN_NOT_READY",
			"Campaign creators are still being assigned. Please try again shortly.", err)

	case errors.Is(err, automation.ErrExecutionInProgress):
		Conflict(c, "EXECUTION_IN_PROGRESS", "Campaign execution is already in progress")

	case errors.Is(err, automation.ErrUnknownStage):
		ServiceUnavailable(c, "PLANNER_ERROR",
			"The planning service returned an unexpected answer. Please try again later.", err)

	case errors.As(err, &parseErr):
		ServiceUnavailable(c, "PLAN_PARSE_ERROR",
			"The planning service returned an unusable plan. Please try again later.", err)

	case errors.Is(err, email.ErrInvalidEmailAddress):
		BadRequest(c, "INVALID_EMAIL", "Creator email address is missing or invalid")

	default:
		mapExternalServiceError(c, err)
	}
}

// mapExternalServiceError identifies provider errors by message content and
// maps them to 503s so clients know to retry.
func mapExternalServiceError(c *gin.Context, err error) {
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "resend") || strings.Contains(errMsg, "email service") {
		ServiceUnavailable(c, "EMAIL_SERVICE_ERROR",
			"Email service is temporarily unavailable. Please try again later.", err)
		return
	}

	if strings.Contains(errMsg, "twilio") || strings.Contains(errMsg, "call service") {
		ServiceUnavailable(c, "CALL_SERVICE_ERROR",
			"Call service is temporarily unavailable. Please try again later.", err)
		return
	}

	if strings.Contains(errMsg, "openai") || strings.Contains(errMsg, "gemini") || strings.Contains(errMsg, "ai service") {
		ServiceUnavailable(c, "AI_SERVICE_ERROR",
			"AI service is temporarily unavailable. Please try again later.", err)
		return
	}

	InternalError(c, err)
}
