package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"outreach-server/internal/config"
	"outreach-server/internal/observability"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Client places outbound voice calls through the Twilio REST API. The JSON
// context payload for a call is handed to the voice webhook via a query
// parameter so the answering agent can see campaign, creator, and contract
// data.
type Client struct {
	rest            *twilio.RestClient
	fromNumber      string
	voiceWebhookURL string
	logger          *observability.Logger
}

func NewClient(cfg config.TwilioConfig, logger *observability.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &Client{
		rest:            rest,
		fromNumber:      cfg.FromNumber,
		voiceWebhookURL: cfg.VoiceWebhookURL,
		logger:          logger,
	}, nil
}

// PlaceCall initiates one outbound call and returns the provider call SID.
// The payload is marshaled to JSON and attached to the voice webhook URL.
func (c *Client) PlaceCall(ctx context.Context, to string, payload any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if to == "" {
		return "", fmt.Errorf("destination phone number is required")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal call context payload: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_to", Value: to},
	)

	params := &openapi.CreateCallParams{}
	params.SetTo(to)
	params.SetFrom(c.fromNumber)
	params.SetUrl(fmt.Sprintf("%s?context=%s", c.voiceWebhookURL, url.QueryEscape(string(body))))

	resp, err := c.rest.Api.CreateCall(params)
	if err != nil {
		c.logger.Error(ctx, "failed to place outbound call", err)
		return "", fmt.Errorf("failed to place outbound call: %w", err)
	}

	sid := ""
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	c.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "call_sid", Value: sid}), "outbound call placed")
	return sid, nil
}
