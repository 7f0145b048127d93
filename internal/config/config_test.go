package config

import (
	"errors"
	"strings"
	"testing"
)

func TestTwilioConfigValidate_AllPresent(t *testing.T) {
	cfg := TwilioConfig{
		AccountSID:      "AC123",
		AuthToken:       "token",
		FromNumber:      "+15550001111",
		VoiceWebhookURL: "https://example.com/voice",
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestTwilioConfigValidate_ReportsEveryMissingKey(t *testing.T) {
	cfg := TwilioConfig{AuthToken: "token"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, ErrEmptyEnvironmentVariable) {
		t.Errorf("expected ErrEmptyEnvironmentVariable, got %v", err)
	}
	for _, key := range []string{"TWILIO_ACCOUNT_SID", "TWILIO_FROM_NUMBER", "TWILIO_VOICE_WEBHOOK_URL"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("expected error to name %s, got %q", key, err.Error())
		}
	}
	if strings.Contains(err.Error(), "TWILIO_AUTH_TOKEN") {
		t.Errorf("did not expect TWILIO_AUTH_TOKEN in %q", err.Error())
	}
}
