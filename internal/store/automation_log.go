package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

const sqlStartAutomationLog = `
INSERT INTO automation_logs (campaign_id, user_id, mode, status)
VALUES ($1, $2, $3, $4)
RETURNING id
`

// StartAutomationLog opens a new automation session log and returns its id
func (s *Store) StartAutomationLog(ctx context.Context, campaignID, userID uuid.UUID, mode string) (uuid.UUID, error) {
	var logID uuid.UUID
	err := s.db.GetContext(ctx, &logID, sqlStartAutomationLog,
		campaignID, userID, mode, AutomationLogStatusRunning)
	if err != nil {
		s.logger.Error(ctx, "failed to start automation log", err)
		return uuid.Nil, fmt.Errorf("failed to start automation log: %w", err)
	}
	return logID, nil
}

const sqlAddAutomationEntry = `
INSERT INTO automation_log_entries (log_id, kind, payload)
VALUES ($1, $2, $3)
`

// AddAutomationStep appends a step entry to an automation session log
func (s *Store) AddAutomationStep(ctx context.Context, logID uuid.UUID, step AutomationStep) error {
	payload, err := json.Marshal(step)
	if err != nil {
		return fmt.Errorf("failed to marshal automation step: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, sqlAddAutomationEntry, logID, AutomationEntryKindStep, payload); err != nil {
		s.logger.Error(ctx, "failed to add automation step", err)
		return fmt.Errorf("failed to add automation step: %w", err)
	}
	return nil
}

// AddAutomationError appends an error entry to an automation session log
func (s *Store) AddAutomationError(ctx context.Context, logID uuid.UUID, kind, message string) error {
	payload, err := json.Marshal(map[string]string{"kind": kind, "message": message})
	if err != nil {
		return fmt.Errorf("failed to marshal automation error: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, sqlAddAutomationEntry, logID, AutomationEntryKindError, payload); err != nil {
		s.logger.Error(ctx, "failed to add automation error", err)
		return fmt.Errorf("failed to add automation error: %w", err)
	}
	return nil
}

const sqlUpdateAutomationMetrics = `
UPDATE automation_logs
SET metrics = $2,
    status = $3,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// UpdateAutomationMetrics stores the running metrics record for a session and
// marks the session completed or failed.
func (s *Store) UpdateAutomationMetrics(ctx context.Context, logID uuid.UUID, metrics AutomationMetrics) error {
	payload, err := json.Marshal(metrics)
	if err != nil {
		return fmt.Errorf("failed to marshal automation metrics: %w", err)
	}
	status := AutomationLogStatusCompleted
	if metrics.Failed {
		status = AutomationLogStatusFailed
	}
	if _, err := s.db.ExecContext(ctx, sqlUpdateAutomationMetrics, logID, payload, status); err != nil {
		s.logger.Error(ctx, "failed to update automation metrics", err)
		return fmt.Errorf("failed to update automation metrics: %w", err)
	}
	return nil
}
