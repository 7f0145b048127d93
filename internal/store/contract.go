package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateContractParams represents parameters for creating a contract
type CreateContractParams struct {
	CampaignID uuid.UUID
	CreatorID  uuid.UUID
	Status     string
	Content    ContractContent
}

const sqlCreateContract = `
INSERT INTO contracts (campaign_id, creator_id, status, content)
VALUES ($1, $2, $3, $4)
RETURNING id, campaign_id, creator_id, status, content, created_at, updated_at
`

// CreateContract inserts a draft contract row for a creator
func (s *Store) CreateContract(ctx context.Context, params CreateContractParams) (Contract, error) {
	status := params.Status
	if status == "" {
		status = ContractStatusDraft
	}

	var contract Contract
	err := s.db.GetContext(ctx, &contract, sqlCreateContract,
		params.CampaignID, params.CreatorID, status, params.Content)
	if err != nil {
		s.logger.Error(ctx, "failed to create contract", err)
		return Contract{}, fmt.Errorf("failed to create contract: %w", err)
	}
	return contract, nil
}

const sqlGetContractsByCampaign = `
SELECT id, campaign_id, creator_id, status, content, created_at, updated_at
FROM contracts
WHERE campaign_id = $1
ORDER BY created_at
`

// GetContractsByCampaign returns every contract generated for a campaign
func (s *Store) GetContractsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]Contract, error) {
	var contracts []Contract
	err := s.db.SelectContext(ctx, &contracts, sqlGetContractsByCampaign, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to get contracts by campaign", err)
		return nil, fmt.Errorf("failed to get contracts by campaign: %w", err)
	}
	return contracts, nil
}
