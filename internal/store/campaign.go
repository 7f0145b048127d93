package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlGetCampaignByID = `
SELECT id, name, brand, budget, spent, platform, min_followers, max_engagement_rate,
       goals, audience, deliverables, timeline, creators_assigned, created_at, updated_at
FROM campaigns
WHERE id = $1
`

// GetCampaignByID retrieves a campaign by ID
func (s *Store) GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign by id", err)
		return Campaign{}, fmt.Errorf("failed to get campaign by id: %w", err)
	}
	return campaign, nil
}

const sqlGetCampaignCreators = `
SELECT c.id, c.name, c.email, c.phone, c.platform, c.followers, c.engagement_rate,
       c.relevance_score, c.created_at, c.updated_at
FROM creators c
JOIN campaign_creators cc ON cc.creator_id = c.id
WHERE cc.campaign_id = $1
ORDER BY c.relevance_score DESC
`

// GetCampaignWithCreators retrieves a campaign together with its associated
// creators. Association rows may lag campaign creation; when the campaign is
// flagged as having pre-selected creators but none are joined yet, the call
// returns ErrAssociationsNotReady so callers can retry.
func (s *Store) GetCampaignWithCreators(ctx context.Context, campaignID uuid.UUID) (Campaign, []Creator, error) {
	campaign, err := s.GetCampaignByID(ctx, campaignID)
	if err != nil {
		return Campaign{}, nil, err
	}

	var creators []Creator
	if err := s.db.SelectContext(ctx, &creators, sqlGetCampaignCreators, campaignID); err != nil {
		s.logger.Error(ctx, "failed to get campaign creators", err)
		return Campaign{}, nil, fmt.Errorf("failed to get campaign creators: %w", err)
	}

	if campaign.CreatorsAssigned && len(creators) == 0 {
		return Campaign{}, nil, ErrAssociationsNotReady
	}

	return campaign, creators, nil
}
