package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// SearchCreatorsParams are the filters applied during creator discovery
type SearchCreatorsParams struct {
	Platform          string
	MinFollowers      int
	MaxEngagementRate float64
	Limit             int
}

const sqlSearchCreators = `
SELECT id, name, email, phone, platform, followers, engagement_rate,
       relevance_score, created_at, updated_at
FROM creators
WHERE platform = $1
  AND followers >= $2
  AND engagement_rate <= $3
ORDER BY relevance_score DESC
LIMIT $4
`

// SearchCreators returns candidate creators matching the campaign's target
// filters, best matches first.
func (s *Store) SearchCreators(ctx context.Context, params SearchCreatorsParams) ([]Creator, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 10
	}

	var creators []Creator
	err := s.db.SelectContext(ctx, &creators, sqlSearchCreators,
		params.Platform, params.MinFollowers, params.MaxEngagementRate, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to search creators", err)
		return nil, fmt.Errorf("failed to search creators: %w", err)
	}
	return creators, nil
}

const sqlGetCreatorByID = `
SELECT id, name, email, phone, platform, followers, engagement_rate,
       relevance_score, created_at, updated_at
FROM creators
WHERE id = $1
`

// GetCreatorByID retrieves a creator by ID
func (s *Store) GetCreatorByID(ctx context.Context, creatorID uuid.UUID) (Creator, error) {
	var creator Creator
	err := s.db.GetContext(ctx, &creator, sqlGetCreatorByID, creatorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Creator{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get creator by id", err)
		return Creator{}, fmt.Errorf("failed to get creator by id: %w", err)
	}
	return creator, nil
}
