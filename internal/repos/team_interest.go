package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/saladbowl/saladbowl-backend/internal/logger"
	"github.com/saladbowl/saladbowl-backend/internal/types"
)

type TeamInterestRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.TeamInterest) ([]*types.TeamInterest, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.TeamInterest, error)
}

type teamInterestRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTeamInterestRepo(db *gorm.DB, baseLog *logger.Logger) TeamInterestRepo {
	repoLog := baseLog.With("repo", "TeamInterestRepo")
	return &teamInterestRepo{db: db, log: repoLog}
}

func (tr *teamInterestRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.TeamInterest) ([]*types.TeamInterest, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	if len(rows) == 0 {
		return []*types.TeamInterest{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (tr *teamInterestRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.TeamInterest, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var results []*types.TeamInterest
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
