package repositories

import (
	"context"

	"go.uber.org/zap"

	"elaundry/internal/entities"
	apperrors "elaundry/pkg/errors"
	"elaundry/pkg/types"
)

// StaticBranchRepository serves a fixed, in-memory catalog.
type StaticBranchRepository struct {
	branches []entities.Branch
	logger   *zap.Logger
}

func NewStaticBranchRepository(branches []entities.Branch, logger *zap.Logger) BranchRepositoryInterface {
	return &StaticBranchRepository{
		branches: append([]entities.Branch(nil), branches...),
		logger:   logger,
	}
}

func (r *StaticBranchRepository) GetBranches(ctx context.Context, filter types.Filter) ([]entities.Branch, uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	list, total := applyListParams(r.branches, filter)
	return list, total, nil
}

func (r *StaticBranchRepository) FindBranch(ctx context.Context, id entities.BranchID) (*entities.Branch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, ok := findIn(r.branches, id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return b, nil
}
