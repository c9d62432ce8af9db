package seeders

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"elaundry/internal/entities"
	"elaundry/internal/repositories"
	apperrors "elaundry/pkg/errors"
)

// SeedBranches upserts branches into the catalog table in one transaction.
// Rows with the same id are overwritten, so seeding twice is harmless.
func SeedBranches(ctx context.Context, pool *pgxpool.Pool, branches []entities.Branch, logger *zap.Logger) error {
	if len(branches) == 0 {
		return apperrors.ErrEmptyCatalog
	}
	logger.Info("seeding branches", zap.Int("count", len(branches)))

	repo := repositories.NewBranchRepository(pool, logger)
	return repositories.WithTx(ctx, pool, func(tx pgx.Tx) error {
		return upsertAll(ctx, repo, tx, branches, logger)
	})
}

func upsertAll(ctx context.Context, w repositories.BranchWriter, tx pgx.Tx, branches []entities.Branch, logger *zap.Logger) error {
	for _, b := range branches {
		if strings.TrimSpace(b.Name) == "" {
			return fmt.Errorf("branch %q: name is empty: %w", b.ID, apperrors.ErrValidation)
		}
		id, err := w.UpsertBranch(ctx, tx, b)
		if err != nil {
			return fmt.Errorf("upsert branch %q: %w", b.Name, err)
		}
		logger.Debug("branch seeded", zap.String("id", id.String()), zap.String("name", b.Name))
	}
	return nil
}
