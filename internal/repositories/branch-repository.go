package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"elaundry/internal/entities"
	db "elaundry/internal/infrastructure/bd"
	apperrors "elaundry/pkg/errors"
	"elaundry/pkg/types"
)

const branchTable = "branches"

// filterable and sortable columns, keyed by their API name
var branchMap = map[string]string{
	"id":      "b.id",
	"name":    "b.name",
	"address": "b.address",
	"phone":   "b.phone",
	"hours":   "b.hours",
}

var branchColumns = []string{"b.id", "b.name", "b.address", "b.lat", "b.lng", "b.phone", "b.hours"}

type BranchRepositoryInterface interface {
	GetBranches(ctx context.Context, filter types.Filter) ([]entities.Branch, uint64, error)
	FindBranch(ctx context.Context, id entities.BranchID) (*entities.Branch, error)
}

// BranchWriter is implemented by sources that can be seeded.
type BranchWriter interface {
	UpsertBranch(ctx context.Context, tx pgx.Tx, branch entities.Branch) (entities.BranchID, error)
}

type BranchRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewBranchRepository(storage *pgxpool.Pool, logger *zap.Logger) *BranchRepository {
	return &BranchRepository{storage: storage, logger: logger}
}

func scanBranch(row pgx.Row) (*entities.Branch, error) {
	var b entities.Branch
	var id int64

	err := row.Scan(&id, &b.Name, &b.Address, &b.Lat, &b.Lng, &b.Phone, &b.Hours)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan branch: %w", err)
	}
	b.ID = entities.BranchID(strconv.FormatInt(id, 10))
	return &b, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func (r *BranchRepository) GetBranches(ctx context.Context, filter types.Filter) ([]entities.Branch, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	// same haystack as the in-memory filter: name, a space, then the address
	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + escapeLike(filter.Search) + "%"
			return b.Where(sq.Expr("(b.name || ' ' || COALESCE(b.address, '')) ILIKE ?", pat))
		}
		return b
	}

	countBuilder := applySearch(psql.Select("COUNT(b.id)").From(branchTable + " AS b"))
	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = db.ApplyListParams(countBuilder, countFilter, branchMap)

	sqlCount, argsCount, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Branch{}, 0, nil
	}

	baseBuilder := applySearch(psql.Select(branchColumns...).From(branchTable + " AS b"))
	baseBuilder = db.ApplyListParams(baseBuilder, filter, branchMap)
	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("b.id ASC")
	}

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	branches := make([]entities.Branch, 0, total)
	for rows.Next() {
		branch, err := scanBranch(rows)
		if err != nil {
			return nil, 0, err
		}
		branches = append(branches, *branch)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return branches, total, nil
}

func (r *BranchRepository) FindBranch(ctx context.Context, id entities.BranchID) (*entities.Branch, error) {
	n, err := strconv.ParseInt(id.String(), 10, 64)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}

	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(branchColumns...).
		From(branchTable + " AS b").
		Where(sq.Eq{"b.id": n}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanBranch(r.storage.QueryRow(ctx, query, args...))
}

// UpsertBranch inserts the branch or overwrites the row with the same id.
// A branch without a numeric id gets a new one.
func (r *BranchRepository) UpsertBranch(ctx context.Context, tx pgx.Tx, branch entities.Branch) (entities.BranchID, error) {
	var querier Querier = r.storage
	if tx != nil {
		querier = tx
	}

	var newID int64
	if n, err := strconv.ParseInt(branch.ID.String(), 10, 64); err == nil {
		query := `
			INSERT INTO branches (id, name, address, lat, lng, phone, hours, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
			ON CONFLICT (id) DO UPDATE
			SET name = EXCLUDED.name, address = EXCLUDED.address, lat = EXCLUDED.lat, lng = EXCLUDED.lng,
			    phone = EXCLUDED.phone, hours = EXCLUDED.hours, updated_at = NOW()
			RETURNING id
		`
		err = querier.QueryRow(ctx, query,
			n, branch.Name, branch.Address, branch.Lat, branch.Lng, branch.Phone, branch.Hours,
		).Scan(&newID)
		if err != nil {
			return "", err
		}
	} else {
		query := `
			INSERT INTO branches (name, address, lat, lng, phone, hours, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			RETURNING id
		`
		err = querier.QueryRow(ctx, query,
			branch.Name, branch.Address, branch.Lat, branch.Lng, branch.Phone, branch.Hours,
		).Scan(&newID)
		if err != nil {
			return "", err
		}
	}

	// explicit ids leave the serial behind
	if _, err := querier.Exec(ctx,
		`SELECT setval(pg_get_serial_sequence('branches', 'id'), GREATEST((SELECT MAX(id) FROM branches), 1))`,
	); err != nil {
		return "", err
	}
	return entities.BranchID(strconv.FormatInt(newID, 10)), nil
}

// OpenBranchRepository picks the catalog source named in configuration.
func OpenBranchRepository(source string, pool *pgxpool.Pool, logger *zap.Logger) (BranchRepositoryInterface, error) {
	switch source {
	case "", "static":
		return NewStaticBranchRepository(DefaultBranches(), logger), nil
	case "postgres":
		if pool == nil {
			return nil, fmt.Errorf("%w: postgres source needs POSTGRES_DSN", apperrors.ErrUnknownSource)
		}
		return NewBranchRepository(pool, logger), nil
	}
	return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownSource, source)
}
