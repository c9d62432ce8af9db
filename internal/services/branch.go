package services

import (
	"context"
	"fmt"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"elaundry/internal/directory"
	"elaundry/internal/dto"
	"elaundry/internal/entities"
	"elaundry/internal/repositories"
	"elaundry/pkg/config"
	"elaundry/pkg/geo"
	"elaundry/pkg/types"
)

type BranchService struct {
	branchRepository repositories.BranchRepositoryInterface
	mapOptions       directory.Options
	logger           *zap.Logger
}

func NewBranchService(branchRepository repositories.BranchRepositoryInterface, mapOptions directory.Options, logger *zap.Logger) *BranchService {
	return &BranchService{
		branchRepository: branchRepository,
		mapOptions:       mapOptions,
		logger:           logger,
	}
}

// DirectoryOptionsFromConfig maps MAP_* settings onto directory options.
func DirectoryOptionsFromConfig(cfg config.MapConfig) directory.Options {
	return directory.Options{
		InitialCenter:    &geo.LatLng{Lat: cfg.CenterLat, Lng: cfg.CenterLng},
		InitialZoom:      null.Float64From(cfg.Zoom),
		SingleResultZoom: cfg.SingleResultZoom,
		SelectionZoom:    cfg.SelectionZoom,
		PaddingPx:        cfg.PaddingPx,
		MapSize:          geo.Size{W: cfg.WidthPx, H: cfg.HeightPx},
		SettleDelay:      cfg.SettleDelay,
	}
}

func (s *BranchService) DirectoryOptions() directory.Options { return s.mapOptions }

// Catalog returns the full branch list in catalog order.
func (s *BranchService) Catalog(ctx context.Context) ([]entities.Branch, error) {
	list, _, err := s.branchRepository.GetBranches(ctx, types.Filter{})
	if err != nil {
		return nil, fmt.Errorf("load branch catalog: %w", err)
	}
	return list, nil
}

func (s *BranchService) GetBranches(ctx context.Context, filter types.Filter) ([]dto.BranchDTO, uint64, error) {
	list, total, err := s.branchRepository.GetBranches(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return dto.BranchesToDTO(list), total, nil
}

func (s *BranchService) FindBranch(ctx context.Context, id entities.BranchID) (*dto.BranchDTO, error) {
	b, err := s.branchRepository.FindBranch(ctx, id)
	if err != nil {
		return nil, err
	}
	res := dto.BranchToDTO(*b)
	return &res, nil
}

// CallTarget resolves the tel: URI for a branch.
func (s *BranchService) CallTarget(ctx context.Context, id entities.BranchID) (string, error) {
	list, err := s.Catalog(ctx)
	if err != nil {
		return "", err
	}
	d := directory.New(list, s.mapOptions)
	defer d.Close()
	return d.CallTarget(id)
}

// Preview computes the settled directory for a query and an optional
// selection, the way a visitor would see it after typing and clicking.
func (s *BranchService) Preview(ctx context.Context, query string, selected entities.BranchID) (*dto.DirectoryViewDTO, error) {
	list, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	d := directory.New(list, s.mapOptions)
	defer d.Close()

	d.SetQuery(query)
	d.Settle()
	if !selected.IsZero() && !d.Select(selected) {
		s.logger.Debug("preview: ignoring unknown selection", zap.String("id", selected.String()))
	}

	view := dto.DirectoryViewFromSnapshot(d.Snapshot())
	return &view, nil
}
