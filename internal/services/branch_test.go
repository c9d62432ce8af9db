package services

import (
	"context"
	"errors"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"elaundry/internal/directory"
	"elaundry/internal/entities"
	"elaundry/internal/repositories"
	"elaundry/pkg/config"
	apperrors "elaundry/pkg/errors"
	"elaundry/pkg/geo"
	"elaundry/pkg/types"
)

func catalog() []entities.Branch {
	return append(repositories.DefaultBranches(), entities.Branch{
		ID: "3", Name: "Uttara Branch", Lat: 23.8759, Lng: 90.3795,
		Hours: null.StringFrom("10am - 6pm"),
	})
}

func newBranchService() *BranchService {
	repo := repositories.NewStaticBranchRepository(catalog(), zap.NewNop())
	return NewBranchService(repo, directory.Options{}, zap.NewNop())
}

func TestBranchServiceGetBranches(t *testing.T) {
	s := newBranchService()

	list, total, err := s.GetBranches(context.Background(), types.Filter{Search: "uttara"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].Address)
	assert.Empty(t, list[0].CallURI)

	b, err := s.FindBranch(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "tel:+8801712345678", b.CallURI)

	_, err = s.FindBranch(context.Background(), "99")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestBranchServiceCallTarget(t *testing.T) {
	s := newBranchService()
	ctx := context.Background()

	uri, err := s.CallTarget(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "tel:+8801711111111", uri)

	_, err = s.CallTarget(ctx, "3")
	assert.True(t, errors.Is(err, apperrors.ErrNoPhone))

	_, err = s.CallTarget(ctx, "42")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestBranchServicePreview(t *testing.T) {
	s := newBranchService()

	view, err := s.Preview(context.Background(), "gulshan", "")
	require.NoError(t, err)
	assert.Equal(t, 1, view.Shown)
	assert.Equal(t, 3, view.Total)
	assert.Equal(t, float64(directory.DefaultSingleResultZoom), view.Viewport.Zoom)

	view, err = s.Preview(context.Background(), "", "2")
	require.NoError(t, err)
	assert.Equal(t, entities.BranchID("2"), view.Selected)
	assert.Equal(t, float64(directory.DefaultSelectionZoom), view.Viewport.Zoom)

	view, err = s.Preview(context.Background(), "nothing here", "404")
	require.NoError(t, err)
	assert.Equal(t, 0, view.Shown)
	assert.True(t, view.Selected.IsZero())
}

func TestDirectoryOptionsKeepConfiguredInitialView(t *testing.T) {
	opts := DirectoryOptionsFromConfig(config.MapConfig{Zoom: 0, SelectionZoom: 14})
	assert.Equal(t, geo.Viewport{Center: geo.LatLng{}, Zoom: 0}, opts.InitialView())
}
