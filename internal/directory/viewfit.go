package directory

import (
	"math"

	"elaundry/internal/entities"
	"elaundry/pkg/geo"
)

// ComputeFit returns the viewport that shows every branch in filtered.
// A single branch is centered at no less than SingleResultZoom so it is not
// shown zoomed far out. An empty list has no fit and leaves the map alone.
func ComputeFit(filtered []entities.Branch, opts Options) (geo.Viewport, bool) {
	switch len(filtered) {
	case 0:
		return geo.Viewport{}, false
	case 1:
		return geo.Viewport{
			Center: filtered[0].Position(),
			Zoom:   math.Max(opts.InitialZoom.Float64, opts.SingleResultZoom),
		}, true
	}

	var bounds geo.Bounds
	for _, b := range filtered {
		bounds = bounds.Extend(b.Position())
	}
	return geo.FitBounds(bounds, opts.MapSize, opts.PaddingPx, opts.MinZoom, opts.MaxZoom), true
}

// selectionView is where the map pans when a branch is picked.
func selectionView(b entities.Branch, opts Options) geo.Viewport {
	return geo.Viewport{
		Center: b.Position(),
		Zoom:   math.Max(opts.InitialZoom.Float64, opts.SelectionZoom),
	}
}
