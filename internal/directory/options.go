package directory

import (
	"time"

	"github.com/aarondl/null/v8"

	"elaundry/internal/entities"
	"elaundry/pkg/geo"
	"elaundry/pkg/scheduler"
)

const (
	DefaultZoom             = 12
	DefaultSingleResultZoom = 13
	DefaultSelectionZoom    = 14
	DefaultPaddingPx        = 60
	DefaultMinZoom          = 0
	DefaultMaxZoom          = 18
	DefaultSettleDelay      = 50 * time.Millisecond
)

var (
	DefaultCenter  = geo.LatLng{Lat: 23.8103, Lng: 90.4125}
	DefaultMapSize = geo.Size{W: 800, H: 620}
)

// Options configure one directory view. The initial view is taken as given
// whenever it is set, (0,0) and zoom 0 included; the remaining zero fields
// take the defaults above.
type Options struct {
	InitialCenter    *geo.LatLng
	InitialZoom      null.Float64
	SingleResultZoom float64
	SelectionZoom    float64
	PaddingPx        float64
	MapSize          geo.Size
	MinZoom          float64
	MaxZoom          float64
	SettleDelay      time.Duration
	Clock            scheduler.Clock

	// Preselect seeds the selection from outside (a "selected branch" input).
	Preselect entities.BranchID
}

func (o Options) withDefaults() Options {
	if o.InitialCenter == nil {
		center := DefaultCenter
		o.InitialCenter = &center
	}
	if !o.InitialZoom.Valid {
		o.InitialZoom = null.Float64From(DefaultZoom)
	}
	if o.SingleResultZoom == 0 {
		o.SingleResultZoom = DefaultSingleResultZoom
	}
	if o.SelectionZoom == 0 {
		o.SelectionZoom = DefaultSelectionZoom
	}
	if o.PaddingPx == 0 {
		o.PaddingPx = DefaultPaddingPx
	}
	if o.MapSize.W <= 0 || o.MapSize.H <= 0 {
		o.MapSize = DefaultMapSize
	}
	if o.MaxZoom == 0 {
		o.MaxZoom = DefaultMaxZoom
	}
	if o.MinZoom > o.MaxZoom {
		o.MinZoom = DefaultMinZoom
	}
	if o.SettleDelay <= 0 {
		o.SettleDelay = DefaultSettleDelay
	}
	if o.Clock == nil {
		o.Clock = scheduler.RealClock
	}
	return o
}

// InitialView is the viewport Reset view goes back to.
func (o Options) InitialView() geo.Viewport {
	o = o.withDefaults()
	return geo.Viewport{Center: *o.InitialCenter, Zoom: o.InitialZoom.Float64}
}
