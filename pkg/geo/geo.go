// Package geo holds the small amount of slippy-map geometry the branch map
// needs: spherical Web Mercator projection and Leaflet-compatible bounds fitting.
package geo

import (
	"fmt"
	"math"
)

const (
	TileSize    = 256.0
	MaxLatitude = 85.0511287798
)

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (ll LatLng) String() string { return fmt.Sprintf("(%.6f, %.6f)", ll.Lat, ll.Lng) }

// Bounds is an axis-aligned lat/lng box. The zero value is empty.
type Bounds struct {
	SouthWest LatLng `json:"south_west"`
	NorthEast LatLng `json:"north_east"`
	valid     bool
}

func BoundsOf(points ...LatLng) Bounds {
	var b Bounds
	for _, p := range points {
		b = b.Extend(p)
	}
	return b
}

func (b Bounds) IsEmpty() bool { return !b.valid }

func (b Bounds) Extend(p LatLng) Bounds {
	if !b.valid {
		return Bounds{SouthWest: p, NorthEast: p, valid: true}
	}
	b.SouthWest.Lat = math.Min(b.SouthWest.Lat, p.Lat)
	b.SouthWest.Lng = math.Min(b.SouthWest.Lng, p.Lng)
	b.NorthEast.Lat = math.Max(b.NorthEast.Lat, p.Lat)
	b.NorthEast.Lng = math.Max(b.NorthEast.Lng, p.Lng)
	return b
}

func (b Bounds) Contains(p LatLng) bool {
	return b.valid &&
		p.Lat >= b.SouthWest.Lat && p.Lat <= b.NorthEast.Lat &&
		p.Lng >= b.SouthWest.Lng && p.Lng <= b.NorthEast.Lng
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func scaleAt(zoom float64) float64 { return TileSize * math.Pow(2, zoom) }

// Project converts a coordinate to absolute pixel space at the given zoom.
func Project(ll LatLng, zoom float64) Point {
	lat := math.Max(math.Min(ll.Lat, MaxLatitude), -MaxLatitude)
	s := scaleAt(zoom)
	sin := math.Sin(lat * math.Pi / 180)
	return Point{
		X: (ll.Lng + 180) / 360 * s,
		Y: (0.5 - math.Log((1+sin)/(1-sin))/(4*math.Pi)) * s,
	}
}

func Unproject(p Point, zoom float64) LatLng {
	s := scaleAt(zoom)
	n := math.Pi - 2*math.Pi*p.Y/s
	return LatLng{
		Lat: 180 / math.Pi * math.Atan(math.Sinh(n)),
		Lng: p.X/s*360 - 180,
	}
}

// Viewport is what the map widget shows: a center and a zoom level.
type Viewport struct {
	Center LatLng  `json:"center"`
	Zoom   float64 `json:"zoom"`
}

// VisibleBounds returns the lat/lng box covered by a map of the given pixel size.
func (v Viewport) VisibleBounds(size Size) Bounds {
	c := Project(v.Center, v.Zoom)
	sw := Unproject(Point{X: c.X - size.W/2, Y: c.Y + size.H/2}, v.Zoom)
	ne := Unproject(Point{X: c.X + size.W/2, Y: c.Y - size.H/2}, v.Zoom)
	return BoundsOf(sw, ne)
}

// PixelOf places ll inside a map container of the given size, origin top-left.
func (v Viewport) PixelOf(ll LatLng, size Size) Point {
	c := Project(v.Center, v.Zoom)
	p := Project(ll, v.Zoom)
	return Point{X: p.X - c.X + size.W/2, Y: p.Y - c.Y + size.H/2}
}

// FitBounds picks the largest whole zoom at which b fits in size with
// padding pixels kept clear on every side, centered on b. A degenerate box
// (one point) gets maxZoom.
func FitBounds(b Bounds, size Size, padding, minZoom, maxZoom float64) Viewport {
	if b.IsEmpty() {
		return Viewport{Zoom: minZoom}
	}

	inner := Size{W: math.Max(size.W-2*padding, 1), H: math.Max(size.H-2*padding, 1)}
	sw := Project(b.SouthWest, 0)
	ne := Project(b.NorthEast, 0)
	bw := ne.X - sw.X
	bh := sw.Y - ne.Y

	zoom := maxZoom
	if bw > 0 || bh > 0 {
		scale := math.Inf(1)
		if bw > 0 {
			scale = inner.W / bw
		}
		if bh > 0 {
			scale = math.Min(scale, inner.H/bh)
		}
		z := math.Log2(scale)
		// snap like Leaflet: round to 1/100 first so 2.9999999 does not become 2
		z = math.Round(z*100) / 100
		zoom = math.Floor(z)
	}
	zoom = clamp(zoom, minZoom, maxZoom)

	mid := Point{X: (sw.X + ne.X) / 2, Y: (sw.Y + ne.Y) / 2}
	return Viewport{Center: Unproject(mid, 0), Zoom: zoom}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
