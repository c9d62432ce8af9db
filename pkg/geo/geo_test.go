package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectUnprojectRoundTrip(t *testing.T) {
	for _, ll := range []LatLng{{23.8103, 90.4125}, {0, 0}, {-33.86, 151.2}, {51.5, -0.12}} {
		for _, z := range []float64{0, 5, 12, 18} {
			back := Unproject(Project(ll, z), z)
			assert.InDelta(t, ll.Lat, back.Lat, 1e-9)
			assert.InDelta(t, ll.Lng, back.Lng, 1e-9)
		}
	}
}

func TestProjectOrigin(t *testing.T) {
	p := Project(LatLng{0, 0}, 0)
	assert.InDelta(t, 128, p.X, 1e-9)
	assert.InDelta(t, 128, p.Y, 1e-9)
}

func TestBoundsExtendAndContains(t *testing.T) {
	var b Bounds
	assert.True(t, b.IsEmpty())
	assert.False(t, b.Contains(LatLng{}))

	b = BoundsOf(LatLng{23.7, 90.4}, LatLng{23.8, 90.5})
	assert.Equal(t, LatLng{23.7, 90.4}, b.SouthWest)
	assert.Equal(t, LatLng{23.8, 90.5}, b.NorthEast)
	assert.True(t, b.Contains(LatLng{23.75, 90.45}))
	assert.False(t, b.Contains(LatLng{23.9, 90.45}))
}

func TestFitBoundsKeepsPadding(t *testing.T) {
	size := Size{W: 800, H: 620}
	a, c := LatLng{23.7, 90.4}, LatLng{23.8, 90.5}

	v := FitBounds(BoundsOf(a, c), size, 60, 0, 18)

	require.True(t, v.VisibleBounds(size).Contains(a))
	require.True(t, v.VisibleBounds(size).Contains(c))
	for _, ll := range []LatLng{a, c} {
		px := v.PixelOf(ll, size)
		assert.GreaterOrEqual(t, px.X, 60.0-1e-6)
		assert.LessOrEqual(t, px.X, size.W-60+1e-6)
		assert.GreaterOrEqual(t, px.Y, 60.0-1e-6)
		assert.LessOrEqual(t, px.Y, size.H-60+1e-6)
	}

	// one zoom level closer must no longer fit
	closer := Viewport{Center: v.Center, Zoom: v.Zoom + 1}
	pa, pc := closer.PixelOf(a, size), closer.PixelOf(c, size)
	fits := pa.X >= 60 && pc.X <= size.W-60 && pc.Y >= 60 && pa.Y <= size.H-60
	assert.False(t, fits)
	assert.Equal(t, 12.0, v.Zoom)
}

func TestFitBoundsDegenerateUsesMaxZoom(t *testing.T) {
	p := LatLng{23.8, 90.5}
	v := FitBounds(BoundsOf(p, p), Size{W: 800, H: 620}, 60, 0, 18)
	assert.Equal(t, 18.0, v.Zoom)
	assert.InDelta(t, p.Lat, v.Center.Lat, 1e-9)
	assert.InDelta(t, p.Lng, v.Center.Lng, 1e-9)
}

func TestFitBoundsClampsToMinZoom(t *testing.T) {
	v := FitBounds(BoundsOf(LatLng{-80, -170}, LatLng{80, 170}), Size{W: 300, H: 200}, 60, 3, 18)
	assert.Equal(t, 3.0, v.Zoom)
}
