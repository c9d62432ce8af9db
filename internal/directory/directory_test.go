package directory

import (
	"errors"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elaundry/internal/entities"
	apperrors "elaundry/pkg/errors"
	"elaundry/pkg/geo"
	"elaundry/pkg/scheduler"
)

var (
	dhanmondi = entities.Branch{
		ID:      "1",
		Name:    "eLaundry Dhanmondi",
		Address: null.StringFrom("House 42, Road 11, Dhanmondi"),
		Lat:     23.746465,
		Lng:     90.376015,
		Phone:   null.StringFrom("+8801712345678"),
		Hours:   null.StringFrom("9am - 9pm"),
	}
	gulshan = entities.Branch{
		ID:      "2",
		Name:    "eLaundry Gulshan",
		Address: null.StringFrom("House 12, Gulshan 2"),
		Lat:     23.7925,
		Lng:     90.4075,
		Phone:   null.StringFrom("+8801711111111"),
		Hours:   null.StringFrom("8am - 8pm"),
	}
	uttara = entities.Branch{
		ID:   "3",
		Name: "eLaundry Uttara",
		Lat:  23.8759,
		Lng:  90.3795,
	}
)

func catalog() []entities.Branch {
	return []entities.Branch{dhanmondi, gulshan, uttara}
}

func newTestDirectory(t *testing.T, opts Options) (*Directory, *scheduler.FakeClock, *[]Change) {
	t.Helper()
	clock := scheduler.NewFakeClock(time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC))
	opts.Clock = clock
	d := New(catalog(), opts)
	t.Cleanup(d.Close)

	var changes []Change
	d.Subscribe(func(c Change) { changes = append(changes, c) })
	return d, clock, &changes
}

func ids(branches []entities.Branch) []entities.BranchID {
	out := make([]entities.BranchID, 0, len(branches))
	for _, b := range branches {
		out = append(out, b.ID)
	}
	return out
}

func TestFilterBranches(t *testing.T) {
	all := catalog()

	assert.Equal(t, []entities.BranchID{"2"}, ids(FilterBranches(all, "gul")))
	assert.Equal(t, []entities.BranchID{"1"}, ids(FilterBranches(all, "ROAD 11")))
	assert.Equal(t, []entities.BranchID{"1", "2", "3"}, ids(FilterBranches(all, "elaundry")))
	assert.Empty(t, FilterBranches(all, "zzz"))

	full := FilterBranches(all, "")
	require.Len(t, full, 3)
	full[0].Name = "changed"
	assert.Equal(t, "eLaundry Dhanmondi", all[0].Name)
}

func TestFilterMatchesAcrossNameAndAddress(t *testing.T) {
	// name and address are joined by one space
	assert.Equal(t, []entities.BranchID{"2"}, ids(FilterBranches(catalog(), "gulshan house")))
}

func TestInitialFitWaitsForSettle(t *testing.T) {
	d, clock, changes := newTestDirectory(t, Options{})

	assert.Equal(t, geo.Viewport{Center: DefaultCenter, Zoom: DefaultZoom}, d.Viewport())
	assert.True(t, d.FitPending())

	clock.Advance(DefaultSettleDelay - time.Millisecond)
	assert.Empty(t, *changes)

	clock.Advance(time.Millisecond)
	require.Len(t, *changes, 1)
	c := (*changes)[0]
	assert.Equal(t, ReasonFit, c.Reason)
	assert.False(t, c.Animate)

	size := d.Options().MapSize
	visible := c.Viewport.VisibleBounds(size)
	for _, b := range catalog() {
		assert.True(t, visible.Contains(b.Position()), b.Name)
		px := c.Viewport.PixelOf(b.Position(), size)
		assert.GreaterOrEqual(t, px.X, DefaultPaddingPx-0.5)
		assert.LessOrEqual(t, px.X, size.W-DefaultPaddingPx+0.5)
		assert.GreaterOrEqual(t, px.Y, DefaultPaddingPx-0.5)
		assert.LessOrEqual(t, px.Y, size.H-DefaultPaddingPx+0.5)
	}
}

func TestSingleResultCentersAtMinimumZoom(t *testing.T) {
	d, clock, changes := newTestDirectory(t, Options{})
	d.Settle()
	*changes = nil

	got := d.SetQuery("gulshan")
	assert.Equal(t, []entities.BranchID{"2"}, ids(got))

	clock.Advance(DefaultSettleDelay)
	require.Len(t, *changes, 1)
	assert.Equal(t, ReasonSingle, (*changes)[0].Reason)
	assert.Equal(t, geo.Viewport{Center: gulshan.Position(), Zoom: 13}, d.Viewport())
}

func TestSingleResultKeepsHigherInitialZoom(t *testing.T) {
	d, clock, _ := newTestDirectory(t, Options{InitialZoom: null.Float64From(15)})
	d.SetQuery("dhanmondi")
	clock.Advance(DefaultSettleDelay)
	assert.Equal(t, float64(15), d.Viewport().Zoom)
}

func TestNoMatchLeavesViewport(t *testing.T) {
	d, clock, changes := newTestDirectory(t, Options{})
	d.Settle()
	before := d.Viewport()
	*changes = nil

	assert.Empty(t, d.SetQuery("no such branch"))
	clock.Advance(time.Second)

	assert.Empty(t, *changes)
	assert.Equal(t, before, d.Viewport())
	assert.Empty(t, d.Markers())
}

func TestRapidQueriesFitOnce(t *testing.T) {
	d, clock, changes := newTestDirectory(t, Options{})
	d.Settle()
	*changes = nil

	assert.Equal(t, []entities.BranchID{"1", "2"}, ids(d.SetQuery("house")))
	clock.Advance(30 * time.Millisecond)
	assert.Equal(t, []entities.BranchID{"2"}, ids(d.SetQuery("gul")))
	clock.Advance(30 * time.Millisecond)
	assert.Empty(t, *changes)

	clock.Advance(20 * time.Millisecond)
	require.Len(t, *changes, 1)
	assert.Equal(t, gulshan.Position(), (*changes)[0].Viewport.Center)
}

func TestSameSubsetDoesNotRefit(t *testing.T) {
	d, _, _ := newTestDirectory(t, Options{})
	d.Settle()

	d.SetQuery("eLaundry")
	assert.False(t, d.FitPending())
	assert.Equal(t, "eLaundry", d.Query())
}

func TestMarkersFollowFilter(t *testing.T) {
	d, _, _ := newTestDirectory(t, Options{})
	assert.Len(t, d.Markers(), 3)

	d.SetQuery("gul")
	markers := d.Markers()
	require.Len(t, markers, 1)
	assert.Equal(t, entities.BranchID("2"), markers[0].BranchID)
	assert.Equal(t, "tel:+8801711111111", markers[0].Popup.CallURI)

	hidden, ok := d.Marker("1")
	require.True(t, ok)
	assert.False(t, hidden.Visible)
}

func TestSelectPansToBranch(t *testing.T) {
	d, _, changes := newTestDirectory(t, Options{})
	d.Settle()
	*changes = nil

	require.True(t, d.Select("1"))
	require.Len(t, *changes, 1)
	c := (*changes)[0]
	assert.Equal(t, ReasonSelect, c.Reason)
	assert.True(t, c.Animate)
	assert.Equal(t, geo.Viewport{Center: dhanmondi.Position(), Zoom: 14}, c.Viewport)

	id, ok := d.Selected()
	assert.True(t, ok)
	assert.Equal(t, entities.BranchID("1"), id)

	m, _ := d.Marker("1")
	assert.True(t, m.Highlighted)
	m, _ = d.Marker("2")
	assert.False(t, m.Highlighted)

	// same branch again does not move the map
	require.True(t, d.Select("1"))
	assert.Len(t, *changes, 1)
}

func TestSelectUnknownIsNoop(t *testing.T) {
	d, _, changes := newTestDirectory(t, Options{})
	d.Settle()
	*changes = nil

	assert.False(t, d.Select("99"))
	_, ok := d.Selected()
	assert.False(t, ok)
	assert.Empty(t, *changes)
}

func TestSelectIgnoresFilter(t *testing.T) {
	d, clock, _ := newTestDirectory(t, Options{})
	d.SetQuery("gulshan")
	require.True(t, d.Select("1"))

	// the pending fit from the query must not undo the pan
	clock.Advance(time.Second)
	assert.Equal(t, dhanmondi.Position(), d.Viewport().Center)
	assert.Equal(t, []entities.BranchID{"2"}, ids(d.Filtered()))
}

func TestSelectUsesHigherInitialZoom(t *testing.T) {
	d, _, _ := newTestDirectory(t, Options{InitialZoom: null.Float64From(16)})
	d.Select("2")
	assert.Equal(t, float64(16), d.Viewport().Zoom)
}

func TestResetViewRestoresInitial(t *testing.T) {
	center := geo.LatLng{Lat: 23.75, Lng: 90.39}
	d, _, changes := newTestDirectory(t, Options{InitialCenter: &center, InitialZoom: null.Float64From(11)})
	d.SetQuery("gul")
	d.Select("2")
	*changes = nil

	d.ResetView()
	assert.Equal(t, geo.Viewport{Center: center, Zoom: 11}, d.Viewport())
	require.Len(t, *changes, 1)
	assert.Equal(t, ReasonReset, (*changes)[0].Reason)
	assert.True(t, (*changes)[0].Animate)

	// query and selection survive a reset
	assert.Equal(t, "gul", d.Query())
	id, _ := d.Selected()
	assert.Equal(t, entities.BranchID("2"), id)
}

func TestFitBranches(t *testing.T) {
	d, _, changes := newTestDirectory(t, Options{})
	d.Select("3")
	*changes = nil

	require.True(t, d.FitBranches())
	require.Len(t, *changes, 1)
	assert.Equal(t, ReasonManualFit, (*changes)[0].Reason)
	assert.False(t, d.FitPending())

	d.SetQuery("nothing")
	before := d.Viewport()
	assert.False(t, d.FitBranches())
	assert.Equal(t, before, d.Viewport())
}

func TestCallTarget(t *testing.T) {
	d, _, _ := newTestDirectory(t, Options{})

	uri, err := d.CallTarget("1")
	require.NoError(t, err)
	assert.Equal(t, "tel:+8801712345678", uri)

	_, err = d.CallTarget("3")
	assert.True(t, errors.Is(err, apperrors.ErrNoPhone))

	_, err = d.CallTarget("42")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestResizeRefits(t *testing.T) {
	d, clock, changes := newTestDirectory(t, Options{})
	d.Settle()
	small := d.Viewport()
	*changes = nil

	d.Resize(geo.Size{W: 1600, H: 1240})
	clock.Advance(DefaultSettleDelay)
	require.Len(t, *changes, 1)
	assert.Equal(t, small.Zoom+1, d.Viewport().Zoom)
}

func TestCloseCancelsPendingFit(t *testing.T) {
	d, clock, changes := newTestDirectory(t, Options{})
	d.Close()
	clock.Advance(time.Second)

	assert.Empty(t, *changes)
	assert.Equal(t, 0, clock.Pending())
	assert.Nil(t, d.SetQuery("gul"))
}

func TestPreselectSkipsInitialFit(t *testing.T) {
	d, clock, _ := newTestDirectory(t, Options{Preselect: "2"})
	assert.False(t, d.FitPending())
	clock.Advance(time.Second)

	assert.Equal(t, geo.Viewport{Center: gulshan.Position(), Zoom: 14}, d.Viewport())
	id, ok := d.Selected()
	assert.True(t, ok)
	assert.Equal(t, entities.BranchID("2"), id)
}

func TestResetViewKeepsExplicitZeroView(t *testing.T) {
	origin := geo.LatLng{}
	d, _, _ := newTestDirectory(t, Options{InitialCenter: &origin, InitialZoom: null.Float64From(0)})
	assert.Equal(t, geo.Viewport{Center: origin, Zoom: 0}, d.Viewport())

	d.Select("1")
	d.ResetView()
	assert.Equal(t, geo.Viewport{Center: origin, Zoom: 0}, d.Viewport())
}

func TestUnsetInitialViewUsesDefaults(t *testing.T) {
	assert.Equal(t, geo.Viewport{Center: DefaultCenter, Zoom: DefaultZoom}, Options{}.InitialView())
}

func TestComputeFit(t *testing.T) {
	opts := Options{}.withDefaults()

	_, ok := ComputeFit(nil, opts)
	assert.False(t, ok)

	vp, ok := ComputeFit([]entities.Branch{uttara}, opts)
	require.True(t, ok)
	assert.Equal(t, geo.Viewport{Center: uttara.Position(), Zoom: 13}, vp)

	vp, ok = ComputeFit([]entities.Branch{dhanmondi, gulshan}, opts)
	require.True(t, ok)
	assert.InDelta(t, (dhanmondi.Lng+gulshan.Lng)/2, vp.Center.Lng, 1e-9)
	assert.LessOrEqual(t, vp.Zoom, opts.MaxZoom)
}
