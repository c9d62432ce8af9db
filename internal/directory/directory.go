package directory

import (
	"sync"

	"elaundry/internal/entities"
	apperrors "elaundry/pkg/errors"
	"elaundry/pkg/geo"
	"elaundry/pkg/scheduler"
	"elaundry/pkg/utils"
)

type Reason string

const (
	ReasonFit       Reason = "fit"
	ReasonSingle    Reason = "single"
	ReasonSelect    Reason = "select"
	ReasonReset     Reason = "reset"
	ReasonManualFit Reason = "manual_fit"
)

// Change is emitted every time the directory moves the map.
type Change struct {
	Reason   Reason       `json:"reason"`
	Viewport geo.Viewport `json:"viewport"`
	Animate  bool         `json:"animate"`
}

// Snapshot is a consistent copy of the directory state for rendering.
type Snapshot struct {
	Query    string            `json:"query"`
	Total    int               `json:"total"`
	Filtered []entities.Branch `json:"filtered"`
	Selected entities.BranchID `json:"selected,omitempty"`
	Viewport geo.Viewport      `json:"viewport"`
	Markers  []Marker          `json:"markers"`
	MapSize  geo.Size          `json:"map_size"`
}

// Directory is the branch list plus map state for one page view.
// The branch list is fixed at construction; everything else is derived from
// the query and the selection.
type Directory struct {
	opts     Options
	branches []entities.Branch
	index    map[entities.BranchID]int
	fit      *scheduler.Debouncer

	mu        sync.Mutex
	query     string
	filtered  []entities.Branch
	selected  entities.BranchID
	viewport  geo.Viewport
	markers   *MarkerSet
	listeners []func(Change)
	closed    bool
}

func New(branches []entities.Branch, opts Options) *Directory {
	opts = opts.withDefaults()

	d := &Directory{
		opts:     opts,
		branches: append([]entities.Branch(nil), branches...),
		index:    make(map[entities.BranchID]int, len(branches)),
		fit:      scheduler.NewDebouncer(opts.Clock, opts.SettleDelay),
		viewport: opts.InitialView(),
	}
	for i, b := range d.branches {
		if _, dup := d.index[b.ID]; !dup {
			d.index[b.ID] = i
		}
	}
	d.filtered = FilterBranches(d.branches, "")
	d.markers = newMarkerSet(d.branches)

	if i, ok := d.index[opts.Preselect]; ok && !opts.Preselect.IsZero() {
		d.selected = opts.Preselect
		d.markers.highlight(opts.Preselect)
		d.viewport = selectionView(d.branches[i], opts)
		return d
	}

	// first fit waits for the map container to settle, same as any later one
	d.fit.Schedule(d.applyFit)
	return d
}

func (d *Directory) Options() Options {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.opts
}

// SetQuery refilters the list. A fit is scheduled only when the set of
// matching branches actually changed.
func (d *Directory) SetQuery(query string) []entities.Branch {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.query = query
	next := FilterBranches(d.branches, query)
	changed := !sameBranches(d.filtered, next)
	d.filtered = next
	d.markers.showOnly(next)
	out := append([]entities.Branch(nil), next...)
	d.mu.Unlock()

	if changed {
		d.fit.Schedule(d.applyFit)
	}
	return out
}

func (d *Directory) Query() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.query
}

func (d *Directory) Filtered() []entities.Branch {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]entities.Branch(nil), d.filtered...)
}

func (d *Directory) Branch(id entities.BranchID) (entities.Branch, bool) {
	i, ok := d.index[id]
	if !ok {
		return entities.Branch{}, false
	}
	return d.branches[i], true
}

// Select highlights id and pans to it. Unknown ids are ignored and report
// false. Selecting the current branch again does not move the map.
// A branch hidden by the filter can still be selected.
func (d *Directory) Select(id entities.BranchID) bool {
	i, ok := d.index[id]
	if !ok {
		return false
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return false
	}
	if d.selected == id {
		d.mu.Unlock()
		return true
	}
	d.selected = id
	d.markers.highlight(id)
	d.viewport = selectionView(d.branches[i], d.opts)
	change := Change{Reason: ReasonSelect, Viewport: d.viewport, Animate: true}
	listeners := d.listenersLocked()
	d.mu.Unlock()

	// an explicit pan wins over a fit still waiting for the layout
	d.fit.Cancel()
	notify(listeners, change)
	return true
}

func (d *Directory) Selected() (entities.BranchID, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selected, !d.selected.IsZero()
}

// ResetView returns the map to the initial center and zoom. Query and
// selection are left as they are.
func (d *Directory) ResetView() {
	d.fit.Cancel()
	d.move(Change{Reason: ReasonReset, Viewport: d.opts.InitialView(), Animate: true})
}

// FitBranches fits the map to the filtered branches right away.
// It does nothing when no branch matches.
func (d *Directory) FitBranches() bool {
	d.mu.Lock()
	vp, ok := ComputeFit(d.filtered, d.opts)
	d.mu.Unlock()
	if !ok {
		return false
	}
	d.fit.Cancel()
	d.move(Change{Reason: ReasonManualFit, Viewport: vp, Animate: true})
	return true
}

// CallTarget returns the tel: URI for a branch's phone.
func (d *Directory) CallTarget(id entities.BranchID) (string, error) {
	b, ok := d.Branch(id)
	if !ok {
		return "", apperrors.ErrNotFound
	}
	if !b.HasPhone() {
		return "", apperrors.ErrNoPhone
	}
	uri := utils.TelURI(b.Phone.String)
	if uri == "" {
		return "", apperrors.ErrNoPhone
	}
	return uri, nil
}

// Resize records the new container size and refits once the layout settles.
func (d *Directory) Resize(size geo.Size) {
	if size.W <= 0 || size.H <= 0 {
		return
	}
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.opts.MapSize = size
	d.mu.Unlock()
	d.fit.Schedule(d.applyFit)
}

// Settle runs a pending fit now instead of waiting for the settle delay.
func (d *Directory) Settle() bool {
	return d.fit.Flush()
}

func (d *Directory) FitPending() bool {
	return d.fit.Pending()
}

func (d *Directory) Viewport() geo.Viewport {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.viewport
}

// Markers returns the markers currently shown on the map.
func (d *Directory) Markers() []Marker {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.markers.visible()
}

func (d *Directory) Marker(id entities.BranchID) (Marker, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.markers.get(id)
}

func (d *Directory) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Snapshot{
		Query:    d.query,
		Total:    len(d.branches),
		Filtered: append([]entities.Branch(nil), d.filtered...),
		Selected: d.selected,
		Viewport: d.viewport,
		Markers:  d.markers.visible(),
		MapSize:  d.opts.MapSize,
	}
}

// Subscribe registers f for every map move. f runs without the directory
// lock held, possibly on a timer goroutine.
func (d *Directory) Subscribe(f func(Change)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.listeners = append(d.listeners, f)
}

// Close cancels any pending fit and drops subscribers. It is safe to call
// more than once.
func (d *Directory) Close() {
	d.fit.Close()
	d.mu.Lock()
	d.closed = true
	d.listeners = nil
	d.mu.Unlock()
}

func (d *Directory) applyFit() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	vp, ok := ComputeFit(d.filtered, d.opts)
	if !ok {
		d.mu.Unlock()
		return
	}
	reason := ReasonFit
	if len(d.filtered) == 1 {
		reason = ReasonSingle
	}
	d.viewport = vp
	listeners := d.listenersLocked()
	d.mu.Unlock()

	notify(listeners, Change{Reason: reason, Viewport: vp})
}

func (d *Directory) move(change Change) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.viewport = change.Viewport
	listeners := d.listenersLocked()
	d.mu.Unlock()

	notify(listeners, change)
}

func (d *Directory) listenersLocked() []func(Change) {
	return append([]func(Change){}, d.listeners...)
}

func notify(listeners []func(Change), change Change) {
	for _, f := range listeners {
		f(change)
	}
}
