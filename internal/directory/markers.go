package directory

import (
	"elaundry/internal/entities"
	"elaundry/pkg/geo"
	"elaundry/pkg/utils"
)

// Popup is the content shown when a marker opens.
type Popup struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
	CallURI string `json:"call_uri,omitempty"`
}

type Marker struct {
	BranchID    entities.BranchID `json:"branch_id"`
	Position    geo.LatLng        `json:"position"`
	Popup       Popup             `json:"popup"`
	Visible     bool              `json:"visible"`
	Highlighted bool              `json:"highlighted"`
}

// MarkerSet maps branch ids to their markers. The directory owns it and looks
// markers up by id; it never searches the map widget's layers.
type MarkerSet struct {
	byID  map[entities.BranchID]*Marker
	order []entities.BranchID
}

func newMarkerSet(branches []entities.Branch) *MarkerSet {
	m := &MarkerSet{byID: make(map[entities.BranchID]*Marker, len(branches))}
	for _, b := range branches {
		if _, dup := m.byID[b.ID]; dup {
			continue
		}
		popup := Popup{Name: b.Name, Address: b.Address.String}
		if b.HasPhone() {
			popup.Phone = b.Phone.String
			popup.CallURI = utils.TelURI(b.Phone.String)
		}
		m.byID[b.ID] = &Marker{BranchID: b.ID, Position: b.Position(), Popup: popup, Visible: true}
		m.order = append(m.order, b.ID)
	}
	return m
}

func (m *MarkerSet) get(id entities.BranchID) (Marker, bool) {
	mk, ok := m.byID[id]
	if !ok {
		return Marker{}, false
	}
	return *mk, true
}

func (m *MarkerSet) showOnly(branches []entities.Branch) {
	keep := make(map[entities.BranchID]struct{}, len(branches))
	for _, b := range branches {
		keep[b.ID] = struct{}{}
	}
	for id, mk := range m.byID {
		_, mk.Visible = keep[id]
	}
}

func (m *MarkerSet) highlight(id entities.BranchID) {
	for mid, mk := range m.byID {
		mk.Highlighted = mid == id
	}
}

// visible returns copies of the shown markers in catalog order.
func (m *MarkerSet) visible() []Marker {
	out := make([]Marker, 0, len(m.order))
	for _, id := range m.order {
		if mk := m.byID[id]; mk.Visible {
			out = append(out, *mk)
		}
	}
	return out
}
