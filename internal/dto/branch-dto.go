package dto

import (
	"elaundry/internal/directory"
	"elaundry/internal/entities"
	"elaundry/pkg/geo"
	"elaundry/pkg/utils"
)

type BranchDTO struct {
	ID      entities.BranchID `json:"id"`
	Name    string            `json:"name"`
	Address *string           `json:"address"`
	Lat     float64           `json:"lat"`
	Lng     float64           `json:"lng"`
	Phone   *string           `json:"phone"`
	Hours   *string           `json:"hours"`
	CallURI string            `json:"call_uri,omitempty"`
}

func BranchToDTO(b entities.Branch) BranchDTO {
	out := BranchDTO{
		ID:      b.ID,
		Name:    b.Name,
		Address: b.Address.Ptr(),
		Lat:     b.Lat,
		Lng:     b.Lng,
		Hours:   b.Hours.Ptr(),
	}
	if b.HasPhone() {
		out.Phone = b.Phone.Ptr()
		out.CallURI = utils.TelURI(b.Phone.String)
	}
	return out
}

func BranchesToDTO(list []entities.Branch) []BranchDTO {
	out := make([]BranchDTO, 0, len(list))
	for _, b := range list {
		out = append(out, BranchToDTO(b))
	}
	return out
}

// DirectoryViewDTO is the settled directory state for one query/selection.
type DirectoryViewDTO struct {
	Query    string             `json:"query"`
	Shown    int                `json:"shown"`
	Total    int                `json:"total"`
	Branches []BranchDTO        `json:"branches"`
	Selected entities.BranchID  `json:"selected,omitempty"`
	Viewport geo.Viewport       `json:"viewport"`
	Markers  []directory.Marker `json:"markers"`
}

func DirectoryViewFromSnapshot(s directory.Snapshot) DirectoryViewDTO {
	return DirectoryViewDTO{
		Query:    s.Query,
		Shown:    len(s.Filtered),
		Total:    s.Total,
		Branches: BranchesToDTO(s.Filtered),
		Selected: s.Selected,
		Viewport: s.Viewport,
		Markers:  s.Markers,
	}
}
