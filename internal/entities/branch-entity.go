package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aarondl/null/v8"

	"elaundry/pkg/geo"
)

const (
	AddressPlaceholder = "Address N/A"
	HoursPlaceholder   = "Hours N/A"
)

// BranchID is unique within a catalog. Numeric ids are kept in their
// decimal form, so 1 and "1" name the same branch.
type BranchID string

func (id BranchID) String() string { return string(id) }

func (id BranchID) IsZero() bool { return id == "" }

func (id *BranchID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = BranchID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("branch id must be a string or a number: %w", err)
	}
	*id = BranchID(n.String())
	return nil
}

type Branch struct {
	ID      BranchID    `json:"id"`
	Name    string      `json:"name"`
	Address null.String `json:"address"`
	Lat     float64     `json:"lat"`
	Lng     float64     `json:"lng"`
	Phone   null.String `json:"phone"`
	Hours   null.String `json:"hours"`
}

func (b Branch) Position() geo.LatLng { return geo.LatLng{Lat: b.Lat, Lng: b.Lng} }

// SearchText is what the directory filter matches against.
func (b Branch) SearchText() string {
	return b.Name + " " + b.Address.String
}

func (b Branch) HasAddress() bool {
	return b.Address.Valid && strings.TrimSpace(b.Address.String) != ""
}

func (b Branch) HasPhone() bool { return b.Phone.Valid && strings.TrimSpace(b.Phone.String) != "" }

func (b Branch) AddressOrPlaceholder() string {
	if b.HasAddress() {
		return b.Address.String
	}
	return AddressPlaceholder
}

func (b Branch) HoursOrPlaceholder() string {
	if b.Hours.Valid && strings.TrimSpace(b.Hours.String) != "" {
		return b.Hours.String
	}
	return HoursPlaceholder
}
