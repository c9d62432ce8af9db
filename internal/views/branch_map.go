package views

import (
	"encoding/json"
	"fmt"
	"net/url"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"elaundry/internal/dto"
	"elaundry/internal/entities"
	"elaundry/pkg/geo"
)

// MapView is a settled directory plus what the map widget needs to draw it.
type MapView struct {
	View        dto.DirectoryViewDTO
	Center      geo.LatLng
	Zoom        float64
	TileURL     string
	Attribution string
}

func BranchMap(m MapView) g.Node {
	return h.Div(
		h.ID("branches"),
		h.Class("flex flex-col lg:flex-row w-full gap-4 h-[620px]"),
		h.Aside(
			h.Class("w-full lg:w-96 bg-white rounded-xl shadow p-4 flex flex-col"),
			h.H3(
				h.Class("text-lg font-semibold flex justify-between"),
				g.Text("Branches"),
				h.Span(h.ID("branches-shown"), h.Class("text-sm text-gray-500"), g.Textf("%d shown", m.View.Shown)),
			),
			h.Form(
				h.Method("get"),
				h.Action("/#branches"),
				h.Input(
					h.Type("search"),
					h.Name("q"),
					h.ID("branch-search"),
					h.Value(m.View.Query),
					h.Placeholder("Search branch name or address..."),
					h.Class("w-full px-3 py-2 border rounded-md text-sm mt-3"),
				),
			),
			h.Div(
				h.ID("branch-list"),
				h.Class("mt-4 overflow-y-auto px-2 py-2 flex-1"),
				g.If(len(m.View.Branches) == 0, h.Div(h.Class("text-sm text-gray-500 p-4"), g.Text("No branches found."))),
				g.Map(m.View.Branches, func(b dto.BranchDTO) g.Node {
					return branchRow(b, m.View)
				}),
			),
			h.Div(
				h.Class("mt-4 flex gap-2"),
				h.Button(h.Type("button"), h.Data("action", "reset_view"), h.Class("btn btn-outline"), g.Text("Reset view")),
				h.Button(h.Type("button"), h.Data("action", "fit_branches"), h.Class("btn"), g.Text("Fit branches")),
			),
		),
		h.Div(
			h.Class("flex-1 rounded-xl overflow-hidden shadow"),
			h.Div(
				h.ID("map"),
				h.Class("w-full h-full"),
				h.Data("tile-url", m.TileURL),
				h.Data("attribution", m.Attribution),
				h.Data("center", fmt.Sprintf("%g,%g", m.Center.Lat, m.Center.Lng)),
				h.Data("zoom", fmt.Sprintf("%g", m.Zoom)),
				h.Data("viewport", toJSON(m.View.Viewport)),
				h.Data("markers", toJSON(m.View.Markers)),
			),
		),
	)
}

func branchRow(b dto.BranchDTO, view dto.DirectoryViewDTO) g.Node {
	class := "p-3 rounded-lg cursor-pointer hover:bg-gray-50 flex items-start mt-2 gap-3"
	if b.ID == view.Selected {
		class += " ring-2 ring-indigo-300 bg-indigo-50"
	}

	address := entities.AddressPlaceholder
	if b.Address != nil && *b.Address != "" {
		address = *b.Address
	}
	hours := " " + entities.HoursPlaceholder
	if b.Hours != nil && *b.Hours != "" {
		hours = *b.Hours
	}
	contact := hours
	if b.CallURI != "" {
		contact = *b.Phone + " ·" + hours
	}

	selectHref := "/?" + url.Values{"q": {view.Query}, "selected": {b.ID.String()}}.Encode() + "#branches"

	return h.Div(
		h.Class(class),
		h.Data("branch-id", b.ID.String()),
		h.A(
			h.Href(selectHref),
			h.Class("flex-1"),
			h.Div(h.Class("font-medium"), g.Text(b.Name)),
			h.Div(h.Class("text-sm text-gray-500"), g.Text(address)),
			h.Div(h.Class("text-xs text-gray-400 mt-1"), g.Text(contact)),
		),
		g.If(b.CallURI != "",
			h.A(h.Href("/api/branches/"+url.PathEscape(b.ID.String())+"/call"), h.Data("action", "call"), h.Class("btn btn-sm"), g.Text("Call")),
		),
		g.If(b.CallURI == "",
			h.Button(h.Type("button"), h.Disabled(), h.Class("btn btn-sm"), g.Text("Call")),
		),
	)
}

func toJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}
