// Package views renders the site's pages with gomponents.
package views

import (
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"elaundry/internal/services"
)

// Page is what every page hands to Layout.
type Page struct {
	Content services.Content
	Form    FormView
	Year    int
	// Live enables the websocket script that keeps the map, form and
	// carousel in sync with the server session.
	Live bool
}

func (p Page) year() int {
	if p.Year == 0 {
		return time.Now().Year()
	}
	return p.Year
}

// Layout wraps a page body with the document head, the order form and the
// footer, which appear on every page.
func Layout(p Page, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(p.Content.SiteTitle)),
				h.Meta(h.Name("description"), h.Content(p.Content.SiteDescription)),
				h.Link(h.Rel("stylesheet"), h.Href("https://unpkg.com/leaflet@1.9.4/dist/leaflet.css")),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/site.css")),
			),
			h.Body(
				h.Class("antialiased"),
				g.Group(body),
				OrderForm(p.Form),
				Footer(p.Content, p.year()),
				g.If(p.Live, g.Group{
					h.Script(h.Src("https://unpkg.com/leaflet@1.9.4/dist/leaflet.js")),
					h.Script(h.Src("/static/js/live.js"), h.Defer()),
				}),
			),
		),
	)
}
