package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"elaundry/internal/services"
)

// Slides is the hero carousel: all images and the one on show.
type Slides struct {
	Images  []string
	Current int
}

func (s Slides) image() string {
	if s.Current < 0 || s.Current >= len(s.Images) {
		return ""
	}
	return s.Images[s.Current]
}

type LandingData struct {
	Page
	Slides Slides
	Map    MapView
}

func LandingPage(d LandingData) g.Node {
	return Layout(d.Page,
		h.Main(
			h.Class("min-h-screen bg-linear-to-r from-blue-100 to-orange-100 flex flex-col"),
			navBar(d.Content, h.Span(g.Text("E-Londri")), h.Span(h.Class("text-2xl"), g.Text("🌀"))),
			h.Section(
				h.Class("flex flex-col lg:flex-row items-center justify-between px-10 md:px-20 mt-10 gap-10 relative"),
				h.Div(
					h.Class("flex-1"),
					h.Div(h.Class("flex items-center gap-1 mb-2 text-yellow-500"), g.Text("⭐⭐⭐⭐⭐")),
					h.H1(
						h.Class("text-5xl md:text-6xl font-bold text-gray-900 leading-tight"),
						g.Text("The New"), h.Br(), g.Text("Level of Care"), h.Br(), g.Text("for Your"), h.Br(), g.Text("Wardrobe"),
					),
					h.Div(
						h.Class("flex items-center gap-2 mt-6"),
						h.Img(h.Src("/static/avatars.png"), h.Width("150"), h.Height("40"), h.Alt("users")),
						h.Span(h.Class("text-gray-700 text-lg"), g.Text("5k+")),
					),
				),
				h.Div(
					h.Class("flex-1 relative"),
					h.Img(
						h.ID("carousel"),
						h.Src(d.Slides.image()),
						h.Alt("clean shirt"),
						h.Width("550"),
						h.Height("550"),
						h.Class("drop-shadow-lg rounded-xl animate-fade"),
						h.Data("index", strconv.Itoa(d.Slides.Current)),
					),
					h.P(h.Class("absolute -left-6 top-10 text-sm font-medium text-gray-700 bg-white/60 px-3 py-2 rounded-lg shadow"),
						g.Text("Tough stains? We’ll make your clothes flawless! ✨")),
					h.P(h.Class("absolute right-0 top-32 text-sm font-medium text-gray-700 bg-white/60 px-3 py-2 rounded-lg shadow"),
						g.Text("We'll Handle Any Stain — Guaranteed Removal 🧼")),
				),
				h.Div(
					h.Class("flex-1"),
					h.Div(
						h.Class("w-64 h-64 bg-white/50 backdrop-blur-md rounded-2xl shadow p-6 flex flex-col items-center justify-center"),
						h.Img(h.Src("/static/stacked-clothes.png"), h.Alt("cloth stack"), h.Width("120"), h.Height("120"), h.Class("rounded-lg")),
						h.H3(h.Class("text-3xl font-bold mt-4"), g.Text("2.7k+")),
						h.P(h.Class("text-gray-700 text-center text-sm mt-1"), g.Text("Just Trust Us — We’ll Take Care of It")),
					),
				),
			),
			h.Div(
				h.Class("w-full bg-gray-900 text-white py-8 mt-16 px-10 md:px-20 flex justify-between items-center"),
				h.Div(
					h.Class("flex items-center gap-2"),
					h.Img(h.Src("/static/avatars.png"), h.Width("150"), h.Height("40"), h.Alt("users")),
					h.Span(h.Class("text-lg"), g.Text("5k+ happy users")),
				),
				h.A(h.Href("#order"), h.Class("bg-white text-gray-900 rounded-full px-8 py-6 shadow hover:bg-gray-200"), g.Text("Reserve Service →")),
			),
			h.Div(h.Class("p-4"), BranchMap(d.Map)),
		),
	)
}

// navBar is shared by the landing and service pages; brand is the logo.
func navBar(c services.Content, brand ...g.Node) g.Node {
	return h.Nav(
		h.Class("flex items-center justify-between px-10 py-6"),
		h.A(h.Href("/"), h.Class("text-xl font-semibold flex items-center gap-2"), g.Group(brand)),
		h.Div(
			h.Class("hidden md:flex items-center gap-8 text-gray-700"),
			g.Map(c.NavLinks, func(l services.FooterLink) g.Node {
				return h.A(h.Href(l.Href), h.Class("hover:text-black"), g.Text(l.Label))
			}),
		),
		h.A(h.Href("#order"), h.Class("rounded-full px-6 py-3 shadow bg-white text-gray-700 border hover:bg-gray-100"), g.Text("Get the App ▶️")),
	)
}
