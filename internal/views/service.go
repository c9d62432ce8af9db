package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"elaundry/internal/services"
)

func ServicePage(p Page) g.Node {
	c := p.Content
	return Layout(p,
		h.Div(
			h.Class("min-h-screen bg-gray-50 pb-20"),
			navBar(c, h.Span(h.Class("text-2xl font-bold text-blue-900"), g.Text("eLaundry"))),
			h.Section(
				h.Class("bg-blue-600 text-white py-20 px-6 text-center"),
				h.H1(h.Class("text-4xl font-bold mb-4"), g.Text("Professional Laundry & Dry Cleaning")),
				h.P(h.Class("text-lg opacity-90 max-w-2xl mx-auto"),
					g.Text("Fast, affordable, and premium quality laundry service with free pickup & delivery.")),
				h.A(h.Href("#order"), h.Class("btn btn-lg mt-6 bg-white text-blue-600"), g.Text("Book a Service")),
			),
			h.Section(
				h.ID("services"),
				h.Class("max-w-7xl mx-auto mt-14 px-6"),
				h.H2(h.Class("text-3xl font-bold text-center mb-10"), g.Text("Our Services")),
				h.Div(
					h.Class("grid grid-cols-1 md:grid-cols-3 gap-6"),
					g.Map(c.Services, func(s services.ServiceCard) g.Node {
						return h.Div(
							h.Class("card shadow-md hover:shadow-lg transition"),
							h.H3(h.Class("card-title flex items-center gap-3"), icon(s.Icon), g.Text(s.Title)),
							h.Div(h.Class("card-body text-gray-600"), g.Raw(string(s.Body))),
						)
					}),
				),
			),
			h.Section(
				h.Class("max-w-7xl mx-auto mt-20 px-6"),
				h.H2(h.Class("text-3xl font-bold text-center mb-10"), g.Text("Why Choose E-Laundry?")),
				h.Div(
					h.Class("grid grid-cols-1 md:grid-cols-2 gap-8"),
					g.Map(c.Features, func(f services.ServiceCard) g.Node {
						return h.Div(
							h.Class("flex gap-4"),
							icon(f.Icon),
							h.Div(
								h.H3(h.Class("text-xl font-semibold"), g.Text(f.Title)),
								h.Div(h.Class("text-gray-600"), g.Raw(string(f.Body))),
							),
						)
					}),
				),
			),
			h.Section(
				h.ID("pricing"),
				h.Class("max-w-7xl mx-auto mt-20 px-6"),
				h.H2(h.Class("text-3xl font-bold text-center mb-10"), g.Text("Pricing")),
				h.Div(
					h.Class("grid grid-cols-1 md:grid-cols-3 gap-6"),
					g.Map(c.Pricing, func(p services.PriceList) g.Node {
						return h.Div(
							h.Class("card shadow-md hover:shadow-lg transition"),
							h.H3(h.Class("card-title"), g.Text(p.Title)),
							h.Ul(
								h.Class("card-body"),
								g.Map(p.Items, func(item string) g.Node {
									return h.Li(h.Class("text-gray-600 flex items-center gap-2"), icon("check-circle"), g.Text(item))
								}),
							),
						)
					}),
				),
			),
			h.Section(
				h.Class("bg-blue-700 text-white text-center mt-20 py-14 px-6"),
				h.H2(h.Class("text-3xl font-bold mb-4"), g.Text("Ready to Schedule a Pickup?")),
				h.P(h.Class("opacity-90"), g.Text("Fast delivery, premium care, and affordable pricing.")),
				h.A(h.Href("#order"), h.Class("btn btn-lg mt-6 bg-white text-blue-700"), g.Text("Book Now")),
			),
		),
	)
}

func icon(name string) g.Node {
	return h.Span(h.Class("icon icon-"+name), h.Aria("hidden", "true"))
}
