package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"elaundry/internal/services"
)

func Footer(c services.Content, year int) g.Node {
	return h.Footer(
		h.ID("contact"),
		h.Class("bg-gray-900 text-gray-300 pt-12 pb-6"),
		h.Div(
			h.Class("max-w-7xl mx-auto px-6 grid grid-cols-1 md:grid-cols-4 gap-10"),
			h.Div(
				h.H2(h.Class("text-2xl font-bold text-white"), g.Text("eLaundry")),
				h.Div(h.Class("mt-3 text-sm leading-relaxed"), g.Raw(string(c.About))),
			),
			footerLinks("Quick Links", c.QuickLinks),
			footerLinks("Services", c.FooterServices),
			h.Div(
				h.H3(h.Class("text-white font-semibold mb-3"), g.Text("Contact Us")),
				h.Ul(
					h.Class("space-y-2 text-sm"),
					g.Map(c.Contact, func(l services.ContactLine) g.Node {
						return h.Li(
							h.Class("flex items-center gap-2"),
							h.Span(h.Class("icon icon-"+l.Icon)),
							g.If(l.Href != "", h.A(h.Href(l.Href), g.Text(l.Label))),
							g.If(l.Href == "", g.Text(l.Label)),
						)
					}),
				),
				h.Div(
					h.Class("flex gap-4 mt-4"),
					g.Map(c.Socials, func(l services.FooterLink) g.Node {
						return h.A(h.Href(l.Href), h.Aria("label", l.Label), h.Class("hover:text-white"), g.Text(l.Label))
					}),
				),
			),
		),
		h.Div(
			h.Class("border-t border-gray-700 mt-10 pt-4 text-center text-sm text-gray-500"),
			g.Textf("© %d eLaundry. All rights reserved. A Product of ", year),
			h.A(h.Href(c.CreditURL), h.Target("_blank"), h.Rel("noopener"), g.Text(c.CreditName)),
		),
	)
}

func footerLinks(title string, links []services.FooterLink) g.Node {
	return h.Div(
		h.H3(h.Class("text-white font-semibold mb-3"), g.Text(title)),
		h.Ul(
			h.Class("space-y-2 text-sm"),
			g.Map(links, func(l services.FooterLink) g.Node {
				return h.Li(h.A(h.Href(l.Href), h.Class("hover:text-white"), g.Text(l.Label)))
			}),
		),
	)
}
