package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"elaundry/internal/entities"
)

type ProfileData struct {
	Page
	Profile entities.Profile
	Orders  []entities.OrderRecord
}

func ProfilePage(d ProfileData) g.Node {
	p := d.Profile
	return Layout(d.Page,
		h.Div(
			h.Class("min-h-screen bg-gray-50 p-6"),
			h.Div(
				h.Class("max-w-5xl mx-auto space-y-8"),
				h.Div(
					h.Class("bg-white rounded-xl shadow p-6 flex items-center gap-6"),
					h.Div(h.Class("w-20 h-20 rounded-full bg-blue-600 text-white text-3xl font-bold flex items-center justify-center"), g.Text(p.Initial())),
					h.Div(
						h.Class("flex-1"),
						h.H2(h.Class("text-2xl font-semibold"), g.Text(p.Name)),
						h.P(h.Class("text-gray-600"), g.Text(p.Email)),
						h.P(h.Class("text-gray-600"), g.Text(p.Phone)),
						h.P(h.Class("text-gray-600"), g.Text(p.Address)),
					),
					h.Button(h.Type("button"), h.Class("btn btn-outline"), g.Text("Edit Profile")),
				),
				h.Div(
					h.Class("bg-white rounded-xl shadow p-6"),
					h.Div(
						h.Class("flex justify-between items-center mb-4"),
						h.H3(h.Class("text-xl font-semibold"), g.Text("My Orders")),
						h.A(h.Href("/profile/orders.xlsx"), h.Class("text-sm text-blue-600"), g.Text("Download")),
					),
					h.Table(
						h.Class("w-full text-left"),
						h.THead(h.Tr(
							h.Th(g.Text("Order ID")), h.Th(g.Text("Service")), h.Th(g.Text("Status")),
							h.Th(g.Text("Date")), h.Th(g.Text("Action")),
						)),
						h.TBody(
							g.Map(d.Orders, func(o entities.OrderRecord) g.Node {
								return h.Tr(
									h.Class("border-t"),
									h.Td(g.Textf("%d", o.ID)),
									h.Td(g.Text(o.Service)),
									h.Td(h.Span(h.Class("px-3 py-1 rounded-full text-xs "+o.Status.BadgeClass()), g.Text(string(o.Status)))),
									h.Td(g.Text(o.Date)),
									h.Td(h.Button(h.Type("button"), h.Class("btn btn-sm"), g.Text("View"))),
								)
							}),
						),
					),
				),
			),
		),
	)
}
