package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"elaundry/internal/entities"
	"elaundry/internal/orderform"
)

// FormView is the order form as it should be drawn: the draft keeps what the
// visitor typed, Notification is the outcome of the last submit.
type FormView struct {
	Branches      []orderform.BranchOption
	RequireBranch bool
	Draft         entities.OrderDraft
	Notification  *orderform.Notification
}

// FormViewOf captures the current state of f.
func FormViewOf(f *orderform.Form) FormView {
	v := FormView{
		Branches:      f.BranchOptions(),
		RequireBranch: f.RequiresBranch(),
		Draft:         f.Draft(),
	}
	if n, ok := f.Notification(); ok {
		v.Notification = &n
	}
	return v
}

func OrderForm(v FormView) g.Node {
	branchLabel := "Select Branch"
	if v.RequireBranch {
		branchLabel += " *"
	}

	return h.Section(
		h.ID("order"),
		h.Class("min-h-screen flex items-center justify-center bg-linear-to-r from-blue-100 to-orange-100 p-6"),
		h.Div(
			h.Class("bg-white rounded-3xl shadow-2xl w-full max-w-6xl flex overflow-hidden"),
			h.Div(
				h.Class("hidden lg:flex w-1/2 bg-blue-500 text-white flex-col justify-center items-center p-10 space-y-6"),
				h.H2(h.Class("text-4xl font-bold"), g.Text("Welcome to E-Laundry")),
				h.P(h.Class("text-lg"), g.Text("Place your order quickly and easily. Choose your service, branch, and schedule your pickup.")),
				h.Img(h.Src("/static/laundry-illustration.png"), h.Alt("Laundry Illustration"), h.Class("w-3/4")),
			),
			h.Div(
				h.Class("w-full lg:w-1/2 p-10"),
				h.H2(h.Class("text-3xl font-semibold mb-6"), g.Text("Place Your Order")),
				notificationBanner(v.Notification),
				h.Form(
					h.ID("order-form"),
					h.Method("post"),
					h.Action("/orders"),
					h.Class("space-y-4"),
					textField(orderform.FieldName, "Full Name *", "text", v.Draft.Name, "", true),
					textField(orderform.FieldPhone, "Phone Number *", "tel", v.Draft.Phone, "01XXXXXXXXX", true),
					textField(orderform.FieldAddress, "Pickup Address *", "text", v.Draft.Address, "", true),
					field(orderform.FieldBranchID, branchLabel,
						h.Select(
							h.Name(orderform.FieldBranchID),
							h.ID("field-"+orderform.FieldBranchID),
							inputClass,
							g.If(v.RequireBranch, h.Required()),
							h.Option(h.Value(""), g.Text("Select Branch")),
							g.Map(v.Branches, func(o orderform.BranchOption) g.Node {
								return h.Option(
									h.Value(o.Value.String()),
									g.If(o.Value == v.Draft.BranchID, h.Selected()),
									g.Text(o.Label),
								)
							}),
						),
					),
					field(orderform.FieldServiceType, "Service Type *",
						h.Select(
							h.Name(orderform.FieldServiceType),
							h.ID("field-"+orderform.FieldServiceType),
							inputClass,
							h.Required(),
							h.Option(h.Value(""), g.Text("Choose Service")),
							g.Map(entities.ServiceTypes, func(s entities.ServiceType) g.Node {
								return h.Option(
									h.Value(string(s)),
									g.If(s == v.Draft.ServiceType, h.Selected()),
									g.Text(s.Label()),
								)
							}),
						),
					),
					h.Div(
						h.Class("grid grid-cols-2 gap-4"),
						textField(orderform.FieldDate, "Pickup Date *", "date", v.Draft.Date, "", true),
						textField(orderform.FieldTime, "Pickup Time *", "time", v.Draft.Time, "", true),
					),
					field(orderform.FieldNotes, "Additional Notes",
						h.Textarea(
							h.Name(orderform.FieldNotes),
							h.ID("field-"+orderform.FieldNotes),
							h.Rows("3"),
							h.Placeholder("Any special instructions?"),
							inputClass,
							g.Text(v.Draft.Notes),
						),
					),
					h.Button(
						h.Type("submit"),
						h.Class("w-full bg-blue-600 text-white py-3 rounded-lg text-lg font-semibold hover:bg-blue-700"),
						g.Text("Submit Order"),
					),
				),
			),
		),
	)
}

// notificationBanner is the single form-level outcome; fields are never
// flagged one by one.
func notificationBanner(n *orderform.Notification) g.Node {
	if n == nil {
		return nil
	}
	class := "p-3 mb-4 rounded-lg text-sm "
	if n.Level == orderform.LevelSuccess {
		class += "bg-green-100 text-green-800"
	} else {
		class += "bg-red-100 text-red-800"
	}
	return h.Div(h.ID("order-notification"), h.Role("alert"), h.Class(class), g.Text(n.Message))
}

var inputClass = h.Class("w-full border rounded-lg p-3")

func field(name, label string, control g.Node) g.Node {
	return h.Div(
		h.Label(h.For("field-"+name), h.Class("block mb-1 font-medium"), g.Text(label)),
		control,
	)
}

func textField(name, label, inputType, value, placeholder string, required bool) g.Node {
	return field(name, label,
		h.Input(
			h.Type(inputType),
			h.Name(name),
			h.ID("field-"+name),
			h.Value(value),
			g.If(placeholder != "", h.Placeholder(placeholder)),
			g.If(required, h.Required()),
			inputClass,
		),
	)
}

// OrderPage is the response to a plain form post: only the form and the
// footer, with the outcome of the submit.
func OrderPage(p Page) g.Node {
	return Layout(p)
}
