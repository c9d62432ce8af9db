package entities

type Profile struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Initial is the avatar letter.
func (p Profile) Initial() string {
	for _, r := range p.Name {
		return string(r)
	}
	return "?"
}

type OrderStatus string

const (
	OrderCompleted  OrderStatus = "Completed"
	OrderInProgress OrderStatus = "In Progress"
	OrderPending    OrderStatus = "Pending"
)

// BadgeClass is the CSS class pair used for the status pill.
func (s OrderStatus) BadgeClass() string {
	switch s {
	case OrderCompleted:
		return "bg-green-100 text-green-700"
	case OrderInProgress:
		return "bg-blue-100 text-blue-700"
	case OrderPending:
		return "bg-yellow-100 text-yellow-700"
	default:
		return "bg-gray-100 text-gray-700"
	}
}

type OrderRecord struct {
	ID      uint64      `json:"id"`
	Service string      `json:"service"`
	Status  OrderStatus `json:"status"`
	Date    string      `json:"date"`
}
