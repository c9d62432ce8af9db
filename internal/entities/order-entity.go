package entities

type ServiceType string

const (
	ServiceWash     ServiceType = "wash"
	ServiceIron     ServiceType = "iron"
	ServiceWashIron ServiceType = "wash_iron"
	ServiceDryClean ServiceType = "dry_clean"
)

// ServiceTypes is the fixed set offered by the order form, in display order.
var ServiceTypes = []ServiceType{ServiceWash, ServiceIron, ServiceWashIron, ServiceDryClean}

func (s ServiceType) Valid() bool {
	for _, t := range ServiceTypes {
		if s == t {
			return true
		}
	}
	return false
}

func (s ServiceType) Label() string {
	switch s {
	case ServiceWash:
		return "Wash"
	case ServiceIron:
		return "Iron"
	case ServiceWashIron:
		return "Wash & Iron"
	case ServiceDryClean:
		return "Dry Cleaning"
	}
	return string(s)
}

// OrderDraft is what the visitor types into the order form. It has no id and
// is never stored.
type OrderDraft struct {
	Name        string      `json:"name" form:"name"`
	Phone       string      `json:"phone" form:"phone"`
	Address     string      `json:"address" form:"address"`
	BranchID    BranchID    `json:"branchId" form:"branchId"`
	ServiceType ServiceType `json:"serviceType" form:"serviceType"`
	Date        string      `json:"date" form:"date"`
	Time        string      `json:"time" form:"time"`
	Notes       string      `json:"notes" form:"notes"`
}
