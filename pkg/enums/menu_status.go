package enums

import "fmt"

// MenuStatus marks whether a menu item is offered for sale.
type MenuStatus string

const (
	MenuStatusActive   MenuStatus = "active"
	MenuStatusInactive MenuStatus = "inactive"
)

var validMenuStatuses = []MenuStatus{
	MenuStatusActive,
	MenuStatusInactive,
}

// String implements fmt.Stringer.
func (m MenuStatus) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MenuStatus.
func (m MenuStatus) IsValid() bool {
	for _, candidate := range validMenuStatuses {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMenuStatus converts raw input into a MenuStatus.
func ParseMenuStatus(value string) (MenuStatus, error) {
	for _, candidate := range validMenuStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid menu status %q", value)
}
