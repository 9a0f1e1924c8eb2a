package expense

import "time"

const (
	StatusPending   = "pending"
	StatusSubmitted = "submitted"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
)

const (
	CategoryTravel   = "travel"
	CategoryMeals    = "meals"
	CategoryOffice   = "office"
	CategorySoftware = "software"
	CategoryOther    = "other"
)

// Expense moves monotonically along pending -> submitted -> approved|rejected.
// ApprovedBy/ApprovedAt are stamped for both terminal outcomes.
type Expense struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Amount      float64
	Category    string
	Status      string
	SubmittedAt *time.Time
	ApprovedBy  *int64
	ApprovedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func ValidCategory(c string) bool {
	switch c {
	case CategoryTravel, CategoryMeals, CategoryOffice, CategorySoftware, CategoryOther:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further transition is defined for the status.
func Terminal(status string) bool {
	return status == StatusApproved || status == StatusRejected
}

// Editable reports whether the owner may still edit or delete the expense.
func Editable(status string) bool {
	return status == StatusPending || status == StatusSubmitted
}
