package approval

import "time"

const (
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Approval is the decision record that moves an expense out of submitted.
// Recording one and transitioning its expense happen as a single atomic step.
type Approval struct {
	ID         int64
	ExpenseID  int64
	ApproverID int64
	Status     string
	Comments   string
	CreatedAt  time.Time
}

func ValidStatus(s string) bool {
	return s == StatusApproved || s == StatusRejected
}
