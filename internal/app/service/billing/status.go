package billing

import "fmt"

type Severity string

const (
	SeverityUrgent  Severity = "urgent"
	SeverityWarning Severity = "warning"
	SeveritySafe    Severity = "safe"
)

// Status is a display classification of a days-left value.
type Status struct {
	Label    string   `json:"label"`
	Severity Severity `json:"severity"`
}

// Classify maps a days-left value to a label and severity. It is total
// over all integers, pure, and deterministic: negatives are overdue,
// 0 is due today, small counts spell out the remaining days, and
// anything beyond a week reads as settled for the month.
func Classify(daysLeft int) Status {
	switch {
	case daysLeft < 0:
		return Status{Label: "overdue", Severity: SeverityUrgent}
	case daysLeft == 0:
		return Status{Label: "due today", Severity: SeverityUrgent}
	case daysLeft == 1:
		return Status{Label: "tomorrow", Severity: SeverityUrgent}
	case daysLeft <= 3:
		return Status{Label: fmt.Sprintf("%d days left", daysLeft), Severity: SeverityUrgent}
	case daysLeft <= 7:
		return Status{Label: fmt.Sprintf("%d days left", daysLeft), Severity: SeverityWarning}
	default:
		return Status{Label: "paid this month", Severity: SeveritySafe}
	}
}
