package pipeline

import "fmt"

// Kind identifies a step of the fixed catalog. The numeric order is the run order.
type Kind int

const (
	Summarize Kind = iota
	ActionItems
	DraftEmail
	SendEmail
)

var kindOrder = []Kind{Summarize, ActionItems, DraftEmail, SendEmail}

// Kinds returns every step kind in registry order.
func Kinds() []Kind {
	out := make([]Kind, len(kindOrder))
	copy(out, kindOrder)
	return out
}

// String returns the toggle name of k.
func (k Kind) String() string {
	switch k {
	case Summarize:
		return "summarize"
	case ActionItems:
		return "actions"
	case DraftEmail:
		return "email"
	case SendEmail:
		return "send"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Label is the heading shown above the step's output.
func (k Kind) Label() string {
	switch k {
	case Summarize:
		return "Summary"
	case ActionItems:
		return "Action Items"
	case DraftEmail:
		return "Follow-up Email Draft"
	case SendEmail:
		return "Email Delivery"
	default:
		return k.String()
	}
}
