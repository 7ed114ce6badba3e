package statemachine

import (
	"errors"

	"foodie-express-api/models"
)

// validTransitions is the authoritative order lifecycle definition:
// pending → preparing → delivered, with cancellation possible from any
// non-terminal state.
var validTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.StatusPending:   {models.StatusPreparing, models.StatusCancelled},
	models.StatusPreparing: {models.StatusDelivered, models.StatusCancelled},
}

// IsTerminal reports whether no further transitions exist from status.
func IsTerminal(status models.OrderStatus) bool {
	return len(validTransitions[status]) == 0
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	return validTransitions[status]
}

// CanTransition checks whether an order may move from one state to another
func CanTransition(from, to models.OrderStatus) error {
	for _, next := range validTransitions[from] {
		if next == to {
			return nil
		}
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			". Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}
