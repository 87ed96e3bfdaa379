package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen         TicketStatus = "open"
	TicketStatusTriaged      TicketStatus = "triaged"
	TicketStatusWaitingHuman TicketStatus = "waiting_human"
	TicketStatusResolved     TicketStatus = "resolved"
	TicketStatusClosed       TicketStatus = "closed"
)

// TicketCategory enumerates triage categories.
type TicketCategory string

const (
	CategoryBilling  TicketCategory = "billing"
	CategoryTech     TicketCategory = "tech"
	CategoryShipping TicketCategory = "shipping"
	CategoryOther    TicketCategory = "other"
)

// Ticket is the aggregate for support requests.
type Ticket struct {
	ID           string
	Title        string
	Description  string
	Category     TicketCategory
	Status       TicketStatus
	CreatedBy    string
	AssigneeID   *string
	SuggestionID *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// allowedTransitions defines every legal status move. resolved and
// closed are terminal except for the explicit reopen path back to open.
var allowedTransitions = map[TicketStatus][]TicketStatus{
	TicketStatusOpen:         {TicketStatusTriaged, TicketStatusWaitingHuman, TicketStatusResolved},
	TicketStatusTriaged:      {TicketStatusWaitingHuman, TicketStatusResolved},
	TicketStatusWaitingHuman: {TicketStatusResolved},
	TicketStatusResolved:     {TicketStatusClosed, TicketStatusOpen},
	TicketStatusClosed:       {TicketStatusOpen},
}

// CanTransition reports whether moving from current to next is legal.
func CanTransition(current, next TicketStatus) bool {
	for _, candidate := range allowedTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s is a known ticket status.
func ValidStatus(s TicketStatus) bool {
	switch s {
	case TicketStatusOpen, TicketStatusTriaged, TicketStatusWaitingHuman, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// ValidCategory reports whether c is a known ticket category.
func ValidCategory(c TicketCategory) bool {
	switch c {
	case CategoryBilling, CategoryTech, CategoryShipping, CategoryOther:
		return true
	}
	return false
}
