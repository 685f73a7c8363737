package domain

// anyStatus is a wildcard source state in the transition table.
const anyStatus Status = "*"

type transitionKey struct {
	from Status
	on   ResponseType
}

// transitions is the full status machine for response events. A submitted
// bid wins from any state, and an explicitly recorded decline overrides even
// bid_submitted; replied only advances a record that is exactly sent. New
// response types extend this table instead of adding conditionals.
var transitions = map[transitionKey]Status{
	{anyStatus, ResponseSubmitted}: StatusBidSubmitted,
	{anyStatus, ResponseDeclined}:  StatusDeclined,
	{StatusSent, ResponseReplied}:  StatusReplied,
}

// NextStatus returns the status a record moves to when a response of the
// given type arrives. Events with no matching transition leave the status
// unchanged.
func NextStatus(current Status, response ResponseType) Status {
	if next, ok := transitions[transitionKey{current, response}]; ok {
		return next
	}
	if next, ok := transitions[transitionKey{anyStatus, response}]; ok {
		return next
	}
	return current
}
