package models

import "time"

// TimeLayout is the timestamp layout used everywhere in the output document.
// It carries no offset: instants are rendered in the reference instant's own
// location and never converted.
const TimeLayout = "2006-01-02T15:04:05"

// Envelope is the result of one extraction run: the reference instant the
// departures were resolved against, the filter that was applied, and the
// trips in document order. It is assembled once and never mutated afterwards.
type Envelope struct {
	RequestedAt string `json:"requested_at"`
	Filter      string `json:"filter"`
	Trips       []Trip `json:"trips"`
}

// NewEnvelope wraps a trip list with its request metadata. The trip slice is
// normalized so an empty result marshals as [] rather than null.
func NewEnvelope(requestedAt time.Time, filter string, trips []Trip) *Envelope {
	if trips == nil {
		trips = []Trip{}
	}
	return &Envelope{
		RequestedAt: requestedAt.Format(TimeLayout),
		Filter:      filter,
		Trips:       trips,
	}
}
