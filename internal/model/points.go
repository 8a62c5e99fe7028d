package model

import "time"

// Action is one immutable entry of the transaction log.
// Amount is always positive, the direction is encoded by From and To.
type Action struct {
	From      string
	To        string
	Amount    int64
	Command   string
	Note      string
	Timestamp int64
}

func (a *Action) Time() time.Time {
	return time.Unix(a.Timestamp, 0).UTC()
}

// Balance is the materialized running total for one user.
type Balance struct {
	User      string
	Amount    int64
	UpdatedAt int64
}
