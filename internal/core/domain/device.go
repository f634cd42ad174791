package domain

import "time"

type Device struct {
	ID    string       `json:"id"`
	Name  string       `json:"name,omitempty"`
	Votes []DeviceVote `json:"votes,omitempty"`
}

type DeviceVote struct {
	ID        string    `json:"id"`
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

type DeviceStats struct {
	DeviceID   string
	Name       string
	TotalVotes int
	Average    float64
}
