package domain

import "fmt"

type Vote struct {
	DeviceID  string `json:"deviceId" validate:"required"`
	VoteValue int    `json:"voteValue"`
}

// SendResult is the outcome of a vote the server answered. Accepted is set
// only for a 201; otherwise StatusCode and Body hold the raw response.
type SendResult struct {
	Vote       Vote
	Accepted   bool
	StatusCode int
	Body       string
}

func (r SendResult) Message() string {
	if r.Accepted {
		return fmt.Sprintf("Vote %d sent successfully!", r.Vote.VoteValue)
	}
	return fmt.Sprintf("Error: %d - %s", r.StatusCode, r.Body)
}
