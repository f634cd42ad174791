package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendResultMessage(t *testing.T) {
	ok := SendResult{Vote: Vote{DeviceID: "d", VoteValue: 4}, Accepted: true, StatusCode: 201}
	assert.Equal(t, "Vote 4 sent successfully!", ok.Message())

	rejected := SendResult{Vote: Vote{DeviceID: "d", VoteValue: 4}, StatusCode: 400, Body: "Invalid vote"}
	assert.Equal(t, "Error: 400 - Invalid vote", rejected.Message())
}

func TestTransportErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := error(&TransportError{Method: "POST", URL: "http://localhost/api/votes", Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "POST http://localhost/api/votes: connection refused", err.Error())
}
