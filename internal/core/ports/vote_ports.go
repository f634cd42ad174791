package ports

import (
	"context"

	"github.com/vncsmyrnk/votesender/internal/core/domain"
)

type VoteAPI interface {
	PostVote(ctx context.Context, vote domain.Vote) (*domain.SendResult, error)
}

type VoteInput struct {
	DeviceID  string
	VoteValue int
}

type VoteService interface {
	SendVote(ctx context.Context, input VoteInput) (*domain.SendResult, error)
}
