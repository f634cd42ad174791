package services

import (
	"context"
	"fmt"
	"log"

	"github.com/vncsmyrnk/votesender/internal/core/domain"
	"github.com/vncsmyrnk/votesender/internal/core/ports"
	"github.com/vncsmyrnk/votesender/internal/validator"
)

type voteService struct {
	api      ports.VoteAPI
	validate *validator.Validator
	logger   *log.Logger
}

func NewVoteService(api ports.VoteAPI, validate *validator.Validator, logger *log.Logger) ports.VoteService {
	if logger == nil {
		logger = log.Default()
	}
	return &voteService{
		api:      api,
		validate: validate,
		logger:   logger,
	}
}

// SendVote posts one vote and logs the outcome. A rejected vote is not an
// error; only validation and transport faults are returned as errors, and
// nothing is logged for them.
func (s *voteService) SendVote(ctx context.Context, input ports.VoteInput) (*domain.SendResult, error) {
	vote := domain.Vote{
		DeviceID:  input.DeviceID,
		VoteValue: input.VoteValue,
	}

	if err := s.validate.Struct(vote); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidVote, err)
	}

	result, err := s.api.PostVote(ctx, vote)
	if err != nil {
		return nil, err
	}

	s.logger.Println(result.Message())
	return result, nil
}

// SendVotes sends the same vote count times in sequence. Rejections do not
// stop the sequence; the first error does, returning the results so far.
func SendVotes(ctx context.Context, service ports.VoteService, input ports.VoteInput, count int) ([]*domain.SendResult, error) {
	results := make([]*domain.SendResult, 0, count)
	for i := 0; i < count; i++ {
		result, err := service.SendVote(ctx, input)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}
