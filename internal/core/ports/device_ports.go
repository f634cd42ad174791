package ports

import (
	"context"

	"github.com/vncsmyrnk/votesender/internal/core/domain"
)

type DeviceAPI interface {
	CreateDevice(ctx context.Context, name string) (*domain.Device, error)
	GetDevice(ctx context.Context, id string) (*domain.Device, error)
	DeleteVotes(ctx context.Context, deviceID string) error
}

type DeviceService interface {
	Register(ctx context.Context, name string) (*domain.Device, error)
	Stats(ctx context.Context, deviceID string) (*domain.DeviceStats, error)
	ResetVotes(ctx context.Context, deviceID string) error
}
