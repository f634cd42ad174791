package services

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/vncsmyrnk/votesender/internal/core/domain"
	"github.com/vncsmyrnk/votesender/internal/core/ports"
	"github.com/vncsmyrnk/votesender/internal/validator"
)

type deviceService struct {
	api      ports.DeviceAPI
	validate *validator.Validator
	logger   *log.Logger
}

func NewDeviceService(api ports.DeviceAPI, validate *validator.Validator, logger *log.Logger) ports.DeviceService {
	if logger == nil {
		logger = log.Default()
	}
	return &deviceService{
		api:      api,
		validate: validate,
		logger:   logger,
	}
}

func (s *deviceService) Register(ctx context.Context, name string) (*domain.Device, error) {
	if err := s.validate.Var("deviceName", name, "required"); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDevice, err)
	}

	device, err := s.api.CreateDevice(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to register device: %w", err)
	}
	if device.ID == "" {
		return nil, fmt.Errorf("failed to register device: %w: empty id in response", domain.ErrInvalidDevice)
	}

	s.logger.Printf("Device %q registered with id %s", name, device.ID)
	return device, nil
}

func (s *deviceService) Stats(ctx context.Context, deviceID string) (*domain.DeviceStats, error) {
	if err := s.validate.Var("deviceId", deviceID, "required"); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDevice, err)
	}

	device, err := s.api.GetDevice(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get device stats: %w", err)
	}

	stats := &domain.DeviceStats{
		DeviceID:   device.ID,
		Name:       device.Name,
		TotalVotes: len(device.Votes),
	}
	if stats.TotalVotes > 0 {
		sum := 0
		for _, v := range device.Votes {
			sum += v.Value
		}
		// two decimals, as shown on the dashboard
		stats.Average = math.Round(float64(sum)/float64(stats.TotalVotes)*100) / 100
	}

	return stats, nil
}

func (s *deviceService) ResetVotes(ctx context.Context, deviceID string) error {
	if err := s.validate.Var("deviceId", deviceID, "required"); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidDevice, err)
	}

	if err := s.api.DeleteVotes(ctx, deviceID); err != nil {
		return fmt.Errorf("failed to reset votes: %w", err)
	}

	s.logger.Printf("All votes deleted for device %s", deviceID)
	return nil
}
