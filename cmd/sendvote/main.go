package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	apihttp "github.com/vncsmyrnk/votesender/internal/adapters/client/http"
	"github.com/vncsmyrnk/votesender/internal/config"
	"github.com/vncsmyrnk/votesender/internal/core/ports"
	"github.com/vncsmyrnk/votesender/internal/core/services"
	"github.com/vncsmyrnk/votesender/internal/validator"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log.New(os.Stdout, "", 0)); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg config.Config, out *log.Logger) error {
	validate, err := validator.New("en")
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}

	client := apihttp.NewClient(cfg.BaseURL, apihttp.NewHTTPClient(cfg.Timeout))

	voteService := services.NewVoteService(client, validate, out)
	deviceService := services.NewDeviceService(client, validate, out)

	deviceID := cfg.DeviceID
	if cfg.DeviceName != "" {
		device, err := deviceService.Register(ctx, cfg.DeviceName)
		if err != nil {
			return err
		}
		deviceID = device.ID
	}

	if _, err := uuid.Parse(deviceID); err != nil {
		out.Printf("Warning: device id %q is not a UUID", deviceID)
	}

	if cfg.Reset {
		if err := deviceService.ResetVotes(ctx, deviceID); err != nil {
			return err
		}
	}

	input := ports.VoteInput{
		DeviceID:  deviceID,
		VoteValue: cfg.VoteValue,
	}
	if _, err := services.SendVotes(ctx, voteService, input, cfg.Count); err != nil {
		return err
	}

	if cfg.Stats {
		stats, err := deviceService.Stats(ctx, deviceID)
		if err != nil {
			return err
		}
		out.Printf("Device %s (%s): %d votes, average %.2f", stats.Name, stats.DeviceID, stats.TotalVotes, stats.Average)
	}

	out.Printf("Check your dashboard: %s", cfg.BaseURL)
	return nil
}
