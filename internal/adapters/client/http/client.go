package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vncsmyrnk/votesender/internal/core/domain"
	"github.com/vncsmyrnk/votesender/internal/core/ports"
)

const votesPath = "/api/votes"

// Client talks to the votes endpoint of the remote API. It implements both
// ports.VoteAPI and ports.DeviceAPI and is safe for concurrent use.
type Client struct {
	baseURL string
	client  ports.HTTPClient
}

func NewClient(baseURL string, client ports.HTTPClient) *Client {
	if client == nil {
		client = NewHTTPClient(0)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// NewHTTPClient returns an *http.Client that hands redirects back to the
// caller instead of following them. A zero timeout keeps the transport
// default.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

type createDeviceRequest struct {
	Action     string `json:"action"`
	DeviceName string `json:"deviceName"`
}

func (c *Client) PostVote(ctx context.Context, vote domain.Vote) (*domain.SendResult, error) {
	status, body, err := c.do(ctx, http.MethodPost, c.endpoint(nil), vote)
	if err != nil {
		return nil, err
	}

	return &domain.SendResult{
		Vote:       vote,
		Accepted:   status == http.StatusCreated,
		StatusCode: status,
		Body:       string(body),
	}, nil
}

func (c *Client) CreateDevice(ctx context.Context, name string) (*domain.Device, error) {
	req := createDeviceRequest{
		Action:     "createDevice",
		DeviceName: name,
	}

	status, body, err := c.do(ctx, http.MethodPost, c.endpoint(nil), req)
	if err != nil {
		return nil, err
	}
	if status != http.StatusCreated {
		return nil, &domain.RejectionError{StatusCode: status, Body: string(body)}
	}

	var device domain.Device
	if err := json.Unmarshal(body, &device); err != nil {
		return nil, fmt.Errorf("failed to decode device: %w", err)
	}
	return &device, nil
}

func (c *Client) GetDevice(ctx context.Context, id string) (*domain.Device, error) {
	status, body, err := c.do(ctx, http.MethodGet, c.endpoint(url.Values{"deviceId": {id}}), nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", domain.ErrDeviceNotFound, id)
	}
	if status != http.StatusOK {
		return nil, &domain.RejectionError{StatusCode: status, Body: string(body)}
	}

	// the API answers 200 with [] when the device lookup itself fails
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && trimmed[0] == '[' {
		return nil, fmt.Errorf("%w: %s", domain.ErrDeviceNotFound, id)
	}

	var device domain.Device
	if err := json.Unmarshal(body, &device); err != nil {
		return nil, fmt.Errorf("failed to decode device: %w", err)
	}
	if device.ID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrDeviceNotFound, id)
	}
	return &device, nil
}

func (c *Client) DeleteVotes(ctx context.Context, deviceID string) error {
	query := url.Values{
		"deviceId":       {deviceID},
		"deleteAllVotes": {"true"},
	}

	status, body, err := c.do(ctx, http.MethodDelete, c.endpoint(query), nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return &domain.RejectionError{StatusCode: status, Body: string(body)}
	}
	return nil
}

func (c *Client) endpoint(query url.Values) string {
	u := c.baseURL + votesPath
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do performs one request and returns the status and full body. Any failure
// before a complete response is read is a *domain.TransportError.
func (c *Client) do(ctx context.Context, method, target string, payload any) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, &domain.TransportError{Method: method, URL: target, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &domain.TransportError{Method: method, URL: target, Err: err}
	}

	return resp.StatusCode, body, nil
}
