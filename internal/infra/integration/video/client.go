package video

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"session-ledger/internal/domain/booking"
	"session-ledger/internal/pkg/config"
	"session-ledger/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/rs/dnscache"
)

var ErrProviderStatus = errs.New("video provider returned an error status")

const dnsRefreshInterval = 5 * time.Minute

type createRoomRequest struct {
	ChannelName string `json:"channelName"`
	IsGroup     bool   `json:"isGroup"`
}

type createRoomResponse struct {
	RoomIdentifier string `json:"roomIdentifier"`
}

// Client provisions one-to-one rooms on the video provider.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg config.VideoConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: newTransport(),
		},
	}
}

// Provision asks the provider for a room. The requested channel name is the
// default room name so both sides agree when the provider echoes it back.
func (c *Client) Provision(ctx context.Context, bookingID uuid.UUID) (string, error) {
	channel := booking.DefaultRoomName(bookingID)

	body, err := json.Marshal(createRoomRequest{ChannelName: channel, IsGroup: false})
	if err != nil {
		return "", errs.Wrap(err, "encode room request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rooms", bytes.NewReader(body))
	if err != nil {
		return "", errs.Wrap(err, "build room request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "call video provider")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errs.Wrapf(ErrProviderStatus, "status %d", resp.StatusCode)
	}

	var out createRoomResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errs.Wrap(err, "decode room response")
	}
	if out.RoomIdentifier == "" {
		return channel, nil
	}
	return out.RoomIdentifier, nil
}

// LocalRooms is used when no provider is configured.
type LocalRooms struct{}

func (LocalRooms) Provision(_ context.Context, bookingID uuid.UUID) (string, error) {
	return booking.DefaultRoomName(bookingID), nil
}

var (
	resolver     *dnscache.Resolver
	resolverOnce sync.Once
)

func cachedResolver() *dnscache.Resolver {
	resolverOnce.Do(func() {
		resolver = &dnscache.Resolver{}
		go func() {
			ticker := time.NewTicker(dnsRefreshInterval)
			defer ticker.Stop()
			for range ticker.C {
				resolver.Refresh(true)
			}
		}()
	})
	return resolver
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.DialContext = dialWithCache
	return t
}

func dialWithCache(ctx context.Context, network, address string) (net.Conn, error) {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		return nil, err
	}

	ips, err := cachedResolver().LookupHost(ctx, host)
	if err != nil {
		return nil, err
	}

	dialer := &net.Dialer{Timeout: 10 * time.Second, KeepAlive: 30 * time.Second}
	var lastErr error
	for _, ip := range ips {
		conn, err := dialer.DialContext(ctx, network, net.JoinHostPort(ip, port))
		if err == nil {
			return conn, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = &net.DNSError{Err: "no addresses found", Name: host}
	}
	return nil, errs.Wrapf(lastErr, "dial %s", address)
}
