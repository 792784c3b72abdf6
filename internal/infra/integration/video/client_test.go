//go:build unit

package video_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"session-ledger/internal/domain/booking"
	"session-ledger/internal/infra/integration/video"
	"session-ledger/internal/pkg/config"
	"session-ledger/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Provision(t *testing.T) {
	bookingID := uuid.New()

	t.Run("returns the provider room identifier", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/rooms", r.URL.Path)
			assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, booking.DefaultRoomName(bookingID), body["channelName"])
			assert.Equal(t, false, body["isGroup"])

			_ = json.NewEncoder(w).Encode(map[string]string{"roomIdentifier": "room-42"})
		}))
		defer srv.Close()

		c := video.NewClient(config.VideoConfig{BaseURL: srv.URL + "/", APIKey: "key", Timeout: time.Second})
		room, err := c.Provision(context.Background(), bookingID)
		require.NoError(t, err)
		assert.Equal(t, "room-42", room)
	})

	t.Run("empty identifier falls back to the channel name", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		c := video.NewClient(config.VideoConfig{BaseURL: srv.URL, Timeout: time.Second})
		room, err := c.Provision(context.Background(), bookingID)
		require.NoError(t, err)
		assert.Equal(t, booking.DefaultRoomName(bookingID), room)
	})

	t.Run("error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := video.NewClient(config.VideoConfig{BaseURL: srv.URL, Timeout: time.Second})
		_, err := c.Provision(context.Background(), bookingID)
		require.Error(t, err)
		assert.True(t, errs.Is(err, video.ErrProviderStatus))
	})

	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		}))
		defer srv.Close()

		c := video.NewClient(config.VideoConfig{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
		_, err := c.Provision(context.Background(), bookingID)
		require.Error(t, err)
	})
}

func TestLocalRooms(t *testing.T) {
	id := uuid.New()
	room, err := video.LocalRooms{}.Provision(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "session-"+id.String(), room)
}
