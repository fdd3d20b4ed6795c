package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/plant-care-service/pkg/common"
	"liyu1981.xyz/plant-care-service/pkg/models"
	_ "liyu1981.xyz/plant-care-service/pkg/testing"
)

func TestLiveFeedReceivesPostedReading(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	server := httptest.NewServer(rs.Server)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/sensors/live"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	assert.Eventually(t, func() bool { return rs.Live.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	w := doJSON(rs, "POST", "/sensors", sensorBody())
	require.Equal(t, http.StatusCreated, w.Code)
	posted := decode[ReadingResponse](t, w)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var pushed ReadingResponse
	require.NoError(t, json.Unmarshal(msg, &pushed))
	assert.Equal(t, posted.ID, pushed.ID)
	assert.Equal(t, models.ReadingSourceDirect, pushed.Source)
}

func TestLiveHubDropsClosedSubscribers(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	server := httptest.NewServer(rs.Server)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/sensors/live"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return rs.Live.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return rs.Live.Subscribers() == 0 }, time.Second, 10*time.Millisecond)
}

func TestBroadcastWithoutSubscribers(t *testing.T) {
	hub := NewLiveHub()
	hub.Broadcast(map[string]string{"hello": "world"})
	assert.Equal(t, 0, hub.Subscribers())
}

func TestStalledSubscriberDoesNotBlockIngestion(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	server := httptest.NewServer(rs.Server)
	defer server.Close()

	// this subscriber connects and never reads
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/sensors/live"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	assert.Eventually(t, func() bool { return rs.Live.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		defer close(done)
		blob := map[string]string{"blob": strings.Repeat("x", 64<<10)}
		for i := 0; i < 1000; i++ {
			rs.Live.Broadcast(blob)
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("broadcasting to a stalled subscriber blocked")
	}

	assert.Equal(t, 0, rs.Live.Subscribers())

	posted := make(chan int, 1)
	go func() {
		posted <- doJSON(rs, "POST", "/sensors", sensorBody()).Code
	}()

	select {
	case code := <-posted:
		assert.Equal(t, http.StatusCreated, code)
	case <-time.After(2 * time.Second):
		t.Fatal("POST /sensors blocked behind a stalled subscriber")
	}
}
