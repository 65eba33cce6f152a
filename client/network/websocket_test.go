package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cbodonnell/saltclient/pkg/game/types"
	"github.com/cbodonnell/saltclient/pkg/messages"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDial_WebSocket(t *testing.T) {
	me := types.NewPlayerID()
	authHeader := make(chan string, 1)

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader <- r.Header.Get("Authorization")
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		msg, _ := messages.NewMessage(1, messages.Hello{PlayerID: me})
		b, _ := messages.SerializeMessage(msg)
		_ = conn.WriteMessage(websocket.BinaryMessage, b)

		_, reply, err := conn.ReadMessage()
		if err != nil {
			return
		}
		decoded, err := messages.DeserializeMessage(reply)
		if err != nil || decoded.Type != messages.MessageTypeClientReady {
			return
		}
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"))
		_, _, _ = conn.ReadMessage()
	}))
	defer server.Close()

	conn, err := Dial(context.Background(), DialOptions{
		Addr:      "ws" + strings.TrimPrefix(server.URL, "http"),
		Transport: TransportWebSocket,
		Token:     "secret",
	})
	require.NoError(t, err)
	defer conn.Close()

	assert.Equal(t, "Bearer secret", <-authHeader)

	got, err := conn.Recv(context.Background())
	require.NoError(t, err)
	assert.Equal(t, messages.Hello{PlayerID: me}, got)

	require.NoError(t, conn.Send(context.Background(), messages.Ready{}))

	_, err = conn.Recv(context.Background())
	assert.True(t, IsClosedByServer(err), "got %v", err)
}

func TestDial_UnknownTransport(t *testing.T) {
	_, err := Dial(context.Background(), DialOptions{Addr: "localhost:1", Transport: "carrier-pigeon"})
	assert.Error(t, err)
}
