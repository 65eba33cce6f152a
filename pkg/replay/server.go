package replay

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cbodonnell/saltclient/pkg/auth/providers"
	"github.com/cbodonnell/saltclient/pkg/log"
	"github.com/cbodonnell/saltclient/pkg/messages"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

const closeGracePeriod = time.Second

// Server plays its script to every websocket client that connects to /ws.
type Server struct {
	server *http.Server
	script *Script
	auth   providers.AuthProvider
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewServerOptions struct {
	Port   int
	Script *Script
	// AuthProvider verifies the bearer token of each connection when set.
	AuthProvider providers.AuthProvider
	TLS          *TLSConfig
}

func NewServer(opts NewServerOptions) *Server {
	s := &Server{
		script: opts.Script,
		auth:   opts.AuthProvider,
		tls:    opts.TLS,
	}
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: s.Handler(),
	}
	return s
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/ws", s.handleWS).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	return r
}

// Start serves until Stop is called.
func (s *Server) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("Replay server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("Replay server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("Replay server closed")
			return
		}
		log.Error("Replay server error: %v", err)
	}
}

func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	logger := log.With("remote", r.RemoteAddr)
	if s.auth != nil {
		claims, err := providers.VerifyRequest(s.auth, r)
		if err != nil {
			logger.Warn("Rejected connection: %v", err)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		logger = logger.With("uid", claims.UID)
		logger.Debug("Authenticated")
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("Failed to upgrade to WebSocket: %v", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(messages.MaxMessageSize)
	logger.Debug("New WebSocket connection")

	if err := s.play(conn); err != nil {
		var mismatch *MismatchError
		if errors.As(err, &mismatch) {
			logger.Warn("Script %q failed: %v", s.script.Name, err)
			closeWS(conn, websocket.ClosePolicyViolation, mismatch.Error())
			return
		}
		logger.Error("Script %q aborted: %v", s.script.Name, err)
		closeWS(conn, websocket.CloseInternalServerErr, "replay failed")
		return
	}

	logger.Info("Script %q completed", s.script.Name)
	closeWS(conn, websocket.CloseNormalClosure, "script complete")
}

// MismatchError reports a client message the script did not expect.
type MismatchError struct {
	Step int
	Want messages.MessageType
	Got  messages.MessageType
	Err  error
}

func (e *MismatchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("step %d: invalid %s: %v", e.Step, e.Got, e.Err)
	}
	return fmt.Sprintf("step %d: expected %s, got %s", e.Step, e.Want, e.Got)
}

func (e *MismatchError) Unwrap() error {
	return e.Err
}

func (s *Server) play(conn *websocket.Conn) error {
	var seq uint64
	for i, step := range s.script.Steps {
		if step.Send != nil {
			seq++
			msg := &messages.Message{Seq: seq, Type: step.Send.Type, Payload: step.Send.Payload}
			if err := WriteMessageToWS(conn, msg); err != nil {
				return err
			}
			log.Trace("Step %d: sent %s", i, msg.Type)
			continue
		}

		msg, err := ReadMessageFromWS(conn)
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if msg.Type != step.Expect {
			return &MismatchError{Step: i, Want: step.Expect, Got: msg.Type}
		}
		if _, err := messages.DecodeClientMessage(msg); err != nil {
			return &MismatchError{Step: i, Want: step.Expect, Got: msg.Type, Err: err}
		}
		log.Trace("Step %d: received %s", i, msg.Type)
	}
	return nil
}

// closeWS starts the closing handshake and waits briefly for the client to answer it.
func closeWS(conn *websocket.Conn, code int, reason string) {
	deadline := time.Now().Add(closeGracePeriod)
	if err := conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), deadline); err != nil {
		log.Debug("Failed to write close message: %v", err)
		return
	}
	conn.SetReadDeadline(deadline)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// WriteMessageToWS writes a Message to a WebSocket connection
func WriteMessageToWS(conn *websocket.Conn, msg *messages.Message) error {
	b, err := messages.SerializeMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to serialize message: %w", err)
	}

	if err := conn.WriteMessage(websocket.BinaryMessage, b); err != nil {
		return fmt.Errorf("failed to write message to WebSocket connection: %w", err)
	}

	return nil
}

// ReadMessageFromWS reads a Message from a WebSocket connection
func ReadMessageFromWS(conn *websocket.Conn) (*messages.Message, error) {
	_, message, err := conn.ReadMessage()
	if err != nil {
		return nil, err
	}

	msg, err := messages.DeserializeMessage(message)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize message: %w", err)
	}

	return msg, nil
}
