package inbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/alinanorakari/supersimple/internal/face"
)

// maxBody bounds a settings message.
const maxBody = 64 << 10

// Sink applies updates to the running watch face.
type Sink interface {
	ApplySettings(ctx context.Context, u face.Update) (face.Result, error)
	CurrentSettings(ctx context.Context) (face.Update, error)
	Replay(ctx context.Context) error
}

// ApplyResponse is the body of a POST /settings reply.
type ApplyResponse struct {
	Applied  []string `json:"applied"`
	Rejected []string `json:"rejected"`
	Ignored  []string `json:"ignored"`
	Warning  string   `json:"warning,omitempty"`
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

// Server is the settings page endpoint.
type Server struct {
	Addr string
	Sink Sink
	// Metrics, when set, is served at /metrics.
	Metrics http.Handler

	mu     sync.Mutex
	srv    *http.Server
	ln     net.Listener
	closed bool
}

// NewServer creates a server for sink listening on addr.
func NewServer(addr string, sink Sink) *Server {
	return &Server{Addr: addr, Sink: sink}
}

// Handler returns the routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /settings", s.handleGetSettings)
	mux.HandleFunc("POST /settings", s.handlePostSettings)
	mux.HandleFunc("POST /replay", s.handleReplay)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, okResponse{OK: true})
	})
	if s.Metrics != nil {
		mux.Handle("GET /metrics", s.Metrics)
	}
	return mux
}

// Start listens and serves until ctx is done or Stop is called.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.New("settings server already stopped")
	}
	if s.srv != nil {
		return nil
	}

	addr := s.Addr
	if addr == "" {
		addr = ":8080"
	}

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		s.srv = nil
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.ln = ln
	slog.Info("Settings server listening", "addr", ln.Addr().String())

	go func() {
		<-ctx.Done()
		_ = s.Stop()
	}()

	srv := s.srv
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Settings server failed", "error", err)
		}
	}()

	return nil
}

// ListenAddr returns the bound address once started.
func (s *Server) ListenAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Stop shuts the server down.
func (s *Server) Stop() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	srv := s.srv
	s.srv = nil
	s.ln = nil
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	u, err := s.Sink.CurrentSettings(r.Context())
	if err != nil {
		writeAPIError(w, http.StatusServiceUnavailable, "unavailable", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, Encode(u))
}

func (s *Server) handlePostSettings(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBody+1))
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "read_failed", err.Error())
		return
	}
	if len(body) > maxBody {
		writeAPIError(w, http.StatusRequestEntityTooLarge, "too_large", "settings message too large")
		return
	}

	d, err := Decode(body)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	res, err := s.Sink.ApplySettings(r.Context(), d.Update)
	if err != nil {
		writeAPIError(w, http.StatusServiceUnavailable, "unavailable", err.Error())
		return
	}

	resp := ApplyResponse{
		Applied:  KeyNames(res.Applied),
		Rejected: KeyNames(res.Rejected),
		Ignored:  d.Ignored,
	}
	if resp.Ignored == nil {
		resp.Ignored = []string{}
	}
	if res.Err != nil {
		resp.Warning = res.Err.Error()
	}
	slog.Info("Settings received",
		"applied", resp.Applied, "rejected", resp.Rejected, "ignored", resp.Ignored)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReplay(w http.ResponseWriter, r *http.Request) {
	if err := s.Sink.Replay(r.Context()); err != nil {
		writeAPIError(w, http.StatusServiceUnavailable, "unavailable", err.Error())
		return
	}
	writeJSON(w, http.StatusAccepted, okResponse{OK: true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
