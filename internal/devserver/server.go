package devserver

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Routes of the stand-in service
const (
	RouteShortenID   = "/url/shorten"
	RouteShortenFull = "/api/shorten"
	RoutePing        = "/ping"
)

const maxRequestBytes = 64 << 10

// Server serves the shortening endpoints of both contracts
type Server struct {
	baseURL string
	store   *store
	logger  *zap.Logger
	router  chi.Router
}

// New creates a server whose short URLs start with baseURL
func New(baseURL string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		baseURL: strings.TrimRight(baseURL, "/"),
		store:   newStore(),
		logger:  logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Post(RouteShortenID, s.handleShortenID)
	r.Post(RouteShortenFull, s.handleShortenFull)
	r.Get(RoutePing, s.handlePing)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleShortenID answers {"originalURL"} with {"id"}; errors carry "message"
func (s *Server) handleShortenID(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OriginalURL string `json:"originalURL"`
	}
	if msg := decodeRequest(r, &req); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": msg})
		return
	}
	if msg := checkURL(req.OriginalURL, "originalURL"); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": msg})
		return
	}

	id, err := s.store.idFor(req.OriginalURL)
	if err != nil {
		s.logger.Error("shorten failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// handleShortenFull answers {"longUrl"} with {"shortUrl"}; errors carry "error"
func (s *Server) handleShortenFull(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LongURL string `json:"longUrl"`
	}
	if msg := decodeRequest(r, &req); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}
	if msg := checkURL(req.LongURL, "longUrl"); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	id, err := s.store.idFor(req.LongURL)
	if err != nil {
		s.logger.Error("shorten failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"shortUrl": s.baseURL + "/" + id})
}

func (s *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// decodeRequest parses a JSON body, returning a client-facing message on failure
func decodeRequest(r *http.Request, dst any) string {
	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return "Content-Type must be application/json"
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBytes))
	if err != nil {
		return "Could not read request body"
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return "Request body must be a JSON object"
	}
	return ""
}

// checkURL validates the submitted long URL
func checkURL(raw, field string) string {
	if strings.TrimSpace(raw) == "" {
		return field + " is required"
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "Invalid URL"
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requestLogger logs every request with its latency and status
func requestLogger(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request processed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("client_request_id", r.Header.Get("X-Request-ID")),
				zap.Int("status", ww.Status()),
				zap.Int("size", ww.BytesWritten()),
				zap.Duration("latency", time.Since(start)),
			)
		})
	}
}
