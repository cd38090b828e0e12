package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"othello/agent"
	"othello/game"
	"othello/meta"
	"othello/searcher"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type session struct {
	mutex    sync.Mutex
	agent    *agent.Agent
	lastUsed atomic.Int64 // Unix nanoseconds
}

func (sess *session) touch() {
	sess.lastUsed.Store(time.Now().UnixNano())
}

type Option func(s *Server)

// WithIdleTimeout sets how long a session may go without a move before it is
// dropped. Expired sessions are swept whenever a new game starts.
func WithIdleTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		if timeout > 0 {
			s.idleTimeout = timeout
		}
	}
}

// Server hosts agents over HTTP, one per game session. A session ends when
// its game is over, when it is deleted or when it sits idle too long.
type Server struct {
	router      chi.Router
	mutex       sync.RWMutex
	sessions    map[string]*session
	nextID      int
	idleTimeout time.Duration
}

func New(options ...Option) *Server {
	s := &Server{
		sessions:    make(map[string]*session),
		idleTimeout: meta.SessionTimeout,
	}
	for _, option := range options {
		option(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Post("/games", s.handleNewGame)
	r.Post("/games/{id}/moves", s.handleMove)
	r.Delete("/games/{id}", s.handleEndGame)

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Sessions returns the number of open game sessions.
func (s *Server) Sessions() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.sessions)
}

// Start serves on addr until the listener fails.
func Start(addr string) error {
	log.Info().Msgf("agent server listening on %s", addr)
	server := &http.Server{
		Addr:              addr,
		Handler:           New(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return server.ListenAndServe()
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var payload NewGameRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	side, ok := game.ParseSide(payload.Side)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown side "+strconv.Quote(payload.Side))
		return
	}
	policy, err := searcher.PolicyByName(payload.Policy)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess := &session{agent: agent.New(side, agent.WithPolicy(policy))}
	sess.touch()

	s.mutex.Lock()
	s.expire()
	s.nextID++
	id := strconv.Itoa(s.nextID)
	s.sessions[id] = sess
	s.mutex.Unlock()

	log.Info().Str("game", id).Str("side", side.String()).Str("policy", policy.Name()).Msg("game started")
	writeJSON(w, http.StatusCreated, NewGameResponse{ID: id})
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess := s.session(id)
	if sess == nil {
		writeError(w, http.StatusNotFound, "unknown game "+id)
		return
	}
	var payload MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	sess.mutex.Lock()
	defer sess.mutex.Unlock()

	opponent, err := payload.Opponent.Move()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	a := sess.agent
	// A pass is always accepted: the opponent may have had nothing to play
	if !opponent.IsPass() && !a.Board().IsLegalMove(opponent, a.Side().Opposite()) {
		writeError(w, http.StatusUnprocessableEntity, "illegal opponent move "+opponent.String())
		return
	}

	move := a.ChooseMove(opponent, payload.MsLeft)
	sess.touch()
	if a.Board().IsGameOver() {
		s.remove(id)
		log.Info().Str("game", id).Msg("game finished")
	}
	writeJSON(w, http.StatusOK, MoveResponse{Move: FromMove(move)})
}

func (s *Server) handleEndGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.remove(id) {
		writeError(w, http.StatusNotFound, "unknown game "+id)
		return
	}
	log.Info().Str("game", id).Msg("game ended")
	w.WriteHeader(http.StatusNoContent)
}

// remove drops a session and reports whether it existed.
func (s *Server) remove(id string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

// expire drops idle sessions. The caller holds s.mutex.
func (s *Server) expire() {
	deadline := time.Now().Add(-s.idleTimeout).UnixNano()
	for id, sess := range s.sessions {
		if sess.lastUsed.Load() < deadline {
			delete(s.sessions, id)
			log.Info().Str("game", id).Msg("idle game expired")
		}
	}
}

func (s *Server) session(id string) *session {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.sessions[id]
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("request", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("handled request")
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
