// Package testutil runs an in-process stand-in for the chess.com
// published-data api for client and download tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Server serves canned bodies per path. Unregistered paths return the
// api's 404 shape, the way the real thing answers for unknown players.
type Server struct {
	t testing.TB

	mu     sync.Mutex
	routes map[string]response

	httpServer *httptest.Server
}

type response struct {
	status int
	body   []byte
}

func NewServer(t testing.TB) *Server {
	s := &Server{
		t:      t,
		routes: map[string]response{},
	}
	s.httpServer = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.httpServer.Close)
	return s
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	res, ok := s.routes[r.URL.Path]
	s.mu.Unlock()

	w.Header().Set("content-type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"code":0,"message":"Data provider not found."}`)
		return
	}
	w.WriteHeader(res.status)
	w.Write(res.body)
}

func (s *Server) BaseUrl() string {
	return s.httpServer.URL
}

// Handle makes path return body with the given status.
func (s *Server) Handle(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[path] = response{status: status, body: []byte(body)}
}

// HandleJson makes path return v marshaled as json.
func (s *Server) HandleJson(path string, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.t.Fatal(err)
	}
	s.Handle(path, http.StatusOK, string(body))
}

// SetArchives publishes the archive index for a player, one archive
// per month given as "YYYY/MM", and returns the archive urls in index
// order.
func (s *Server) SetArchives(username string, months ...string) []string {
	urls := make([]string, len(months))
	for i, month := range months {
		urls[i] = fmt.Sprintf("%s/player/%s/games/%s", s.BaseUrl(), username, month)
	}
	s.HandleJson(
		fmt.Sprintf("/player/%s/games/archives", username),
		map[string][]string{"archives": urls},
	)
	return urls
}

// SetMonth publishes one monthly archive for a player and returns its
// url. Games may be anything that marshals into the api game shape.
func (s *Server) SetMonth(username string, month string, games ...any) string {
	if games == nil {
		games = []any{}
	}
	path := fmt.Sprintf("/player/%s/games/%s", username, month)
	s.HandleJson(path, map[string]any{"games": games})
	return s.BaseUrl() + path
}
