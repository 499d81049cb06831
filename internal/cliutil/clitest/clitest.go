// Package clitest wires a CLI to in-memory streams and a recording API
// server for command tests.
package clitest

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/pinepods/pinectl/internal/api"
	"github.com/pinepods/pinectl/internal/cliutil"
	"github.com/pinepods/pinectl/internal/config"
)

type Request struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   string
}

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	status   int
	body     string
	requests []Request
}

// NewServer answers every request with status and body.
func NewServer(t testing.TB, status int, body string) *Server {
	t.Helper()

	s := &Server{status: status, body: body}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)

	return s
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Header: r.Header.Clone(),
		Body:   string(b),
	})
	status, body := s.status, s.body
	s.mu.Unlock()

	w.WriteHeader(status)
	io.WriteString(w, body)
}

func (s *Server) Reply(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = status
	s.body = body
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Request(nil), s.requests...)
}

// LastRequest fails the test if the server has not been called.
func (s *Server) LastRequest(t testing.TB) Request {
	t.Helper()

	reqs := s.Requests()
	if len(reqs) == 0 {
		t.Fatal("no requests received")
	}
	return reqs[len(reqs)-1]
}

type Env struct {
	CLI    cliutil.CLI
	Out    *bytes.Buffer
	Err    *bytes.Buffer
	Server *Server
}

// NewEnv returns a CLI talking to a fresh server and backed by a config file
// in a temp dir.
func NewEnv(t testing.TB, status int, body string) *Env {
	t.Helper()

	srv := NewServer(t, status, body)

	var out, errOut bytes.Buffer
	cli := cliutil.NewCLI(io.NopCloser(strings.NewReader("")), &out, &errOut, "test")

	cfg := config.Default(filepath.Join(t.TempDir(), "config.yaml"))
	cfg.APIBaseURL = srv.URL
	cli.SetConfig(cfg)

	cli.SetClient(api.NewClient(api.ClientOptions{
		BaseURL:   cfg.APIBaseURL,
		UserAgent: "pinectl/test",
	}))

	return &Env{
		CLI:    cli,
		Out:    &out,
		Err:    &errOut,
		Server: srv,
	}
}
