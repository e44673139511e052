package auth

import (
	"context"
	"fmt"
	"html"
	"net"
	"net/http"
	"time"
)

// callbackServer receives the OAuth2 redirect on a loopback address and
// hands the authorization code back to the consent flow.
type callbackServer struct {
	address  string
	state    string
	code     chan string
	errors   chan error
	server   *http.Server
	listener net.Listener
}

func newCallbackServer(port int, state string) *callbackServer {
	return &callbackServer{
		address: fmt.Sprintf("127.0.0.1:%d", port),
		state:   state,
		code:    make(chan string, 1),
		errors:  make(chan error, 1),
	}
}

// start listens on the configured port (0 picks a free port) and serves the
// callback endpoint in the background.
func (s *callbackServer) start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/callback", s.handle)

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s (%w)", s.address, err)
	}

	s.listener = listener
	s.server = &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			select {
			case s.errors <- err:
			default:
			}
		}
	}()

	return nil
}

func (s *callbackServer) port() int {
	if addr, ok := s.listener.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}

	return 0
}

// wait blocks until the redirect delivers an authorization code, the flow
// fails, or the context is cancelled.
func (s *callbackServer) wait(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()

	case err := <-s.errors:
		return "", err

	case code := <-s.code:
		return code, nil
	}
}

func (s *callbackServer) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_ = s.server.Shutdown(ctx)
}

func (s *callbackServer) handle(w http.ResponseWriter, rq *http.Request) {
	query := rq.URL.Query()

	if errParam := query.Get("error"); errParam != "" {
		description := query.Get("error_description")

		select {
		case s.errors <- fmt.Errorf("authorisation failed: %s - %s", errParam, description):
		default:
		}

		s.respond(w, fmt.Sprintf("Authorisation failed: %s", html.EscapeString(errParam)))
		return
	}

	if state := query.Get("state"); state != s.state {
		select {
		case s.errors <- fmt.Errorf("authorisation failed: state mismatch"):
		default:
		}

		s.respond(w, "Authorisation failed: invalid state parameter")
		return
	}

	code := query.Get("code")
	if code == "" {
		select {
		case s.errors <- fmt.Errorf("authorisation failed: missing authorization code"):
		default:
		}

		s.respond(w, "Authorisation failed: missing authorization code")
		return
	}

	select {
	case s.code <- code:
	default:
	}

	s.respond(w, "Authorisation complete - you can close this window.")
}

func (s *callbackServer) respond(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
  <head><title>sheetkit</title></head>
  <body>
    <p>%s</p>
  </body>
</html>
`, message)
}
