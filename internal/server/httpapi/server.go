// Package httpapi exposes the public HTTP surface of the miniter server:
// routing, the authorization guard, and the request handlers.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/miniter/internal/logging"
	"github.com/dmitrijs2005/miniter/internal/server/services"
)

type HTTPServer struct {
	address   string
	logger    logging.Logger
	users     *services.UserService
	posts     *services.PostService
	timeline  *services.TimelineService
	jwtSecret []byte
	now       func() time.Time
}

func NewHTTPServer(address string, l logging.Logger, us *services.UserService, ps *services.PostService, ts *services.TimelineService, secretKey string) (*HTTPServer, error) {
	return &HTTPServer{
		address:   address,
		logger:    l.With("module", "httpapi"),
		users:     us,
		posts:     ps,
		timeline:  ts,
		jwtSecret: []byte(secretKey),
		now:       time.Now,
	}, nil
}

// Router builds the route table. Sign-up, login, ping and the timeline read
// are public; tweet, follow and unfollow pass through the guard.
func (s *HTTPServer) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.withRequestID, s.withAccessLog)

	r.HandleFunc("/ping", s.Ping).Methods(http.MethodGet)
	r.HandleFunc("/sign-up", s.SignUp).Methods(http.MethodPost)
	r.HandleFunc("/login", s.Login).Methods(http.MethodPost)
	r.HandleFunc("/timeline/{user_id:[0-9]+}", s.Timeline).Methods(http.MethodGet)

	r.Handle("/tweet", s.requireAuth(http.HandlerFunc(s.Tweet))).Methods(http.MethodPost)
	r.Handle("/follow", s.requireAuth(http.HandlerFunc(s.Follow))).Methods(http.MethodPost)
	r.Handle("/unfollow", s.requireAuth(http.HandlerFunc(s.Unfollow))).Methods(http.MethodPost)

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
