package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

type Server struct {
	*http.Server
	shutdownTimeout time.Duration
	log             *logrus.Logger
}

func NewServer(addr string, router http.Handler, log *logrus.Logger) *Server {
	return &Server{
		Server: &http.Server{
			Addr:    addr,
			Handler: router,
		},
		shutdownTimeout: 10 * time.Second,
		log:             log,
	}
}

func (s *Server) StartWithGracefulShutdown() {
	serverErrors := make(chan error, 1)

	go func() {
		serverErrors <- s.start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		s.log.WithError(err).Fatal("error starting server")

	case <-shutdown:
		s.log.Info("starting graceful shutdown")

		ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.Server.Shutdown(ctx); err != nil {
			s.log.WithError(err).Warn("could not gracefully shutdown the server")

			if err := s.Close(); err != nil {
				s.log.WithError(err).Warn("could not close server")
			}
		}
		s.log.Info("server gracefully stopped")
	}
}

func (s *Server) start() error {
	s.log.WithField("addr", s.Addr).Info("server listening")
	return s.ListenAndServe()
}
