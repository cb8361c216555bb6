// Package server hosts the HTTP surface of the analysis service.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// EustonHttpServer runs the HTTP listener with graceful shutdown on
// SIGINT/SIGTERM.
type EustonHttpServer struct {
	router          *Router
	muxRouter       *mux.Router
	addr            string
	shutdownTimeout time.Duration
}

func NewEustonHttpServer(router *Router, muxRouter *mux.Router, addr string, shutdownTimeout time.Duration) *EustonHttpServer {
	return &EustonHttpServer{
		router:          router,
		muxRouter:       muxRouter,
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
	}
}

// Start registers the routes, serves until a termination signal arrives,
// then shuts down gracefully.
func (s *EustonHttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.muxRouter,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Infof("[Server] Listening on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[Server] ListenAndServe: %v", err)
		}
	}()

	<-stop
	log.Info("[Server] Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[Server] Forced to shutdown: %v", err)
	}
	log.Info("[Server] Exited")
}
