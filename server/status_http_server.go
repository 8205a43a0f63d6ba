package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

type StatusHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
}

func NewStatusHttpServer(router *Router, muxRouter *mux.Router) *StatusHttpServer {
	return &StatusHttpServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      ":8080",
	}
}

// Start registers the routes, serves until a termination signal
// arrives, then shuts down gracefully.
func (s *StatusHttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.muxRouter,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[Server] Listening on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	<-stop
	log.Println("[Server] Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("[Server] Exiting")
}
