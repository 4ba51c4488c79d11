package serve

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/reallyasi9/nflstats/internal/handlers"
	"github.com/sirupsen/logrus"
)

// Serve runs the HTTP API until ctx is done, then shuts down gracefully.
func Serve(ctx *Context) error {
	log := logrus.WithField("tool", "serve")

	ln := ctx.Listener
	if ln == nil {
		var err error
		ln, err = net.Listen("tcp", ctx.Addr)
		if err != nil {
			return fmt.Errorf("Serve: failed to listen on '%s': %w", ctx.Addr, err)
		}
	}

	srv := &http.Server{
		Handler:      handlers.NewRouter(handlers.NewHandler(ctx.Source), ctx.Origins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.WithField("addr", ln.Addr().String()).Info("Listening")
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("Serve: %w", err)

	case <-ctx.Done():
		log.Info("Shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), ctx.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			log.WithError(err).Warn("Graceful shutdown failed")
			if err := srv.Close(); err != nil {
				return fmt.Errorf("Serve: could not stop server: %w", err)
			}
		}
		return nil
	}
}
