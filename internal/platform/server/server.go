package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Server は HTTP サーバーのライフサイクルを管理します。
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

// New は指定されたアドレスで待ち受ける HTTP サーバーを構築します。
func New(listenAddr string, handler http.Handler, shutdownTimeout time.Duration) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              listenAddr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると Shutdown します。
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("serve HTTP: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}
	return <-errCh
}
