package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-rsa-vault/internal/config"
	"github.com/MKhiriev/go-rsa-vault/internal/handler"
	handlerhttp "github.com/MKhiriev/go-rsa-vault/internal/handler/http"
	"github.com/MKhiriev/go-rsa-vault/internal/logger"
	"github.com/MKhiriev/go-rsa-vault/internal/metrics"
	"github.com/MKhiriev/go-rsa-vault/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type versionOnly struct{}

func (versionOnly) GetAppVersion(context.Context) string { return "test" }

func newTestHandlers() *handler.Handlers {
	services := &service.Services{AppInfoService: versionOnly{}}
	return &handler.Handlers{HTTP: handlerhttp.NewHandler(services, metrics.Nop(), 0, logger.Nop())}
}

func TestNewServer_Errors(t *testing.T) {
	_, err := NewServer(newTestHandlers(), config.Server{}, logger.Nop())
	require.ErrorIs(t, err, errNoListenAddress)

	_, err = NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":0"}, logger.Nop())
	require.ErrorIs(t, err, errNoVaultRouter)
}

func TestServer_ServeUntilContextCancelled(t *testing.T) {
	srv, err := NewServer(newTestHandlers(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/version")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "test", string(body))

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestServer_ShutdownStopsServe(t *testing.T) {
	srv, err := NewServer(newTestHandlers(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.serve(context.Background(), ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/api/version")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return true
	}, 2*time.Second, 20*time.Millisecond)

	srv.Shutdown()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after Shutdown")
	}
}
