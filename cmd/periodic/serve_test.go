package main

import (
	"context"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/helixml/periodic"
	"github.com/helixml/periodic/infrastructure/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe_ClosesClientAfterShutdown(t *testing.T) {
	client, err := periodic.New(periodic.WithSQLite(filepath.Join(t.TempDir(), "periodic.db")))
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, api.NewAPIServer(client, nil), ln, client)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("serve did not return after cancel")
	}

	assert.ErrorIs(t, client.Close(), periodic.ErrClientClosed, "client should already be closed")
}
