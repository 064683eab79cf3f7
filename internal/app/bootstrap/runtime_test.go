package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/medibook/booking-platform/internal/config"
)

func testConfig(addr string) *appconfig.Config {
	return &appconfig.Config{
		Port:            "0",
		Env:             "test",
		AuthJWTSecret:   "secret",
		TokenTTL:        time.Hour,
		RedisAddr:       addr,
		UseMemoryStores: true,
		UseMemoryQueue:  true,
	}
}

func TestBuildWiresRuntime(t *testing.T) {
	mr := miniredis.RunT(t)

	rt, err := Build(t.Context(), testConfig(mr.Addr()), aws.Config{}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { rt.Close() })

	require.NotNil(t, rt.Handler)
	require.NotNil(t, rt.Service)
	require.NotNil(t, rt.Ledger)

	srv := httptest.NewServer(rt.Handler)
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = srv.Client().Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestBuildRequiresRedis(t *testing.T) {
	cfg := testConfig("")
	_, err := Build(t.Context(), cfg, aws.Config{}, nil)
	assert.Error(t, err)
}

func TestBuildRequiresConfig(t *testing.T) {
	_, err := Build(t.Context(), nil, aws.Config{}, nil)
	assert.Error(t, err)
}
