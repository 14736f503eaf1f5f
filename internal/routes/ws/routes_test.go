package ws_test

import (
	"net/http"
	"testing"

	"github.com/lk16/reversi/internal"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/services"
	"github.com/stretchr/testify/require"
)

func TestWsRequiresUpgrade(t *testing.T) {
	app := internal.BuildApp(&config.ServerConfig{}, services.NewServicesEmpty())

	req, err := http.NewRequest(http.MethodGet, "/ws", nil)
	require.NoError(t, err)

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusUpgradeRequired, resp.StatusCode)
}
