package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"valorant-analytics/internal/api"
	"valorant-analytics/internal/config"

	"github.com/stretchr/testify/require"
)

func TestValAPIClient(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/agents", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "true", r.URL.Query().Get("isPlayableCharacter"))
		_, _ = w.Write([]byte(`{"status":200,"data":[{"uuid":"add6443a-41bd-e414-f6ad-e58d267f4e95","displayName":"Jett","isPlayableCharacter":true}]}`))
	})
	mux.HandleFunc("GET /v1/maps", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":200,"data":[{"uuid":"7eaecc1b-4337-bbf6-6ab9-04b8f06b3319","displayName":"Ascent","mapUrl":"/Game/Maps/Ascent/Ascent"}]}`))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := api.NewValAPIClient(&config.Config{ReferenceAPIURL: ts.URL + "/"})
	ctx := context.Background()

	agents, err := client.GetAgents(ctx)
	require.NoError(t, err)
	require.Equal(t, []api.Agent{{UUID: "add6443a-41bd-e414-f6ad-e58d267f4e95", DisplayName: "Jett", IsPlayableCharacter: true}}, agents)

	maps, err := client.GetMaps(ctx)
	require.NoError(t, err)
	require.Len(t, maps, 1)
	require.Equal(t, "/Game/Maps/Ascent/Ascent", maps[0].MapURL)
}

func TestValAPIClientStatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client := api.NewValAPIClient(&config.Config{ReferenceAPIURL: ts.URL})
	_, err := client.GetMaps(context.Background())
	require.ErrorContains(t, err, "503")
}
