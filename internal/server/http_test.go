package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/upgradesim/internal/simulate"
	"github.com/xtding233/upgradesim/internal/upgrade"
)

func newTestServer(t *testing.T, maxTrials int) *httptest.Server {
	t.Helper()
	h := NewHandler(simulate.NewService(zerolog.Nop(), maxTrials), zerolog.Nop())
	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestSimulateEndpoint(t *testing.T) {
	srv := newTestServer(t, 0)

	var res simulate.Result
	status := getJSON(t, srv.URL+"/simulate?rarity=epic&trials=500&seed=3", &res)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "epic", res.Rarity)
	assert.Equal(t, uint64(3), res.Seed)
	assert.Equal(t, res.Attempts, res.Histogram.Total())

	var again simulate.Result
	getJSON(t, srv.URL+"/simulate?rarity=epic&trials=500&seed=3", &again)
	assert.Equal(t, res.Histogram, again.Histogram)
}

func TestSimulateEndpointErrors(t *testing.T) {
	srv := newTestServer(t, 100)

	tests := []struct {
		name  string
		query string
	}{
		{name: "missing rarity", query: "trials=10"},
		{name: "missing trials", query: "rarity=rare"},
		{name: "bad trials", query: "rarity=rare&trials=ten"},
		{name: "unknown rarity", query: "rarity=unknown_tier&trials=100"},
		{name: "bad start", query: "rarity=rare&trials=10&start=11"},
		{name: "bad seed", query: "rarity=rare&trials=10&seed=-1"},
		{name: "too many trials", query: "rarity=rare&trials=101"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body errResp
			status := getJSON(t, srv.URL+"/simulate?"+tt.query, &body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.NotEmpty(t, body.Err)
		})
	}
}

func TestChanceEndpoint(t *testing.T) {
	srv := newTestServer(t, 0)

	var got chanceResp
	status := getJSON(t, srv.URL+"/chance?rarity=legendary&level=7", &got)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, chanceResp{Rarity: "legendary", Level: 7, Chance: 30}, got)

	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv.URL+"/chance?rarity=legendary&level=10", nil))
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv.URL+"/chance?rarity=mythic&level=1", nil))
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv.URL+"/chance?rarity=rare", nil))
}

func TestTableEndpoint(t *testing.T) {
	srv := newTestServer(t, 0)

	var rows []upgrade.TableRow
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/table", &rows))
	require.Len(t, rows, 6)
	assert.Equal(t, "uncommon", rows[1].Name)
	assert.Equal(t, []int{90, 80, 80, 70, 70, 60, 60, 50, 50, 40}, rows[1].Chances)
}
