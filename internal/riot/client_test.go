package riot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"league-client/internal/envelope"
)

// newTestClient points a client at a local server. The host selector
// becomes the first path segment, so handlers see /euw1/... and
// /europe/... paths.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{
		apiKey:  "test-key",
		region:  "euw1",
		routing: "europe",
		baseURL: srv.URL + "/%s%s",
		client:  &fasthttp.Client{},
		log:     zerolog.Nop(),
	}
}

func TestSummonerByNameRoundTrip(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/euw1/lol/summoner/v4/summoners/by-name/pippo", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Riot-Token"))
		fmt.Fprint(w, `{
			"accountId": "acc-1",
			"profileIconId": 10,
			"revisionDate": 1600000000000,
			"name": "pippo",
			"id": "enc-1",
			"puuid": "puuid-1",
			"summonerLevel": 120
		}`)
	})

	res := c.SummonerByName(context.Background(), "pippo")
	require.True(t, res.Ok())
	assert.Equal(t, "pippo", res.Value().Name)
	assert.Equal(t, "puuid-1", res.Value().PUUID)
	assert.Equal(t, 120, res.Value().SummonerLevel)
}

func TestRequestHonorsContextDeadline(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `182`)
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	res := c.MasteryScore(ctx, "enc-1")
	require.True(t, res.Ok())
	assert.Equal(t, 182, res.Value())
}

func TestForbiddenBecomesFailureValue(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"status": {"message": "Forbidden", "status_code": 403}}`)
	})

	res := c.SummonerByPUUID(context.Background(), "puuid-1")
	require.False(t, res.Ok())
	assert.Nil(t, res.Value())

	apiErr := res.APIError()
	require.NotNil(t, apiErr)
	assert.Equal(t, 403, apiErr.StatusCode)
	assert.Equal(t, "Forbidden", apiErr.Message)
}

func TestMatchIDsUsesRoutingHost(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/europe/lol/match/v5/matches/by-puuid/puuid-1/ids", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("start"))
		assert.Equal(t, "2", r.URL.Query().Get("count"))
		fmt.Fprint(w, `["EUW1_10", "EUW1_9"]`)
	})

	res := c.MatchIDs(context.Background(), "puuid-1", 3, 2)
	require.True(t, res.Ok())
	assert.Equal(t, []string{"EUW1_10", "EUW1_9"}, res.Value())
}

func TestNthMatchShortCircuitsOnEmptyHistory(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `[]`)
	})

	res := c.NthMatch(context.Background(), "puuid-1", 5)
	require.False(t, res.Ok())
	assert.True(t, errors.Is(res.Err(), envelope.ErrNoResult))
	assert.Nil(t, res.APIError())
	assert.Equal(t, int32(1), calls.Load(), "no match fetch after an empty id list")
}

func TestLeagueEntriesCollapseDuplicates(t *testing.T) {
	entry := `{
		"leagueId": "uuid-1",
		"summonerId": "enc-1",
		"summonerName": "pippo",
		"queueType": "RANKED_SOLO_5x5",
		"tier": "GOLD",
		"rank": "IV",
		"leaguePoints": 50,
		"wins": 10,
		"losses": 10,
		"hotStreak": false,
		"veteran": false,
		"freshBlood": false,
		"inactive": false
	}`
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `[%s, %s]`, entry, entry)
	})

	res := c.LeagueEntries(context.Background(), "enc-1")
	require.True(t, res.Ok())
	require.Len(t, res.Value(), 1)
	assert.Equal(t, "G4", res.Value()[0].Short)
}

func TestSoloLeaguePicksSoloQueue(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{
				"leagueId": "uuid-flex",
				"summonerId": "enc-1",
				"summonerName": "pippo",
				"queueType": "RANKED_FLEX_SR",
				"tier": "SILVER",
				"rank": "I",
				"leaguePoints": 20,
				"wins": 5,
				"losses": 5,
				"hotStreak": false,
				"veteran": false,
				"freshBlood": false,
				"inactive": false
			},
			{
				"leagueId": "uuid-solo",
				"summonerId": "enc-1",
				"summonerName": "pippo",
				"queueType": "RANKED_SOLO_5x5",
				"tier": "GOLD",
				"rank": "II",
				"leaguePoints": 40,
				"wins": 20,
				"losses": 18,
				"hotStreak": false,
				"veteran": false,
				"freshBlood": false,
				"inactive": false
			}
		]`)
	})

	res := c.SoloLeague(context.Background(), "enc-1")
	require.True(t, res.Ok())
	assert.Equal(t, "uuid-solo", res.Value().LeagueID)
	assert.Equal(t, "G2", res.Value().Short)
}

func TestFlexLeagueMissingIsNoResult(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	})

	res := c.FlexLeague(context.Background(), "enc-1")
	require.False(t, res.Ok())
	assert.True(t, errors.Is(res.Err(), envelope.ErrNoResult))
}

func TestMasteryScoreRawInteger(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/euw1/lol/champion-mastery/v4/scores/by-summoner/enc-1", r.URL.Path)
		fmt.Fprint(w, `182`)
	})

	res := c.MasteryScore(context.Background(), "enc-1")
	require.True(t, res.Ok())
	assert.Equal(t, 182, res.Value())
}

func TestSchemaMismatchSurfacesAsFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"name": "pippo"}`)
	})

	res := c.SummonerByName(context.Background(), "pippo")
	require.False(t, res.Ok())
	assert.Nil(t, res.APIError())
	assert.Contains(t, res.Err().Error(), "Summoner")
}
