package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tifofan/football-proxy/pkg/cache"
	"github.com/tifofan/football-proxy/pkg/football"
	"github.com/tifofan/football-proxy/pkg/provider"
)

type fakeUpstream struct {
	mu      sync.Mutex
	calls   map[string]int
	results map[string]provider.Result
	err     error
}

func newFakeUpstream() *fakeUpstream {
	return &fakeUpstream{
		calls:   make(map[string]int),
		results: make(map[string]provider.Result),
	}
}

func (f *fakeUpstream) respond(endpoint, response string) {
	f.results[endpoint] = provider.Result{
		Response: json.RawMessage(response),
		Paging:   provider.Paging{Current: 1, Total: 1},
	}
}

func (f *fakeUpstream) Fetch(_ context.Context, endpoint string, _ url.Values) (provider.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[endpoint]++
	if f.err != nil {
		return provider.Result{}, f.err
	}
	return f.results[endpoint], nil
}

func (f *fakeUpstream) count(endpoint string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[endpoint]
}

func newTestService(t *testing.T) (*Service, *fakeUpstream, *cache.MemoryBackend) {
	t.Helper()

	backend := cache.NewMemoryBackend()
	upstream := newFakeUpstream()
	store := cache.NewStore(backend, zerolog.Nop())
	service := NewService(cache.DefaultPolicies(), store, upstream, zerolog.Nop())

	return service, upstream, backend
}

const rawFixtures = `[
	{
		"fixture": {"id": 1035045, "date": "2024-08-16T19:00:00+00:00", "status": {"short": "FT"}},
		"league": {"id": 39, "season": 2024},
		"teams": {
			"home": {"id": 33, "name": "Manchester United"},
			"away": {"id": 36, "name": "Fulham"}
		},
		"goals": {"home": 1, "away": 0}
	}
]`

func TestMatches_ColdThenWarm(t *testing.T) {
	service, upstream, backend := newTestService(t)
	upstream.respond("fixtures", rawFixtures)

	matches, cached, err := service.Matches(context.Background(), 39, 2024)
	require.NoError(t, err)
	assert.False(t, cached)
	require.Len(t, matches, 1)
	assert.Equal(t, 1035045, matches[0].ID)
	assert.Equal(t, 1, upstream.count("fixtures"))
	assert.Equal(t, 1, backend.Len())

	// The full list is stored once under a page-independent key.
	entry, err := backend.Get(context.Background(), "v1_matches_39_2024")
	require.NoError(t, err)
	require.NotNil(t, entry)

	again, cached, err := service.Matches(context.Background(), 39, 2024)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, matches, again)
	assert.Equal(t, 1, upstream.count("fixtures"), "warm request must not hit the upstream")
}

func TestTeam(t *testing.T) {
	service, upstream, _ := newTestService(t)
	upstream.respond("teams", `[
		{
			"team": {"id": 33, "name": "Manchester United", "founded": 1878, "national": false},
			"venue": {"name": "Old Trafford", "capacity": 76212}
		}
	]`)

	team, cached, err := service.Team(context.Background(), 33)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 33, team.ID)
	require.NotNil(t, team.Venue)
	assert.Equal(t, "Old Trafford", *team.Venue.Name)

	_, cached, err = service.Team(context.Background(), 33)
	require.NoError(t, err)
	assert.True(t, cached)
}

func TestTeam_EmptyUpstream(t *testing.T) {
	service, upstream, backend := newTestService(t)
	upstream.respond("teams", `[]`)

	_, _, err := service.Team(context.Background(), 99999)
	require.ErrorIs(t, err, ErrEmptyUpstream)
	assert.Zero(t, backend.Len(), "failed fetches must not be cached")
}

func TestTeamDetails(t *testing.T) {
	service, upstream, _ := newTestService(t)
	upstream.respond("teams/statistics", `{
		"team": {"id": 33, "name": "Manchester United"},
		"form": "WWDLW",
		"fixtures": {
			"played": {"total": 38},
			"wins": {"total": 21},
			"draws": {"total": 9},
			"loses": {"total": 8}
		},
		"goals": {
			"for": {"total": {"total": 67}},
			"against": {"total": {"total": 41}}
		}
	}`)

	details, cached, err := service.TeamDetails(context.Background(), 33, 39, 2024)
	require.NoError(t, err)
	assert.False(t, cached)

	assert.Equal(t, "Manchester United", details.Stats.Team.Name)
	assert.Equal(t, 39, details.Stats.LeagueID)
	assert.Equal(t, 72, details.Aggregates.Points)
	assert.Equal(t, 55.3, details.Aggregates.WinRate)

	// Stats and aggregates come back together from the cache.
	warm, cached, err := service.TeamDetails(context.Background(), 33, 39, 2024)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, details, warm)
}

func TestTeamDetails_MissingTeamObjectFallsBackToID(t *testing.T) {
	service, upstream, _ := newTestService(t)
	upstream.respond("teams/statistics", `{
		"fixtures": {"played": {"total": 2}}
	}`)

	details, _, err := service.TeamDetails(context.Background(), 33, 39, 2024)
	require.NoError(t, err)
	assert.Equal(t, 33, details.Stats.Team.ID)
	assert.Empty(t, details.Stats.Team.Name)
}

func TestTeamDetails_EmptyUpstream(t *testing.T) {
	service, upstream, _ := newTestService(t)
	upstream.respond("teams/statistics", `[]`)

	_, _, err := service.TeamDetails(context.Background(), 33, 39, 2024)
	require.ErrorIs(t, err, ErrEmptyUpstream)
}

func TestTeamPlayers_PagePartOfKey(t *testing.T) {
	service, upstream, backend := newTestService(t)
	upstream.respond("players", `[
		{"player": {"id": 276, "name": "Neymar"}, "statistics": []}
	]`)

	page, cached, err := service.TeamPlayers(context.Background(), 33, 2024, 1)
	require.NoError(t, err)
	assert.False(t, cached)
	require.Len(t, page.Players, 1)
	assert.Equal(t, 276, page.Players[0].ID)

	entry, err := backend.Get(context.Background(), "v1_teamPlayers_33_2024_page_1")
	require.NoError(t, err)
	require.NotNil(t, entry)

	// A different page misses independently.
	_, cached, err = service.TeamPlayers(context.Background(), 33, 2024, 2)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 2, upstream.count("players"))
}

func TestPlayer(t *testing.T) {
	service, upstream, _ := newTestService(t)
	upstream.respond("players", `[
		{
			"player": {"id": 276, "name": "Neymar"},
			"statistics": [
				{
					"team": {"id": 33, "name": "Manchester United"},
					"league": {"id": 39, "name": "Premier League", "season": 2024},
					"games": {"appearences": 10, "minutes": 900, "rating": "7.2"},
					"goals": {"total": 3, "assists": 2}
				},
				{
					"team": {"id": 33, "name": "Manchester United"},
					"league": {"id": 2, "name": "Champions League", "season": 2024},
					"games": {"appearences": 5, "minutes": 450},
					"goals": {"total": 1, "assists": 1}
				}
			]
		}
	]`)

	profile, cached, err := service.Player(context.Background(), 276, 2024)
	require.NoError(t, err)
	assert.False(t, cached)

	assert.Equal(t, "Neymar", profile.Name)
	assert.Equal(t, 15, profile.Aggregates.Appearances)
	assert.Equal(t, 4, profile.Aggregates.Goals)
	require.NotNil(t, profile.Aggregates.AverageRating)
	assert.Equal(t, 7.2, *profile.Aggregates.AverageRating)
}

func TestMatchDetails(t *testing.T) {
	service, upstream, _ := newTestService(t)
	upstream.respond("fixtures", `[
		{
			"fixture": {"id": 7, "status": {"short": "FT"}, "venue": {"name": "Anfield"}},
			"league": {"id": 39, "season": 2024},
			"teams": {
				"home": {"id": 40, "name": "Liverpool"},
				"away": {"id": 33, "name": "Manchester United"}
			},
			"score": {"fulltime": {"home": 2, "away": 0}}
		}
	]`)

	details, _, err := service.MatchDetails(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, details.Venue)
	assert.Equal(t, "Anfield", *details.Venue)
	require.NotNil(t, details.FulltimeScore)
	assert.Equal(t, "2-0", *details.FulltimeScore)
}

func TestMatchStatistics(t *testing.T) {
	service, upstream, _ := newTestService(t)
	upstream.respond("fixtures/statistics", `[
		{
			"team": {"id": 40, "name": "Liverpool"},
			"statistics": [{"type": "Ball Possession", "value": "61%"}]
		},
		{
			"team": {"id": 33, "name": "Manchester United"},
			"statistics": [{"type": "Ball Possession", "value": "39%"}]
		}
	]`)

	stats, _, err := service.MatchStatistics(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	require.NotNil(t, stats[0].Stats["possession"])
	assert.Equal(t, 61.0, *stats[0].Stats["possession"])
}

func TestMatchStatistics_ShapeErrorPropagates(t *testing.T) {
	service, upstream, backend := newTestService(t)
	upstream.respond("fixtures/statistics", `[{"statistics": []}]`)

	_, _, err := service.MatchStatistics(context.Background(), 7)
	require.ErrorIs(t, err, football.ErrInvalidShape)
	assert.Zero(t, backend.Len())
}

func TestUpstreamErrorPropagates(t *testing.T) {
	service, upstream, backend := newTestService(t)
	upstream.err = errors.New("boom")

	_, _, err := service.Matches(context.Background(), 39, 2024)
	require.Error(t, err)
	assert.Zero(t, backend.Len())
}
