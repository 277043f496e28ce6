// Package proxy orchestrates the cache-aside read path: build key,
// check the cache, fetch from API-Football on a miss, normalize,
// aggregate where the resource calls for it, store, return. Concurrent
// misses for the same key are not deduplicated; the stampede is bounded
// by the resource TTLs.
package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/tifofan/football-proxy/pkg/cache"
	"github.com/tifofan/football-proxy/pkg/football"
	"github.com/tifofan/football-proxy/pkg/provider"
)

// ErrEmptyUpstream indicates the provider returned no records where a
// result was required. Callers surface it as a generic internal error.
var ErrEmptyUpstream = errors.New("empty upstream response")

// Upstream is the provider client as the orchestrator sees it.
type Upstream interface {
	Fetch(ctx context.Context, endpoint string, params url.Values) (provider.Result, error)
}

// TeamPlayersPage is one provider page of a team's squad. The provider
// paginates this listing itself, so the page is part of the cached
// document and its key.
type TeamPlayersPage struct {
	Players []football.PlayerWithSeasonStats `json:"players"`
	Paging  provider.Paging                  `json:"paging"`
}

// Service is the request orchestrator.
type Service struct {
	policies cache.Policies
	store    *cache.Store
	upstream Upstream
	logger   zerolog.Logger
}

// NewService creates the orchestrator over a cache store and a provider
// client.
func NewService(policies cache.Policies, store *cache.Store, upstream Upstream, logger zerolog.Logger) *Service {
	return &Service{
		policies: policies,
		store:    store,
		upstream: upstream,
		logger:   logger.With().Str("component", "proxy").Logger(),
	}
}

// fetchThrough runs the cache-aside flow for one key: cached document
// on a hit, otherwise fetch, store and report cached=false. A cached
// document that no longer decodes is refetched and overwritten.
func fetchThrough[T any](ctx context.Context, s *Service, resource cache.Resource, key string, fetch func(context.Context) (T, error)) (T, bool, error) {
	var zero T

	raw, err := s.store.Get(ctx, key)
	if err != nil {
		return zero, false, err
	}
	if raw != nil {
		var value T
		if err := json.Unmarshal(raw, &value); err == nil {
			return value, true, nil
		}
		s.logger.Warn().Str("key", key).Msg("Cached document no longer decodes, refetching")
	}

	value, err := fetch(ctx)
	if err != nil {
		return zero, false, err
	}

	doc, err := json.Marshal(value)
	if err != nil {
		return zero, false, fmt.Errorf("encode cache document %q: %w", key, err)
	}
	if err := s.store.Set(ctx, key, doc, s.policies.TTL(resource)); err != nil {
		return zero, false, err
	}

	return value, false, nil
}

// Team returns basic team information by team ID.
func (s *Service) Team(ctx context.Context, id int) (football.Team, bool, error) {
	key := s.policies.Key(cache.ResourceTeam, id)

	return fetchThrough(ctx, s, cache.ResourceTeam, key, func(ctx context.Context) (football.Team, error) {
		result, err := s.upstream.Fetch(ctx, "teams", intParams("id", id))
		if err != nil {
			return football.Team{}, err
		}
		items, err := result.Items()
		if err != nil {
			return football.Team{}, err
		}
		if len(items) == 0 {
			return football.Team{}, fmt.Errorf("team %d: %w", id, ErrEmptyUpstream)
		}
		return football.NormalizeTeam(items[0])
	})
}

// TeamDetails returns a team's season statistics with derived
// aggregates, cached as one document.
func (s *Service) TeamDetails(ctx context.Context, team, league, season int) (football.TeamDetails, bool, error) {
	key := s.policies.Key(cache.ResourceTeamDetails, team, league, season)

	return fetchThrough(ctx, s, cache.ResourceTeamDetails, key, func(ctx context.Context) (football.TeamDetails, error) {
		params := intParams("team", team)
		params.Set("league", strconv.Itoa(league))
		params.Set("season", strconv.Itoa(season))

		result, err := s.upstream.Fetch(ctx, "teams/statistics", params)
		if err != nil {
			return football.TeamDetails{}, err
		}
		if emptyResponse(result.Response) {
			return football.TeamDetails{}, fmt.Errorf("team statistics %d/%d/%d: %w", team, league, season, ErrEmptyUpstream)
		}

		stats, err := football.NormalizeTeamStats(result.Response, teamCoreFromStats(result.Response, team), league, season)
		if err != nil {
			return football.TeamDetails{}, err
		}

		return football.TeamDetails{
			Stats:      stats,
			Aggregates: football.AggregateTeamSeasonStats(stats),
		}, nil
	})
}

// TeamPlayers returns one provider page of a team's squad for a season.
func (s *Service) TeamPlayers(ctx context.Context, team, season, page int) (TeamPlayersPage, bool, error) {
	key := s.policies.Key(cache.ResourceTeamPlayers, team, season, "page", page)

	return fetchThrough(ctx, s, cache.ResourceTeamPlayers, key, func(ctx context.Context) (TeamPlayersPage, error) {
		params := intParams("team", team)
		params.Set("season", strconv.Itoa(season))
		params.Set("page", strconv.Itoa(page))

		result, err := s.upstream.Fetch(ctx, "players", params)
		if err != nil {
			return TeamPlayersPage{}, err
		}
		items, err := result.Items()
		if err != nil {
			return TeamPlayersPage{}, err
		}

		players := make([]football.PlayerWithSeasonStats, 0, len(items))
		for i, item := range items {
			player, err := football.NormalizeTeamPlayer(item)
			if err != nil {
				return TeamPlayersPage{}, fmt.Errorf("players item %d: %w", i, err)
			}
			players = append(players, player)
		}

		return TeamPlayersPage{Players: players, Paging: result.Paging}, nil
	})
}

// Player returns one player's season record with derived aggregates.
func (s *Service) Player(ctx context.Context, id, season int) (football.PlayerProfile, bool, error) {
	key := s.policies.Key(cache.ResourcePlayer, id, season)

	return fetchThrough(ctx, s, cache.ResourcePlayer, key, func(ctx context.Context) (football.PlayerProfile, error) {
		params := intParams("id", id)
		params.Set("season", strconv.Itoa(season))

		result, err := s.upstream.Fetch(ctx, "players", params)
		if err != nil {
			return football.PlayerProfile{}, err
		}
		items, err := result.Items()
		if err != nil {
			return football.PlayerProfile{}, err
		}
		if len(items) == 0 {
			return football.PlayerProfile{}, fmt.Errorf("player %d season %d: %w", id, season, ErrEmptyUpstream)
		}

		player, err := football.NormalizeTeamPlayer(items[0])
		if err != nil {
			return football.PlayerProfile{}, err
		}

		return football.PlayerProfile{
			PlayerWithSeasonStats: player,
			Aggregates:            football.AggregatePlayerSeasonStats(player.Stats),
		}, nil
	})
}

// Matches returns every fixture of a league season. The full list is
// cached under a page-independent key; callers paginate locally.
func (s *Service) Matches(ctx context.Context, league, season int) ([]football.NormalizedMatch, bool, error) {
	key := s.policies.Key(cache.ResourceMatches, league, season)

	return fetchThrough(ctx, s, cache.ResourceMatches, key, func(ctx context.Context) ([]football.NormalizedMatch, error) {
		params := intParams("league", league)
		params.Set("season", strconv.Itoa(season))

		result, err := s.upstream.Fetch(ctx, "fixtures", params)
		if err != nil {
			return nil, err
		}
		items, err := result.Items()
		if err != nil {
			return nil, err
		}

		matches := make([]football.NormalizedMatch, 0, len(items))
		for i, item := range items {
			match, err := football.NormalizeMatch(item)
			if err != nil {
				return nil, fmt.Errorf("fixtures item %d: %w", i, err)
			}
			matches = append(matches, match)
		}

		return matches, nil
	})
}

// MatchDetails returns one fixture with venue, referee and score lines.
func (s *Service) MatchDetails(ctx context.Context, fixture int) (football.NormalizedMatchDetails, bool, error) {
	key := s.policies.Key(cache.ResourceMatchDetails, fixture)

	return fetchThrough(ctx, s, cache.ResourceMatchDetails, key, func(ctx context.Context) (football.NormalizedMatchDetails, error) {
		result, err := s.upstream.Fetch(ctx, "fixtures", intParams("id", fixture))
		if err != nil {
			return football.NormalizedMatchDetails{}, err
		}
		items, err := result.Items()
		if err != nil {
			return football.NormalizedMatchDetails{}, err
		}
		if len(items) == 0 {
			return football.NormalizedMatchDetails{}, fmt.Errorf("fixture %d: %w", fixture, ErrEmptyUpstream)
		}
		return football.NormalizeMatchDetails(items[0])
	})
}

// MatchStatistics returns the per-team statistics of one fixture.
func (s *Service) MatchStatistics(ctx context.Context, fixture int) ([]football.MatchTeamStatistics, bool, error) {
	key := s.policies.Key(cache.ResourceMatchStats, fixture)

	return fetchThrough(ctx, s, cache.ResourceMatchStats, key, func(ctx context.Context) ([]football.MatchTeamStatistics, error) {
		result, err := s.upstream.Fetch(ctx, "fixtures/statistics", intParams("fixture", fixture))
		if err != nil {
			return nil, err
		}
		items, err := result.Items()
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, fmt.Errorf("fixture statistics %d: %w", fixture, ErrEmptyUpstream)
		}

		stats := make([]football.MatchTeamStatistics, 0, len(items))
		for i, item := range items {
			teamStats, err := football.NormalizeMatchStatistics(item)
			if err != nil {
				return nil, fmt.Errorf("statistics item %d: %w", i, err)
			}
			stats = append(stats, teamStats)
		}

		return stats, nil
	})
}

func intParams(name string, value int) url.Values {
	params := url.Values{}
	params.Set(name, strconv.Itoa(value))
	return params
}

// teamCoreFromStats pulls the team object out of the statistics
// payload. The provider includes it, but a bare ID is enough identity
// when it is absent.
func teamCoreFromStats(response json.RawMessage, team int) football.TeamCore {
	var payload struct {
		Team json.RawMessage `json:"team"`
	}
	if err := json.Unmarshal(response, &payload); err == nil && len(payload.Team) > 0 {
		if core, err := football.NormalizeTeamCore(payload.Team); err == nil {
			return core
		}
	}
	return football.TeamCore{ID: team}
}

func emptyResponse(response json.RawMessage) bool {
	trimmed := bytes.TrimSpace(response)
	if len(trimmed) == 0 {
		return true
	}
	switch string(trimmed) {
	case "null", "[]", "{}":
		return true
	}
	return false
}
