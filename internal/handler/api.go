package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tifofan/football-proxy/pkg/football"
	"github.com/tifofan/football-proxy/pkg/pagination"
	"github.com/tifofan/football-proxy/pkg/provider"
	"github.com/tifofan/football-proxy/pkg/proxy"
	"github.com/tifofan/football-proxy/pkg/ratelimit"
	"github.com/tifofan/football-proxy/pkg/response"
)

// Limiter endpoint names. They predate the HTTP paths and are part of
// the rate-limit key format, so they stay stable even if routes move.
const (
	endpointTeam        = "getTeam"
	endpointTeamDetails = "getTeamDetails"
	endpointTeamPlayers = "getTeamPlayers"
	endpointPlayer      = "getPlayer"
	endpointMatches     = "getMatches"
	endpointMatchInfo   = "getMatchDetails"
	endpointMatchStats  = "getMatchStats"
)

// API serves the football endpoints.
type API struct {
	svc     *proxy.Service
	limiter *ratelimit.Limiter
	policy  ratelimit.Policy
	logger  zerolog.Logger
}

// NewAPI wires the API handler.
func NewAPI(svc *proxy.Service, limiter *ratelimit.Limiter, policy ratelimit.Policy, logger zerolog.Logger) *API {
	return &API{
		svc:     svc,
		limiter: limiter,
		policy:  policy,
		logger:  logger.With().Str("component", "handler").Logger(),
	}
}

// Register mounts the football routes on the given group.
func (a *API) Register(r *gin.RouterGroup) {
	teams := r.Group("/teams")
	{
		teams.GET("", a.getTeam)
		teams.GET("/details", a.getTeamDetails)
		teams.GET("/players", a.getTeamPlayers)
	}

	r.GET("/players", a.getPlayer)

	matches := r.Group("/matches")
	{
		matches.GET("", a.getMatches)
		matches.GET("/details", a.getMatchDetails)
		matches.GET("/statistics", a.getMatchStatistics)
	}

	r.GET("/leagues", a.getLeagues)
}

// throttle enforces the caller's window for an endpoint. It writes the
// 429 itself and reports whether the request may proceed.
func (a *API) throttle(c *gin.Context, endpoint string) bool {
	key, limit, window := a.policy.Resolve(c.Request, endpoint)
	if err := a.limiter.Check(key, limit, window); err != nil {
		response.WriteError(c, err)
		return false
	}
	return true
}

// fail logs the failure with detail and writes the mapped envelope.
func (a *API) fail(c *gin.Context, endpoint string, err error) {
	a.logger.Error().Err(err).Str("endpoint", endpoint).Msg("Request failed")
	response.WriteError(c, err)
}

// getTeam returns basic team information.
//
//	GET /api/v1/teams?id=33
func (a *API) getTeam(c *gin.Context) {
	if !a.throttle(c, endpointTeam) {
		return
	}

	id, err := positiveIntQuery(c, "id")
	if err != nil {
		response.WriteError(c, err)
		return
	}

	team, cached, err := a.svc.Team(c.Request.Context(), id)
	if err != nil {
		a.fail(c, endpointTeam, err)
		return
	}

	response.OK(c, team, cached, nil)
}

// getTeamDetails returns a team's season statistics with aggregates.
//
//	GET /api/v1/teams/details?team=33&league=39&season=2024
func (a *API) getTeamDetails(c *gin.Context) {
	if !a.throttle(c, endpointTeamDetails) {
		return
	}

	team, err := positiveIntQuery(c, "team")
	if err != nil {
		response.WriteError(c, err)
		return
	}
	league, season, ok := a.leagueSeason(c)
	if !ok {
		return
	}

	details, cached, err := a.svc.TeamDetails(c.Request.Context(), team, league, season)
	if err != nil {
		a.fail(c, endpointTeamDetails, err)
		return
	}

	response.OK(c, details, cached, nil)
}

// getTeamPlayers returns one provider page of a team's squad.
//
//	GET /api/v1/teams/players?team=33&season=2024&page=2
func (a *API) getTeamPlayers(c *gin.Context) {
	if !a.throttle(c, endpointTeamPlayers) {
		return
	}

	team, err := positiveIntQuery(c, "team")
	if err != nil {
		response.WriteError(c, err)
		return
	}
	season, err := positiveIntQuery(c, "season")
	if err != nil {
		response.WriteError(c, err)
		return
	}
	page, err := optionalPositiveIntQuery(c, "page", 1)
	if err != nil {
		response.WriteError(c, err)
		return
	}

	result, cached, err := a.svc.TeamPlayers(c.Request.Context(), team, season, page)
	if err != nil {
		a.fail(c, endpointTeamPlayers, err)
		return
	}

	response.OK(c, result.Players, cached, providerPageMeta(result.Paging, len(result.Players)))
}

// getPlayer returns one player's season record with aggregates.
//
//	GET /api/v1/players?id=276&season=2024
func (a *API) getPlayer(c *gin.Context) {
	if !a.throttle(c, endpointPlayer) {
		return
	}

	id, err := positiveIntQuery(c, "id")
	if err != nil {
		response.WriteError(c, err)
		return
	}
	season, err := positiveIntQuery(c, "season")
	if err != nil {
		response.WriteError(c, err)
		return
	}

	profile, cached, err := a.svc.Player(c.Request.Context(), id, season)
	if err != nil {
		a.fail(c, endpointPlayer, err)
		return
	}

	response.OK(c, profile, cached, nil)
}

// getMatches returns a page of a league season's fixtures. The full
// list is cached; the window is applied after the cache.
//
//	GET /api/v1/matches?league=39&season=2024&page=1&limit=20
func (a *API) getMatches(c *gin.Context) {
	if !a.throttle(c, endpointMatches) {
		return
	}

	league, season, ok := a.leagueSeason(c)
	if !ok {
		return
	}

	matches, cached, err := a.svc.Matches(c.Request.Context(), league, season)
	if err != nil {
		a.fail(c, endpointMatches, err)
		return
	}

	page, meta := pagination.Window(matches, pagination.FromQuery(c.Request.URL.Query()))
	response.OK(c, page, cached, &meta)
}

// getMatchDetails returns one fixture with venue, referee and scores.
//
//	GET /api/v1/matches/details?fixture=1035045
func (a *API) getMatchDetails(c *gin.Context) {
	if !a.throttle(c, endpointMatchInfo) {
		return
	}

	fixture, err := positiveIntQuery(c, "fixture")
	if err != nil {
		response.WriteError(c, err)
		return
	}

	details, cached, err := a.svc.MatchDetails(c.Request.Context(), fixture)
	if err != nil {
		a.fail(c, endpointMatchInfo, err)
		return
	}

	response.OK(c, details, cached, nil)
}

// getMatchStatistics returns the per-team statistics of one fixture.
//
//	GET /api/v1/matches/statistics?fixture=1035045
func (a *API) getMatchStatistics(c *gin.Context) {
	if !a.throttle(c, endpointMatchStats) {
		return
	}

	fixture, err := positiveIntQuery(c, "fixture")
	if err != nil {
		response.WriteError(c, err)
		return
	}

	stats, cached, err := a.svc.MatchStatistics(c.Request.Context(), fixture)
	if err != nil {
		a.fail(c, endpointMatchStats, err)
		return
	}

	response.OK(c, stats, cached, nil)
}

// getLeagues serves the static league registry. No upstream, no cache,
// no throttle.
//
//	GET /api/v1/leagues
func (a *API) getLeagues(c *gin.Context) {
	response.OK(c, football.AllLeagues(), false, nil)
}

// leagueSeason parses and validates the league and season parameters.
// Failures are written to the context.
func (a *API) leagueSeason(c *gin.Context) (league, season int, ok bool) {
	league, err := positiveIntQuery(c, "league")
	if err != nil {
		response.WriteError(c, err)
		return 0, 0, false
	}
	season, err = positiveIntQuery(c, "season")
	if err != nil {
		response.WriteError(c, err)
		return 0, 0, false
	}

	if err := football.ValidateLeague(league); err != nil {
		response.WriteError(c, err)
		return 0, 0, false
	}
	if err := football.ValidateSeason(league, season); err != nil {
		response.WriteError(c, err)
		return 0, 0, false
	}

	return league, season, true
}

// providerPageMeta converts the provider's paging block for listings
// that are paginated upstream; the page size is the provider's, not
// ours.
func providerPageMeta(paging provider.Paging, itemCount int) *pagination.Meta {
	return &pagination.Meta{
		Page:       paging.Current,
		PerPage:    itemCount,
		TotalPages: paging.Total,
		HasNext:    paging.Current < paging.Total,
	}
}
