package football

import (
	"sort"

	"github.com/tifofan/football-proxy/pkg/apierror"
)

// SupportedLeagues is the static registry of competitions the proxy
// serves, keyed by league ID.
var SupportedLeagues = map[int]League{
	39: {
		ID:          39,
		Name:        "Premier League",
		Country:     "England",
		CountryCode: "GB",
		FromSeason:  1992,
		Logo:        "https://media.api-sports.io/football/leagues/39.png",
	},
	140: {
		ID:          140,
		Name:        "La Liga",
		Country:     "Spain",
		CountryCode: "ES",
		FromSeason:  1929,
		Logo:        "https://media.api-sports.io/football/leagues/140.png",
	},
	135: {
		ID:          135,
		Name:        "Serie A",
		Country:     "Italy",
		CountryCode: "IT",
		FromSeason:  1898,
		Logo:        "https://media.api-sports.io/football/leagues/135.png",
	},
	78: {
		ID:          78,
		Name:        "Bundesliga",
		Country:     "Germany",
		CountryCode: "DE",
		FromSeason:  1963,
		Logo:        "https://media.api-sports.io/football/leagues/78.png",
	},
	61: {
		ID:          61,
		Name:        "Ligue 1",
		Country:     "France",
		CountryCode: "FR",
		FromSeason:  1932,
		Logo:        "https://media.api-sports.io/football/leagues/61.png",
	},
	262: {
		ID:          262,
		Name:        "Liga MX",
		Country:     "Mexico",
		CountryCode: "MX",
		FromSeason:  1943,
		Logo:        "https://media.api-sports.io/football/leagues/262.png",
	},
}

// AllLeagues returns the supported leagues ordered by ID.
func AllLeagues() []League {
	leagues := make([]League, 0, len(SupportedLeagues))
	for _, league := range SupportedLeagues {
		leagues = append(leagues, league)
	}
	sort.Slice(leagues, func(i, j int) bool { return leagues[i].ID < leagues[j].ID })
	return leagues
}

// ValidateLeague rejects leagues outside the registry.
func ValidateLeague(league int) error {
	if _, ok := SupportedLeagues[league]; !ok {
		return apierror.UnsupportedLeague(league)
	}
	return nil
}

// ValidateSeason rejects seasons before the league's first recorded
// one. Unknown leagues pass; ValidateLeague owns that check.
func ValidateSeason(league, season int) error {
	meta, ok := SupportedLeagues[league]
	if !ok {
		return nil
	}
	if season < meta.FromSeason {
		return apierror.InvalidSeason(season, meta.Name)
	}
	return nil
}
