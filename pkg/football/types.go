// Package football defines the proxy's stable internal schemas for
// API-Football data, the normalizers that produce them from the
// provider's loosely-typed JSON, and the season aggregates derived from
// them. Entities are plain immutable records; nothing here does I/O.
package football

// TeamCore is the minimal team identity embedded by value in matches,
// player stats and team statistics.
type TeamCore struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Logo    *string `json:"logo"`
	Country *string `json:"country,omitempty"`
}

// Venue is a team's home ground. Partial venue data is acceptable, so
// every field is optional.
type Venue struct {
	ID       *int    `json:"id"`
	Name     *string `json:"name"`
	City     *string `json:"city"`
	Capacity *int    `json:"capacity"`
	Image    *string `json:"image"`
}

// Team is the full team record.
type Team struct {
	TeamCore
	Founded  *int   `json:"founded"`
	National bool   `json:"national"`
	Venue    *Venue `json:"venue"`
}

// PlayerCore is the minimal player identity.
type PlayerCore struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Photo       *string `json:"photo,omitempty"`
	Age         *int    `json:"age,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
}

// PlayerSeasonStats is one player's record for a single
// team/competition/season combination. Numeric fields default to 0 when
// the upstream omits them; Rating and PassAccuracy stay nil because for
// those, absence means "unrated", not zero.
type PlayerSeasonStats struct {
	Team         TeamCore `json:"team"`
	LeagueID     int      `json:"leagueId"`
	LeagueName   string   `json:"leagueName"`
	Season       int      `json:"season"`
	Appearances  int      `json:"appearances"`
	Minutes      int      `json:"minutes"`
	Position     string   `json:"position"`
	Rating       *float64 `json:"rating"`
	Goals        int      `json:"goals"`
	Assists      int      `json:"assists"`
	Passes       int      `json:"passes"`
	PassAccuracy *float64 `json:"passAccuracy"`
	YellowCards  int      `json:"yellowCards"`
	RedCards     int      `json:"redCards"`
}

// PlayerWithSeasonStats is a player plus one stats record per
// team/competition/season reported upstream, in upstream order.
type PlayerWithSeasonStats struct {
	PlayerCore
	Stats []PlayerSeasonStats `json:"stats"`
}

// MatchSide is one side of a match. Goals is nil exactly when the match
// has not been played, distinguishing "not started" from 0-0.
type MatchSide struct {
	Team  TeamCore `json:"team"`
	Goals *int     `json:"goals"`
}

// NormalizedMatch is a single fixture.
type NormalizedMatch struct {
	ID       int       `json:"id"`
	LeagueID int       `json:"leagueId"`
	Season   int       `json:"season"`
	Date     string    `json:"date"`
	Status   string    `json:"status"`
	Home     MatchSide `json:"home"`
	Away     MatchSide `json:"away"`
}

// NormalizedMatchDetails extends a match with optional detail fields.
// Score strings are "H-A" and present only when the upstream reported
// both legs.
type NormalizedMatchDetails struct {
	NormalizedMatch
	Venue         *string `json:"venue,omitempty"`
	Referee       *string `json:"referee,omitempty"`
	HalftimeScore *string `json:"halftimeScore,omitempty"`
	FulltimeScore *string `json:"fulltimeScore,omitempty"`
}

// MatchTeamStatistics holds one team's in-match statistics keyed by the
// internal stat names. Stat categories the proxy does not know are
// dropped during normalization.
type MatchTeamStatistics struct {
	Team  TeamCore            `json:"team"`
	Stats map[string]*float64 `json:"stats"`
}

// FixtureRecord counts a team's season fixtures.
type FixtureRecord struct {
	Played int `json:"played"`
	Wins   int `json:"wins"`
	Draws  int `json:"draws"`
	Losses int `json:"losses"`
}

// GoalRecord counts goals for and against across a season.
type GoalRecord struct {
	For     int `json:"for"`
	Against int `json:"against"`
}

// TeamStats is a team's season statistics in one league.
type TeamStats struct {
	Team     TeamCore      `json:"team"`
	LeagueID int           `json:"leagueId"`
	Season   int           `json:"season"`
	Form     *string       `json:"form"`
	Fixtures FixtureRecord `json:"fixtures"`
	Goals    GoalRecord    `json:"goals"`
}

// PlayerSeasonAggregates is a derived summary across all of a player's
// season-stat records. AverageRating is nil when no record is rated.
type PlayerSeasonAggregates struct {
	Appearances   int      `json:"appearances"`
	Minutes       int      `json:"minutes"`
	Goals         int      `json:"goals"`
	Assists       int      `json:"assists"`
	YellowCards   int      `json:"yellowCards"`
	RedCards      int      `json:"redCards"`
	AverageRating *float64 `json:"averageRating"`
	GoalsPer90    float64  `json:"goalsPer90"`
	AssistsPer90  float64  `json:"assistsPer90"`
}

// TeamSeasonAggregates is a derived summary of a team's season.
type TeamSeasonAggregates struct {
	MatchesPlayed        int     `json:"matchesPlayed"`
	Wins                 int     `json:"wins"`
	Draws                int     `json:"draws"`
	Losses               int     `json:"losses"`
	WinRate              float64 `json:"winRate"`
	Points               int     `json:"points"`
	GoalsFor             int     `json:"goalsFor"`
	GoalsAgainst         int     `json:"goalsAgainst"`
	GoalDifference       int     `json:"goalDifference"`
	GoalsForPerMatch     float64 `json:"goalsForPerMatch"`
	GoalsAgainstPerMatch float64 `json:"goalsAgainstPerMatch"`
}

// TeamDetails pairs a team's season stats with their aggregates. The
// two are cached as one document; aggregates are never cached alone.
type TeamDetails struct {
	Stats      TeamStats            `json:"stats"`
	Aggregates TeamSeasonAggregates `json:"aggregates"`
}

// PlayerProfile pairs a player's season stats with their aggregates.
type PlayerProfile struct {
	PlayerWithSeasonStats
	Aggregates PlayerSeasonAggregates `json:"aggregates"`
}

// League describes a supported competition.
type League struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	FromSeason  int    `json:"fromSeason"`
	Logo        string `json:"logo"`
}
