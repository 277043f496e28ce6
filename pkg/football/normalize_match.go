package football

import (
	"encoding/json"
	"fmt"
)

type rawStatus struct {
	Short *string `json:"short"`
}

type rawFixtureVenue struct {
	Name *string `json:"name"`
}

type rawFixture struct {
	ID      *int             `json:"id"`
	Date    *string          `json:"date"`
	Referee *string          `json:"referee"`
	Status  *rawStatus       `json:"status"`
	Venue   *rawFixtureVenue `json:"venue"`
}

type rawMatchTeams struct {
	Home *rawTeamCore `json:"home"`
	Away *rawTeamCore `json:"away"`
}

type rawMatchGoals struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type rawScoreLeg struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type rawScore struct {
	Halftime *rawScoreLeg `json:"halftime"`
	Fulltime *rawScoreLeg `json:"fulltime"`
}

type rawFixtureItem struct {
	Fixture *rawFixture    `json:"fixture"`
	League  *rawLeague     `json:"league"`
	Teams   *rawMatchTeams `json:"teams"`
	Goals   *rawMatchGoals `json:"goals"`
	Score   *rawScore      `json:"score"`
}

// NormalizeMatch converts a raw provider fixture record. Fixture,
// league and both teams are required; goals stay nil for matches not
// yet played.
func NormalizeMatch(raw json.RawMessage) (NormalizedMatch, error) {
	var item rawFixtureItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return NormalizedMatch{}, shapeErr("fixture record is not an object")
	}
	if item.Fixture == nil || item.League == nil ||
		item.Teams == nil || item.Teams.Home == nil || item.Teams.Away == nil {
		return NormalizedMatch{}, shapeErr("fixture record missing fixture, league or teams")
	}

	home, err := normalizeTeamCore(item.Teams.Home)
	if err != nil {
		return NormalizedMatch{}, err
	}
	away, err := normalizeTeamCore(item.Teams.Away)
	if err != nil {
		return NormalizedMatch{}, err
	}

	match := NormalizedMatch{
		ID:       intVal(item.Fixture.ID),
		LeagueID: intVal(item.League.ID),
		Season:   intVal(item.League.Season),
		Date:     strVal(item.Fixture.Date),
		Home:     MatchSide{Team: home},
		Away:     MatchSide{Team: away},
	}

	if item.Fixture.Status != nil {
		match.Status = strVal(item.Fixture.Status.Short)
	}
	if item.Goals != nil {
		match.Home.Goals = item.Goals.Home
		match.Away.Goals = item.Goals.Away
	}

	return match, nil
}

// NormalizeMatchDetails extends NormalizeMatch with venue, referee and
// half/full-time score strings, each independently optional. A score
// string is built only when the upstream reported both legs.
func NormalizeMatchDetails(raw json.RawMessage) (NormalizedMatchDetails, error) {
	base, err := NormalizeMatch(raw)
	if err != nil {
		return NormalizedMatchDetails{}, err
	}

	var item rawFixtureItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return NormalizedMatchDetails{}, shapeErr("fixture record is not an object")
	}

	details := NormalizedMatchDetails{
		NormalizedMatch: base,
		Referee:         item.Fixture.Referee,
	}

	if item.Fixture.Venue != nil {
		details.Venue = item.Fixture.Venue.Name
	}
	if item.Score != nil {
		details.HalftimeScore = scoreString(item.Score.Halftime)
		details.FulltimeScore = scoreString(item.Score.Fulltime)
	}

	return details, nil
}

// scoreString renders a leg as "H-A", or nil unless both sides are set.
func scoreString(leg *rawScoreLeg) *string {
	if leg == nil || leg.Home == nil || leg.Away == nil {
		return nil
	}
	s := fmt.Sprintf("%d-%d", *leg.Home, *leg.Away)
	return &s
}
