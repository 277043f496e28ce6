package football

import (
	"bytes"
	"encoding/json"
)

type rawTotal struct {
	Total *int `json:"total"`
}

// rawFixturesBlock carries both upstream spellings of "losses".
type rawFixturesBlock struct {
	Played *rawTotal `json:"played"`
	Wins   *rawTotal `json:"wins"`
	Draws  *rawTotal `json:"draws"`
	Loses  *rawTotal `json:"loses"`
	Losses *rawTotal `json:"losses"`
}

type rawGoalsTotal struct {
	Total *int `json:"total"`
}

type rawGoalsSide struct {
	Total *rawGoalsTotal `json:"total"`
}

type rawGoalsBlock struct {
	For     *rawGoalsSide `json:"for"`
	Against *rawGoalsSide `json:"against"`
}

type rawTeamStatsItem struct {
	Form     *string           `json:"form"`
	Fixtures *rawFixturesBlock `json:"fixtures"`
	Goals    *rawGoalsBlock    `json:"goals"`
}

// NormalizeTeamStats converts the provider's team-statistics object.
// The record must be a non-null object; every nested fixture and goal
// counter defaults to 0 independently when its nesting is missing.
func NormalizeTeamStats(raw json.RawMessage, team TeamCore, league, season int) (TeamStats, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return TeamStats{}, shapeErr("team statistics record is null")
	}

	var item rawTeamStatsItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return TeamStats{}, shapeErr("team statistics record is not an object")
	}

	stats := TeamStats{
		Team:     team,
		LeagueID: league,
		Season:   season,
		Form:     item.Form,
	}

	if item.Fixtures != nil {
		stats.Fixtures = FixtureRecord{
			Played: totalVal(item.Fixtures.Played),
			Wins:   totalVal(item.Fixtures.Wins),
			Draws:  totalVal(item.Fixtures.Draws),
			Losses: totalVal(item.Fixtures.Loses),
		}
		if item.Fixtures.Loses == nil || item.Fixtures.Loses.Total == nil {
			stats.Fixtures.Losses = totalVal(item.Fixtures.Losses)
		}
	}

	if item.Goals != nil {
		stats.Goals = GoalRecord{
			For:     goalsTotal(item.Goals.For),
			Against: goalsTotal(item.Goals.Against),
		}
	}

	return stats, nil
}

func totalVal(t *rawTotal) int {
	if t == nil {
		return 0
	}
	return intVal(t.Total)
}

func goalsTotal(side *rawGoalsSide) int {
	if side == nil || side.Total == nil {
		return 0
	}
	return intVal(side.Total.Total)
}
