package football

import (
	"encoding/json"
	"fmt"
)

type rawPlayer struct {
	ID          *int    `json:"id"`
	Name        *string `json:"name"`
	Photo       *string `json:"photo"`
	Age         *int    `json:"age"`
	Nationality *string `json:"nationality"`
}

type rawPlayerItem struct {
	Player     *rawPlayer        `json:"player"`
	Statistics []json.RawMessage `json:"statistics"`
}

type rawLeague struct {
	ID     *int    `json:"id"`
	Name   *string `json:"name"`
	Season *int    `json:"season"`
}

// rawGames carries the upstream's misspelled "appearences" field.
type rawGames struct {
	Appearances *int        `json:"appearences"`
	Minutes     *int        `json:"minutes"`
	Position    *string     `json:"position"`
	Rating      looseNumber `json:"rating"`
}

type rawGoalTotals struct {
	Total   *int `json:"total"`
	Assists *int `json:"assists"`
}

type rawPasses struct {
	Total    *int        `json:"total"`
	Accuracy looseNumber `json:"accuracy"`
}

type rawCards struct {
	Yellow *int `json:"yellow"`
	Red    *int `json:"red"`
}

type rawSeasonStats struct {
	Team   *rawTeamCore   `json:"team"`
	League *rawLeague     `json:"league"`
	Games  *rawGames      `json:"games"`
	Goals  *rawGoalTotals `json:"goals"`
	Passes *rawPasses     `json:"passes"`
	Cards  *rawCards      `json:"cards"`
}

// NormalizeTeamPlayer converts a raw provider player record into a
// player with one stats entry per team/competition/season reported.
func NormalizeTeamPlayer(raw json.RawMessage) (PlayerWithSeasonStats, error) {
	var item rawPlayerItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return PlayerWithSeasonStats{}, shapeErr("player record is not an object")
	}
	if item.Player == nil || item.Player.ID == nil || item.Player.Name == nil {
		return PlayerWithSeasonStats{}, shapeErr("player record missing id or name")
	}

	player := PlayerWithSeasonStats{
		PlayerCore: PlayerCore{
			ID:          *item.Player.ID,
			Name:        *item.Player.Name,
			Photo:       item.Player.Photo,
			Age:         item.Player.Age,
			Nationality: item.Player.Nationality,
		},
		Stats: make([]PlayerSeasonStats, 0, len(item.Statistics)),
	}

	for i, rawStats := range item.Statistics {
		stats, err := NormalizePlayerSeasonStats(rawStats)
		if err != nil {
			return PlayerWithSeasonStats{}, fmt.Errorf("statistics[%d]: %w", i, err)
		}
		player.Stats = append(player.Stats, stats)
	}

	return player, nil
}

// NormalizePlayerSeasonStats converts one raw season-stats record.
// Team and league are required; every per-category numeric field
// defaults independently, so a record with goals data but no passing
// data still normalizes with passes 0 and passAccuracy nil.
func NormalizePlayerSeasonStats(raw json.RawMessage) (PlayerSeasonStats, error) {
	var stats rawSeasonStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return PlayerSeasonStats{}, shapeErr("season stats record is not an object")
	}
	if stats.Team == nil || stats.League == nil {
		return PlayerSeasonStats{}, shapeErr("season stats missing team or league")
	}

	team, err := normalizeTeamCore(stats.Team)
	if err != nil {
		return PlayerSeasonStats{}, err
	}

	out := PlayerSeasonStats{
		Team:       team,
		LeagueID:   intVal(stats.League.ID),
		LeagueName: strVal(stats.League.Name),
		Season:     intVal(stats.League.Season),
	}

	if stats.Games != nil {
		out.Appearances = intVal(stats.Games.Appearances)
		out.Minutes = intVal(stats.Games.Minutes)
		out.Position = strVal(stats.Games.Position)
		out.Rating = stats.Games.Rating.ptr()
	}
	if stats.Goals != nil {
		out.Goals = intVal(stats.Goals.Total)
		out.Assists = intVal(stats.Goals.Assists)
	}
	if stats.Passes != nil {
		out.Passes = intVal(stats.Passes.Total)
		out.PassAccuracy = stats.Passes.Accuracy.ptr()
	}
	if stats.Cards != nil {
		out.YellowCards = intVal(stats.Cards.Yellow)
		out.RedCards = intVal(stats.Cards.Red)
	}

	return out, nil
}
