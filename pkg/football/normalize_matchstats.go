package football

import "encoding/json"

// statNameMap translates the provider's display stat names into the
// internal keys of MatchTeamStatistics.Stats. Entries whose type is not
// listed are dropped, which keeps normalization forward-compatible with
// the upstream adding new stat categories.
var statNameMap = map[string]string{
	"Shots on Goal":  "shotsOnGoal",
	"Shots off Goal": "shotsOffGoal",
	"Total Shots":    "totalShots",

	"Ball Possession": "possession",

	"Total passes": "passes",
	"Passes %":     "passAccuracy",

	"Fouls":        "fouls",
	"Yellow Cards": "yellowCards",
	"Red Cards":    "redCards",

	"Corner Kicks": "corners",
	"Offsides":     "offsides",

	"Expected Goals": "expectedGoals",
}

type rawStatEntry struct {
	Type  string      `json:"type"`
	Value looseNumber `json:"value"`
}

type rawStatisticsItem struct {
	Team       *rawTeamCore   `json:"team"`
	Statistics []rawStatEntry `json:"statistics"`
}

// NormalizeMatchStatistics converts one team's raw in-match statistics.
// Percentage strings ("60%") are coerced to their numeric magnitude;
// missing or non-numeric values become nil.
func NormalizeMatchStatistics(raw json.RawMessage) (MatchTeamStatistics, error) {
	var item rawStatisticsItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return MatchTeamStatistics{}, shapeErr("match statistics record is not an object")
	}
	if item.Team == nil || item.Statistics == nil {
		return MatchTeamStatistics{}, shapeErr("match statistics missing team or statistics array")
	}

	team, err := normalizeTeamCore(item.Team)
	if err != nil {
		return MatchTeamStatistics{}, err
	}

	stats := make(map[string]*float64, len(item.Statistics))
	for _, entry := range item.Statistics {
		name, known := statNameMap[entry.Type]
		if !known {
			continue
		}
		stats[name] = entry.Value.ptr()
	}

	return MatchTeamStatistics{Team: team, Stats: stats}, nil
}
