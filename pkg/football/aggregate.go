package football

import "math"

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// AggregatePlayerSeasonStats sums a player's season-stat records into
// season-level aggregates. AverageRating is the mean of only the rated
// records, nil when none is rated; per-90 rates are 0 when total
// minutes is 0.
func AggregatePlayerSeasonStats(stats []PlayerSeasonStats) PlayerSeasonAggregates {
	var agg PlayerSeasonAggregates
	var ratingSum float64
	var ratingCount int

	for _, s := range stats {
		agg.Appearances += s.Appearances
		agg.Minutes += s.Minutes
		agg.Goals += s.Goals
		agg.Assists += s.Assists
		agg.YellowCards += s.YellowCards
		agg.RedCards += s.RedCards

		if s.Rating != nil {
			ratingSum += *s.Rating
			ratingCount++
		}
	}

	if ratingCount > 0 {
		avg := round2(ratingSum / float64(ratingCount))
		agg.AverageRating = &avg
	}

	if agg.Minutes > 0 {
		agg.GoalsPer90 = round2(float64(agg.Goals) / float64(agg.Minutes) * 90)
		agg.AssistsPer90 = round2(float64(agg.Assists) / float64(agg.Minutes) * 90)
	}

	return agg
}

// AggregateTeamSeasonStats derives season summary metrics from a team's
// stats record. Rates are 0 when no matches were played.
func AggregateTeamSeasonStats(stats TeamStats) TeamSeasonAggregates {
	played := stats.Fixtures.Played

	agg := TeamSeasonAggregates{
		MatchesPlayed:  played,
		Wins:           stats.Fixtures.Wins,
		Draws:          stats.Fixtures.Draws,
		Losses:         stats.Fixtures.Losses,
		Points:         stats.Fixtures.Wins*3 + stats.Fixtures.Draws,
		GoalsFor:       stats.Goals.For,
		GoalsAgainst:   stats.Goals.Against,
		GoalDifference: stats.Goals.For - stats.Goals.Against,
	}

	if played > 0 {
		agg.WinRate = round1(float64(stats.Fixtures.Wins) / float64(played) * 100)
		agg.GoalsForPerMatch = round2(float64(stats.Goals.For) / float64(played))
		agg.GoalsAgainstPerMatch = round2(float64(stats.Goals.Against) / float64(played))
	}

	return agg
}
