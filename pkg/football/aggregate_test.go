package football

import "testing"

func ratingOf(v float64) *float64 { return &v }

func TestAggregatePlayerSeasonStats(t *testing.T) {
	stats := []PlayerSeasonStats{
		{Appearances: 10, Minutes: 900, Goals: 3, Assists: 2, YellowCards: 1, Rating: ratingOf(7.2)},
		{Appearances: 5, Minutes: 450, Goals: 1, Assists: 1, RedCards: 1, Rating: nil},
	}

	agg := AggregatePlayerSeasonStats(stats)

	if agg.Appearances != 15 || agg.Minutes != 1350 {
		t.Errorf("totals = %d/%d, want 15/1350", agg.Appearances, agg.Minutes)
	}
	if agg.Goals != 4 || agg.Assists != 3 {
		t.Errorf("goals = %d/%d, want 4/3", agg.Goals, agg.Assists)
	}
	if agg.YellowCards != 1 || agg.RedCards != 1 {
		t.Errorf("cards = %d/%d, want 1/1", agg.YellowCards, agg.RedCards)
	}

	// Only the rated record contributes to the average.
	if agg.AverageRating == nil || *agg.AverageRating != 7.2 {
		t.Errorf("AverageRating = %v, want 7.2", agg.AverageRating)
	}

	if agg.GoalsPer90 != 0.27 {
		t.Errorf("GoalsPer90 = %v, want 0.27", agg.GoalsPer90)
	}
	if agg.AssistsPer90 != 0.2 {
		t.Errorf("AssistsPer90 = %v, want 0.2", agg.AssistsPer90)
	}
}

func TestAggregatePlayerSeasonStats_AverageOfMultipleRatings(t *testing.T) {
	stats := []PlayerSeasonStats{
		{Rating: ratingOf(7.0)},
		{Rating: ratingOf(6.5)},
		{Rating: nil},
	}

	agg := AggregatePlayerSeasonStats(stats)
	if agg.AverageRating == nil || *agg.AverageRating != 6.75 {
		t.Errorf("AverageRating = %v, want 6.75 over the two rated records", agg.AverageRating)
	}
}

func TestAggregatePlayerSeasonStats_NoRatings(t *testing.T) {
	agg := AggregatePlayerSeasonStats([]PlayerSeasonStats{{Appearances: 3}})
	if agg.AverageRating != nil {
		t.Errorf("AverageRating = %v, want nil when nothing is rated", agg.AverageRating)
	}
}

func TestAggregatePlayerSeasonStats_ZeroMinutes(t *testing.T) {
	agg := AggregatePlayerSeasonStats([]PlayerSeasonStats{{Goals: 2, Assists: 1}})
	if agg.GoalsPer90 != 0 || agg.AssistsPer90 != 0 {
		t.Errorf("per-90 = %v/%v, want 0/0 with no minutes", agg.GoalsPer90, agg.AssistsPer90)
	}
}

func TestAggregatePlayerSeasonStats_Empty(t *testing.T) {
	if agg := AggregatePlayerSeasonStats(nil); agg != (PlayerSeasonAggregates{}) {
		t.Errorf("aggregates = %+v, want zero value", agg)
	}
}

func TestAggregateTeamSeasonStats(t *testing.T) {
	stats := TeamStats{
		Team:     TeamCore{ID: 33, Name: "Manchester United"},
		LeagueID: 39,
		Season:   2024,
		Fixtures: FixtureRecord{Played: 38, Wins: 21, Draws: 9, Losses: 8},
		Goals:    GoalRecord{For: 67, Against: 41},
	}

	agg := AggregateTeamSeasonStats(stats)

	if agg.MatchesPlayed != 38 || agg.Wins != 21 || agg.Draws != 9 || agg.Losses != 8 {
		t.Errorf("record = %d/%d/%d/%d", agg.MatchesPlayed, agg.Wins, agg.Draws, agg.Losses)
	}
	if agg.WinRate != 55.3 {
		t.Errorf("WinRate = %v, want 55.3", agg.WinRate)
	}
	if agg.Points != 72 {
		t.Errorf("Points = %d, want 72", agg.Points)
	}
	if agg.GoalDifference != 26 {
		t.Errorf("GoalDifference = %d, want 26", agg.GoalDifference)
	}
	if agg.GoalsForPerMatch != 1.76 || agg.GoalsAgainstPerMatch != 1.08 {
		t.Errorf("per-match = %v/%v, want 1.76/1.08", agg.GoalsForPerMatch, agg.GoalsAgainstPerMatch)
	}
}

func TestAggregateTeamSeasonStats_NoMatchesPlayed(t *testing.T) {
	agg := AggregateTeamSeasonStats(TeamStats{Goals: GoalRecord{For: 1, Against: 2}})

	if agg.WinRate != 0 || agg.GoalsForPerMatch != 0 || agg.GoalsAgainstPerMatch != 0 {
		t.Errorf("rates = %v/%v/%v, want all 0", agg.WinRate, agg.GoalsForPerMatch, agg.GoalsAgainstPerMatch)
	}
	if agg.GoalDifference != -1 {
		t.Errorf("GoalDifference = %d, want -1", agg.GoalDifference)
	}
}
