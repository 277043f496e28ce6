package football

import "encoding/json"

// rawTeamCore is the provider's team object wherever it appears.
type rawTeamCore struct {
	ID       *int    `json:"id"`
	Name     *string `json:"name"`
	Logo     *string `json:"logo"`
	Country  *string `json:"country"`
	Founded  *int    `json:"founded"`
	National *bool   `json:"national"`
}

type rawVenue struct {
	ID       *int    `json:"id"`
	Name     *string `json:"name"`
	City     *string `json:"city"`
	Capacity *int    `json:"capacity"`
	Image    *string `json:"image"`
}

type rawTeamItem struct {
	Team  *rawTeamCore `json:"team"`
	Venue *rawVenue    `json:"venue"`
}

// normalizeTeamCore converts a raw team object, rejecting records that
// lack id or name.
func normalizeTeamCore(team *rawTeamCore) (TeamCore, error) {
	if team == nil || team.ID == nil || team.Name == nil {
		return TeamCore{}, shapeErr("team core missing id or name")
	}

	return TeamCore{
		ID:      *team.ID,
		Name:    *team.Name,
		Logo:    team.Logo,
		Country: team.Country,
	}, nil
}

// NormalizeTeamCore converts a bare team object (as embedded in the
// team statistics payload) into a TeamCore.
func NormalizeTeamCore(raw json.RawMessage) (TeamCore, error) {
	var team rawTeamCore
	if err := json.Unmarshal(raw, &team); err != nil {
		return TeamCore{}, shapeErr("team object is not an object")
	}
	return normalizeTeamCore(&team)
}

// NormalizeTeam converts a raw provider team record into a Team.
// Venue sub-fields default independently, so partial venue data still
// normalizes; a missing team object or identity fields reject.
func NormalizeTeam(raw json.RawMessage) (Team, error) {
	var item rawTeamItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return Team{}, shapeErr("team record is not an object")
	}
	if item.Team == nil {
		return Team{}, shapeErr("team record missing team object")
	}

	core, err := normalizeTeamCore(item.Team)
	if err != nil {
		return Team{}, err
	}

	team := Team{
		TeamCore: core,
		Founded:  item.Team.Founded,
		National: item.Team.National != nil && *item.Team.National,
	}

	if item.Venue != nil {
		team.Venue = &Venue{
			ID:       item.Venue.ID,
			Name:     item.Venue.Name,
			City:     item.Venue.City,
			Capacity: item.Venue.Capacity,
			Image:    item.Venue.Image,
		}
	}

	return team, nil
}
