package riot

import (
	"context"
	"encoding/json"

	"league-client/internal/envelope"
	"league-client/internal/schema"
)

// ClashPlayer is a clash-v1 team registration record.
type ClashPlayer struct {
	SummonerID string `json:"summonerId"`
	TeamID     string `json:"teamId"`
	Position   string `json:"position"`
	Role       string `json:"role"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (p *ClashPlayer) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, p) }

// ClashTournament is a clash-v1 tournament record.
type ClashTournament struct {
	ID               int                    `json:"id"`
	ThemeID          int                    `json:"themeId"`
	NameKey          string                 `json:"nameKey"`
	NameKeySecondary string                 `json:"nameKeySecondary"`
	Schedule         []ClashTournamentPhase `json:"schedule"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (t *ClashTournament) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, t) }

// ClashTournamentPhase is one scheduled phase of a clash tournament.
type ClashTournamentPhase struct {
	ID               int   `json:"id"`
	RegistrationTime int64 `json:"registrationTime"`
	StartTime        int64 `json:"startTime"`
	Cancelled        bool  `json:"cancelled"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (p *ClashTournamentPhase) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, p) }

// ClashPlayers lists the active clash registrations for a summoner.
func (c *Client) ClashPlayers(ctx context.Context, encryptedSummonerID string) envelope.Result[[]*ClashPlayer] {
	return list[ClashPlayer](ctx, c, c.region, "/lol/clash/v1/players/by-summoner/"+encryptedSummonerID)
}

// ClashTournaments lists all upcoming and active clash tournaments.
func (c *Client) ClashTournaments(ctx context.Context) envelope.Result[[]*ClashTournament] {
	return list[ClashTournament](ctx, c, c.region, "/lol/clash/v1/tournaments")
}
