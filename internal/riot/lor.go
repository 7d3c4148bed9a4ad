package riot

import (
	"context"
	"encoding/json"

	"league-client/internal/envelope"
	"league-client/internal/schema"
)

// LorMatch is the lor-match-v1 record (Legends of Runeterra).
type LorMatch struct {
	Metadata LorMetadata `json:"metadata"`
	Info     LorInfo     `json:"info"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (m *LorMatch) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, m) }

type LorMetadata struct {
	DataVersion  string   `json:"data_version"`
	MatchID      string   `json:"match_id"`
	Participants []string `json:"participants"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (m *LorMetadata) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, m) }

type LorInfo struct {
	GameMode         string      `json:"game_mode"`
	GameType         string      `json:"game_type"`
	GameStartTimeUTC string      `json:"game_start_time_utc"`
	GameVersion      string      `json:"game_version"`
	Players          []LorPlayer `json:"players"`
	TotalTurnCount   int         `json:"total_turn_count"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (i *LorInfo) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, i) }

type LorPlayer struct {
	PUUID       string   `json:"puuid"`
	DeckID      string   `json:"deck_id"`
	DeckCode    string   `json:"deck_code"`
	Factions    []string `json:"factions"`
	GameOutcome string   `json:"game_outcome"`
	OrderOfPlay int      `json:"order_of_play"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (p *LorPlayer) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, p) }

// LorLeaderboard is the lor-ranked-v1 masters leaderboard.
type LorLeaderboard struct {
	Players []LorLeaderboardPlayer `json:"players"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (l *LorLeaderboard) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, l) }

type LorLeaderboardPlayer struct {
	Name string `json:"name"`
	Rank int    `json:"rank"`
	LP   int    `json:"lp"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (p *LorLeaderboardPlayer) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, p) }

// LorMatchIDs lists the most recent LoR match IDs for a player. Bare
// string list, no record type.
func (c *Client) LorMatchIDs(ctx context.Context, encryptedPUUID string) envelope.Result[[]string] {
	return raw[[]string](ctx, c, c.routing, "/lor/match/v1/matches/by-puuid/"+encryptedPUUID+"/ids")
}

// LorMatch gets one LoR match by ID.
func (c *Client) LorMatch(ctx context.Context, matchID string) envelope.Result[*LorMatch] {
	return object[LorMatch](ctx, c, c.routing, "/lor/match/v1/matches/"+matchID)
}

// LorLeaderboard gets the players in LoR Master tier.
func (c *Client) LorLeaderboard(ctx context.Context) envelope.Result[*LorLeaderboard] {
	return object[LorLeaderboard](ctx, c, c.routing, "/lor/ranked/v1/leaderboards")
}
