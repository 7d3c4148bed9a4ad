package riot

import (
	"context"
	"encoding/json"

	"league-client/internal/envelope"
	"league-client/internal/schema"
)

// ChampionRotation is the champion-v3 free rotation record.
type ChampionRotation struct {
	MaxNewPlayerLevel            int   `json:"maxNewPlayerLevel"`
	FreeChampionIDsForNewPlayers []int `json:"freeChampionIdsForNewPlayers"`
	FreeChampionIDs              []int `json:"freeChampionIds"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (r *ChampionRotation) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, r) }

// ChampionRotation gets the current free champion rotation.
func (c *Client) ChampionRotation(ctx context.Context) envelope.Result[*ChampionRotation] {
	return object[ChampionRotation](ctx, c, c.region, "/lol/platform/v3/champion-rotations")
}
