package riot

import (
	"context"
	"encoding/json"
	"net/url"

	"league-client/internal/envelope"
	"league-client/internal/schema"
)

// Account is the account-v1 record.
type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (a *Account) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, a) }

// ActiveShard reports the shard a player is active on for a game.
type ActiveShard struct {
	PUUID       string `json:"puuid"`
	Game        string `json:"game"`
	ActiveShard string `json:"activeShard"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (a *ActiveShard) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, a) }

// AccountByRiotID gets an account by riot ID (gameName#tagLine).
// Account endpoints are served from the routing hosts, not the
// platform regions.
func (c *Client) AccountByRiotID(ctx context.Context, gameName, tagLine string) envelope.Result[*Account] {
	return object[Account](ctx, c, c.routing,
		"/riot/account/v1/accounts/by-riot-id/"+url.QueryEscape(gameName)+"/"+url.QueryEscape(tagLine))
}

// AccountByPUUID gets an account by encrypted PUUID.
func (c *Client) AccountByPUUID(ctx context.Context, encryptedPUUID string) envelope.Result[*Account] {
	return object[Account](ctx, c, c.routing, "/riot/account/v1/accounts/by-puuid/"+encryptedPUUID)
}

// ActiveShard gets the active shard for a player in the given game
// ("val" or "lor").
func (c *Client) ActiveShard(ctx context.Context, game, encryptedPUUID string) envelope.Result[*ActiveShard] {
	return object[ActiveShard](ctx, c, c.routing,
		"/riot/account/v1/active-shards/by-game/"+game+"/by-puuid/"+encryptedPUUID)
}
