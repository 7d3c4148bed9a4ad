package riot

import (
	"context"
	"encoding/json"
	"net/url"

	"league-client/internal/envelope"
	"league-client/internal/schema"
)

// Summoner is the summoner-v4 record.
type Summoner struct {
	AccountID     string `json:"accountId"`
	ProfileIconID int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	Name          string `json:"name"`
	ID            string `json:"id"`
	PUUID         string `json:"puuid"`
	SummonerLevel int    `json:"summonerLevel"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (s *Summoner) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, s) }

// SummonerByAccountID gets a summoner by encrypted account ID.
func (c *Client) SummonerByAccountID(ctx context.Context, encryptedAccountID string) envelope.Result[*Summoner] {
	return object[Summoner](ctx, c, c.region, "/lol/summoner/v4/summoners/by-account/"+encryptedAccountID)
}

// SummonerByName gets a summoner by name.
func (c *Client) SummonerByName(ctx context.Context, name string) envelope.Result[*Summoner] {
	return object[Summoner](ctx, c, c.region, "/lol/summoner/v4/summoners/by-name/"+url.QueryEscape(name))
}

// SummonerByPUUID gets a summoner by encrypted PUUID.
func (c *Client) SummonerByPUUID(ctx context.Context, encryptedPUUID string) envelope.Result[*Summoner] {
	return object[Summoner](ctx, c, c.region, "/lol/summoner/v4/summoners/by-puuid/"+encryptedPUUID)
}

// SummonerByID gets a summoner by encrypted summoner ID.
func (c *Client) SummonerByID(ctx context.Context, encryptedSummonerID string) envelope.Result[*Summoner] {
	return object[Summoner](ctx, c, c.region, "/lol/summoner/v4/summoners/"+encryptedSummonerID)
}
