package riot

import (
	"context"
	"encoding/json"
	"strconv"

	"league-client/internal/envelope"
	"league-client/internal/schema"
)

// ChampionMastery is the champion-mastery-v4 record.
type ChampionMastery struct {
	ChampionPointsUntilNextLevel int64  `json:"championPointsUntilNextLevel"`
	ChestGranted                 bool   `json:"chestGranted"`
	ChampionID                   int    `json:"championId"`
	LastPlayTime                 int64  `json:"lastPlayTime"`
	ChampionLevel                int    `json:"championLevel"`
	SummonerID                   string `json:"summonerId"`
	ChampionPoints               int    `json:"championPoints"`
	ChampionPointsSinceLastLevel int64  `json:"championPointsSinceLastLevel"`
	TokensEarned                 int    `json:"tokensEarned"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (m *ChampionMastery) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, m) }

// Masteries lists every champion mastery for a summoner, ordered as
// the API returns them (descending points).
func (c *Client) Masteries(ctx context.Context, encryptedSummonerID string) envelope.Result[[]*ChampionMastery] {
	return list[ChampionMastery](ctx, c, c.region,
		"/lol/champion-mastery/v4/champion-masteries/by-summoner/"+encryptedSummonerID)
}

// ChampionMastery gets the mastery of one champion for a summoner.
func (c *Client) ChampionMastery(ctx context.Context, encryptedSummonerID string, championID int) envelope.Result[*ChampionMastery] {
	return object[ChampionMastery](ctx, c, c.region,
		"/lol/champion-mastery/v4/champion-masteries/by-summoner/"+encryptedSummonerID+"/by-champion/"+strconv.Itoa(championID))
}

// MasteryScore gets the total mastery score of a summoner. The
// endpoint returns a bare integer, so there is no record type.
func (c *Client) MasteryScore(ctx context.Context, encryptedSummonerID string) envelope.Result[int] {
	return raw[int](ctx, c, c.region,
		"/lol/champion-mastery/v4/scores/by-summoner/"+encryptedSummonerID)
}
