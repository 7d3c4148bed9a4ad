package riot

import (
	"context"
	"encoding/json"

	"league-client/internal/envelope"
	"league-client/internal/schema"
)

// CurrentGameInfo is the spectator-v4 live game record.
type CurrentGameInfo struct {
	GameID            int64                    `json:"gameId"`
	GameType          string                   `json:"gameType"`
	GameStartTime     int64                    `json:"gameStartTime"`
	MapID             int                      `json:"mapId"`
	GameLength        int64                    `json:"gameLength"`
	PlatformID        string                   `json:"platformId"`
	GameMode          string                   `json:"gameMode"`
	BannedChampions   []BannedChampion         `json:"bannedChampions"`
	GameQueueConfigID int                      `json:"gameQueueConfigId"`
	Observers         Observer                 `json:"observers"`
	Participants      []CurrentGameParticipant `json:"participants"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (g *CurrentGameInfo) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, g) }

type BannedChampion struct {
	PickTurn   int `json:"pickTurn"`
	ChampionID int `json:"championId"`
	TeamID     int `json:"teamId"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (b *BannedChampion) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, b) }

type CurrentGameParticipant struct {
	ChampionID               int                       `json:"championId"`
	Perks                    SpectatorPerks            `json:"perks"`
	ProfileIconID            int                       `json:"profileIconId"`
	Bot                      bool                      `json:"bot"`
	TeamID                   int                       `json:"teamId"`
	SummonerName             string                    `json:"summonerName"`
	SummonerID               string                    `json:"summonerId"`
	Spell1ID                 int                       `json:"spell1Id"`
	Spell2ID                 int                       `json:"spell2Id"`
	GameCustomizationObjects []GameCustomizationObject `json:"gameCustomizationObjects"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (p *CurrentGameParticipant) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, p) }

type SpectatorPerks struct {
	PerkIDs      []int `json:"perkIds"`
	PerkStyle    int   `json:"perkStyle"`
	PerkSubStyle int   `json:"perkSubStyle"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (p *SpectatorPerks) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, p) }

type GameCustomizationObject struct {
	Category string `json:"category"`
	Content  string `json:"content"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (g *GameCustomizationObject) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, g) }

type Observer struct {
	EncryptionKey string `json:"encryptionKey"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (o *Observer) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, o) }

// FeaturedGames is the spectator-v4 featured game list.
type FeaturedGames struct {
	GameList              []FeaturedGameInfo `json:"gameList"`
	ClientRefreshInterval int                `json:"clientRefreshInterval"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (f *FeaturedGames) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, f) }

type FeaturedGameInfo struct {
	GameMode          string                 `json:"gameMode"`
	GameLength        int64                  `json:"gameLength"`
	MapID             int                    `json:"mapId"`
	GameType          string                 `json:"gameType"`
	BannedChampions   []BannedChampion       `json:"bannedChampions"`
	GameID            int64                  `json:"gameId"`
	Observers         Observer               `json:"observers"`
	GameQueueConfigID int                    `json:"gameQueueConfigId"`
	GameStartTime     int64                  `json:"gameStartTime"`
	Participants      []SpectatorParticipant `json:"participants"`
	PlatformID        string                 `json:"platformId"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (f *FeaturedGameInfo) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, f) }

type SpectatorParticipant struct {
	TeamID        int    `json:"teamId"`
	Spell1ID      int    `json:"spell1Id"`
	Spell2ID      int    `json:"spell2Id"`
	ChampionID    int    `json:"championId"`
	ProfileIconID int    `json:"profileIconId"`
	SummonerName  string `json:"summonerName"`
	Bot           bool   `json:"bot"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (p *SpectatorParticipant) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, p) }

// ActiveGame gets the live game a summoner is currently in.
func (c *Client) ActiveGame(ctx context.Context, encryptedSummonerID string) envelope.Result[*CurrentGameInfo] {
	return object[CurrentGameInfo](ctx, c, c.region, "/lol/spectator/v4/active-games/by-summoner/"+encryptedSummonerID)
}

// FeaturedGames gets the games currently featured by the client.
func (c *Client) FeaturedGames(ctx context.Context) envelope.Result[*FeaturedGames] {
	return object[FeaturedGames](ctx, c, c.region, "/lol/spectator/v4/featured-games")
}
