package riot

import (
	"context"
	"encoding/json"
	"fmt"

	"league-client/internal/envelope"
	"league-client/internal/schema"
)

// Match is the match-v5 record.
type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (m *Match) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, m) }

type MatchMetadata struct {
	DataVersion  string   `json:"dataVersion"`
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (m *MatchMetadata) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, m) }

type MatchInfo struct {
	GameCreation       int64         `json:"gameCreation"`
	GameDuration       int64         `json:"gameDuration"`
	GameID             int64         `json:"gameId"`
	GameMode           string        `json:"gameMode"`
	GameName           string        `json:"gameName"`
	GameStartTimestamp int64         `json:"gameStartTimestamp"`
	GameEndTimestamp   int64         `json:"gameEndTimestamp" riot:"optional"`
	GameType           string        `json:"gameType"`
	GameVersion        string        `json:"gameVersion"`
	MapID              int           `json:"mapId"`
	Participants       []Participant `json:"participants"`
	PlatformID         string        `json:"platformId"`
	QueueID            int           `json:"queueId"`
	Teams              []Team        `json:"teams"`
	TournamentCode     string        `json:"tournamentCode" riot:"optional"`

	// GameDurationSeconds is derived: patch 11.20 changed gameDuration
	// from milliseconds to seconds, so large values are assumed to be
	// the old unit.
	GameDurationSeconds int64 `json:"-"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (i *MatchInfo) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, i) }

func (i *MatchInfo) Derive() {
	if i.GameEndTimestamp == 0 {
		i.GameEndTimestamp = i.GameStartTimestamp + i.GameDuration
	}
	if i.GameDuration > 10000 {
		i.GameDurationSeconds = i.GameDuration / 1000
	} else {
		i.GameDurationSeconds = i.GameDuration
	}
}

type Participant struct {
	Assists                        int    `json:"assists"`
	BaronKills                     int    `json:"baronKills"`
	BountyLevel                    int    `json:"bountyLevel"`
	ChampExperience                int    `json:"champExperience"`
	ChampLevel                     int    `json:"champLevel"`
	ChampionID                     int    `json:"championId"`
	ChampionName                   string `json:"championName"`
	ChampionTransform              int    `json:"championTransform"`
	ConsumablesPurchased           int    `json:"consumablesPurchased"`
	DamageDealtToBuildings         int    `json:"damageDealtToBuildings"`
	DamageDealtToObjectives        int    `json:"damageDealtToObjectives"`
	DamageDealtToTurrets           int    `json:"damageDealtToTurrets"`
	DamageSelfMitigated            int    `json:"damageSelfMitigated"`
	Deaths                         int    `json:"deaths"`
	DetectorWardsPlaced            int    `json:"detectorWardsPlaced"`
	DoubleKills                    int    `json:"doubleKills"`
	DragonKills                    int    `json:"dragonKills"`
	FirstBloodAssist               bool   `json:"firstBloodAssist"`
	FirstBloodKill                 bool   `json:"firstBloodKill"`
	FirstTowerAssist               bool   `json:"firstTowerAssist"`
	FirstTowerKill                 bool   `json:"firstTowerKill"`
	GameEndedInEarlySurrender      bool   `json:"gameEndedInEarlySurrender"`
	GameEndedInSurrender           bool   `json:"gameEndedInSurrender"`
	GoldEarned                     int    `json:"goldEarned"`
	GoldSpent                      int    `json:"goldSpent"`
	IndividualPosition             string `json:"individualPosition"`
	InhibitorKills                 int    `json:"inhibitorKills"`
	InhibitorTakedowns             int    `json:"inhibitorTakedowns" riot:"optional"`
	InhibitorsLost                 int    `json:"inhibitorsLost"`
	Item0                          int    `json:"item0"`
	Item1                          int    `json:"item1"`
	Item2                          int    `json:"item2"`
	Item3                          int    `json:"item3"`
	Item4                          int    `json:"item4"`
	Item5                          int    `json:"item5"`
	Item6                          int    `json:"item6"`
	ItemsPurchased                 int    `json:"itemsPurchased"`
	KillingSprees                  int    `json:"killingSprees"`
	Kills                          int    `json:"kills"`
	Lane                           string `json:"lane"`
	LargestCriticalStrike          int    `json:"largestCriticalStrike"`
	LargestKillingSpree            int    `json:"largestKillingSpree"`
	LargestMultiKill               int    `json:"largestMultiKill"`
	LongestTimeSpentLiving         int    `json:"longestTimeSpentLiving"`
	MagicDamageDealt               int    `json:"magicDamageDealt"`
	MagicDamageDealtToChampions    int    `json:"magicDamageDealtToChampions"`
	MagicDamageTaken               int    `json:"magicDamageTaken"`
	NeutralMinionsKilled           int    `json:"neutralMinionsKilled"`
	NexusKills                     int    `json:"nexusKills"`
	NexusLost                      int    `json:"nexusLost"`
	NexusTakedowns                 int    `json:"nexusTakedowns" riot:"optional"`
	ObjectivesStolen               int    `json:"objectivesStolen"`
	ObjectivesStolenAssists        int    `json:"objectivesStolenAssists"`
	ParticipantID                  int    `json:"participantId"`
	PentaKills                     int    `json:"pentaKills"`
	Perks                          Perks  `json:"perks"`
	PhysicalDamageDealt            int    `json:"physicalDamageDealt"`
	PhysicalDamageDealtToChampions int    `json:"physicalDamageDealtToChampions"`
	PhysicalDamageTaken            int    `json:"physicalDamageTaken"`
	ProfileIcon                    int    `json:"profileIcon"`
	PUUID                          string `json:"puuid"`
	QuadraKills                    int    `json:"quadraKills"`
	RiotIDName                     string `json:"riotIdName"`
	RiotIDTagline                  string `json:"riotIdTagline"`
	Role                           string `json:"role"`
	SightWardsBoughtInGame         int    `json:"sightWardsBoughtInGame"`
	Spell1Casts                    int    `json:"spell1Casts"`
	Spell2Casts                    int    `json:"spell2Casts"`
	Spell3Casts                    int    `json:"spell3Casts"`
	Spell4Casts                    int    `json:"spell4Casts"`
	Summoner1Casts                 int    `json:"summoner1Casts"`
	Summoner1ID                    int    `json:"summoner1Id"`
	Summoner2Casts                 int    `json:"summoner2Casts"`
	Summoner2ID                    int    `json:"summoner2Id"`
	SummonerID                     string `json:"summonerId"`
	SummonerLevel                  int    `json:"summonerLevel"`
	SummonerName                   string `json:"summonerName"`
	TeamEarlySurrendered           bool   `json:"teamEarlySurrendered"`
	TeamID                         int    `json:"teamId"`
	TeamPosition                   string `json:"teamPosition"`
	TimeCCingOthers                int    `json:"timeCCingOthers"`
	TimePlayed                     int    `json:"timePlayed"`
	TotalDamageDealt               int    `json:"totalDamageDealt"`
	TotalDamageDealtToChampions    int    `json:"totalDamageDealtToChampions"`
	TotalDamageShieldedOnTeammates int    `json:"totalDamageShieldedOnTeammates"`
	TotalDamageTaken               int    `json:"totalDamageTaken"`
	TotalHeal                      int    `json:"totalHeal"`
	TotalHealsOnTeammates          int    `json:"totalHealsOnTeammates"`
	TotalMinionsKilled             int    `json:"totalMinionsKilled"`
	TotalTimeCCDealt               int    `json:"totalTimeCCDealt"`
	TotalTimeSpentDead             int    `json:"totalTimeSpentDead"`
	TotalUnitsHealed               int    `json:"totalUnitsHealed"`
	TripleKills                    int    `json:"tripleKills"`
	TrueDamageDealt                int    `json:"trueDamageDealt"`
	TrueDamageDealtToChampions     int    `json:"trueDamageDealtToChampions"`
	TrueDamageTaken                int    `json:"trueDamageTaken"`
	TurretKills                    int    `json:"turretKills"`
	TurretTakedowns                int    `json:"turretTakedowns" riot:"optional"`
	TurretsLost                    int    `json:"turretsLost"`
	UnrealKills                    int    `json:"unrealKills"`
	VisionScore                    int    `json:"visionScore"`
	VisionWardsBoughtInGame        int    `json:"visionWardsBoughtInGame"`
	WardsKilled                    int    `json:"wardsKilled"`
	WardsPlaced                    int    `json:"wardsPlaced"`
	Win                            bool   `json:"win"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (p *Participant) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, p) }

type Perks struct {
	StatPerks PerkStats   `json:"statPerks"`
	Styles    []PerkStyle `json:"styles"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (p *Perks) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, p) }

type PerkStats struct {
	Defense int `json:"defense"`
	Flex    int `json:"flex"`
	Offense int `json:"offense"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (p *PerkStats) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, p) }

type PerkStyle struct {
	Description string               `json:"description"`
	Selections  []PerkStyleSelection `json:"selections"`
	Style       int                  `json:"style"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (p *PerkStyle) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, p) }

type PerkStyleSelection struct {
	Perk int `json:"perk"`
	Var1 int `json:"var1"`
	Var2 int `json:"var2"`
	Var3 int `json:"var3"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (p *PerkStyleSelection) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, p) }

type Team struct {
	Bans       []Ban      `json:"bans"`
	Objectives Objectives `json:"objectives"`
	TeamID     int        `json:"teamId"`
	Win        bool       `json:"win"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (t *Team) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, t) }

type Ban struct {
	ChampionID int `json:"championId"`
	PickTurn   int `json:"pickTurn"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (b *Ban) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, b) }

type Objectives struct {
	Baron      Objective `json:"baron"`
	Champion   Objective `json:"champion"`
	Dragon     Objective `json:"dragon"`
	Inhibitor  Objective `json:"inhibitor"`
	RiftHerald Objective `json:"riftHerald"`
	Tower      Objective `json:"tower"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (o *Objectives) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, o) }

type Objective struct {
	First bool `json:"first"`
	Kills int  `json:"kills"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (o *Objective) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, o) }

// MatchIDs lists match IDs for a player, most recent first. Served
// from the v5 routing host; the endpoint returns a bare string list.
func (c *Client) MatchIDs(ctx context.Context, puuid string, start, count int) envelope.Result[[]string] {
	return raw[[]string](ctx, c, c.routing,
		fmt.Sprintf("/lol/match/v5/matches/by-puuid/%s/ids?start=%d&count=%d", puuid, start, count))
}

// Match gets one match by ID.
func (c *Client) Match(ctx context.Context, matchID string) envelope.Result[*Match] {
	return object[Match](ctx, c, c.routing, "/lol/match/v5/matches/"+matchID)
}

// NthMatch gets the nth most recent match of a player. If the player
// has fewer than n+1 matches the operation short-circuits with
// envelope.ErrNoResult before any match fetch is attempted.
func (c *Client) NthMatch(ctx context.Context, puuid string, n int) envelope.Result[*Match] {
	ids := c.MatchIDs(ctx, puuid, n, 1)
	if !ids.Ok() {
		return envelope.Failure[*Match](ids.Err())
	}
	if len(ids.Value()) == 0 {
		return envelope.Failure[*Match](envelope.ErrNoResult)
	}
	return c.Match(ctx, ids.Value()[0])
}

// LastMatch gets the most recent match of a player.
func (c *Client) LastMatch(ctx context.Context, puuid string) envelope.Result[*Match] {
	return c.NthMatch(ctx, puuid, 0)
}
