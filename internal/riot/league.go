package riot

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"league-client/internal/envelope"
	"league-client/internal/schema"
)

// MiniSeries is the promotion-series progress attached to a league
// entry while a player is in promos. Absent otherwise.
type MiniSeries struct {
	Losses   int    `json:"losses"`
	Progress string `json:"progress"`
	Target   int    `json:"target"`
	Wins     int    `json:"wins"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (m *MiniSeries) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, m) }

// LeagueItem is the simplified per-summoner entry used inside a
// LeagueList (bulk league endpoints).
type LeagueItem struct {
	SummonerID   string      `json:"summonerId"`
	SummonerName string      `json:"summonerName"`
	LeaguePoints int         `json:"leaguePoints"`
	Rank         string      `json:"rank"`
	Wins         int         `json:"wins"`
	Losses       int         `json:"losses"`
	Veteran      bool        `json:"veteran"`
	Inactive     bool        `json:"inactive"`
	FreshBlood   bool        `json:"freshBlood"`
	HotStreak    bool        `json:"hotStreak"`
	MiniSeries   *MiniSeries `json:"miniSeries" riot:"optional"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (i *LeagueItem) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, i) }

// LeagueList is a whole league (one tier of one queue) with its
// entries.
type LeagueList struct {
	Tier     string       `json:"tier"`
	LeagueID string       `json:"leagueId"`
	Queue    string       `json:"queue"`
	Name     string       `json:"name"`
	Entries  []LeagueItem `json:"entries"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (l *LeagueList) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, l) }

// LeagueEntry is the full per-queue ranked entry for a summoner. Tier,
// rank and league ID are absent for some queue types, so the derived
// Short label falls back to a placeholder.
type LeagueEntry struct {
	LeagueID     string      `json:"leagueId" riot:"optional"`
	SummonerID   string      `json:"summonerId"`
	SummonerName string      `json:"summonerName"`
	QueueType    string      `json:"queueType"`
	Tier         string      `json:"tier" riot:"optional"`
	Rank         string      `json:"rank" riot:"optional"`
	LeaguePoints int         `json:"leaguePoints"`
	Wins         int         `json:"wins"`
	Losses       int         `json:"losses"`
	HotStreak    bool        `json:"hotStreak"`
	Veteran      bool        `json:"veteran"`
	FreshBlood   bool        `json:"freshBlood"`
	Inactive     bool        `json:"inactive"`
	MiniSeries   *MiniSeries `json:"miniSeries" riot:"optional"`

	// Short is derived from Tier and Rank, e.g. "G4" for GOLD IV,
	// "GM1" for GRANDMASTER I, "??" when either piece is missing.
	Short string `json:"-"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (e *LeagueEntry) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, e) }

// Derive computes the short rank label. The rules mirror an upstream
// naming convention: GRANDMASTER shares the "G" initial with GOLD, so
// it is special-cased on the "GR" prefix, and roman numeral length
// doubles as the division digit except for IV.
func (e *LeagueEntry) Derive() {
	if e.Tier == "" || e.Rank == "" {
		e.Short = "??"
		return
	}
	prefix := e.Tier[:1]
	if strings.HasPrefix(e.Tier, "GR") {
		prefix = "GM"
	}
	suffix := strconv.Itoa(len(e.Rank))
	if strings.EqualFold(e.Rank, "iv") {
		suffix = "4"
	}
	e.Short = prefix + suffix
}

// LeagueEntries gets the ranked entries of a summoner, one per queue
// type. The result is a set: structurally identical entries collapse.
func (c *Client) LeagueEntries(ctx context.Context, encryptedSummonerID string) envelope.Result[[]*LeagueEntry] {
	return set[LeagueEntry](ctx, c, c.region, "/lol/league/v4/entries/by-summoner/"+encryptedSummonerID)
}

// SoloLeague gets the solo-queue entry of a summoner.
func (c *Client) SoloLeague(ctx context.Context, encryptedSummonerID string) envelope.Result[*LeagueEntry] {
	return c.leagueByQueue(ctx, encryptedSummonerID, "SOLO")
}

// FlexLeague gets the flex-queue entry of a summoner.
func (c *Client) FlexLeague(ctx context.Context, encryptedSummonerID string) envelope.Result[*LeagueEntry] {
	return c.leagueByQueue(ctx, encryptedSummonerID, "FLEX")
}

func (c *Client) leagueByQueue(ctx context.Context, encryptedSummonerID, queueType string) envelope.Result[*LeagueEntry] {
	res := c.LeagueEntries(ctx, encryptedSummonerID)
	if !res.Ok() {
		return envelope.Failure[*LeagueEntry](res.Err())
	}
	needle := strings.ToLower(queueType)
	for _, entry := range res.Value() {
		if strings.Contains(strings.ToLower(entry.QueueType), needle) {
			return envelope.Success(entry)
		}
	}
	return envelope.Failure[*LeagueEntry](envelope.ErrNoResult)
}
