package riot

import (
	"context"
	"encoding/json"

	"league-client/internal/envelope"
	"league-client/internal/schema"
)

// MatchTimeline is the match-v5 timeline record.
type MatchTimeline struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     TimelineInfo  `json:"info"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (t *MatchTimeline) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, t) }

type TimelineInfo struct {
	FrameInterval int                   `json:"frameInterval"`
	Frames        []TimelineFrame       `json:"frames"`
	GameID        int64                 `json:"gameId"`
	Participants  []TimelineParticipant `json:"participants"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (i *TimelineInfo) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, i) }

type TimelineFrame struct {
	Events            []TimelineEvent   `json:"events"`
	ParticipantFrames ParticipantFrames `json:"participantFrames"`
	Timestamp         int64             `json:"timestamp"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (f *TimelineFrame) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, f) }

// ParticipantFrames is a slot-keyed collection: the upstream object is
// keyed "1".."10" by participant slot rather than being a list. The
// decode remaps each slot into a named field; a gap in the numbering
// is a schema mismatch.
type ParticipantFrames struct {
	Slot1  ParticipantFrame `json:"1"`
	Slot2  ParticipantFrame `json:"2"`
	Slot3  ParticipantFrame `json:"3"`
	Slot4  ParticipantFrame `json:"4"`
	Slot5  ParticipantFrame `json:"5"`
	Slot6  ParticipantFrame `json:"6"`
	Slot7  ParticipantFrame `json:"7"`
	Slot8  ParticipantFrame `json:"8"`
	Slot9  ParticipantFrame `json:"9"`
	Slot10 ParticipantFrame `json:"10"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (p *ParticipantFrames) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, p) }

// Slots returns the ten frames in slot order.
func (p *ParticipantFrames) Slots() [10]*ParticipantFrame {
	return [10]*ParticipantFrame{
		&p.Slot1, &p.Slot2, &p.Slot3, &p.Slot4, &p.Slot5,
		&p.Slot6, &p.Slot7, &p.Slot8, &p.Slot9, &p.Slot10,
	}
}

type ParticipantFrame struct {
	ChampionStats            TimelineChampionStats `json:"championStats"`
	CurrentGold              int                   `json:"currentGold"`
	DamageStats              TimelineDamageStats   `json:"damageStats"`
	GoldPerSecond            int                   `json:"goldPerSecond"`
	JungleMinionsKilled      int                   `json:"jungleMinionsKilled"`
	Level                    int                   `json:"level"`
	MinionsKilled            int                   `json:"minionsKilled"`
	ParticipantID            int                   `json:"participantId"`
	Position                 TimelinePosition      `json:"position"`
	TimeEnemySpentControlled int                   `json:"timeEnemySpentControlled"`
	TotalGold                int                   `json:"totalGold"`
	XP                       int                   `json:"xp"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (f *ParticipantFrame) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, f) }

type TimelineChampionStats struct {
	AbilityHaste         int `json:"abilityHaste"`
	AbilityPower         int `json:"abilityPower"`
	Armor                int `json:"armor"`
	ArmorPen             int `json:"armorPen"`
	ArmorPenPercent      int `json:"armorPenPercent"`
	AttackDamage         int `json:"attackDamage"`
	AttackSpeed          int `json:"attackSpeed"`
	BonusArmorPenPercent int `json:"bonusArmorPenPercent"`
	BonusMagicPenPercent int `json:"bonusMagicPenPercent"`
	CCReduction          int `json:"ccReduction"`
	CooldownReduction    int `json:"cooldownReduction"`
	Health               int `json:"health"`
	HealthMax            int `json:"healthMax"`
	HealthRegen          int `json:"healthRegen"`
	Lifesteal            int `json:"lifesteal"`
	MagicPen             int `json:"magicPen"`
	MagicPenPercent      int `json:"magicPenPercent"`
	MagicResist          int `json:"magicResist"`
	MovementSpeed        int `json:"movementSpeed"`
	Omnivamp             int `json:"omnivamp"`
	PhysicalVamp         int `json:"physicalVamp"`
	Power                int `json:"power"`
	PowerMax             int `json:"powerMax"`
	PowerRegen           int `json:"powerRegen"`
	SpellVamp            int `json:"spellVamp"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (s *TimelineChampionStats) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, s) }

type TimelineDamageStats struct {
	MagicDamageDone               int `json:"magicDamageDone"`
	MagicDamageDoneToChampions    int `json:"magicDamageDoneToChampions"`
	MagicDamageTaken              int `json:"magicDamageTaken"`
	PhysicalDamageDone            int `json:"physicalDamageDone"`
	PhysicalDamageDoneToChampions int `json:"physicalDamageDoneToChampions"`
	PhysicalDamageTaken           int `json:"physicalDamageTaken"`
	TotalDamageDone               int `json:"totalDamageDone"`
	TotalDamageDoneToChampions    int `json:"totalDamageDoneToChampions"`
	TotalDamageTaken              int `json:"totalDamageTaken"`
	TrueDamageDone                int `json:"trueDamageDone"`
	TrueDamageDoneToChampions     int `json:"trueDamageDoneToChampions"`
	TrueDamageTaken               int `json:"trueDamageTaken"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (s *TimelineDamageStats) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, s) }

type TimelinePosition struct {
	X int `json:"x"`
	Y int `json:"y"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (p *TimelinePosition) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, p) }

type TimelineParticipant struct {
	ParticipantID int    `json:"participantId"`
	PUUID         string `json:"puuid"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (p *TimelineParticipant) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, p) }

// TimelineEvent is one timeline event. Every field except the
// timestamp and type is specific to some event types and absent from
// the rest.
type TimelineEvent struct {
	Timestamp               int64             `json:"timestamp"`
	Type                    string            `json:"type"`
	LevelUpType             string            `json:"levelUpType" riot:"optional"`
	ParticipantID           int               `json:"participantId" riot:"optional"`
	SkillSlot               int               `json:"skillSlot" riot:"optional"`
	RealTimestamp           int64             `json:"realTimestamp" riot:"optional"`
	ItemID                  int               `json:"itemId" riot:"optional"`
	AfterID                 int               `json:"afterId" riot:"optional"`
	BeforeID                int               `json:"beforeId" riot:"optional"`
	GoldGain                int               `json:"goldGain" riot:"optional"`
	CreatorID               int               `json:"creatorId" riot:"optional"`
	WardType                string            `json:"wardType" riot:"optional"`
	AssistingParticipantIDs []int             `json:"assistingParticipantIds" riot:"optional"`
	Bounty                  int               `json:"bounty" riot:"optional"`
	KillStreakLength        int               `json:"killStreakLength" riot:"optional"`
	KillerID                int               `json:"killerId" riot:"optional"`
	Position                *TimelinePosition `json:"position" riot:"optional"`
	VictimDamageDealt       []TimelineDamage  `json:"victimDamageDealt" riot:"optional"`
	VictimDamageReceived    []TimelineDamage  `json:"victimDamageReceived" riot:"optional"`
	VictimID                int               `json:"victimId" riot:"optional"`
	KillType                string            `json:"killType" riot:"optional"`
	Level                   int               `json:"level" riot:"optional"`
	MultiKillLength         int               `json:"multiKillLength" riot:"optional"`
	LaneType                string            `json:"laneType" riot:"optional"`
	TeamID                  int               `json:"teamId" riot:"optional"`
	KillerTeamID            int               `json:"killerTeamId" riot:"optional"`
	MonsterSubType          string            `json:"monsterSubType" riot:"optional"`
	MonsterType             string            `json:"monsterType" riot:"optional"`
	BuildingType            string            `json:"buildingType" riot:"optional"`
	TowerType               string            `json:"towerType" riot:"optional"`
	Name                    string            `json:"name" riot:"optional"`
	GameID                  int64             `json:"gameId" riot:"optional"`
	WinningTeam             int               `json:"winningTeam" riot:"optional"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (e *TimelineEvent) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, e) }

type TimelineDamage struct {
	Basic          bool   `json:"basic"`
	MagicDamage    int    `json:"magicDamage"`
	Name           string `json:"name"`
	ParticipantID  int    `json:"participantId"`
	PhysicalDamage int    `json:"physicalDamage"`
	SpellName      string `json:"spellName"`
	SpellSlot      int    `json:"spellSlot"`
	TrueDamage     int    `json:"trueDamage"`
	Type           string `json:"type"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (d *TimelineDamage) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, d) }

// MatchTimeline gets the minute-by-minute timeline of one match.
func (c *Client) MatchTimeline(ctx context.Context, matchID string) envelope.Result[*MatchTimeline] {
	return object[MatchTimeline](ctx, c, c.routing, "/lol/match/v5/matches/"+matchID+"/timeline")
}
