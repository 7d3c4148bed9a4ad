package riot

import (
	"encoding/json"
	"strconv"

	"league-client/internal/schema"
)

// ShortChampion is the per-champion entry of the Data Dragon champion
// index. The full Champion record extends it.
type ShortChampion struct {
	Blurb   string          `json:"blurb"`
	ID      string          `json:"id"`
	Image   ChampionImage   `json:"image"`
	Info    ChampionRatings `json:"info"`
	Key     string          `json:"key"`
	Name    string          `json:"name"`
	Partype string          `json:"partype"`
	Stats   ChampionStats   `json:"stats"`
	Tags    []string        `json:"tags"`
	Title   string          `json:"title"`
	Version string          `json:"version"`

	// IntID is derived from Key, which the upstream serves as a string
	// despite representing an integer.
	IntID int `json:"-"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (c *ShortChampion) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, c) }

func (c *ShortChampion) Derive() {
	c.IntID, _ = strconv.Atoi(c.Key)
}

// Champion is the full Data Dragon champion record: every
// ShortChampion field plus lore, tips, skins, spells and passive.
type Champion struct {
	ShortChampion

	Skins       []ChampionSkin   `json:"skins"`
	Lore        string           `json:"lore"`
	AllyTips    []string         `json:"allytips"`
	EnemyTips   []string         `json:"enemytips"`
	Spells      []ChampionSpell  `json:"spells"`
	Passive     ChampionPassive  `json:"passive"`
	Recommended []map[string]any `json:"recommended"`
}

func (c *Champion) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, c) }

// ChampionImage locates an image inside a Data Dragon sprite sheet.
type ChampionImage struct {
	Full   string `json:"full"`
	Sprite string `json:"sprite"`
	Group  string `json:"group"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	W      int    `json:"w"`
	H      int    `json:"h"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (i *ChampionImage) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, i) }

type ChampionSkin struct {
	ID      string `json:"id"`
	Num     int    `json:"num"`
	Name    string `json:"name"`
	Chromas bool   `json:"chromas"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (s *ChampionSkin) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, s) }

// ChampionRatings is the schematic 0-10 difficulty chart.
type ChampionRatings struct {
	Attack     int `json:"attack"`
	Defense    int `json:"defense"`
	Magic      int `json:"magic"`
	Difficulty int `json:"difficulty"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (r *ChampionRatings) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, r) }

type ChampionStats struct {
	HP                   float64 `json:"hp"`
	HPPerLevel           float64 `json:"hpperlevel"`
	MP                   float64 `json:"mp"`
	MPPerLevel           float64 `json:"mpperlevel"`
	MoveSpeed            float64 `json:"movespeed"`
	Armor                float64 `json:"armor"`
	ArmorPerLevel        float64 `json:"armorperlevel"`
	SpellBlock           float64 `json:"spellblock"`
	SpellBlockPerLevel   float64 `json:"spellblockperlevel"`
	AttackRange          float64 `json:"attackrange"`
	HPRegen              float64 `json:"hpregen"`
	HPRegenPerLevel      float64 `json:"hpregenperlevel"`
	MPRegen              float64 `json:"mpregen"`
	MPRegenPerLevel      float64 `json:"mpregenperlevel"`
	Crit                 float64 `json:"crit"`
	CritPerLevel         float64 `json:"critperlevel"`
	AttackDamage         float64 `json:"attackdamage"`
	AttackDamagePerLevel float64 `json:"attackdamageperlevel"`
	AttackSpeedPerLevel  float64 `json:"attackspeedperlevel"`
	AttackSpeed          float64 `json:"attackspeed"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (s *ChampionStats) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, s) }

type ChampionSpell struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Tooltip      string        `json:"tooltip"`
	LevelTip     SpellTip      `json:"leveltip"`
	MaxRank      int           `json:"maxrank"`
	Cooldown     []float64     `json:"cooldown"`
	CooldownBurn string        `json:"cooldownBurn"`
	Cost         []int         `json:"cost"`
	CostBurn     string        `json:"costBurn"`
	DataValues   SpellData     `json:"datavalues"`
	Effect       []any         `json:"effect"`
	EffectBurn   []any         `json:"effectBurn"`
	Vars         []any         `json:"vars"`
	CostType     string        `json:"costType"`
	MaxAmmo      string        `json:"maxammo"`
	Range        []int         `json:"range"`
	RangeBurn    string        `json:"rangeBurn"`
	Image        ChampionImage `json:"image"`
	Resource     string        `json:"resource"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (s *ChampionSpell) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, s) }

type SpellTip struct {
	Label  []string `json:"label"`
	Effect []string `json:"effect"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (t *SpellTip) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, t) }

// SpellData has no stable upstream schema; everything it carries lands
// in Extensions.
type SpellData struct {
	Extensions map[string]json.RawMessage `json:"-"`
}

func (d *SpellData) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, d) }

type ChampionPassive struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Image       ChampionImage `json:"image"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (p *ChampionPassive) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, p) }
