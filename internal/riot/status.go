package riot

import (
	"context"
	"encoding/json"

	"league-client/internal/envelope"
	"league-client/internal/schema"
)

// ShardStatus is the legacy lol-status-v3 shard record.
type ShardStatus struct {
	Name      string          `json:"name"`
	Slug      string          `json:"slug"`
	Locales   []string        `json:"locales"`
	Hostname  string          `json:"hostname"`
	RegionTag string          `json:"region_tag"`
	Services  []StatusService `json:"services"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (s *ShardStatus) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, s) }

type StatusService struct {
	Name      string           `json:"name"`
	Slug      string           `json:"slug"`
	Status    string           `json:"status"`
	Incidents []StatusIncident `json:"incidents"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (s *StatusService) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, s) }

type StatusIncident struct {
	ID        int             `json:"id"`
	Active    bool            `json:"active"`
	CreatedAt string          `json:"created_at"`
	Updates   []StatusMessage `json:"updates"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (i *StatusIncident) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, i) }

type StatusMessage struct {
	ID           string              `json:"id"`
	Author       string              `json:"author"`
	Heading      string              `json:"heading"`
	Content      string              `json:"content"`
	Severity     string              `json:"severity"`
	CreatedAt    string              `json:"created_at"`
	UpdatedAt    string              `json:"updated_at"`
	Translations []StatusTranslation `json:"translations"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (m *StatusMessage) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, m) }

type StatusTranslation struct {
	Locale  string `json:"locale"`
	Heading string `json:"heading"`
	Content string `json:"content"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (t *StatusTranslation) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, t) }

// PlatformData is the lol-status-v4 platform record.
type PlatformData struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Locales      []string `json:"locales"`
	Maintenances []Status `json:"maintenances"`
	Incidents    []Status `json:"incidents"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (p *PlatformData) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, p) }

type Status struct {
	ID                int             `json:"id"`
	MaintenanceStatus string          `json:"maintenance_status"`
	IncidentSeverity  string          `json:"incident_severity"`
	Titles            []StatusContent `json:"titles"`
	Updates           []StatusUpdate  `json:"updates"`
	CreatedAt         string          `json:"created_at"`
	ArchiveAt         string          `json:"archive_at"`
	UpdatedAt         string          `json:"updated_at"`
	Platforms         []string        `json:"platforms"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (s *Status) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, s) }

type StatusContent struct {
	Locale  string `json:"locale"`
	Content string `json:"content"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (c *StatusContent) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, c) }

type StatusUpdate struct {
	ID               int             `json:"id"`
	Author           string          `json:"author"`
	Publish          bool            `json:"publish"`
	PublishLocations []string        `json:"publish_locations"`
	Translations     []StatusContent `json:"translations"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (u *StatusUpdate) UnmarshalJSON(data []byte) error { return schema.Unmarshal(data, u) }

// PlatformDataV3 gets the legacy v3 shard status.
func (c *Client) PlatformDataV3(ctx context.Context) envelope.Result[*ShardStatus] {
	return object[ShardStatus](ctx, c, c.region, "/lol/status/v3/shard-data")
}

// PlatformData gets the v4 platform status.
func (c *Client) PlatformData(ctx context.Context) envelope.Result[*PlatformData] {
	return object[PlatformData](ctx, c, c.region, "/lol/status/v4/platform-data")
}
