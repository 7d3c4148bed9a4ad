// Package ddragon holds the static Data Dragon lookup tables: game
// version, queue descriptions, the champion index and the language
// list. The catalog is constructed explicitly and loaded on demand by
// the host application instead of being fetched as an import side
// effect; Refresh re-fetches everything for a new game version.
package ddragon

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/agext/levenshtein"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"

	"league-client/internal/constants"
	"league-client/internal/envelope"
	"league-client/internal/riot"
)

const (
	defaultCDNBase    = "https://ddragon.leagueoflegends.com"
	defaultStaticBase = "https://static.developer.riotgames.com"
)

// langShortToLong maps common two-letter codes to Data Dragon locale
// names before falling back to fuzzy matching.
var langShortToLong = map[string]string{
	"it": "it_IT",
	"en": "en_US",
}

type Catalog struct {
	cdnBase    string
	staticBase string
	client     *fasthttp.Client
	log        zerolog.Logger

	mu        sync.RWMutex
	version   string
	queues    map[int]string
	champions map[string]*riot.ShortChampion
	idToName  map[int]string
	languages []string
}

func New(logger zerolog.Logger) *Catalog {
	return &Catalog{
		cdnBase:    defaultCDNBase,
		staticBase: defaultStaticBase,
		client: &fasthttp.Client{
			MaxConnsPerHost:     constants.HTTPMaxConnsPerHost,
			ReadTimeout:         constants.HTTPReadTimeout,
			WriteTimeout:        constants.HTTPWriteTimeout,
			MaxIdleConnDuration: constants.HTTPMaxIdleConnDuration,
		},
		log: logger,
	}
}

// Load fetches every lookup table. The version must land first because
// the champion index URL embeds it; the remaining tables load
// concurrently.
func (c *Catalog) Load(ctx context.Context) error {
	var versions []string
	if err := c.getJSON(ctx, c.cdnBase+"/api/versions.json", &versions); err != nil {
		return fmt.Errorf("ddragon: loading versions: %w", err)
	}
	if len(versions) == 0 {
		return fmt.Errorf("ddragon: empty version list")
	}
	version := versions[0]

	var (
		queues    map[int]string
		champions map[string]*riot.ShortChampion
		languages []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		queues, err = c.loadQueues(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		champions, err = c.loadChampions(gctx, version)
		return err
	})
	g.Go(func() error {
		return c.getJSON(gctx, c.cdnBase+"/cdn/languages.json", &languages)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	idToName := make(map[int]string, len(champions))
	for name, champ := range champions {
		idToName[champ.IntID] = name
	}

	c.mu.Lock()
	c.version = version
	c.queues = queues
	c.champions = champions
	c.idToName = idToName
	c.languages = languages
	c.mu.Unlock()

	c.log.Info().
		Str("version", version).
		Int("champions", len(champions)).
		Int("queues", len(queues)).
		Int("languages", len(languages)).
		Msg("data dragon catalog loaded")
	return nil
}

// Refresh re-fetches all tables, picking up a new game version.
func (c *Catalog) Refresh(ctx context.Context) error {
	return c.Load(ctx)
}

func (c *Catalog) loadQueues(ctx context.Context) (map[int]string, error) {
	var entries []struct {
		QueueID     int     `json:"queueId"`
		Description *string `json:"description"`
	}
	if err := c.getJSON(ctx, c.staticBase+"/docs/lol/queues.json", &entries); err != nil {
		return nil, fmt.Errorf("ddragon: loading queues: %w", err)
	}
	queues := make(map[int]string, len(entries))
	for _, e := range entries {
		if e.Description == nil {
			queues[e.QueueID] = "Custom"
			continue
		}
		queues[e.QueueID] = strings.TrimSpace(strings.ReplaceAll(*e.Description, "games", ""))
	}
	return queues, nil
}

func (c *Catalog) loadChampions(ctx context.Context, version string) (map[string]*riot.ShortChampion, error) {
	var index struct {
		Data map[string]*riot.ShortChampion `json:"data"`
	}
	url := fmt.Sprintf("%s/cdn/%s/data/en_US/champion.json", c.cdnBase, version)
	if err := c.getJSON(ctx, url, &index); err != nil {
		return nil, fmt.Errorf("ddragon: loading champions: %w", err)
	}
	return index.Data, nil
}

// Version returns the loaded game version. It is threaded through URL
// helpers but never validated against payload versions.
func (c *Catalog) Version() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// QueueDescription maps a queue config ID to its human description,
// falling back to the queue-0 text for unknown IDs.
func (c *Catalog) QueueDescription(queueID int) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if desc, ok := c.queues[queueID]; ok {
		return desc
	}
	return c.queues[0]
}

func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.languages
}

// ChampionByName returns the short champion record for a correctly
// spelled champion name.
func (c *Catalog) ChampionByName(name string) *riot.ShortChampion {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.champions[name]
}

// ChampionByID returns the short champion record for an integer
// champion ID.
func (c *Catalog) ChampionByID(id int) *riot.ShortChampion {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.champions[c.idToName[id]]
}

// SimilarChampion resolves a possibly misspelled champion name to the
// closest indexed champion.
func (c *Catalog) SimilarChampion(name string) *riot.ShortChampion {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var best string
	bestScore := -1.0
	for candidate := range c.champions {
		score := levenshtein.Match(strings.ToLower(name), strings.ToLower(candidate), nil)
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}
	return c.champions[best]
}

// NormalizeLanguage maps a language hint ("en", "italian", ...) to a
// Data Dragon locale name.
func (c *Catalog) NormalizeLanguage(language string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, known := range c.languages {
		if known == language {
			return language
		}
	}
	if long, ok := langShortToLong[strings.ToLower(language)]; ok {
		return long
	}
	var best string
	bestScore := -1.0
	for _, candidate := range c.languages {
		score := levenshtein.Match(strings.ToLower(language), strings.ToLower(candidate), nil)
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}
	return best
}

// ProfileIconURL builds the CDN URL of a profile icon.
func (c *Catalog) ProfileIconURL(iconID int) string {
	return fmt.Sprintf("%s/cdn/%s/img/profileicon/%d.png", c.cdnBase, c.Version(), iconID)
}

// ChampionIconURL builds the CDN URL of a champion image. kind is the
// image flavor, usually "splash" or "loading".
func (c *Catalog) ChampionIconURL(championID, skin int, kind string) string {
	c.mu.RLock()
	name := c.idToName[championID]
	c.mu.RUnlock()
	return fmt.Sprintf("%s/cdn/img/champion/%s/%s_%d.jpg", c.cdnBase, kind, name, skin)
}

// FullChampion fetches the complete champion record (spells, skins,
// lore) in the given language. The language hint is normalized first.
func (c *Catalog) FullChampion(ctx context.Context, name, language string) envelope.Result[*riot.Champion] {
	lang := c.NormalizeLanguage(language)
	url := fmt.Sprintf("%s/cdn/%s/data/%s/champion/%s.json", c.cdnBase, c.Version(), lang, name)

	status, body, err := c.get(ctx, url)
	if err != nil {
		return envelope.Failure[*riot.Champion](err)
	}
	wrapped := envelope.Object[championWrapper](status, body)
	if !wrapped.Ok() {
		return envelope.Failure[*riot.Champion](wrapped.Err())
	}
	raw, ok := wrapped.Value().Data[name]
	if !ok {
		return envelope.Failure[*riot.Champion](envelope.ErrNoResult)
	}
	champ := new(riot.Champion)
	if err := json.Unmarshal(raw, champ); err != nil {
		return envelope.Failure[*riot.Champion](err)
	}
	return envelope.Success(champ)
}

type championWrapper struct {
	Data map[string]json.RawMessage `json:"data"`
}

func (c *Catalog) getJSON(ctx context.Context, url string, v any) error {
	status, body, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	if status != fasthttp.StatusOK {
		return fmt.Errorf("unexpected status %d for %s", status, url)
	}
	return json.Unmarshal(body, v)
}

func (c *Catalog) get(ctx context.Context, url string) (int, []byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(constants.DataDragonTimeout)
	}
	if err := c.client.DoDeadline(req, resp, deadline); err != nil {
		return 0, nil, err
	}

	c.log.Debug().Str("url", url).Int("status", resp.StatusCode()).Msg("data dragon request")

	body := append([]byte(nil), resp.Body()...)
	return resp.StatusCode(), body, nil
}

var Module = fx.Provide(New)
