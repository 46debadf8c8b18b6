package service

import (
	"context"
	"strings"
	"sync"
	"time"
	"valorant-analytics/internal/api"
	"valorant-analytics/internal/config"
	"valorant-analytics/internal/constants"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type ReferenceSource interface {
	GetAgents(ctx context.Context) ([]api.Agent, error)
	GetMaps(ctx context.Context) ([]api.Map, error)
}

// ReferenceCache resolves agent and map ids to display names. Names are
// fetched from the reference API and kept for the configured TTL. When
// fetching is disabled or fails the built-in tables are used.
type ReferenceCache struct {
	source  ReferenceSource
	ttl     time.Duration
	enabled bool
	logger  zerolog.Logger
	now     func() time.Time

	refreshMu sync.Mutex
	mu        sync.RWMutex
	agents    map[string]string
	maps      map[string]string
	expiresAt time.Time
}

func NewReferenceCache(source ReferenceSource, cfg *config.Config, logger zerolog.Logger) *ReferenceCache {
	return &ReferenceCache{
		source:  source,
		ttl:     cfg.ReferenceCacheTTL,
		enabled: cfg.ReferenceFetch,
		logger:  logger,
		now:     time.Now,
		agents:  staticAgents(),
		maps:    staticMaps(),
	}
}

func (c *ReferenceCache) AgentName(ctx context.Context, characterID string) string {
	c.ensureFresh(ctx)

	c.mu.RLock()
	defer c.mu.RUnlock()
	if name, ok := c.agents[strings.ToLower(characterID)]; ok {
		return name
	}
	return characterID
}

// MapName accepts either the engine path found in match dumps or a map uuid.
func (c *ReferenceCache) MapName(ctx context.Context, mapID string) string {
	c.ensureFresh(ctx)

	c.mu.RLock()
	defer c.mu.RUnlock()
	if name, ok := c.maps[strings.ToLower(mapID)]; ok {
		return name
	}
	return mapID
}

func (c *ReferenceCache) ensureFresh(ctx context.Context) {
	if !c.enabled {
		return
	}

	c.mu.RLock()
	fresh := c.now().Before(c.expiresAt)
	c.mu.RUnlock()
	if fresh {
		return
	}

	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	c.mu.RLock()
	fresh = c.now().Before(c.expiresAt)
	c.mu.RUnlock()
	if fresh {
		return
	}

	if err := c.Refresh(ctx); err != nil {
		c.logger.Warn().Err(err).Dur("retry_in", constants.ReferenceFetchTTL).Msg("failed to refresh reference data, using cached names")
		c.mu.Lock()
		c.expiresAt = c.now().Add(constants.ReferenceFetchTTL)
		c.mu.Unlock()
	}
}

// Refresh fetches agents and maps concurrently and swaps them in. Fetched
// names are layered over the built-in tables so ids missing upstream keep
// resolving.
func (c *ReferenceCache) Refresh(ctx context.Context) error {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	g, gCtx := errgroup.WithContext(apiCtx)
	var agents []api.Agent
	var maps []api.Map

	g.Go(func() error {
		var err error
		agents, err = c.source.GetAgents(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		maps, err = c.source.GetMaps(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}

	agentNames := staticAgents()
	for _, a := range agents {
		if a.UUID != "" && a.DisplayName != "" {
			agentNames[strings.ToLower(a.UUID)] = a.DisplayName
		}
	}

	mapNames := staticMaps()
	for _, m := range maps {
		if m.DisplayName == "" {
			continue
		}
		if m.UUID != "" {
			mapNames[strings.ToLower(m.UUID)] = m.DisplayName
		}
		if m.MapURL != "" {
			mapNames[strings.ToLower(m.MapURL)] = m.DisplayName
		}
	}

	c.mu.Lock()
	c.agents = agentNames
	c.maps = mapNames
	c.expiresAt = c.now().Add(c.ttl)
	c.mu.Unlock()

	c.logger.Info().Int("agents", len(agents)).Int("maps", len(maps)).Msg("reference data refreshed")
	return nil
}

var characterNameToID = map[string]string{
	"Gekko":     "e370fa57-4757-3604-3648-499e1f642d3f",
	"Fade":      "dade69b4-4f5a-8528-247b-219e5a1facd6",
	"Breach":    "5f8d3a7f-467b-97f3-062c-13acf203c006",
	"Deadlock":  "cc8b64c8-4b25-4ff9-6e7f-37b4da43d235",
	"Tejo":      "b444168c-4e35-8076-db47-ef9bf368f384",
	"Raze":      "f94c3b30-42be-e959-889c-5aa313dba261",
	"Chamber":   "22697a3d-45bf-8dd7-4fec-84a9e28c69d7",
	"KAY/O":     "601dbbe7-43ce-be57-2a40-4abd24953621",
	"Skye":      "6f2a04ca-43e0-be17-7f36-b3908627744d",
	"Cypher":    "117ed9e3-49f3-6512-3ccf-0cada7e3823b",
	"Sova":      "320b2a48-4d9b-a075-30f1-1f93a9b638fa",
	"Killjoy":   "1e58de9c-4950-5125-93e9-a0aee9f98746",
	"Harbor":    "95b78ed7-4637-86d9-7e41-71ba8c293152",
	"Vyse":      "efba5359-4016-a1e5-7626-b1ae76895940",
	"Viper":     "707eab51-4836-f488-046a-cda6bf494859",
	"Phoenix":   "eb93336a-449b-9c1b-0a54-a891f7921d69",
	"Veto":      "92eeef5d-43b5-1d4a-8d03-b3927a09034b",
	"Astra":     "41fb69c1-4189-7b37-f117-bcaf1e96f1bf",
	"Brimstone": "9f0d8ba9-4140-b941-57d3-a7ad57c6b417",
	"Iso":       "0e38b510-41a8-5780-5e8f-568b2a4f2d6c",
	"Clove":     "1dbf2edd-4729-0984-3115-daa5eed44993",
	"Neon":      "bb2a4828-46eb-8cd1-e765-15848195d751",
	"Yoru":      "7f94d92c-4234-0a36-9646-3a87eb8b5c89",
	"Waylay":    "df1cb487-4902-002e-5c17-d28e83e78588",
	"Sage":      "569fdd95-4d10-43ab-ca70-79becc718b46",
	"Reyna":     "a3bfb853-43b2-7238-a4f1-ad90e9e46bcc",
	"Omen":      "8e253930-4c05-31dd-1b6c-968525494517",
	"Jett":      "add6443a-41bd-e414-f6ad-e58d267f4e95",
}

// Map display name to uuid and engine path.
var mapNameToID = map[string][2]string{
	"Bind":           {"2c9d57ec-4431-9c5e-2939-8f9ef6dd5cba", "/Game/Maps/Duality/Duality"},
	"Ascent":         {"7eaecc1b-4337-bbf6-6ab9-04b8f06b3319", "/Game/Maps/Ascent/Ascent"},
	"Fracture":       {"b529448b-4d60-346e-e89e-00a4c527a405", "/Game/Maps/Canyon/Canyon"},
	"Breeze":         {"2fb9a4fd-47b8-4e7d-a969-74b4046ebd53", "/Game/Maps/Foxtrot/Foxtrot"},
	"District":       {"690b3ed0-4dff-945b-8223-6da834e30d24", "/Game/Maps/HURM/HURM_Alley/HURM_Alley"},
	"Kasbah":         {"8edabed9-466a-44c7-96ee-199b73104b00", "/Game/Maps/HURM/HURM_Bowl/HURM_Bowl"},
	"Drift":          {"56801fc8-4d09-1818-a989-49bf2e17bb5f", "/Game/Maps/HURM/HURM_Yard/HURM_Yard"},
	"Piazza":         {"de28aa9b-4cbe-1003-320e-6cb3ec309557", "/Game/Maps/HURM/HURM_Helix/HURM_Helix"},
	"Lotus":          {"2fe4ed3a-450a-948b-6d6b-e89a78e680a9", "/Game/Maps/Jam/Jam"},
	"Split":          {"d960549e-485c-e861-8d71-aa9d1aed12a2", "/Game/Maps/Bonsai/Bonsai"},
	"Abyss":          {"224b0a95-48b9-f703-1bd8-67aca101a61f", "/Game/Maps/Infinity/Infinity"},
	"Sunset":         {"92584fbe-486a-b1b2-9faa-39b0f486b498", "/Game/Maps/Juliett/Juliett"},
	"Basic Training": {"1f10dab3-4294-3827-fa35-c2aa00213cf3", "/Game/Maps/NPEV2/NPEV2"},
	"Pearl":          {"fd267378-4d1d-484f-ff52-77821ed10dc2", "/Game/Maps/Pitt/Pitt"},
	"Icebox":         {"e2ad5c54-4114-a870-9641-8ea21279579a", "/Game/Maps/Port/Port"},
	"The Range":      {"ee613ee9-28b7-4beb-9666-08db13bb2244", "/Game/Maps/Poveglia/Range"},
	"Corrode":        {"1c18ab1f-420d-0d8b-71d0-77ad3c439115", "/Game/Maps/Rook/Rook"},
	"Haven":          {"2bee0dc9-4ffe-519b-1cbd-7fbe763a6047", "/Game/Maps/Triad/Triad"},
}

func staticAgents() map[string]string {
	names := make(map[string]string, len(characterNameToID))
	for name, id := range characterNameToID {
		names[id] = name
	}
	return names
}

func staticMaps() map[string]string {
	names := make(map[string]string, 2*len(mapNameToID))
	for name, ids := range mapNameToID {
		names[ids[0]] = name
		names[strings.ToLower(ids[1])] = name
	}
	return names
}
