package expedition

import (
	"context"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/expedition-rewards/internal/catalog"
	"github.com/KirkDiggler/expedition-rewards/internal/dice"
	"github.com/KirkDiggler/expedition-rewards/internal/domain/loot"
	"github.com/KirkDiggler/expedition-rewards/internal/domain/monster"
	"github.com/KirkDiggler/expedition-rewards/internal/domain/shared"
	"github.com/KirkDiggler/expedition-rewards/internal/domain/synergy"
	"github.com/KirkDiggler/expedition-rewards/internal/domain/tier"
	rwerr "github.com/KirkDiggler/expedition-rewards/internal/errors"
	"github.com/KirkDiggler/expedition-rewards/internal/logger"
	"github.com/KirkDiggler/expedition-rewards/internal/repositories/catalogs"
	"github.com/KirkDiggler/expedition-rewards/internal/uuid"
)

// DefaultBaseDrops is the drop count before mastery and synergy bonuses
const DefaultBaseDrops = 1

// MaxMastery is the highest mastery level a subzone can reach
const MaxMastery = 100

// maxBatchWorkers bounds the expeditions resolved at once
const maxBatchWorkers = 16

// Service resolves the rewards of completed expeditions
type Service interface {
	// ResolveExpedition runs synergies, tier scaling and loot for one expedition
	ResolveExpedition(ctx context.Context, input *ResolveInput) (*Result, error)

	// ResolveBatch resolves independent expeditions concurrently.
	// Results are returned in input order.
	ResolveBatch(ctx context.Context, inputs []*ResolveInput) ([]*Result, error)
}

// ResolveInput describes one completed expedition
type ResolveInput struct {
	ZoneID              string
	SubzoneID           string
	Monsters            []monster.Monster
	TeamPower           int
	BaseThreat          int // 0 uses the monsters' total base power
	Tier                int // 0 picks the recommended tier
	MasteryLevel        int
	BaseGold            int
	BaseXP              int
	BaseDrops           int // 0 uses DefaultBaseDrops
	DiscoveredSynergies []string
}

// Result is the resolved reward of one expedition
type Result struct {
	ID                 string                     `json:"id"`
	ZoneID             string                     `json:"zone_id"`
	SubzoneID          string                     `json:"subzone_id"`
	Tier               int                        `json:"tier"`
	MaxAccessibleTier  int                        `json:"max_accessible_tier"`
	EffectiveTeamPower int                        `json:"effective_team_power"`
	ScaledThreat       int                        `json:"scaled_threat"`
	Efficiency         float64                    `json:"efficiency"`
	Gold               int                        `json:"gold"`
	XP                 int                        `json:"xp"`
	DropCount          float64                    `json:"drop_count"`
	Drops              []loot.Drop                `json:"drops"`
	Synergies          *synergy.CalculationResult `json:"synergies"`
	NewlyDiscovered    []string                   `json:"newly_discovered"`
	PowerGap           tier.PowerGap              `json:"power_gap"`
}

type service struct {
	catalogs      catalogs.Repository
	rollers       dice.Factory
	uuidGenerator uuid.Generator
	engine        *synergy.Engine
	logger        *slog.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Catalogs       catalogs.Repository // Required
	RollerFactory  dice.Factory        // Optional - entropy-seeded rollers if nil
	UUIDGenerator  uuid.Generator      // Optional
	Logger         *slog.Logger        // Optional - discards logs if nil
	SynergySoftCap float64             // Optional - defaults to synergy.DefaultSoftCap
}

// NewService creates a new expedition service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Catalogs == nil {
		panic("catalog repository is required")
	}

	svc := &service{
		catalogs:      cfg.Catalogs,
		rollers:       cfg.RollerFactory,
		uuidGenerator: cfg.UUIDGenerator,
		engine:        synergy.NewEngine(&synergy.EngineConfig{SoftCap: cfg.SynergySoftCap}),
		logger:        cfg.Logger,
	}

	if svc.rollers == nil {
		svc.rollers = dice.NewRandomFactory()
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.logger == nil {
		svc.logger = logger.Discard()
	}

	return svc
}

// ResolveExpedition resolves one expedition against the stored catalog
func (s *service) ResolveExpedition(ctx context.Context, input *ResolveInput) (*Result, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	cat, err := s.catalogs.Get(ctx)
	if err != nil {
		return nil, rwerr.Wrap(err, "failed to load catalog")
	}

	return s.resolve(cat, input, s.rollers.New())
}

// ResolveBatch loads the catalog once and fans the expeditions out. Rollers
// are handed out in input order so a seeded factory replays the same batch.
func (s *service) ResolveBatch(ctx context.Context, inputs []*ResolveInput) ([]*Result, error) {
	for i, input := range inputs {
		if err := validateInput(input); err != nil {
			return nil, rwerr.Wrap(err, "expedition %d", i).WithMeta("index", i)
		}
	}

	results := make([]*Result, len(inputs))
	if len(inputs) == 0 {
		return results, nil
	}

	cat, err := s.catalogs.Get(ctx)
	if err != nil {
		return nil, rwerr.Wrap(err, "failed to load catalog")
	}

	rollers := make([]dice.Roller, len(inputs))
	for i := range inputs {
		rollers[i] = s.rollers.New()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxBatchWorkers)
	for i, input := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := s.resolve(cat, input, rollers[i])
			if err != nil {
				return rwerr.Wrap(err, "expedition %d", i).WithMeta("index", i)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info("expedition batch resolved", "count", len(results))
	return results, nil
}

func (s *service) resolve(cat *catalog.Catalog, input *ResolveInput, roller dice.Roller) (*Result, error) {
	tiers := cat.Tiers
	if tiers == nil {
		tiers = tier.MustCatalog(nil)
	}

	synergies := s.engine.Evaluate(input.Monsters, cat.Synergies)
	effectivePower := shared.RoundInt(float64(input.TeamPower) * (1 + synergies.TotalPowerBonus/100))

	maxTier := tiers.MaxAccessibleTier(effectivePower)
	chosen := input.Tier
	if chosen == 0 {
		chosen = tiers.RecommendedTier(effectivePower)
	} else {
		if _, ok := tiers.Tier(chosen); !ok {
			return nil, rwerr.InvalidArgument("tier %d does not exist", chosen).
				WithMeta("tier", chosen)
		}
		if chosen > maxTier {
			return nil, rwerr.InvalidArgument("tier %d needs more team power than %d", chosen, effectivePower).
				WithMeta("tier", chosen).
				WithMeta("max_accessible_tier", maxTier)
		}
	}

	baseThreat := input.BaseThreat
	if baseThreat == 0 {
		baseThreat = monster.Party(input.Monsters).TotalBasePower()
	}
	efficiency := tiers.TierEfficiency(effectivePower, baseThreat, chosen)

	rewardFactor := efficiency * (1 + synergies.TotalLootBonus/100)
	gold := tiers.ScaleGold(shared.RoundInt(float64(input.BaseGold)*rewardFactor), chosen)
	xp := tiers.ScaleXP(shared.RoundInt(float64(input.BaseXP)*rewardFactor), chosen)

	baseDrops := input.BaseDrops
	if baseDrops == 0 {
		baseDrops = DefaultBaseDrops
	}
	dropCount := float64(baseDrops) * loot.MasteryDropRateBonus(input.MasteryLevel) * (1 + synergies.TotalDropRateBonus/100)
	rolls := rollCount(roller, dropCount)

	resolver := loot.NewResolver(&loot.ResolverConfig{Tables: cat, Tiers: tiers})
	drops := make([]loot.Drop, 0, rolls)
	for range rolls {
		if drop := resolver.Resolve(roller, input.ZoneID, input.SubzoneID, chosen, input.MasteryLevel); drop != nil {
			drops = append(drops, *drop)
		}
	}

	result := &Result{
		ID:                 s.uuidGenerator.New(),
		ZoneID:             input.ZoneID,
		SubzoneID:          input.SubzoneID,
		Tier:               chosen,
		MaxAccessibleTier:  maxTier,
		EffectiveTeamPower: effectivePower,
		ScaledThreat:       tiers.ScaleEnemyPower(baseThreat, chosen),
		Efficiency:         efficiency,
		Gold:               gold,
		XP:                 xp,
		DropCount:          dropCount,
		Drops:              drops,
		Synergies:          synergies,
		NewlyDiscovered:    synergy.NewlyDiscovered(synergies, input.DiscoveredSynergies),
		PowerGap:           tiers.PowerGapToNextTier(effectivePower),
	}

	s.logger.Debug("expedition resolved",
		"expedition_id", result.ID,
		"zone_id", input.ZoneID,
		"subzone_id", input.SubzoneID,
		"tier", chosen,
		"efficiency", efficiency,
		"active_synergies", len(synergies.ActiveSynergies),
		"capped", synergies.WasCapped,
		"drops", len(drops),
	)

	return result, nil
}

// rollCount keeps the whole part of an expected drop count and rolls once
// for the fractional remainder
func rollCount(roller dice.Roller, expected float64) int {
	whole := math.Floor(expected)
	n := int(whole)
	if dice.Chance(roller, expected-whole) {
		n++
	}
	return n
}

func validateInput(input *ResolveInput) error {
	if input == nil {
		return rwerr.InvalidArgument("input is required")
	}
	if input.ZoneID == "" {
		return rwerr.InvalidArgument("zone ID is required")
	}
	if input.SubzoneID == "" {
		return rwerr.InvalidArgument("subzone ID is required")
	}
	if input.MasteryLevel < 0 || input.MasteryLevel > MaxMastery {
		return rwerr.InvalidArgument("mastery level must be between 0 and %d", MaxMastery).
			WithMeta("mastery_level", input.MasteryLevel)
	}
	if input.TeamPower < 0 {
		return rwerr.InvalidArgument("team power cannot be negative")
	}
	if input.BaseThreat < 0 || input.BaseGold < 0 || input.BaseXP < 0 || input.BaseDrops < 0 {
		return rwerr.InvalidArgument("base threat and rewards cannot be negative")
	}
	if input.Tier < 0 {
		return rwerr.InvalidArgument("tier cannot be negative")
	}

	seen := make(map[string]struct{}, len(input.Monsters))
	for _, m := range input.Monsters {
		if m.ID == "" {
			return rwerr.InvalidArgument("monster ID is required")
		}
		if _, dup := seen[m.ID]; dup {
			return rwerr.InvalidArgument("monster %s appears twice", m.ID).WithMeta("monster_id", m.ID)
		}
		seen[m.ID] = struct{}{}
	}

	return nil
}
