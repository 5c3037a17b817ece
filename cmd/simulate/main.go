package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/expedition-rewards/internal/catalog"
	"github.com/KirkDiggler/expedition-rewards/internal/config"
	"github.com/KirkDiggler/expedition-rewards/internal/dice"
	"github.com/KirkDiggler/expedition-rewards/internal/logger"
	"github.com/KirkDiggler/expedition-rewards/internal/repositories/catalogs"
	"github.com/KirkDiggler/expedition-rewards/internal/services/expedition"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout))
}

// execute runs the simulation and returns the process exit code. Deferred
// cleanup runs before main exits.
func execute(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	zone := fs.String("zone", "verdant_wilds", "zone id")
	subzone := fs.String("subzone", "whispering_glade", "subzone id")
	party := fs.String("party", "beast:physical:forest:150,beast:nature:swamp:150,beast:lightning:mountain:150",
		"comma separated monsters as type:element:biome:power[:family]")
	teamPower := fs.Int("power", 1000, "team power")
	threat := fs.Int("threat", 0, "base threat (0 uses the party's total power)")
	requestedTier := fs.Int("tier", 0, "difficulty tier (0 picks the recommended tier)")
	mastery := fs.Int("mastery", 0, "zone mastery level 0-100")
	gold := fs.Int("gold", 100, "base gold")
	xp := fs.Int("xp", 50, "base xp")
	drops := fs.Int("drops", expedition.DefaultBaseDrops, "base drop count")
	runs := fs.Int("runs", 1, "number of expeditions to resolve")
	seedRedis := fs.Bool("seed-redis", false, "push the file catalog into redis before resolving")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}

	lg, closer := logger.New(cfg.Log)
	defer func() {
		if closeErr := closer.Close(); closeErr != nil {
			log.Printf("Failed to close log file: %v", closeErr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, lg, cfg, stdout, &runOptions{
		zone:      *zone,
		subzone:   *subzone,
		party:     *party,
		teamPower: *teamPower,
		threat:    *threat,
		tier:      *requestedTier,
		mastery:   *mastery,
		gold:      *gold,
		xp:        *xp,
		drops:     *drops,
		runs:      *runs,
		seedRedis: *seedRedis,
	}); err != nil {
		lg.Error("simulation failed", "error", err)
		return 1
	}

	return 0
}

type runOptions struct {
	zone      string
	subzone   string
	party     string
	teamPower int
	threat    int
	tier      int
	mastery   int
	gold      int
	xp        int
	drops     int
	runs      int
	seedRedis bool
}

func run(ctx context.Context, lg *slog.Logger, cfg *config.Config, stdout io.Writer, opts *runOptions) error {
	cat, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	for _, problem := range cat.Problems() {
		lg.Warn("catalog problem", "error", problem)
	}

	repo, cleanup, err := openRepository(ctx, lg, cfg.Redis.URL, cat, opts.seedRedis)
	if err != nil {
		return err
	}
	defer cleanup()

	rollers := dice.NewRandomFactory()
	if cfg.Rewards.RollSeed != 0 {
		lg.Info("using seeded rollers", "seed", cfg.Rewards.RollSeed)
		rollers = dice.NewSeededFactory(cfg.Rewards.RollSeed)
	}

	svc := expedition.NewService(&expedition.ServiceConfig{
		Catalogs:       repo,
		RollerFactory:  rollers,
		Logger:         lg,
		SynergySoftCap: cfg.Rewards.SynergySoftCap,
	})

	monsters, err := parseParty(opts.party)
	if err != nil {
		return fmt.Errorf("parse party: %w", err)
	}

	inputs := make([]*expedition.ResolveInput, 0, max(opts.runs, 1))
	for range max(opts.runs, 1) {
		inputs = append(inputs, &expedition.ResolveInput{
			ZoneID:       opts.zone,
			SubzoneID:    opts.subzone,
			Monsters:     monsters,
			TeamPower:    opts.teamPower,
			BaseThreat:   opts.threat,
			Tier:         opts.tier,
			MasteryLevel: opts.mastery,
			BaseGold:     opts.gold,
			BaseXP:       opts.xp,
			BaseDrops:    opts.drops,
		})
	}

	results, err := svc.ResolveBatch(ctx, inputs)
	if err != nil {
		return err
	}

	var out any = results
	if len(results) == 1 {
		out = results[0]
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Fprintln(stdout, string(data))

	return nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		log.Println("No CATALOG_PATH found, using embedded catalog")
		return catalog.Default()
	}

	log.Printf("Loading catalog from: %s", path)
	return catalog.Load(path)
}

// openRepository returns the redis repository when redisURL is reachable, otherwise an
// in-memory repository holding cat
func openRepository(ctx context.Context, lg *slog.Logger, redisURL string, cat *catalog.Catalog, seed bool) (catalogs.Repository, func(), error) {
	noop := func() {}

	if redisURL == "" {
		log.Println("No REDIS_URL found, using in-memory catalog")
		return seedInMemory(ctx, cat)
	}

	log.Printf("Connecting to Redis at: %s", redisURL)
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		lg.Warn("failed to parse redis url, falling back to in-memory catalog", "error", err)
		return seedInMemory(ctx, cat)
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if pingErr := client.Ping(pingCtx).Err(); pingErr != nil {
		_ = client.Close()
		lg.Warn("failed to connect to redis, falling back to in-memory catalog", "error", pingErr)
		return seedInMemory(ctx, cat)
	}
	log.Println("Successfully connected to Redis")

	cleanup := func() {
		if closeErr := client.Close(); closeErr != nil {
			log.Printf("Error closing Redis connection: %v", closeErr)
		}
	}

	repo := catalogs.NewRedisRepository(&catalogs.RedisRepoConfig{Client: client})
	if seed {
		if err := repo.Save(ctx, cat); err != nil {
			cleanup()
			return nil, noop, fmt.Errorf("seed redis catalog: %w", err)
		}
		lg.Info("seeded redis catalog", "synergies", len(cat.Synergies), "loot_tables", len(cat.LootTables))
	}

	return repo, cleanup, nil
}

func seedInMemory(ctx context.Context, cat *catalog.Catalog) (catalogs.Repository, func(), error) {
	repo := catalogs.NewInMemoryRepository()
	if err := repo.Save(ctx, cat); err != nil {
		return nil, func() {}, fmt.Errorf("store catalog: %w", err)
	}
	return repo, func() {}, nil
}
