package catalogs

import (
	"context"
	"encoding/json"
	"errors"
	"slices"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/expedition-rewards/internal/catalog"
	rwerr "github.com/KirkDiggler/expedition-rewards/internal/errors"
)

const (
	synergiesKey      = "catalog:synergies"
	tiersKey          = "catalog:tiers"
	lootTableIndexKey = "catalog:loot_tables"
	lootTablePrefix   = "loot_table:"

	// maxParallelLoads bounds the loot table reads in flight
	maxParallelLoads = 8
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}

	return &redisRepository{
		client: cfg.Client,
	}
}

func lootTableKey(member string) string {
	return lootTablePrefix + member
}

// Save replaces every catalog key in one pipeline. Loot tables that are no
// longer in the catalog are removed.
func (r *redisRepository) Save(ctx context.Context, c *catalog.Catalog) error {
	if c == nil {
		return rwerr.InvalidArgument("catalog cannot be nil")
	}

	file := c.File()

	synergies, err := json.Marshal(file.Synergies)
	if err != nil {
		return rwerr.WrapWithCode(err, rwerr.CodeInternal, "failed to marshal synergies")
	}
	tiers, err := json.Marshal(file.Tiers)
	if err != nil {
		return rwerr.WrapWithCode(err, rwerr.CodeInternal, "failed to marshal tiers")
	}

	existing, err := r.client.SMembers(ctx, lootTableIndexKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return rwerr.WrapWithCode(err, rwerr.CodeUnavailable, "failed to list loot tables")
	}

	members := make([]any, 0, len(file.LootTables))
	keep := make(map[string]struct{}, len(file.LootTables))
	tables := make(map[string]string, len(file.LootTables))
	for i := range file.LootTables {
		member := catalog.Key(file.LootTables[i].ZoneID, file.LootTables[i].SubzoneID)
		data, err := json.Marshal(file.LootTables[i])
		if err != nil {
			return rwerr.WrapWithCode(err, rwerr.CodeInternal, "failed to marshal loot table").
				WithMeta("loot_table", member)
		}
		members = append(members, member)
		keep[member] = struct{}{}
		tables[member] = string(data)
	}

	var stale []string
	for _, member := range existing {
		if _, ok := keep[member]; !ok {
			stale = append(stale, lootTableKey(member))
		}
	}
	slices.Sort(stale)

	pipe := r.client.Pipeline()
	pipe.Set(ctx, synergiesKey, string(synergies), 0)
	pipe.Set(ctx, tiersKey, string(tiers), 0)
	if len(stale) > 0 {
		pipe.Del(ctx, stale...)
	}
	pipe.Del(ctx, lootTableIndexKey)
	for _, member := range members {
		key := member.(string)
		pipe.Set(ctx, lootTableKey(key), tables[key], 0)
	}
	if len(members) > 0 {
		pipe.SAdd(ctx, lootTableIndexKey, members...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return rwerr.WrapWithCode(err, rwerr.CodeUnavailable, "failed to save catalog in Redis")
	}

	return nil
}

// Get loads the catalog. Loot tables are read concurrently.
func (r *redisRepository) Get(ctx context.Context) (*catalog.Catalog, error) {
	var file catalog.File

	if err := r.getJSON(ctx, synergiesKey, &file.Synergies); err != nil {
		return nil, err
	}
	if err := r.getJSON(ctx, tiersKey, &file.Tiers); err != nil {
		return nil, err
	}

	members, err := r.client.SMembers(ctx, lootTableIndexKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, rwerr.WrapWithCode(err, rwerr.CodeUnavailable, "failed to list loot tables")
	}
	slices.Sort(members)

	file.LootTables = make([]catalog.LootTableRecord, len(members))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)
	for i, member := range members {
		g.Go(func() error {
			return r.getJSON(gctx, lootTableKey(member), &file.LootTables[i])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c, err := catalog.FromFile(&file)
	if err != nil {
		return nil, rwerr.Wrap(err, "stored catalog is invalid")
	}
	return c, nil
}

func (r *redisRepository) getJSON(ctx context.Context, key string, target any) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return rwerr.NotFound("catalog key %s not found", key).WithMeta("key", key)
		}
		return rwerr.WrapWithCode(err, rwerr.CodeUnavailable, "failed to get catalog from Redis").
			WithMeta("key", key)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return rwerr.WrapWithCode(err, rwerr.CodeInternal, "failed to unmarshal catalog data").
			WithMeta("key", key)
	}
	return nil
}
