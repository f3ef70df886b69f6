package linedirectory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/masar-transit/masar/pkg/database"
	"github.com/masar-transit/masar/pkg/redis_client"
	"github.com/masar-transit/masar/pkg/transit"
)

// Directory serves the per-language line listing used by the surrounding
// app features (line pickers, search). Results are cached in Redis per
// language code, so the lines collection is only hit on cache expiry.
type Directory struct {
	cache *cache.Cache[string]
}

const cacheExpiration = 90 * time.Minute

func NewDirectory() *Directory {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(cacheExpiration))

	return &Directory{
		cache: cache.New[string](redisStore),
	}
}

// LocalizedLine is the caller-facing shape: one language's strings only.
type LocalizedLine struct {
	CanonicalKey string              `json:"canonical_key"`
	Kind         transit.SegmentKind `json:"kind"`
	Name         string              `json:"name"`
	Terminals    []string            `json:"terminals"`
}

// Get returns the line listing localized for lang.
func (d *Directory) Get(ctx context.Context, lang string) ([]LocalizedLine, error) {
	cacheKey := fmt.Sprintf("linedirectory/%s", lang)

	if cached, err := d.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var lines []LocalizedLine
		if err := json.Unmarshal([]byte(cached), &lines); err == nil {
			return lines, nil
		}
	}

	lines, err := d.loadFromDatabase(ctx, lang)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(lines); err == nil {
		if err := d.cache.Set(ctx, cacheKey, string(encoded)); err != nil {
			log.Debug().Err(err).Str("lang", lang).Msg("Failed to cache line directory")
		}
	}

	return lines, nil
}

func (d *Directory) loadFromDatabase(ctx context.Context, lang string) ([]LocalizedLine, error) {
	linesCollection := database.GetCollection("lines")

	cursor, err := linesCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var lines []LocalizedLine
	for cursor.Next(ctx) {
		var line transit.Line
		if err := cursor.Decode(&line); err != nil {
			log.Error().Err(err).Msg("Failed to decode line record")
			continue
		}

		name := line.Names[lang]
		if name == "" {
			name = line.Names["en"]
		}

		terminals := line.Terminals[lang]
		if len(terminals) == 0 {
			terminals = line.Terminals["en"]
		}

		lines = append(lines, LocalizedLine{
			CanonicalKey: line.CanonicalKey,
			Kind:         line.Kind,
			Name:         name,
			Terminals:    terminals,
		})
	}

	return lines, cursor.Err()
}
