// Package cache is an optional layer over the source adapters: raw provider
// output is stored per (provider, query, language) with a TTL so repeated
// queries inside the window skip the network. Events are never cached; only
// the raw articles the pipeline would have fetched anyway.
package cache

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"reputation-desk/internal/article"
)

// Store is the cache contract the adapter wrapper needs.
type Store interface {
	Get(ctx context.Context, provider, query, language string) ([]article.Article, bool)
	Put(ctx context.Context, provider, query, language string, articles []article.Article)
}

type fetchDocument struct {
	Provider  string            `bson:"provider"`
	Query     string            `bson:"query"`
	Language  string            `bson:"language"`
	Articles  []article.Article `bson:"articles"`
	FetchedAt time.Time         `bson:"fetchedAt"`
}

type Mongo struct {
	col    *mongo.Collection
	ttl    time.Duration
	logger *log.Logger
}

func NewMongo(db *mongo.Database, ttl time.Duration, logger *log.Logger) (*Mongo, error) {
	if logger == nil {
		logger = log.Default()
	}

	c := &Mongo{
		col:    db.Collection("fetches"),
		ttl:    ttl,
		logger: logger,
	}
	if err := c.ensureIndexes(context.Background()); err != nil {
		return nil, err
	}
	return c, nil
}

// ensureIndexes makes the (provider, query, language) key unique and lets
// Mongo expire stale entries on its own via the TTL index.
func (c *Mongo) ensureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "provider", Value: 1},
				{Key: "query", Value: 1},
				{Key: "language", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "fetchedAt", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(int32(c.ttl.Seconds())),
		},
	}
	_, err := c.col.Indexes().CreateMany(ctx, indexes)

	if err != nil {
		c.logger.Printf("cache: failed to create indexes: %v", err)
	}
	return err
}

// Get returns the cached articles for a key, or false on miss or any lookup
// failure. A failing cache must read as a miss so the live fetch proceeds.
func (c *Mongo) Get(ctx context.Context, provider, query, language string) ([]article.Article, bool) {
	filter := bson.M{"provider": provider, "query": query, "language": language}

	var doc fetchDocument
	err := c.col.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false
	}
	if err != nil {
		c.logger.Printf("cache: lookup failed for %s/%q: %v", provider, query, err)
		return nil, false
	}

	// The TTL monitor only runs periodically; treat overdue entries as misses.
	if time.Since(doc.FetchedAt) > c.ttl {
		return nil, false
	}
	return doc.Articles, true
}

// Put upserts the fetch result for a key. Failures are logged and swallowed:
// caching is best-effort.
func (c *Mongo) Put(ctx context.Context, provider, query, language string, articles []article.Article) {
	filter := bson.M{"provider": provider, "query": query, "language": language}
	update := bson.M{"$set": fetchDocument{
		Provider:  provider,
		Query:     query,
		Language:  language,
		Articles:  articles,
		FetchedAt: time.Now().UTC(),
	}}

	_, err := c.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		c.logger.Printf("cache: store failed for %s/%q: %v", provider, query, err)
	}
}
