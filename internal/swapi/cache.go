package swapi

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// CachedClient keeps recently fetched pages keyed by their request variables
// and coalesces identical in-flight requests.
type CachedClient struct {
	next   FilmFetcher
	pages  *lru.Cache[string, FilmsConnection]
	group  singleflight.Group
	logger zerolog.Logger
}

// NewCachedClient wraps next with an LRU cache holding up to size pages.
func NewCachedClient(next FilmFetcher, size int, logger zerolog.Logger) (*CachedClient, error) {
	if size <= 0 {
		return nil, fmt.Errorf("cache size must be positive, got %d", size)
	}
	pages, err := lru.New[string, FilmsConnection](size)
	if err != nil {
		return nil, fmt.Errorf("create page cache: %w", err)
	}
	return &CachedClient{
		next:   next,
		pages:  pages,
		logger: logger.With().Str("component", "cache").Logger(),
	}, nil
}

// GetAllFilms returns the cached page for vars, fetching it on a miss.
// Failed fetches are not cached.
func (c *CachedClient) GetAllFilms(ctx context.Context, vars Variables) (FilmsConnection, error) {
	key := vars.Key()
	if conn, ok := c.pages.Get(key); ok {
		c.logger.Debug().Str("key", key).Msg("cache hit")
		return conn, nil
	}

	v, err, shared := c.group.Do(key, func() (any, error) {
		// A flight for key may have finished between the miss above and Do.
		if conn, ok := c.pages.Get(key); ok {
			return conn, nil
		}
		conn, err := c.next.GetAllFilms(ctx, vars)
		if err != nil {
			return FilmsConnection{}, err
		}
		c.pages.Add(key, conn)
		return conn, nil
	})
	if shared {
		c.logger.Debug().Str("key", key).Msg("joined in-flight request")
	}
	if err != nil {
		return FilmsConnection{}, err
	}
	return v.(FilmsConnection), nil
}

// Len reports how many pages are cached.
func (c *CachedClient) Len() int {
	return c.pages.Len()
}
