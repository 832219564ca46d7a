package swapi

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingFetcher records every call and answers from a fixed function.
type countingFetcher struct {
	mu    sync.Mutex
	calls []string
	fn    func(Variables) (FilmsConnection, error)
}

func (f *countingFetcher) GetAllFilms(_ context.Context, vars Variables) (FilmsConnection, error) {
	f.mu.Lock()
	f.calls = append(f.calls, vars.Key())
	f.mu.Unlock()
	return f.fn(vars)
}

func (f *countingFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func page(titles ...string) FilmsConnection {
	conn := FilmsConnection{TotalCount: len(titles)}
	for _, t := range titles {
		conn.Films = append(conn.Films, Film{Title: t})
	}
	return conn
}

func TestCachedClient_HitSkipsFetch(t *testing.T) {
	t.Parallel()

	next := &countingFetcher{fn: func(Variables) (FilmsConnection, error) {
		return page("A New Hope"), nil
	}}
	c, err := NewCachedClient(next, 4, zerolog.Nop())
	require.NoError(t, err)

	vars := Variables{First: intPtr(3)}
	first, err := c.GetAllFilms(context.Background(), vars)
	require.NoError(t, err)
	second, err := c.GetAllFilms(context.Background(), Variables{First: intPtr(3)})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, next.callCount())
	assert.Equal(t, 1, c.Len())
}

func TestCachedClient_DistinctVariablesAreDistinctKeys(t *testing.T) {
	t.Parallel()

	next := &countingFetcher{fn: func(v Variables) (FilmsConnection, error) {
		return page(v.Key()), nil
	}}
	c, err := NewCachedClient(next, 4, zerolog.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	forward, err := c.GetAllFilms(ctx, Variables{First: intPtr(3), After: strPtr("x")})
	require.NoError(t, err)
	backward, err := c.GetAllFilms(ctx, Variables{Last: intPtr(3), Before: strPtr("x")})
	require.NoError(t, err)

	assert.NotEqual(t, forward.Films[0].Title, backward.Films[0].Title)
	assert.Equal(t, 2, next.callCount())
}

func TestCachedClient_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	fail := true
	next := &countingFetcher{fn: func(Variables) (FilmsConnection, error) {
		if fail {
			return FilmsConnection{}, errors.New("network down")
		}
		return page("Return of the Jedi"), nil
	}}
	c, err := NewCachedClient(next, 4, zerolog.Nop())
	require.NoError(t, err)

	vars := Variables{First: intPtr(3)}
	_, err = c.GetAllFilms(context.Background(), vars)
	require.EqualError(t, err, "network down")
	assert.Equal(t, 0, c.Len())

	fail = false
	conn, err := c.GetAllFilms(context.Background(), vars)
	require.NoError(t, err)
	assert.Equal(t, "Return of the Jedi", conn.Films[0].Title)
	assert.Equal(t, 2, next.callCount())
}

func TestCachedClient_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	next := &countingFetcher{fn: func(v Variables) (FilmsConnection, error) {
		return page(v.Key()), nil
	}}
	c, err := NewCachedClient(next, 1, zerolog.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	_, _ = c.GetAllFilms(ctx, Variables{First: intPtr(1)})
	_, _ = c.GetAllFilms(ctx, Variables{First: intPtr(2)})
	_, _ = c.GetAllFilms(ctx, Variables{First: intPtr(1)})

	assert.Equal(t, 3, next.callCount())
	assert.Equal(t, 1, c.Len())
}

func TestNewCachedClient_RejectsNonPositiveSize(t *testing.T) {
	t.Parallel()

	_, err := NewCachedClient(&countingFetcher{}, 0, zerolog.Nop())
	require.Error(t, err)
}

// blockingFetcher holds every upstream call until release is closed.
type blockingFetcher struct {
	countingFetcher
	release chan struct{}
}

func (f *blockingFetcher) GetAllFilms(ctx context.Context, vars Variables) (FilmsConnection, error) {
	<-f.release
	return f.countingFetcher.GetAllFilms(ctx, vars)
}

// fetchConcurrently calls c.GetAllFilms from n goroutines with the same
// variables, releasing the upstream fetch once all of them have started.
func fetchConcurrently(c *CachedClient, f *blockingFetcher, n int) ([]FilmsConnection, []error) {
	results := make([]FilmsConnection, n)
	errs := make([]error, n)

	var started, done sync.WaitGroup
	started.Add(n)
	done.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer done.Done()
			started.Done()
			results[i], errs[i] = c.GetAllFilms(context.Background(), Variables{First: intPtr(3)})
		}(i)
	}
	started.Wait()
	// Let the goroutines reach the in-flight call before it returns.
	time.Sleep(20 * time.Millisecond)
	close(f.release)
	done.Wait()
	return results, errs
}

func TestCachedClient_CoalescesConcurrentRequests(t *testing.T) {
	t.Parallel()

	const callers = 8
	next := &blockingFetcher{
		countingFetcher: countingFetcher{fn: func(Variables) (FilmsConnection, error) {
			return page("A New Hope", "The Empire Strikes Back"), nil
		}},
		release: make(chan struct{}),
	}
	c, err := NewCachedClient(next, 4, zerolog.Nop())
	require.NoError(t, err)

	results, errs := fetchConcurrently(c, next, callers)

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0], results[i])
	}
	assert.Equal(t, "A New Hope", results[0].Films[0].Title)
	assert.Equal(t, 1, next.callCount())
	assert.Equal(t, 1, c.Len())
}

func TestCachedClient_CoalescedFailureReachesEveryCaller(t *testing.T) {
	t.Parallel()

	const callers = 8
	next := &blockingFetcher{
		countingFetcher: countingFetcher{fn: func(Variables) (FilmsConnection, error) {
			return FilmsConnection{}, errors.New("network down")
		}},
		release: make(chan struct{}),
	}
	c, err := NewCachedClient(next, 4, zerolog.Nop())
	require.NoError(t, err)

	_, errs := fetchConcurrently(c, next, callers)

	for i := 0; i < callers; i++ {
		assert.EqualError(t, errs[i], "network down")
	}
	assert.GreaterOrEqual(t, next.callCount(), 1)
	assert.LessOrEqual(t, next.callCount(), callers)
	assert.Equal(t, 0, c.Len())
}
