package search

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeClock drives a Cache's notion of time from a test.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func countingBuild(calls *int) func(string) (Index, error) {
	return func(path string) (Index, error) {
		*calls++
		return Index{{Path: path + "/a.md", Name: "a"}}, nil
	}
}

func TestCacheReusesWithinTTL(t *testing.T) {
	calls := 0
	clock := &fakeClock{t: time.Now()}
	c := NewCache(time.Minute, countingBuild(&calls))
	c.now = clock.now

	if _, err := c.GetOrBuild("/vault"); err != nil {
		t.Fatalf("GetOrBuild: %v", err)
	}
	clock.advance(30 * time.Second)
	if _, err := c.GetOrBuild("/vault"); err != nil {
		t.Fatalf("GetOrBuild: %v", err)
	}

	if calls != 1 {
		t.Errorf("build called %d times, want 1", calls)
	}
}

func TestCacheExpires(t *testing.T) {
	calls := 0
	clock := &fakeClock{t: time.Now()}
	c := NewCache(time.Minute, countingBuild(&calls))
	c.now = clock.now

	if _, err := c.GetOrBuild("/vault"); err != nil {
		t.Fatal(err)
	}
	clock.advance(time.Minute)
	if _, err := c.GetOrBuild("/vault"); err != nil {
		t.Fatal(err)
	}

	if calls != 2 {
		t.Errorf("build called %d times, want 2 after expiry", calls)
	}
}

func TestCacheKeyedByVaultPath(t *testing.T) {
	calls := 0
	c := NewCache(time.Minute, countingBuild(&calls))

	if _, err := c.GetOrBuild("/vault-a"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.GetOrBuild("/vault-b"); err != nil {
		t.Fatal(err)
	}
	// The single slot now holds /vault-b; /vault-a rebuilds.
	if _, err := c.GetOrBuild("/vault-a"); err != nil {
		t.Fatal(err)
	}

	if calls != 3 {
		t.Errorf("build called %d times, want 3", calls)
	}
}

func TestCacheInvalidate(t *testing.T) {
	calls := 0
	c := NewCache(time.Minute, countingBuild(&calls))

	if _, err := c.GetOrBuild("/vault"); err != nil {
		t.Fatal(err)
	}
	c.Invalidate()
	if got := c.Get("/vault"); got != nil {
		t.Error("Get after Invalidate should miss")
	}
	if _, err := c.GetOrBuild("/vault"); err != nil {
		t.Fatal(err)
	}

	if calls != 2 {
		t.Errorf("build called %d times, want 2", calls)
	}
}

func TestCacheBuildError(t *testing.T) {
	boom := errors.New("walk failed")
	c := NewCache(time.Minute, func(string) (Index, error) { return nil, boom })

	if _, err := c.GetOrBuild("/vault"); !errors.Is(err, boom) {
		t.Errorf("err = %v, want build error", err)
	}
	if got := c.Get("/vault"); got != nil {
		t.Error("failed build must not populate the cache")
	}
}

func TestCacheDefaults(t *testing.T) {
	c := NewCache(0, nil)
	if c.ttl != DefaultTTL {
		t.Errorf("ttl = %v, want %v", c.ttl, DefaultTTL)
	}
	if c.build == nil {
		t.Error("build func should default to Build")
	}
}

func TestCacheSharesConcurrentBuilds(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	release := make(chan struct{})
	c := NewCache(time.Minute, func(path string) (Index, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		<-release
		return Index{}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.GetOrBuild("/vault"); err != nil {
				t.Errorf("GetOrBuild: %v", err)
			}
		}()
	}

	// Let the goroutines pile up on the in-flight build, then release it.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Errorf("build called %d times, want 1 shared build", calls)
	}
}
