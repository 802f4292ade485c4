package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var errFlaky = errors.New("flaky")

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || hit || data != nil {
		t.Errorf("Get = %q, %v, %v; want miss", data, hit, err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete: %v", err)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "nested", "cache"))
	if err != nil {
		t.Fatal(err)
	}

	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Fatal("empty cache reported a hit")
	}
	if err := c.Set(ctx, "a", []byte("alpha"), time.Hour); err != nil {
		t.Fatal(err)
	}
	data, hit, err := c.Get(ctx, "a")
	if err != nil || !hit || string(data) != "alpha" {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}

	if err := c.Set(ctx, "a", []byte("beta"), 0); err != nil {
		t.Fatal(err)
	}
	if data, _, _ := c.Get(ctx, "a"); string(data) != "beta" {
		t.Errorf("overwrite: got %q", data)
	}

	if err := c.Delete(ctx, "a"); err != nil {
		t.Fatal(err)
	}
	if err := c.Delete(ctx, "a"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("hit after Delete")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry reported a hit")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expired entry not removed")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := c.path("k")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry: hit=%v err=%v", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}
	n, err := c.Clear()
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("Clear removed %d, want 3", n)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("hit after Clear")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash is not deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("different inputs share a hash")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length = %d, want 64", len(h1))
	}
}

func TestHashGrid(t *testing.T) {
	cells := []int32{1, 0, 0, 0, 0, 1}
	h := HashGrid(3, 2, cells)
	if h != HashGrid(3, 2, []int32{1, 0, 0, 0, 0, 1}) {
		t.Error("HashGrid is not deterministic")
	}
	if h == HashGrid(2, 3, cells) {
		t.Error("transposed shape shares a hash")
	}
	if h == HashGrid(3, 2, []int32{1, 0, 0, 0, 0, 0}) {
		t.Error("different cells share a hash")
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()
	base := k.ResultKey("abc", ResultKeyOpts{Cap: 5, Connectivity: "n4"})

	if !strings.HasPrefix(base, "result:") {
		t.Errorf("ResultKey = %s, want result: prefix", base)
	}
	if base != k.ResultKey("abc", ResultKeyOpts{Cap: 5, Connectivity: "n4"}) {
		t.Error("ResultKey is not deterministic")
	}
	for _, other := range []string{
		k.ResultKey("abd", ResultKeyOpts{Cap: 5, Connectivity: "n4"}),
		k.ResultKey("abc", ResultKeyOpts{Cap: 6, Connectivity: "n4"}),
		k.ResultKey("abc", ResultKeyOpts{Cap: 5, Connectivity: "n8"}),
	} {
		if other == base {
			t.Errorf("key collision: %s", other)
		}
	}
}

func TestScopedKeyer(t *testing.T) {
	opts := ResultKeyOpts{Connectivity: "hybrid"}
	scoped := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
	want := "v1.2.0:" + NewDefaultKeyer().ResultKey("h", opts)
	if got := scoped.ResultKey("h", opts); got != want {
		t.Errorf("ResultKey = %s, want %s", got, want)
	}

	if got := NewScopedKeyer(nil, "p:").ResultKey("h", opts); !strings.HasPrefix(got, "p:result:") {
		t.Errorf("nil inner: %s", got)
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	c, err := Open(ctx, "", dir)
	if err != nil {
		t.Fatal(err)
	}
	if fc, ok := c.(*FileCache); !ok || fc.Dir() != dir {
		t.Errorf("Open(\"\") = %T", c)
	}

	c, err = Open(ctx, "file://"+filepath.Join(dir, "other"), dir)
	if err != nil {
		t.Fatal(err)
	}
	if fc, ok := c.(*FileCache); !ok || fc.Dir() != filepath.Join(dir, "other") {
		t.Errorf("Open(file://) = %#v", c)
	}

	if _, err := Open(ctx, "memcached://localhost:11211", dir); !errors.Is(err, ErrUnsupportedURL) {
		t.Errorf("Open(memcached) err = %v", err)
	}
}

func TestRedisCache(t *testing.T) {
	url := os.Getenv("COSTDISTANCE_TEST_REDIS_URL")
	if url == "" {
		t.Skip("COSTDISTANCE_TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	c, err := NewRedisCache(ctx, RedisConfig{URL: url, Prefix: "costdistance-test:"})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit || string(data) != "v" {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}
	if n, err := c.Clear(ctx); err != nil || n < 1 {
		t.Errorf("Clear = %d, %v", n, err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("hit after Clear")
	}
}

func TestNewRedisCacheBadURL(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), RedisConfig{URL: "http://localhost"}); err == nil {
		t.Error("expected error for non-redis url")
	}
}

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}
	err := Retryable(errFlaky)
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}
	if !errors.Is(err, errFlaky) {
		t.Error("wrapped error should unwrap")
	}
	if err.Error() != errFlaky.Error() {
		t.Errorf("message not preserved: %s", err)
	}
	if IsRetryable(errFlaky) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	old := retryDelay
	retryDelay = time.Millisecond
	defer func() { retryDelay = old }()
	ctx := context.Background()

	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return errFlaky
	})
	if err != errFlaky || calls != 1 {
		t.Errorf("non-retryable: err=%v calls=%d", err, calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(errFlaky)
		}
		return nil
	})
	if err != nil || calls != 2 {
		t.Errorf("retry once: err=%v calls=%d", err, calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return Retryable(errFlaky)
	})
	if !IsRetryable(err) || calls != 3 {
		t.Errorf("exhausted: err=%v calls=%d", err, calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(errFlaky)
	})
	if err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
