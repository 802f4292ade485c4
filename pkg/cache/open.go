package cache

import (
	"context"
	"fmt"
	"net/url"
)

// Open selects a backend. An empty url opens a [FileCache] in dir; a
// redis:// or rediss:// url opens a [RedisCache].
func Open(ctx context.Context, rawURL, dir string) (Cache, error) {
	if rawURL == "" {
		return openFile(dir)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedURL, err)
	}
	switch u.Scheme {
	case "redis", "rediss":
		c, err := NewRedisCache(ctx, RedisConfig{URL: rawURL})
		if err != nil {
			return nil, err
		}
		return c, nil
	case "file":
		return openFile(u.Path)
	}
	return nil, fmt.Errorf("%w: scheme %q", ErrUnsupportedURL, u.Scheme)
}

func openFile(dir string) (Cache, error) {
	c, err := NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return c, nil
}
