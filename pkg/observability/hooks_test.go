package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Engine hooks
	e := NoopEngineHooks{}
	e.OnRunStart(ctx, "run-1", 100, "hybrid")
	e.OnRoundComplete(ctx, "run-1", 1, 2, 8)
	e.OnFillComplete(ctx, "run-1", 12)
	e.OnRunComplete(ctx, "run-1", 3, 20, time.Second)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "result")
	c.OnCacheMiss(ctx, "result")
	c.OnCacheSet(ctx, "result", 1024)

	// Raster hooks
	r := NoopRasterHooks{}
	r.OnLoad(ctx, "GTiff", "in.tif", 10, 10, time.Millisecond, nil)
	r.OnWrite(ctx, "GTiff", "out.tif", 2048, time.Millisecond, errors.New("disk full"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Engine().(NoopEngineHooks); !ok {
		t.Error("Engine() should return NoopEngineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Raster().(NoopRasterHooks); !ok {
		t.Error("Raster() should return NoopRasterHooks by default")
	}

	customEngine := &testEngineHooks{}
	SetEngineHooks(customEngine)
	if Engine() != customEngine {
		t.Error("SetEngineHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customRaster := &testRasterHooks{}
	SetRasterHooks(customRaster)
	if Raster() != customRaster {
		t.Error("SetRasterHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Engine().(NoopEngineHooks); !ok {
		t.Error("Reset() should restore NoopEngineHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testEngineHooks{}
	SetEngineHooks(custom)

	// Setting nil should be ignored
	SetEngineHooks(nil)

	if Engine() != custom {
		t.Error("SetEngineHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testEngineHooks struct{ NoopEngineHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testRasterHooks struct{ NoopRasterHooks }
