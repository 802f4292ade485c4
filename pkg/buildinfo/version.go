// Package buildinfo holds version data injected at link time:
//
//	go build -ldflags "-X github.com/SpatialFocus/RasterCostDistance/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/SpatialFocus/RasterCostDistance/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/SpatialFocus/RasterCostDistance/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Version also scopes result cache keys, so a new release never reuses
// distances computed by an older engine.
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
