package registry

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Snapshot is a read-only view of the whole registry, served to clients in
// one response with an ETag for conditional GETs. The registry is static,
// so the snapshot is computed once and reused.
type Snapshot struct {
	ETag       string             `json:"etag"`
	Tables     []Table            `json:"tables"`
	Exclusions []ExclusionRule    `json:"exclusions"`
	Packages   []ExclusionPackage `json:"packages"`
}

var (
	snapshotOnce sync.Once
	snapshot     *Snapshot
)

// GetSnapshot returns the registry snapshot, building it on first use.
func GetSnapshot() *Snapshot {
	snapshotOnce.Do(func() {
		s := &Snapshot{
			Tables:     Tables(),
			Exclusions: StandardExclusions(),
			Packages:   ExclusionPackages(),
		}
		blob, _ := json.Marshal(s)
		s.ETag = fmt.Sprintf(`W/"%016x"`, xxhash.Sum64(blob))
		snapshot = s
	})
	return snapshot
}
