package ports

import "hpkgmeta/internal/types"

// MetadataCachePort stores extracted archive metadata keyed by path,
// validated against file modification times.
type MetadataCachePort interface {
	Get(path string) (types.PackageMetadata, bool)
	Put(entry types.CacheEntry) error
	Entries() []types.CacheEntry
	Prune() (int, error)
}
