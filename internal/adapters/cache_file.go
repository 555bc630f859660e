package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"hpkgmeta/internal/ports"
	"hpkgmeta/internal/types"
)

const cacheFileName = "hpkgInfoCache"

// MetadataCache keeps extracted archive metadata between runs. Entries
// live in a single append-only file of JSON records under the repository
// directory; a record is valid while its archive still exists and has
// not been modified since caching. The cache is single-writer per
// process run and is constructed once in app.NewService rather than
// living behind a package-level singleton.
type MetadataCache struct {
	path    string
	entries map[string]types.CacheEntry
}

// NewMetadataCache loads the cache file under repositoryPath, dropping
// stale entries. A missing file yields an empty cache; a corrupt
// trailing record is treated as end-of-stream, keeping the records read
// before it.
func NewMetadataCache(repositoryPath string) (*MetadataCache, error) {
	cache := &MetadataCache{
		path:    filepath.Join(repositoryPath, cacheFileName),
		entries: map[string]types.CacheEntry{},
	}
	if err := cache.load(); err != nil {
		return nil, err
	}
	return cache, nil
}

func (c *MetadataCache) load() error {
	file, err := os.Open(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to open metadata cache").
			WithCause(err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	pruned := 0
	for {
		var entry types.CacheEntry
		if err := decoder.Decode(&entry); err != nil {
			// io.EOF ends the stream; a truncated or corrupt trailing
			// record ends it the same way.
			break
		}
		if !entryValid(entry) {
			pruned++
			continue
		}
		c.entries[entry.Path] = entry
	}

	log.Debug().
		Str("cache", c.path).
		Int("entries", len(c.entries)).
		Int("pruned", pruned).
		Msg("metadata cache loaded")

	if pruned > 0 {
		return c.rewrite()
	}
	return nil
}

// Get returns an independent copy of the cached metadata for path.
func (c *MetadataCache) Get(path string) (types.PackageMetadata, bool) {
	entry, ok := c.entries[path]
	if !ok {
		return types.PackageMetadata{}, false
	}
	return entry.Metadata.Clone(), true
}

// Put stores the entry in memory and appends it to the cache file
// without rewriting existing content.
func (c *MetadataCache) Put(entry types.CacheEntry) error {
	c.entries[entry.Path] = entry

	file, err := os.OpenFile(c.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to open metadata cache for append").
			WithCause(err)
	}
	defer file.Close()
	if err := json.NewEncoder(file).Encode(entry); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to append metadata cache entry").
			WithCause(err)
	}
	return nil
}

// Entries returns the retained entries ordered by path.
func (c *MetadataCache) Entries() []types.CacheEntry {
	out := make([]types.CacheEntry, 0, len(c.entries))
	for _, entry := range c.entries {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})
	return out
}

// Prune revalidates every retained entry and rewrites the file when any
// entry was dropped. Returns the number of dropped entries.
func (c *MetadataCache) Prune() (int, error) {
	pruned := 0
	for path, entry := range c.entries {
		if entryValid(entry) {
			continue
		}
		delete(c.entries, path)
		pruned++
	}
	if pruned == 0 {
		return 0, nil
	}
	return pruned, c.rewrite()
}

// rewrite replaces the cache file with exactly the retained entries,
// writing to a temporary file first so a failed write never clobbers
// the old content.
func (c *MetadataCache) rewrite() error {
	temp, err := os.CreateTemp(filepath.Dir(c.path), cacheFileName+".*")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create metadata cache temp file").
			WithCause(err)
	}
	encoder := json.NewEncoder(temp)
	for _, entry := range c.Entries() {
		if err := encoder.Encode(entry); err != nil {
			temp.Close()
			os.Remove(temp.Name())
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to rewrite metadata cache").
				WithCause(err)
		}
	}
	if err := temp.Close(); err != nil {
		os.Remove(temp.Name())
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to close metadata cache temp file").
			WithCause(err)
	}
	if err := os.Rename(temp.Name(), c.path); err != nil {
		os.Remove(temp.Name())
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to replace metadata cache").
			WithCause(err)
	}
	return nil
}

func entryValid(entry types.CacheEntry) bool {
	info, err := os.Stat(entry.Path)
	if err != nil {
		return false
	}
	return info.ModTime().UnixNano() <= entry.ModifiedTime
}

var _ ports.MetadataCachePort = (*MetadataCache)(nil)
