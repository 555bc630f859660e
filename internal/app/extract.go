package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"hpkgmeta/internal/core"
	"hpkgmeta/internal/types"
)

// Extract produces the metadata snapshot for one package source.
// Archives and manifests go through the external inspection command;
// descriptors are parsed directly. Archive results are cached keyed by
// path and reused while the file's modification time is unchanged.
func (s Service) Extract(ctx context.Context, req ExtractRequest) (types.PackageMetadata, error) {
	assert.NotEmpty(ctx, req.Path, "package path must be set")
	path := strings.TrimSpace(req.Path)
	if path == "" {
		return types.PackageMetadata{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package path is required")
	}

	switch types.SourceKindForPath(path) {
	case types.SourceKindArchive:
		return s.extractFromListing(path, req.Silent, true)
	case types.SourceKindManifest:
		return s.extractFromListing(path, req.Silent, false)
	case types.SourceKindDescriptor:
		return s.extractFromDescriptor(path)
	default:
		return types.PackageMetadata{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("don't know how to extract package metadata from %q", path))
	}
}

func (s Service) extractFromListing(path string, silent bool, cacheable bool) (types.PackageMetadata, error) {
	if cacheable {
		if metadata, ok := s.Cache.Get(path); ok {
			log.Debug().Str("path", path).Msg("metadata cache hit")
			return metadata, nil
		}
	}

	listing, err := s.Inspector.Inspect(path, silent)
	if err != nil {
		return types.PackageMetadata{}, err
	}
	metadata, err := core.ParseAttributeListing(path, listing)
	if err != nil {
		return types.PackageMetadata{}, err
	}

	if cacheable {
		info, err := os.Stat(path)
		if err != nil {
			return types.PackageMetadata{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("failed to stat package %q", path)).
				WithCause(err)
		}
		metadata.ModifiedTime = info.ModTime().UnixNano()
		entry := types.CacheEntry{
			Path:         path,
			ModifiedTime: metadata.ModifiedTime,
			Metadata:     metadata.Clone(),
		}
		if err := s.Cache.Put(entry); err != nil {
			return types.PackageMetadata{}, err
		}
	}
	return metadata, nil
}

func (s Service) extractFromDescriptor(path string) (types.PackageMetadata, error) {
	info, err := s.Descriptor.Load(path)
	if err != nil {
		return types.PackageMetadata{}, err
	}

	metadata := types.PackageMetadata{
		Path:         path,
		Name:         info.Name,
		Version:      info.Version,
		Architecture: info.Architecture,
	}
	for _, provides := range info.Provides {
		metadata.Provides = append(metadata.Provides, core.ParseResolvable(provides))
	}
	for _, requires := range info.Requires {
		metadata.Requires = append(metadata.Requires, core.ParseExpression(requires, false))
	}
	for _, requires := range info.BuildRequires {
		metadata.BuildRequires = append(metadata.BuildRequires, core.ParseExpression(requires, false))
	}
	for _, requires := range info.BuildPrerequires {
		metadata.BuildPrerequires = append(metadata.BuildPrerequires, core.ParseExpression(requires, false))
	}
	return metadata, nil
}
