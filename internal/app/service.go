package app

import (
	"hpkgmeta/internal/adapters"
	"hpkgmeta/internal/ports"
)

type Service struct {
	Inspector  ports.InspectorPort
	Descriptor ports.DescriptorPort
	Cache      ports.MetadataCachePort
}

// NewService wires the real adapters. The metadata cache is loaded once
// here and shared by every extraction for the lifetime of the run.
func NewService(cfg Config) (Service, error) {
	cache, err := adapters.NewMetadataCache(cfg.RepositoryPath)
	if err != nil {
		return Service{}, err
	}
	return Service{
		Inspector:  adapters.NewPackageToolAdapter(cfg.PackageCommand),
		Descriptor: adapters.NewDependencyInfoAdapter(),
		Cache:      cache,
	}, nil
}
