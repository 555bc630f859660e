package ports

import "hpkgmeta/internal/types"

// DescriptorPort reads a .DependencyInfo descriptor file into its raw
// document shape.
type DescriptorPort interface {
	Load(path string) (types.DependencyInfo, error)
}
