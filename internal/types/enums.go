package types

import "strings"

type SourceKind string

const (
	SourceKindUnknown    SourceKind = ""
	SourceKindArchive    SourceKind = "archive"
	SourceKindManifest   SourceKind = "manifest"
	SourceKindDescriptor SourceKind = "descriptor"
)

// SourceKindForPath classifies a metadata source by its file extension.
// Only archives are binary packages; manifests and descriptors are text
// files carrying the same attribute fields.
func SourceKindForPath(path string) SourceKind {
	switch {
	case strings.HasSuffix(path, ".hpkg"):
		return SourceKindArchive
	case strings.HasSuffix(path, ".PackageInfo"):
		return SourceKindManifest
	case strings.HasSuffix(path, ".DependencyInfo"):
		return SourceKindDescriptor
	default:
		return SourceKindUnknown
	}
}

type ConstraintOp string

const (
	ConstraintOpNone ConstraintOp = ""
	ConstraintOpEq   ConstraintOp = "="
	ConstraintOpEq2  ConstraintOp = "=="
	ConstraintOpNe   ConstraintOp = "!="
	ConstraintOpGte  ConstraintOp = ">="
	ConstraintOpLte  ConstraintOp = "<="
	ConstraintOpGt   ConstraintOp = ">"
	ConstraintOpLt   ConstraintOp = "<"
)
