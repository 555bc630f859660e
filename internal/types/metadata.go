package types

import "strings"

// Resolvable is one capability a package provides: a name with an
// optional exact version and an optional compatibility floor. Either
// version field, both, or neither may be set.
type Resolvable struct {
	Name              string `json:"name"`
	Version           string `json:"version,omitempty"`
	CompatibleVersion string `json:"compatibleVersion,omitempty"`
}

// String renders the canonical provides form:
// "name[ = version][ (compatible >= floor)]".
func (r Resolvable) String() string {
	var sb strings.Builder
	sb.WriteString(r.Name)
	if r.Version != "" {
		sb.WriteString(" = ")
		sb.WriteString(r.Version)
	}
	if r.CompatibleVersion != "" {
		sb.WriteString(" (compatible >= ")
		sb.WriteString(r.CompatibleVersion)
		sb.WriteString(")")
	}
	return sb.String()
}

// ResolvableExpression is one capability a package requires: a name with
// an optional comparison against a version, and a flag marking that the
// requirement applies to the package's base variant.
type ResolvableExpression struct {
	Name    string       `json:"name"`
	Op      ConstraintOp `json:"op,omitempty"`
	Version string       `json:"version,omitempty"`
	Base    bool         `json:"base,omitempty"`
}

// String renders the canonical requires form: "name[ op version][ base]".
func (e ResolvableExpression) String() string {
	var sb strings.Builder
	sb.WriteString(e.Name)
	if e.Op != ConstraintOpNone {
		sb.WriteString(" ")
		sb.WriteString(string(e.Op))
		sb.WriteString(" ")
		sb.WriteString(e.Version)
	}
	if e.Base {
		sb.WriteString(" base")
	}
	return sb.String()
}

// PackageMetadata is the immutable snapshot of one package's declared
// metadata. Provides/requires keep source order. ModifiedTime is set
// only for archive sources and drives cache validation.
type PackageMetadata struct {
	Path             string                 `json:"path"`
	Name             string                 `json:"name"`
	Version          string                 `json:"version"`
	Architecture     string                 `json:"architecture"`
	InstallPath      string                 `json:"installPath,omitempty"`
	Provides         []Resolvable           `json:"provides,omitempty"`
	Requires         []ResolvableExpression `json:"requires,omitempty"`
	BuildRequires    []ResolvableExpression `json:"buildRequires,omitempty"`
	BuildPrerequires []ResolvableExpression `json:"buildPrerequires,omitempty"`
	ModifiedTime     int64                  `json:"modifiedTime,omitempty"`
}

// VersionedName returns "name-version".
func (m PackageMetadata) VersionedName() string {
	return m.Name + "-" + m.Version
}

// Clone returns an independent copy so cached metadata is never shared
// mutable state between the cache and its callers.
func (m PackageMetadata) Clone() PackageMetadata {
	out := m
	out.Provides = append([]Resolvable(nil), m.Provides...)
	out.Requires = append([]ResolvableExpression(nil), m.Requires...)
	out.BuildRequires = append([]ResolvableExpression(nil), m.BuildRequires...)
	out.BuildPrerequires = append([]ResolvableExpression(nil), m.BuildPrerequires...)
	return out
}

// CacheEntry is one record of the on-disk metadata cache. It is valid
// while the file at Path exists and its modification time does not
// exceed ModifiedTime.
type CacheEntry struct {
	Path         string          `json:"path"`
	ModifiedTime int64           `json:"modifiedTime"`
	Metadata     PackageMetadata `json:"metadata"`
}

// DependencyInfo is the raw shape of a .DependencyInfo descriptor file
// before its provides/requires strings are parsed.
type DependencyInfo struct {
	Name             string   `json:"name"`
	Version          string   `json:"version"`
	Architecture     string   `json:"architecture"`
	Provides         []string `json:"provides"`
	Requires         []string `json:"requires"`
	BuildRequires    []string `json:"buildRequires"`
	BuildPrerequires []string `json:"buildPrerequires"`
}
