package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"hpkgmeta/internal/types"
)

const sampleListing = `package file attributes:
	name: libfoo
	version: 2.1.0-1
	architecture: x86_64
	install path: apps/libfoo
	provides: libfoo = 2.1.0
	provides: libfoo.so.2 = 2.1 (compatible >= 2.0)
	requires: haiku >= r1~beta4
	requires: libbar
`

func TestParseAttributeListing(t *testing.T) {
	metadata, err := ParseAttributeListing("/repo/libfoo-2.1.0-1-x86_64.hpkg", []byte(sampleListing))
	require.NoError(t, err)

	want := types.PackageMetadata{
		Path:         "/repo/libfoo-2.1.0-1-x86_64.hpkg",
		Name:         "libfoo",
		Version:      "2.1.0-1",
		Architecture: "x86_64",
		InstallPath:  "apps/libfoo",
		Provides: []types.Resolvable{
			{Name: "libfoo", Version: "2.1.0"},
			{Name: "libfoo.so.2", Version: "2.1", CompatibleVersion: "2.0"},
		},
		Requires: []types.ResolvableExpression{
			{Name: "haiku", Op: types.ConstraintOpGte, Version: "r1~beta4"},
			{Name: "libbar"},
		},
	}
	if diff := cmp.Diff(want, metadata); diff != "" {
		t.Fatalf("unexpected metadata (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("libfoo-2.1.0-1", metadata.VersionedName()); diff != "" {
		t.Fatalf("unexpected versioned name (-want +got):\n%s", diff)
	}
}

func TestParseAttributeListingMissingMandatoryField(t *testing.T) {
	listing := "\tname: libfoo\n\tarchitecture: x86_64\n"
	_, err := ParseAttributeListing("/repo/libfoo.hpkg", []byte(listing))
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	require.Contains(t, err.Error(), "version")
	require.Contains(t, err.Error(), "/repo/libfoo.hpkg")
}

func TestParseAttributeListingOptionalInstallPath(t *testing.T) {
	listing := "\tname: libfoo\n\tversion: 1.0\n\tarchitecture: any\n"
	metadata, err := ParseAttributeListing("/repo/libfoo.hpkg", []byte(listing))
	require.NoError(t, err)
	require.Empty(t, metadata.InstallPath)
	require.Empty(t, metadata.Provides)
	require.Empty(t, metadata.Requires)
}

// Archive listings never carry a base marker, so requires lines keep
// the flag off even when a value happens to end in " base".
func TestParseAttributeListingIgnoresBase(t *testing.T) {
	listing := "\tname: libfoo\n\tversion: 1.0\n\tarchitecture: any\n\trequires: haiku base\n"
	metadata, err := ParseAttributeListing("/repo/libfoo.hpkg", []byte(listing))
	require.NoError(t, err)
	require.Len(t, metadata.Requires, 1)
	require.False(t, metadata.Requires[0].Base)
}
