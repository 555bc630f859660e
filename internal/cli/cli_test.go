package cli

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, name := range []string{"extract", "cache"} {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestExtractCommandFlags(t *testing.T) {
	cmd := newExtractCommand()
	for _, name := range []string{"silent", "format"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

func TestCacheCommandHasSubcommands(t *testing.T) {
	cache := newCacheCommand()
	names := make([]string, 0, len(cache.Commands()))
	for _, cmd := range cache.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "prune")
}

// ---------- Exit code tests ----------

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errbuilder.New().WithCode(errbuilder.CodeInvalidArgument).WithMsg("boom"), 2},
		{errbuilder.New().WithCode(errbuilder.CodeNotFound).WithMsg("boom"), 3},
		{errbuilder.New().WithCode(errbuilder.CodeInternal).WithMsg("boom"), 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, exitCodeForError(tt.err))
	}
}
