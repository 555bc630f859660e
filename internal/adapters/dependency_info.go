package adapters

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"hpkgmeta/internal/ports"
	"hpkgmeta/internal/types"
)

// DependencyInfoAdapter reads .DependencyInfo descriptor files: UTF-8
// JSON documents declaring the same metadata an archive carries, without
// needing the external inspection command.
type DependencyInfoAdapter struct{}

func NewDependencyInfoAdapter() DependencyInfoAdapter {
	return DependencyInfoAdapter{}
}

func (a DependencyInfoAdapter) Load(path string) (types.DependencyInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.DependencyInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("dependency info file not found").
			WithCause(err)
	}

	// Distinguish absent keys from empty arrays: the four list fields
	// are required even when empty.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return types.DependencyInfo{}, schemaError(path, err)
	}
	for _, key := range []string{
		"name", "version", "architecture",
		"provides", "requires", "buildRequires", "buildPrerequires",
	} {
		if _, ok := raw[key]; !ok {
			return types.DependencyInfo{}, schemaError(path, fmt.Errorf("missing key %q", key))
		}
	}

	var info types.DependencyInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return types.DependencyInfo{}, schemaError(path, err)
	}
	if info.Name == "" || info.Version == "" || info.Architecture == "" {
		return types.DependencyInfo{}, schemaError(path, fmt.Errorf("empty mandatory field"))
	}
	return info, nil
}

func schemaError(path string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("malformed dependency info %q", path)).
		WithCause(cause)
}

var _ ports.DescriptorPort = DependencyInfoAdapter{}
