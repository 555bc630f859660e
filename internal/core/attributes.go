package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"hpkgmeta/internal/types"
)

const (
	providesPrefix = "provides:"
	requiresPrefix = "requires:"
)

var (
	namePattern         = fieldPattern("name")
	versionPattern      = fieldPattern("version")
	architecturePattern = fieldPattern("architecture")
	installPathPattern  = fieldPattern("install path")
)

func fieldPattern(field string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^[ \t]*` + field + `:[ \t]*(\S+)`)
}

// ParseAttributeListing converts the text output of
// "<packageCommand> list -i <path>" into package metadata. The name,
// version, and architecture fields are mandatory; install path is
// optional. Every provides/requires line feeds the respective parser,
// preserving source order. Requires lines from listings never carry a
// base marker, so base detection is disabled for them.
func ParseAttributeListing(path string, listing []byte) (types.PackageMetadata, error) {
	text := string(listing)
	metadata := types.PackageMetadata{Path: path}

	var err error
	if metadata.Name, err = mandatoryField(text, namePattern, "name", path); err != nil {
		return types.PackageMetadata{}, err
	}
	if metadata.Version, err = mandatoryField(text, versionPattern, "version", path); err != nil {
		return types.PackageMetadata{}, err
	}
	if metadata.Architecture, err = mandatoryField(text, architecturePattern, "architecture", path); err != nil {
		return types.PackageMetadata{}, err
	}
	metadata.InstallPath = optionalField(text, installPathPattern)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, providesPrefix):
			value := strings.TrimSpace(line[len(providesPrefix):])
			metadata.Provides = append(metadata.Provides, ParseResolvable(value))
		case strings.HasPrefix(line, requiresPrefix):
			value := strings.TrimSpace(line[len(requiresPrefix):])
			metadata.Requires = append(metadata.Requires, ParseExpression(value, true))
		}
	}
	return metadata, nil
}

func mandatoryField(text string, pattern *regexp.Regexp, field string, path string) (string, error) {
	value := optionalField(text, pattern)
	if value == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("failed to get %s of package %q", field, path))
	}
	return value, nil
}

func optionalField(text string, pattern *regexp.Regexp) string {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	return match[1]
}
