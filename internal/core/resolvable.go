package core

import (
	"regexp"
	"strings"
	"unicode"

	"hpkgmeta/internal/types"
)

// resolvableVersionPattern matches the "name = version" prefix of a
// provides declaration. Anchored at the start only; trailing text after
// the version token is ignored.
var resolvableVersionPattern = regexp.MustCompile(`^([^\s=]+)\s*=\s*(\S+)`)

// ParseResolvable parses one provides declaration of the form
// "<name> [ = <version> ] [ (compatible >= <version>) ]". Parsing never
// fails: input that matches no grammar becomes a name-only reference.
func ParseResolvable(raw string) types.Resolvable {
	resolvable := types.Resolvable{}

	// Split off the compat-version clause first.
	working := raw
	if strings.HasSuffix(working, ")") {
		open := strings.LastIndex(working, "(")
		floor := strings.LastIndex(working, ">=")
		if floor > 0 {
			resolvable.CompatibleVersion = strings.TrimSpace(working[floor+2 : len(working)-1])
			if open < 0 {
				open = len(working) - 1
			}
			working = strings.TrimRightFunc(working[:open], unicode.IsSpace)
		}
	}

	if match := resolvableVersionPattern.FindStringSubmatch(working); match != nil {
		resolvable.Name = match[1]
		resolvable.Version = match[2]
	} else {
		resolvable.Name = working
	}
	return resolvable
}
