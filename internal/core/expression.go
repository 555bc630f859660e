package core

import (
	"regexp"
	"strings"

	"hpkgmeta/internal/types"
)

// expressionPattern matches the "name op version" prefix of a requires
// declaration. The operator is any run of comparison characters, so the
// permissive grammar can capture runs outside the canonical operator
// set; consumers treat those as never satisfiable.
var expressionPattern = regexp.MustCompile(`^([^\s=!<>]+)\s*([=!<>]+)\s*(\S+)`)

// ParseExpression parses one requires declaration of the form
// "<name> [ <op> <version> ] [ "base" ]". Parsing never fails: input
// that matches no grammar becomes a name-only constraint.
//
// The base marker is detected on the original, unmodified string unless
// ignoreBase is set; archive attribute listings never carry it, so
// archive callers pass ignoreBase=true. When the operator grammar and
// the base marker interact (a bare "name >= base") the word "base" is
// captured as the version and the flag is still set; see
// TestParseExpressionBaseWord.
func ParseExpression(raw string, ignoreBase bool) types.ResolvableExpression {
	expression := types.ResolvableExpression{}
	if match := expressionPattern.FindStringSubmatch(raw); match != nil {
		expression.Name = match[1]
		expression.Op = types.ConstraintOp(match[2])
		expression.Version = match[3]
	} else {
		expression.Name = raw
	}
	expression.Base = !ignoreBase && strings.HasSuffix(raw, " base")
	return expression
}
