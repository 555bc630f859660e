package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	debversion "github.com/knqyf263/go-deb-version"

	"hpkgmeta/internal/types"
)

// Satisfies reports whether a concrete version fulfils the expression's
// constraint. An absent operator means any version satisfies it. The
// permissive grammar can capture operator runs outside the canonical
// set; those are never satisfiable. Versions compare with Debian
// ordering, which matches the epoch/upstream/pre-release ordering the
// package versions use.
func Satisfies(expression types.ResolvableExpression, version string) (bool, error) {
	if expression.Op == types.ConstraintOpNone {
		return true, nil
	}

	candidate, err := debversion.NewVersion(version)
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid version %q", version)).
			WithCause(err)
	}
	bound, err := debversion.NewVersion(expression.Version)
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid constraint version %q", expression.Version)).
			WithCause(err)
	}

	result := candidate.Compare(bound)
	switch expression.Op {
	case types.ConstraintOpEq, types.ConstraintOpEq2:
		return result == 0, nil
	case types.ConstraintOpNe:
		return result != 0, nil
	case types.ConstraintOpLt:
		return result < 0, nil
	case types.ConstraintOpLte:
		return result <= 0, nil
	case types.ConstraintOpGt:
		return result > 0, nil
	case types.ConstraintOpGte:
		return result >= 0, nil
	default:
		return false, nil
	}
}
