package adapters

import (
	"bytes"
	"os"
	"os/exec"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"hpkgmeta/internal/ports"
	"hpkgmeta/internal/shared"
)

// PackageToolAdapter invokes the external package command to produce an
// attribute listing for an archive or manifest file.
type PackageToolAdapter struct {
	Command string
}

func NewPackageToolAdapter(command string) PackageToolAdapter {
	return PackageToolAdapter{Command: command}
}

func (a PackageToolAdapter) Inspect(path string, silent bool) ([]byte, error) {
	cmd := exec.Command(a.Command, "list", "-i", path)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if !silent {
		cmd.Stderr = os.Stderr
	}
	if err := cmd.Run(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("package inspection command failed").
			WithCause(shared.CommandError(stdout.Bytes(), err))
	}
	return stdout.Bytes(), nil
}

var _ ports.InspectorPort = PackageToolAdapter{}
