package cli

import (
	"encoding/json"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"hpkgmeta/internal/app"
	"hpkgmeta/internal/types"
)

type extractOptions struct {
	Silent bool
	Format string
}

func newExtractCommand() *cobra.Command {
	opts := extractOptions{}
	cmd := &cobra.Command{
		Use:   "extract <path>",
		Short: "Extract package metadata from an archive, manifest, or dependency info file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args[0], opts)
		},
	}
	cmd.Flags().BoolVar(&opts.Silent, "silent", false, "Discard the inspection command's stderr")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "Output format (text|json|yaml)")
	return cmd
}

func runExtract(cmd *cobra.Command, path string, opts extractOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	metadata, err := service.Extract(cmd.Context(), app.ExtractRequest{
		Path:   path,
		Silent: opts.Silent,
	})
	if err != nil {
		return err
	}
	return renderMetadata(metadata, opts.Format)
}

func renderMetadata(metadata types.PackageMetadata, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(metadata, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(metadata)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	case "text":
		fmt.Printf("package: %s\n", metadata.VersionedName())
		fmt.Printf("architecture: %s\n", metadata.Architecture)
		if metadata.InstallPath != "" {
			fmt.Printf("install path: %s\n", metadata.InstallPath)
		}
		for _, provides := range metadata.Provides {
			fmt.Printf("provides: %s\n", provides)
		}
		for _, requires := range metadata.Requires {
			fmt.Printf("requires: %s\n", requires)
		}
		for _, requires := range metadata.BuildRequires {
			fmt.Printf("build requires: %s\n", requires)
		}
		for _, requires := range metadata.BuildPrerequires {
			fmt.Printf("build prerequires: %s\n", requires)
		}
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown output format %q", format))
	}
	return nil
}
