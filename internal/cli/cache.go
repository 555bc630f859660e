package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newCacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and maintain the archive metadata cache",
	}
	cmd.AddCommand(newCacheListCommand())
	cmd.AddCommand(newCachePruneCommand())
	return cmd
}

func newCacheListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List retained cache entries",
		RunE: func(_ *cobra.Command, _ []string) error {
			service, err := newAppService()
			if err != nil {
				return err
			}
			entries := service.Cache.Entries()
			for _, entry := range entries {
				modified := time.Unix(0, entry.ModifiedTime).UTC().Format(time.RFC3339)
				fmt.Printf("%s %s %s\n", entry.Metadata.VersionedName(), modified, entry.Path)
			}
			fmt.Printf("%d entries\n", len(entries))
			return nil
		},
	}
}

func newCachePruneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Drop cache entries whose archives changed or disappeared",
		RunE: func(_ *cobra.Command, _ []string) error {
			service, err := newAppService()
			if err != nil {
				return err
			}
			pruned, err := service.Cache.Prune()
			if err != nil {
				return err
			}
			fmt.Printf("pruned %d entries\n", pruned)
			return nil
		},
	}
}
