package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/horario/internal/catalog"
	"github.com/javiermolinar/horario/internal/db"
)

func (a *App) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [offerings_file]",
		Short: "Load course offerings into the catalog",
		Long: `Replace the section catalog with the offerings in a JSON or CSV file.

Without an argument, the file configured as catalog.source is used.

Example:
  horario import turmas.json
  horario import offerings.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := a.config.Catalog.Source
			if len(args) == 1 {
				source = args[0]
			}
			if source == "" {
				return fmt.Errorf("no offerings file given and catalog.source is not set")
			}

			sourcePath, err := resolvePath(source)
			if err != nil {
				return err
			}
			info, err := os.Stat(sourcePath)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("offerings file does not exist: %s", sourcePath)
				}
				return fmt.Errorf("checking offerings file: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("offerings path is a directory: %s", sourcePath)
			}

			if err := a.ensureStore(); err != nil {
				return err
			}
			count, err := importSections(cmd.Context(), a.store, sourcePath)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s from %s\n", formatStats(plural(count, "section", "sections")), sourcePath)
			return nil
		},
	}

	return cmd
}

// importSections parses the offerings file and replaces the catalog with it.
func importSections(ctx context.Context, store *db.SQLite, sourcePath string) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	sections, err := catalog.LoadFile(sourcePath)
	if err != nil {
		return 0, fmt.Errorf("reading offerings: %w", err)
	}
	if err := store.ReplaceSections(ctx, sections); err != nil {
		return 0, fmt.Errorf("importing sections: %w", err)
	}
	return len(sections), nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
