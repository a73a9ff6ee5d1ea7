package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillmeta/internal/errors"
	"github.com/thoreinstein/skillmeta/internal/export"
	"github.com/thoreinstein/skillmeta/internal/logging"
)

var (
	indexOutput string
	indexFormat string
)

func init() {
	indexCmd.Flags().StringVarP(&indexOutput, "output", "o", "",
		"write the catalog to this file; the extension picks the format")
	indexCmd.Flags().StringVarP(&indexFormat, "format", "f", "json",
		"format when writing to stdout: json, yaml, toml")
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index [root]",
	Short: "Write a catalog of every skill",
	Long: `Scan root and write a catalog of every skill with its full frontmatter.

With --output the file is replaced atomically and its extension (.json,
.yaml, .yml or .toml) selects the format. Otherwise the catalog is written
to stdout in --format.

Examples:
  skillmeta index ./skills -o catalog.json
  skillmeta index ./skills --format yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(args)
	if err != nil {
		return err
	}
	skills, err := scanSkills(cmd, root)
	if err != nil {
		return err
	}
	catalog := export.NewCatalog(skills)

	if indexOutput != "" {
		if err := export.WriteFile(indexOutput, catalog); err != nil {
			if errors.Is(err, errors.ErrUnsupportedFormat) {
				return errors.NewUserError(err, "Use a .json, .yaml or .toml output file")
			}
			return errors.NewSystemError(err, "")
		}
		logging.FromContext(cmd.Context()).Info("wrote catalog",
			"path", indexOutput,
			"skills", len(catalog.Skills))
		return nil
	}

	format, err := export.ParseFormat(indexFormat)
	if err != nil {
		return errors.NewUserError(err, "Use --format json, yaml or toml")
	}
	data, err := export.Marshal(catalog, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
