package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillmeta/internal/errors"
	"github.com/thoreinstein/skillmeta/internal/logging"
	"github.com/thoreinstein/skillmeta/internal/skill"
	skillvalidator "github.com/thoreinstein/skillmeta/internal/skill/validator"
	"github.com/thoreinstein/skillmeta/internal/validator"
)

var (
	validateJSON bool
	validateAll  bool
)

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false,
		"output results as JSON")
	validateCmd.Flags().BoolVarP(&validateAll, "recursive", "r", false,
		"treat each argument as a root and validate every skill under it")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <dir>...",
	Short: "Validate skill frontmatter",
	Long: `Validate the SKILL.md in each directory.

Frontmatter is always parsed strictly here: a missing delimiter or a line
that is not "key: value" fails validation. The fields required by the
required_fields config key must be present and non-empty, names must be
lowercase words joined by single hyphens (at most 64 characters), and
descriptions may not exceed 1024 characters.

Exit codes:
  0 - All skills are valid
  1 - At least one skill failed validation`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger := logging.FromContext(cmd.Context())

	dirs := args
	if validateAll {
		dirs = nil
		for _, root := range args {
			found, err := skill.FindDirs(root)
			if err != nil {
				return errors.NewUserError(errors.Wrapf(err, "scanning %s", root), "")
			}
			logger.Debug("found skills", "root", root, "count", len(found))
			dirs = append(dirs, found...)
		}
	}

	loader := newLoader(true)
	v := skillvalidator.New(
		skillvalidator.WithRequired(cfg.RequiredFields...),
		skillvalidator.WithMatchDir(cfg.MatchDir),
	)

	results := make([]*validator.Result, 0, len(dirs))
	failed := 0
	for _, dir := range dirs {
		var result *validator.Result
		if sk, err := loader.Load(dir); err != nil {
			result = skillvalidator.LoadFailure(dir, err)
		} else {
			result = v.Validate(sk)
		}
		if result.HasErrors() {
			failed++
		}
		results = append(results, result)
	}

	format := validator.FormatText
	if validateJSON {
		format = validator.FormatJSON
	}
	if err := validator.NewReporter(cmd.OutOrStdout(), format).Report(results...); err != nil {
		return err
	}

	if failed > 0 {
		return errors.NewExitError(
			errors.Wrapf(errors.ErrValidationFailed, "%d of %d skill(s)", failed, len(results)),
			errors.ExitUser)
	}
	return nil
}
