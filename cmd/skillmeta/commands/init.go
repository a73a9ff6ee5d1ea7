package commands

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillmeta/internal/errors"
	"github.com/thoreinstein/skillmeta/internal/logging"
	"github.com/thoreinstein/skillmeta/internal/skill"
	skillvalidator "github.com/thoreinstein/skillmeta/internal/skill/validator"
	"github.com/thoreinstein/skillmeta/internal/validator"
	"github.com/thoreinstein/skillmeta/pkg/fileutil"
	"github.com/thoreinstein/skillmeta/pkg/frontmatter"
)

var (
	initName        string
	initDescription string
	initTags        []string
	initForce       bool
)

func init() {
	initCmd.Flags().StringVar(&initName, "name", "",
		"skill name (default: directory name)")
	initCmd.Flags().StringVarP(&initDescription, "description", "d", "",
		"skill description")
	initCmd.Flags().StringSliceVarP(&initTags, "tag", "t", nil,
		"tag to add (repeatable)")
	initCmd.Flags().BoolVar(&initForce, "force", false,
		"overwrite an existing SKILL.md")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init <dir>",
	Short: "Create a new skill",
	Long: `Create dir/SKILL.md with name, description and tags frontmatter.

The new skill is validated before it is written. An existing SKILL.md is
left alone unless --force is given.

Examples:
  skillmeta init skills/pdf -d "Work with PDF files" -t docs -t pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := args[0]
	name := initName
	if name == "" {
		name = filepath.Base(filepath.Clean(dir))
	}

	meta := frontmatter.NewMap(
		skill.KeyName, name,
		skill.KeyDescription, initDescription,
	)
	if len(initTags) > 0 {
		meta.Set(skill.KeyTags, frontmatter.FormatList(initTags))
	}
	content := frontmatter.Format(meta, "# "+name+"\n")

	// Read the content back the way validate will and require it to match.
	sk, err := newLoader(true).FromText(dir, content)
	if err != nil {
		return errors.NewUserError(err, "Values must not contain frontmatter delimiters")
	}
	if !maps.Equal(sk.Metadata.ToMap(), meta.ToMap()) {
		return errors.NewUserError(
			errors.New("frontmatter would not read back as given"),
			"Values must not contain '---' lines, lines starting with '#', or blank lines")
	}
	result := skillvalidator.New(
		skillvalidator.WithRequired(cfg.RequiredFields...),
		skillvalidator.WithMatchDir(cfg.MatchDir),
	).Validate(sk)
	if result.HasErrors() {
		_ = validator.NewReporter(cmd.ErrOrStderr(), validator.FormatText).Report(result)
		return errors.NewUserError(errors.ErrValidationFailed, "Pass --name and --description")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.NewSystemError(errors.Wrapf(err, "creating %s", dir), "")
	}

	path := skill.FilePath(dir)
	write := fileutil.WriteNewFile
	if initForce {
		write = fileutil.AtomicWriteFile
	}
	if err := write(path, []byte(content), 0o644); err != nil {
		if errors.Is(err, os.ErrExist) {
			return errors.NewUserError(err, "Use --force to overwrite it")
		}
		return errors.NewSystemError(err, "")
	}

	logging.FromContext(cmd.Context()).Info("created skill", "path", path)
	if !quiet {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Created %s\n", path)
		if tags := strings.Join(initTags, ", "); tags != "" {
			fmt.Fprintf(w, "  tags: %s\n", tags)
		}
	}
	return nil
}
