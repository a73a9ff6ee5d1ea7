package commands

import (
	"fmt"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillmeta/internal/errors"
	"github.com/thoreinstein/skillmeta/internal/skill"
)

func init() {
	rootCmd.AddCommand(pickCmd)
}

var pickCmd = &cobra.Command{
	Use:   "pick [root]",
	Short: "Choose a skill interactively",
	Long: `Open a fuzzy finder over the skills under root and print the directory of
the chosen skill. Pressing Esc or Ctrl-C prints nothing.

Examples:
  cd "$(skillmeta pick ./skills)"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPick,
}

// finder is swapped in tests.
var finder = fuzzyfinder.Find

func runPick(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(args)
	if err != nil {
		return err
	}
	skills, err := scanSkills(cmd, root)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(skills) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No skills found.")
		return nil
	}

	idx, err := finder(
		skills,
		func(i int) string {
			return skills[i].Name
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return pickPreview(skills[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive pick failed")
	}

	fmt.Fprintln(w, skills[idx].Dir)
	return nil
}

func pickPreview(s *skill.Skill) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %s\nDir:  %s\n", s.Name, s.Dir)
	if tags := s.Tags(); len(tags) > 0 {
		fmt.Fprintf(&sb, "Tags: %s\n", strings.Join(tags, ", "))
	}
	fmt.Fprintf(&sb, "\nDescription:\n%s", s.Description)
	return sb.String()
}
