package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillmeta/internal/export"
	"github.com/thoreinstein/skillmeta/internal/skill"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [root]",
	Short: "List the skills under a directory",
	Long: `List every skill found under root, sorted by directory name.

Root defaults to --platform, then the configured platform or root, then the
current directory. Skills whose SKILL.md cannot be read are logged and
skipped.

Examples:
  # List skills in ./skills
  skillmeta list ./skills

  # Output as JSON
  skillmeta list --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(args)
	if err != nil {
		return err
	}
	skills, err := scanSkills(cmd, root)
	if err != nil {
		return err
	}

	if listJSON {
		return outputListJSON(cmd.OutOrStdout(), skills)
	}
	outputListTable(cmd.OutOrStdout(), skills)
	return nil
}

func outputListJSON(w io.Writer, skills []*skill.Skill) error {
	records := export.NewCatalog(skills).Skills
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func outputListTable(w io.Writer, skills []*skill.Skill) {
	if len(skills) == 0 {
		fmt.Fprintln(w, "No skills found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		headerColor.Sprint("NAME"), headerColor.Sprint("TAGS"), headerColor.Sprint("DESCRIPTION"))
	for _, s := range skills {
		tags := strings.Join(s.Tags(), ", ")
		if tags == "" {
			tags = dimColor.Sprint("-")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			nameColor.Sprint(s.Name), tags, truncate(firstLine(s.Description), 80))
	}
	tw.Flush()
}
