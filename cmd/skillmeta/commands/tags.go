package commands

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillmeta/internal/skill"
)

var tagsJSON bool

func init() {
	tagsCmd.Flags().BoolVar(&tagsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(tagsCmd)
}

var tagsCmd = &cobra.Command{
	Use:   "tags [root]",
	Short: "List tags and the skills that carry them",
	Long: `Build a tag index of the skills under root.

Tags may be written inline (tags: [a, b]) or as indented "- a" lines.

Examples:
  skillmeta tags ./skills
  skillmeta tags --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTags,
}

// tagIndex maps each tag to the names of the skills carrying it.
type tagIndex map[string][]string

func buildTagIndex(skills []*skill.Skill) tagIndex {
	idx := make(tagIndex)
	for _, s := range skills {
		for _, tag := range s.Tags() {
			if !slices.Contains(idx[tag], s.Name) {
				idx[tag] = append(idx[tag], s.Name)
			}
		}
	}
	return idx
}

func runTags(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(args)
	if err != nil {
		return err
	}
	skills, err := scanSkills(cmd, root)
	if err != nil {
		return err
	}

	idx := buildTagIndex(skills)
	w := cmd.OutOrStdout()
	if tagsJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(idx)
	}

	if len(idx) == 0 {
		fmt.Fprintln(w, "No tags found")
		return nil
	}

	tags := make([]string, 0, len(idx))
	for tag := range idx {
		tags = append(tags, tag)
	}
	slices.Sort(tags)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, tag := range tags {
		fmt.Fprintf(tw, "%s\t%s\n", nameColor.Sprint(tag), strings.Join(idx[tag], ", "))
	}
	return tw.Flush()
}
