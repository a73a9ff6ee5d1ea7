package commands

import (
	"fmt"
	"io"
	"io/fs"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillmeta/internal/errors"
	"github.com/thoreinstein/skillmeta/internal/export"
	"github.com/thoreinstein/skillmeta/internal/skill"
	"github.com/thoreinstein/skillmeta/pkg/fileutil"
	"github.com/thoreinstein/skillmeta/pkg/frontmatter"
)

var (
	showFormat string
	showBody   bool
)

func init() {
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "text",
		"output format: text, json, yaml, toml")
	showCmd.Flags().BoolVar(&showBody, "body", false,
		"include the content after the frontmatter")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <dir>",
	Short: "Show the frontmatter of one skill",
	Long: `Show every frontmatter key of the skill in dir, in file order.

Examples:
  skillmeta show skills/pdf
  skillmeta show skills/pdf --format yaml
  skillmeta show skills/pdf --body`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

// showDocument is the encoded form of show output.
type showDocument struct {
	Dir      string           `json:"dir" yaml:"dir"`
	Metadata *frontmatter.Map `json:"metadata" yaml:"metadata"`
	Body     string           `json:"body,omitempty" yaml:"body,omitempty"`
}

func runShow(cmd *cobra.Command, args []string) error {
	dir := args[0]
	path := skill.FilePath(dir)

	data, err := fileutil.ReadFileWithLimit(path)
	if errors.Is(err, fs.ErrNotExist) {
		return errors.NewUserError(errors.Wrapf(errors.ErrNotFound, "no %s in %s", skill.FileName, dir),
			"The directory must contain a SKILL.md file")
	}
	if err != nil {
		return errors.NewSystemError(errors.Wrapf(err, "reading %s", path), "")
	}
	text := string(data)

	sk, err := newLoader(strictMode()).FromText(dir, text)
	if err != nil {
		return errors.NewUserError(err, "Fix the frontmatter or run without --strict")
	}

	doc := showDocument{Dir: dir, Metadata: sk.Metadata}
	if showBody {
		doc.Body = frontmatter.Body(text)
	}

	w := cmd.OutOrStdout()
	if showFormat == "text" {
		outputShowText(w, doc)
		return nil
	}

	format, err := export.ParseFormat(showFormat)
	if err != nil {
		return errors.NewUserError(err, "Use --format text, json, yaml or toml")
	}
	out, err := export.Marshal(doc, format)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func outputShowText(w io.Writer, doc showDocument) {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for _, k := range doc.Metadata.Keys() {
		lines := strings.Split(doc.Metadata.Value(k), "\n")
		fmt.Fprintf(tw, "%s\t%s\n", nameColor.Sprint(k+":"), lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(tw, "\t%s\n", line)
		}
	}
	tw.Flush()

	if doc.Body != "" {
		fmt.Fprintln(w)
		fmt.Fprint(w, doc.Body)
	}
}
