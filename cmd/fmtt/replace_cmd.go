package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/transform"

	"github.com/jmeggitt/fmttools"
)

var replaceCmd = &cobra.Command{
	Use:   "replace OLD [NEW] [FILE...]",
	Short: "Replace every occurrence of a literal pattern",
	Long: paragraph(
		fmt.Sprintf("\nStream input to stdout with every occurrence of OLD replaced by NEW. Matching is %s and works across buffer boundaries, so arbitrarily large inputs pass through in constant memory. With --highlight, matches are kept and styled in place instead of replaced, and NEW is not consumed.", keyword("literal")),
	),
	Example: paragraph("cat access.log | fmtt replace 10.0.0.1 gateway\nfmtt replace --highlight TODO notes.txt"),
	Args:    cobra.MinimumNArgs(1),
	RunE:    runReplace,
}

func runReplace(cmd *cobra.Command, args []string) error {
	pattern := args[0]
	var replacement string
	rest := args[1:]

	// Highlighting styles each match in place; no replacement argument is
	// consumed.
	if highlight {
		replacement = highlightStyle().Render(pattern)
	} else {
		if len(args) < 2 {
			return fmt.Errorf("requires a NEW argument unless --highlight is set")
		}
		replacement = args[1]
		rest = args[2:]
	}

	srcs, err := sources(rest)
	if err != nil {
		return err
	}

	log.Debug("replacing",
		"pattern", runewidth.Truncate(pattern, 24, "…"),
		"replacement", runewidth.Truncate(replacement, 24, "…"))

	var total int64
	for _, src := range srcs {
		n, err := replaceStream(cmd.OutOrStdout(), src.reader, pattern, replacement)
		_ = src.reader.Close()
		if err != nil {
			return fmt.Errorf("unable to process %s: %w", src.name, err)
		}
		total += n
	}

	log.Debug("replace finished", "read", humanize.Bytes(uint64(total)))
	return nil
}

// replaceStream copies r to w, rewriting matches as the text streams
// through.
func replaceStream(w io.Writer, r io.Reader, pattern, replacement string) (int64, error) {
	tw := transform.NewWriter(w, fmttools.Transformer(pattern, replacement))
	n, err := io.Copy(tw, r)
	if err != nil {
		return n, err
	}
	return n, tw.Close()
}

func highlightStyle() lipgloss.Style {
	if termenv.EnvColorProfile() == termenv.Ascii {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(envConfig.HighlightColor)).
		Bold(true)
}

func init() {
	replaceCmd.Flags().BoolVarP(&highlight, "highlight", "H", false, "style matches in place instead of replacing them")
	_ = viper.BindPFlag("highlight", replaceCmd.Flags().Lookup("highlight"))
	viper.SetDefault("highlight", false)
}
