package main

import (
	"bufio"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/jmeggitt/fmttools"
)

var joinWrap bool

var joinCmd = &cobra.Command{
	Use:   "join SEP [FILE...]",
	Short: "Join input lines with a separator",
	Long: paragraph(
		fmt.Sprintf("\nRead lines from stdin or files and print them joined by %s.", keyword("SEP")),
	),
	Example: paragraph("ls | fmtt join \", \"\nfmtt join : allow.list deny.list"),
	Args:    cobra.MinimumNArgs(1),
	RunE:    runJoin,
}

func runJoin(cmd *cobra.Command, args []string) error {
	sep := args[0]

	srcs, err := sources(args[1:])
	if err != nil {
		return err
	}

	var lines []string
	for _, src := range srcs {
		scanner := bufio.NewScanner(src.reader)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		_ = src.reader.Close()
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("unable to read %s: %w", src.name, err)
		}
	}

	log.Debug("joining", "lines", len(lines), "separator", sep)

	out := fmt.Sprintf("%s", fmttools.JoinSlice(lines, sep))
	if joinWrap {
		out = wordwrap.String(out, int(width))
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func init() {
	joinCmd.Flags().BoolVar(&joinWrap, "wrap", false, "word-wrap the joined output at width")
}
