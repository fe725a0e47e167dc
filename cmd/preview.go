package cmd

import (
	"fmt"

	"github.com/mdmaestro/mdmaestro/icon"
	"github.com/mdmaestro/mdmaestro/preview"
	"github.com/mdmaestro/mdmaestro/style"
	"github.com/mdmaestro/mdmaestro/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().BoolP("terminal", "T", false, "Print the preview to the terminal instead of opening a browser")
}

var previewCmd = &cobra.Command{
	Use:               "preview <file>",
	Short:             "Preview a Markdown file in the browser or the terminal",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionRecent,
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openSession(args[0])
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("terminal")) {
			width, _, err := util.TerminalSize()
			if err != nil {
				width = 80
			}

			out, err := preview.Terminal(s.Source(), s.Theme(), width)
			handleErr(err)
			cmd.Print(out)
			return
		}

		path, err := preview.Browser(s, args[0])
		handleErr(err)
		fmt.Printf("%s opened %s\n", icon.Get(icon.Success), style.Faint(path))
	},
}
