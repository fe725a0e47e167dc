package cmd

import (
	"io"

	"github.com/mdmaestro/mdmaestro/document"
	"github.com/mdmaestro/mdmaestro/filesystem"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("output", "o", "", "Write the HTML to a file instead of stdout")
}

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render Markdown to a themed HTML document",
	Long: `Render Markdown to a themed HTML document.
The Markdown is read from the file, or from stdin when no file is given.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionRecent,
	Run: func(cmd *cobra.Command, args []string) {
		var source string
		if len(args) == 1 {
			content, err := document.ReadFile(args[0])
			handleErr(err)
			source = content
		} else {
			data, err := io.ReadAll(cmd.InOrStdin())
			handleErr(err)
			source = string(data)
		}

		s := document.New(document.FromConfig()...)
		handleErr(s.SetSource(source))

		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			handleErr(filesystem.WriteFile(output, []byte(s.Rendered())))
			return
		}

		cmd.Print(s.Rendered())
	},
}
