package cmd

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mdmaestro/mdmaestro/color"
	"github.com/mdmaestro/mdmaestro/export"
	"github.com/mdmaestro/mdmaestro/icon"
	"github.com/mdmaestro/mdmaestro/key"
	"github.com/mdmaestro/mdmaestro/style"
	"github.com/mdmaestro/mdmaestro/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("output", "o", "", "Target file (defaults to the input name with the format's extension)")
	exportCmd.Flags().BoolP("force", "f", false, "Overwrite the target without asking")
}

var exportCmd = &cobra.Command{
	Use:   "export {md|html|pdf} <file>",
	Short: "Export a Markdown file as Markdown, HTML or PDF",
	Example: "  " + "mdmaestro export html notes.md\n" +
		"  " + "mdmaestro export pdf notes.md -o /tmp/notes.pdf",
	Args: cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return lo.Map(export.Formats(), func(f export.Format, _ int) string { return f.String() }), cobra.ShellCompDirectiveNoFileComp
		}
		return completionRecent(cmd, args[1:], toComplete)
	},
	Run: func(cmd *cobra.Command, args []string) {
		format, err := export.ParseFormat(args[0])
		handleErr(err)

		target := lo.Must(cmd.Flags().GetString("output"))
		if target == "" {
			target = export.CopyTarget(args[1], format)
		}
		if export.SameFile(args[1], util.WithExtension(target, format.Extension())) {
			handleErr(fmt.Errorf("%w: %s", export.ErrSameFile, args[1]))
		}

		s, err := openSession(args[1])
		handleErr(err)

		overwrite := lo.Must(cmd.Flags().GetBool("force")) || viper.GetBool(key.ExportOverwrite)
		written, err := export.Write(s, format, target, overwrite)
		if errors.Is(err, export.ErrExists) {
			var confirm bool
			handleErr(survey.AskOne(&survey.Confirm{
				Message: fmt.Sprintf("%s already exists. Overwrite?", written),
				Default: false,
			}, &confirm))

			if !confirm {
				return
			}
			written, err = export.Write(s, format, written, true)
		}
		handleErr(err)

		fmt.Printf(
			"%s exported %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(format.String()),
			style.Fg(color.Yellow)(written),
		)
	},
}
