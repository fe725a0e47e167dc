// Package cmd implements the command-line interface of mdmaestro.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/mdmaestro/mdmaestro/color"
	"github.com/mdmaestro/mdmaestro/constant"
	"github.com/mdmaestro/mdmaestro/document"
	"github.com/mdmaestro/mdmaestro/icon"
	"github.com/mdmaestro/mdmaestro/key"
	"github.com/mdmaestro/mdmaestro/log"
	"github.com/mdmaestro/mdmaestro/preview"
	"github.com/mdmaestro/mdmaestro/recent"
	"github.com/mdmaestro/mdmaestro/style"
	"github.com/mdmaestro/mdmaestro/theme"
	"github.com/mdmaestro/mdmaestro/tui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icon variant (emoji, nerd, plain, kaomoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("theme", "t", "", "Preview theme (dark or light)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("theme", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(theme.All(), func(t theme.Theme, _ int) string { return t.String() }), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.RenderTheme, rootCmd.PersistentFlags().Lookup("theme")))

	rootCmd.PersistentFlags().Int("font-size", 0, "Base font size of the preview in pixels")
	lo.Must0(viper.BindPFlag(key.RenderFontSize, rootCmd.PersistentFlags().Lookup("font-size")))
}

var rootCmd = &cobra.Command{
	Use:   constant.App + " [file]",
	Short: constant.Tagline,
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - "+constant.Tagline),
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionRecent,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{}
		if len(args) == 1 {
			options.Path = args[0]
		}
		handleErr(tui.Run(&options))
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	// before dispatch, so a preview written by this run is never raced
	if err := preview.Prune(preview.StaleAfter); err != nil {
		log.Warn(err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

// openSession starts a configured session on the file at path and records it as recent.
func openSession(path string) (*document.Session, error) {
	s := document.New(document.FromConfig()...)
	if err := s.ImportFile(path); err != nil {
		return nil, err
	}

	if err := recent.Remember(path); err != nil {
		log.Warn(err)
	}
	return s, nil
}

func completionRecent(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return recent.Suggest(toComplete), cobra.ShellCompDirectiveDefault
}
