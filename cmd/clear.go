package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mdmaestro/mdmaestro/filesystem"
	"github.com/mdmaestro/mdmaestro/icon"
	"github.com/mdmaestro/mdmaestro/recent"
	"github.com/mdmaestro/mdmaestro/util"
	"github.com/mdmaestro/mdmaestro/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

func removeAll(location func() string) func() error {
	return func() error {
		return filesystem.API().RemoveAll(location())
	}
}

var clearTargets = []clearTarget{
	{"recent documents", "recent", mo.Some("r"), recent.Forget},
	{"temp directory", "temp", mo.Some("t"), removeAll(where.Temp)},
	{"logs", "logs", mo.Some("l"), removeAll(where.Logs)},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}

	clearCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear recent documents, temporary previews or logs",
	Run: func(cmd *cobra.Command, args []string) {
		selected := lo.Filter(clearTargets, func(t clearTarget, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(t.argLong))
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		if !lo.Must(cmd.Flags().GetBool("yes")) {
			var confirm bool
			names := lo.Map(selected, func(t clearTarget, _ int) string { return t.name })
			handleErr(survey.AskOne(&survey.Confirm{
				Message: fmt.Sprintf("Clear %s?", util.Quantify(len(names), "target", "targets")),
				Help:    fmt.Sprint(names),
				Default: true,
			}, &confirm))

			if !confirm {
				return
			}
		}

		for _, target := range selected {
			e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := target.clear()
			e()
			handleErr(err)
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}
	},
}
