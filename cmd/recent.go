package cmd

import (
	"encoding/json"
	"os"

	"github.com/mdmaestro/mdmaestro/color"
	"github.com/mdmaestro/mdmaestro/icon"
	"github.com/mdmaestro/mdmaestro/recent"
	"github.com/mdmaestro/mdmaestro/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.Flags().BoolP("json", "j", false, "Print the documents as JSON")
	recentCmd.SetOut(os.Stdout)
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently opened documents",
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := recent.List()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			handleErr(encoder.Encode(entries))
			return
		}

		if len(entries) == 0 {
			cmd.Println(style.Faint("no recent documents"))
			return
		}

		for _, e := range entries {
			cmd.Printf(
				"%s %s %s\n",
				icon.Get(icon.Document),
				style.Fg(color.Purple)(e.Path),
				style.Faint(e.OpenedAt.Format("2006-01-02 15:04")),
			)
		}
	},
}
