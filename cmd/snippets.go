package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/mdmaestro/mdmaestro/color"
	"github.com/mdmaestro/mdmaestro/snippet"
	"github.com/mdmaestro/mdmaestro/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func completionSnippets(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return lo.Map(snippet.Suggest(toComplete), func(id snippet.ID, _ int) string { return string(id) }), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(snippetsCmd)
	snippetsCmd.Flags().BoolP("json", "j", false, "Print the catalog as JSON")
	snippetsCmd.SetOut(os.Stdout)
}

var snippetsCmd = &cobra.Command{
	Use:     "snippets",
	Short:   "List the Markdown snippets the editor can insert",
	Aliases: []string{"snippet"},
	Run: func(cmd *cobra.Command, args []string) {
		specs := snippet.All()

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(specs))
			return
		}

		for i, s := range specs {
			cmd.Printf(
				"%s %s %s\n",
				style.Faint(fmt.Sprintf("alt+%d", i+1)),
				style.Fg(color.Purple)(s.Label),
				style.Faint(fmt.Sprintf("(%s, %dpx)", s.ID, s.FontSize)),
			)
		}
	},
}

func init() {
	snippetsCmd.AddCommand(snippetsShowCmd)
	snippetsShowCmd.SetOut(os.Stdout)
}

var snippetsShowCmd = &cobra.Command{
	Use:               "show <id>",
	Short:             "Print the Markdown a snippet inserts",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionSnippets,
	Run: func(cmd *cobra.Command, args []string) {
		id, err := snippet.Parse(args[0])
		handleErr(err)

		spec, _ := snippet.Lookup(id)
		cmd.Print(spec.Text)
	},
}

func init() {
	snippetsCmd.AddCommand(snippetsSchemaCmd)
	snippetsSchemaCmd.SetOut(os.Stdout)
}

var snippetsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the catalog listing",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := jsonschema.Reflector{ExpandedStruct: true}
		schema := reflector.Reflect(&snippet.Spec{})
		schema.Title = "snippet"

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(&jsonschema.Schema{
			Version: jsonschema.Version,
			Title:   "snippets",
			Type:    "array",
			Items:   schema,
		}))
	},
}
