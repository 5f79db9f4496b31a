// Package cmd implements the command-line interface for incread.
package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/incread/incread/color"
	"github.com/incread/incread/icon"
	"github.com/incread/incread/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(keysCmd)
}

// keysCmd manages the primary action key bindings of the reading view.
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage the primary action key bindings of the reading view",
}

func init() {
	keysCmd.AddCommand(keysShowCmd)
	keysShowCmd.SetOut(os.Stdout)
}

// keysShowCmd displays the current primary key bindings.
var keysShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the current primary key bindings",
	Run: func(cmd *cobra.Command, args []string) {
		doc := openProfile(cmd).Document()

		blue := style.Fg(color.Blue)
		yellow := style.Fg(color.Yellow)

		cmd.Printf("%s primary action keys\n\n", icon.Get(icon.Key))
		cmd.Printf("%s %s\n", blue("Extract:  "), yellow(doc.ExtractKey))
		cmd.Printf("%s %s\n", blue("Highlight:"), yellow(doc.HighlightKey))
		cmd.Printf("%s %s\n", blue("Remove:   "), yellow(doc.RemoveKey))
		cmd.Printf("%s %s\n", blue("Undo:     "), yellow(doc.UndoKey))
	},
}

func init() {
	keysCmd.AddCommand(keysSetCmd)

	keysSetCmd.Flags().StringP("extract", "e", "", "Key that extracts the current selection")
	keysSetCmd.Flags().StringP("highlight", "H", "", "Key that highlights the current selection")
	keysSetCmd.Flags().StringP("remove", "r", "", "Key that removes formatting from the selection")
}

// keysSetCmd rebinds the extract, highlight and remove actions, prompting for
// any binding not passed as a flag.
var keysSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Rebind the extract, highlight and remove actions",
	Run: func(cmd *cobra.Command, args []string) {
		manager := openProfile(cmd)
		doc := manager.Document()

		ask := func(flag, message, current string) string {
			if cmd.Flags().Changed(flag) {
				return lo.Must(cmd.Flags().GetString(flag))
			}

			input := survey.Input{
				Message: message,
				Default: current,
			}
			var response string
			handleErr(survey.AskOne(&input, &response))
			return response
		}

		extract := ask("extract", "Extract key:", doc.ExtractKey)
		highlight := ask("highlight", "Highlight key:", doc.HighlightKey)
		remove := ask("remove", "Remove key:", doc.RemoveKey)

		handleErr(doc.SetPrimaryKeys(extract, highlight, remove))
		handleErr(manager.Save())

		fmt.Printf(
			"%s bound extract to %s, highlight to %s, remove to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Yellow)(doc.ExtractKey),
			style.Fg(color.Yellow)(doc.HighlightKey),
			style.Fg(color.Yellow)(doc.RemoveKey),
		)
	},
}
