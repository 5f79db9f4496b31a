// Package cmd implements the command-line interface for incread.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/incread/incread/color"
	"github.com/incread/incread/icon"
	"github.com/incread/incread/settings"
	"github.com/incread/incread/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(quickKeysCmd)
}

// quickKeysCmd manages the one-keystroke extraction bindings of a profile.
var quickKeysCmd = &cobra.Command{
	Use:     "quickkeys",
	Short:   "Manage the one-keystroke extraction bindings of a profile",
	Aliases: []string{"qk"},
}

// completionCombos lists the combos currently bound in the profile. It opens
// the document directly so completion never writes anything back.
func completionCombos(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	dir, err := resolveMediaDir(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	manager, err := settings.Open(dir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	combos := lo.Map(manager.Document().MenuEntries(), func(e settings.MenuEntry, _ int) string {
		return e.Combo
	})
	return combos, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	quickKeysCmd.AddCommand(quickKeysListCmd)

	quickKeysListCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	quickKeysListCmd.Flags().BoolP("raw", "r", false, "Suppress the menu labels in the output")
	quickKeysListCmd.MarkFlagsMutuallyExclusive("json", "raw")
	quickKeysListCmd.SetOut(os.Stdout)
}

// quickKeysListCmd displays the quick keys the way the host menu presents
// them, one combo with its card target per line.
var quickKeysListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display the quick keys and their card targets",
	Run: func(cmd *cobra.Command, args []string) {
		doc := openProfile(cmd).Document()
		entries := doc.MenuEntries()

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			lo.Must0(encoder.Encode(doc.QuickKeys))
			return
		}

		if len(entries) == 0 {
			cmd.Println("No quick keys bound")
			return
		}

		raw := lo.Must(cmd.Flags().GetBool("raw"))
		for _, entry := range entries {
			if raw {
				cmd.Println(entry.Combo)
				continue
			}

			cmd.Printf(
				"%s %s\n",
				style.Fg(color.Purple)(fmt.Sprintf("%-20s", entry.Combo)),
				entry.Label,
			)
		}
	},
}

func init() {
	quickKeysCmd.AddCommand(quickKeysSetCmd)

	quickKeysSetCmd.Flags().StringP("deck", "d", "", "Deck the new card is created in")
	quickKeysSetCmd.Flags().StringP("model", "n", "", "Note type used for the new card")
	quickKeysSetCmd.Flags().StringP("field", "f", "", "Field of the note type receiving the extracted text")
	quickKeysSetCmd.Flags().StringP("key", "k", "", "Non-modifier key of the combination")
	quickKeysSetCmd.Flags().Bool("ctrl", false, "Require the Ctrl modifier")
	quickKeysSetCmd.Flags().Bool("shift", false, "Require the Shift modifier")
	quickKeysSetCmd.Flags().Bool("alt", false, "Require the Alt modifier")
	quickKeysSetCmd.Flags().String("bg-color", "", "Background color applied to the source text")
	quickKeysSetCmd.Flags().String("text-color", "", "Text color applied to the source text")
	quickKeysSetCmd.Flags().Bool("edit-extract", false, "Open the editor on the extracted card")
	quickKeysSetCmd.Flags().Bool("edit-source", false, "Open the editor on the source note afterwards")
	quickKeysSetCmd.Flags().Bool("plain-text", false, "Extract as plain text instead of HTML")
}

// quickKeysSetCmd binds a new quick key, prompting for the required attributes
// not passed as flags. Colors default to the profile's highlight colors.
var quickKeysSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Bind a quick key to a deck and note type",
	Run: func(cmd *cobra.Command, args []string) {
		manager := openProfile(cmd)
		doc := manager.Document()

		ask := func(flag, message string) string {
			if cmd.Flags().Changed(flag) {
				return lo.Must(cmd.Flags().GetString(flag))
			}

			input := survey.Input{Message: message}
			var response string
			handleErr(survey.AskOne(&input, &response))
			return response
		}

		quickKey := settings.QuickKey{
			DeckName:    ask("deck", "Destination deck:"),
			ModelName:   ask("model", "Note type:"),
			FieldName:   lo.Must(cmd.Flags().GetString("field")),
			RegularKey:  ask("key", "Letter or number for the key combination:"),
			Ctrl:        lo.Must(cmd.Flags().GetBool("ctrl")),
			Shift:       lo.Must(cmd.Flags().GetBool("shift")),
			Alt:         lo.Must(cmd.Flags().GetBool("alt")),
			BgColor:     lo.Must(cmd.Flags().GetString("bg-color")),
			TextColor:   lo.Must(cmd.Flags().GetString("text-color")),
			EditExtract: lo.Must(cmd.Flags().GetBool("edit-extract")),
			EditSource:  lo.Must(cmd.Flags().GetBool("edit-source")),
			PlainText:   lo.Must(cmd.Flags().GetBool("plain-text")),
		}

		if quickKey.FieldName == "" {
			quickKey.FieldName = doc.TextField
		}
		if quickKey.BgColor == "" {
			quickKey.BgColor = doc.HighlightBgColor
		}
		if quickKey.TextColor == "" {
			quickKey.TextColor = doc.HighlightTextColor
		}

		for _, name := range []string{quickKey.BgColor, quickKey.TextColor} {
			if !settings.InPalette(name) {
				handleErr(fmt.Errorf("unknown color %s, see the colors command", style.Fg(color.Red)(name)))
			}
		}

		combo, err := doc.SetQuickKey(quickKey)
		handleErr(err)
		handleErr(manager.Save())

		fmt.Printf(
			"%s new shortcut added: %s %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(combo),
			style.Faint(quickKey.MenuLabel()),
		)
	},
}

func init() {
	quickKeysCmd.AddCommand(quickKeysRemoveCmd)

	quickKeysRemoveCmd.Flags().StringP("combo", "c", "", "The key combination of the binding to remove")
	lo.Must0(quickKeysRemoveCmd.MarkFlagRequired("combo"))
	_ = quickKeysRemoveCmd.RegisterFlagCompletionFunc("combo", completionCombos)
}

// quickKeysRemoveCmd deletes the binding registered under a combo.
var quickKeysRemoveCmd = &cobra.Command{
	Use:     "remove",
	Short:   "Remove the quick key bound to a combination",
	Aliases: []string{"delete"},
	Run: func(cmd *cobra.Command, args []string) {
		combo := lo.Must(cmd.Flags().GetString("combo"))

		manager := openProfile(cmd)
		if !manager.Document().RemoveQuickKey(combo) {
			handleErr(errors.New("no quick key bound to " + style.Fg(color.Red)(combo)))
		}

		handleErr(manager.Save())
		fmt.Printf(
			"%s removed %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(combo),
		)
	},
}
