// Package cmd implements the command-line interface for incread.
package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/incread/incread/color"
	"github.com/incread/incread/icon"
	"github.com/incread/incread/settings"
	"github.com/incread/incread/style"
	"github.com/incread/incread/util"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(highlightCmd)
}

// highlightCmd manages the colors of the highlighting actions.
var highlightCmd = &cobra.Command{
	Use:   "highlight",
	Short: "Manage the colors of the highlighting actions",
}

// completionHighlightTargets lists the actions that can be recolored.
func completionHighlightTargets(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	dir, err := resolveMediaDir(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	manager, err := settings.Open(dir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	return manager.Document().HighlightTargets(), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	highlightCmd.AddCommand(highlightSetCmd)

	highlightSetCmd.Flags().StringP("target", "t", "", "The action to recolor: a primary key or a quick key combo")
	highlightSetCmd.Flags().String("bg", "", "Background color applied to the source text")
	highlightSetCmd.Flags().String("text", "", "Text color applied to the source text")

	_ = highlightSetCmd.RegisterFlagCompletionFunc("target", completionHighlightTargets)
}

// highlightSetCmd recolors one highlighting action, prompting for whatever was
// not passed as a flag.
var highlightSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Recolor the highlight or extract action or a quick key",
	Run: func(cmd *cobra.Command, args []string) {
		manager := openProfile(cmd)
		doc := manager.Document()

		target := lo.Must(cmd.Flags().GetString("target"))
		if target == "" {
			sel := survey.Select{
				Message: "Action to recolor:",
				Options: doc.HighlightTargets(),
			}
			handleErr(survey.AskOne(&sel, &target))
		}

		var currentBg, currentText string
		switch target {
		case doc.HighlightKey:
			currentBg, currentText = doc.HighlightBgColor, doc.HighlightTextColor
		case doc.ExtractKey:
			currentBg, currentText = doc.ExtractBgColor, doc.ExtractTextColor
		default:
			if quickKey, ok := doc.QuickKeys[target]; ok {
				currentBg, currentText = quickKey.BgColor, quickKey.TextColor
			}
		}

		pick := func(flag, message, current string) string {
			if cmd.Flags().Changed(flag) {
				return lo.Must(cmd.Flags().GetString(flag))
			}

			sel := survey.Select{
				Message: message,
				Options: settings.Palette(),
				Default: current,
			}
			var response string
			handleErr(survey.AskOne(&sel, &response))
			return response
		}

		bg := pick("bg", "Background color:", currentBg)
		text := pick("text", "Text color:", currentText)

		for _, name := range []string{bg, text} {
			if !settings.InPalette(name) {
				handleErr(fmt.Errorf("unknown color %s, see the colors command", style.Fg(color.Red)(name)))
			}
		}

		handleErr(doc.SetHighlightColors(target, bg, text))
		handleErr(manager.Save())

		fmt.Printf(
			"%s recolored %s to %s on %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(target),
			style.Fg(color.Yellow)(text),
			style.Fg(color.Yellow)(bg),
		)
	},
}

func init() {
	rootCmd.AddCommand(colorsCmd)
	colorsCmd.Flags().StringP("filter", "f", "", "Fuzzy filter the color names")
	colorsCmd.SetOut(os.Stdout)
}

// colorsCmd displays the color names the highlighting actions accept, in as
// many columns as the terminal fits.
var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Display the color names accepted by the highlighting actions",
	Run: func(cmd *cobra.Command, args []string) {
		names := settings.Palette()

		if filter := lo.Must(cmd.Flags().GetString("filter")); filter != "" {
			names = fuzzy.FindFold(filter, names)
		}

		if len(names) == 0 {
			cmd.Println("No matching colors")
			return
		}

		cmd.Printf("%s %s\n\n", icon.Get(icon.Palette), util.Quantify(len(names), "color", "colors"))

		longest := 0
		for _, name := range names {
			longest = util.Max(longest, len(name))
		}

		width, _, err := util.TerminalSize()
		if err != nil {
			width = 80
		}

		columns := util.Max(1, util.Min(width/(longest+2), 5))
		for i, name := range names {
			cmd.Printf("%-*s", longest+2, name)
			if (i+1)%columns == 0 || i == len(names)-1 {
				cmd.Println()
			}
		}
	},
}
