// Package cmd implements the command-line interface for incread.
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/incread/incread/color"
	"github.com/incread/incread/icon"
	"github.com/incread/incread/settings"
	"github.com/incread/incread/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scheduleCmd)
}

// scheduleCmd manages how extracts and answered cards are repositioned.
var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Manage how extracts and answered cards are repositioned",
}

func init() {
	scheduleCmd.AddCommand(scheduleShowCmd)
	scheduleShowCmd.SetOut(os.Stdout)
}

// scheduleShowCmd displays the scheduling values of the profile.
var scheduleShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the scheduling values of the profile",
	Run: func(cmd *cobra.Command, args []string) {
		doc := openProfile(cmd).Document()

		row := func(name string, value int, method settings.Method, random bool) {
			suffix := string(method)
			if random {
				suffix += ", randomized"
			}

			cmd.Printf(
				"%s %s %s\n",
				style.Fg(color.Blue)(name),
				style.Fg(color.Yellow)(strconv.Itoa(value)),
				style.Faint("("+suffix+")"),
			)
		}

		row("Soon:     ", doc.SoonValue, doc.SoonMethod, doc.SoonRandom)
		row("Later:    ", doc.LaterValue, doc.LaterMethod, doc.LaterRandom)
		row("Extract:  ", doc.ExtractValue, doc.ExtractMethod, doc.ExtractRandom)

		cmd.Printf(
			"%s %s %s\n",
			style.Fg(color.Blue)("Max width:"),
			style.Fg(color.Yellow)(strconv.Itoa(doc.MaxWidth)),
			style.Faint("(pixels)"),
		)
	},
}

func init() {
	scheduleCmd.AddCommand(scheduleSetCmd)

	scheduleSetCmd.Flags().String("soon", "", "Position value for 'soon'")
	scheduleSetCmd.Flags().String("later", "", "Position value for 'later'")
	scheduleSetCmd.Flags().String("extract", "", "Position value for new extracts")
	scheduleSetCmd.Flags().String("max-width", "", "Maximum text width in pixels when limiting")

	scheduleSetCmd.Flags().String("soon-method", "", "How 'soon' repositions: percent or count")
	scheduleSetCmd.Flags().String("later-method", "", "How 'later' repositions: percent or count")
	scheduleSetCmd.Flags().String("extract-method", "", "How extracts are positioned: percent or count")

	scheduleSetCmd.Flags().Bool("soon-random", false, "Randomize the new position for 'soon'")
	scheduleSetCmd.Flags().Bool("later-random", false, "Randomize the new position for 'later'")
	scheduleSetCmd.Flags().Bool("extract-random", false, "Randomize the position of new extracts")

	completionMethods := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{string(settings.MethodPercent), string(settings.MethodCount)}, cobra.ShellCompDirectiveNoFileComp
	}
	for _, flag := range []string{"soon-method", "later-method", "extract-method"} {
		_ = scheduleSetCmd.RegisterFlagCompletionFunc(flag, completionMethods)
	}
}

// scheduleSetCmd edits the scheduling values, prompting for the numeric
// fields not passed as flags. The numeric fields apply as one batch: a single
// unparsable value rejects the whole edit.
var scheduleSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Edit the scheduling values of the profile",
	Run: func(cmd *cobra.Command, args []string) {
		manager := openProfile(cmd)
		doc := manager.Document()

		type methodEdit struct {
			target *settings.Method
			value  settings.Method
		}

		var methods []methodEdit
		for flag, target := range map[string]*settings.Method{
			"soon-method":    &doc.SoonMethod,
			"later-method":   &doc.LaterMethod,
			"extract-method": &doc.ExtractMethod,
		} {
			if !cmd.Flags().Changed(flag) {
				continue
			}

			parsed, err := settings.ParseMethod(lo.Must(cmd.Flags().GetString(flag)))
			handleErr(err)
			methods = append(methods, methodEdit{target, parsed})
		}

		ask := func(flag, message string, current int) string {
			if cmd.Flags().Changed(flag) {
				return lo.Must(cmd.Flags().GetString(flag))
			}

			input := survey.Input{
				Message: message,
				Default: strconv.Itoa(current),
			}
			var response string
			handleErr(survey.AskOne(&input, &response))
			return response
		}

		edit := settings.SchedulingEdit{
			SoonValue:    ask("soon", "Soon value:", doc.SoonValue),
			LaterValue:   ask("later", "Later value:", doc.LaterValue),
			ExtractValue: ask("extract", "Extract value:", doc.ExtractValue),
			MaxWidth:     ask("max-width", "Card width limit (pixels):", doc.MaxWidth),
		}
		handleErr(doc.ApplySchedulingEdit(edit))

		for _, m := range methods {
			*m.target = m.value
		}

		for flag, target := range map[string]*bool{
			"soon-random":    &doc.SoonRandom,
			"later-random":   &doc.LaterRandom,
			"extract-random": &doc.ExtractRandom,
		} {
			if cmd.Flags().Changed(flag) {
				*target = lo.Must(cmd.Flags().GetBool(flag))
			}
		}

		handleErr(manager.Save())
		fmt.Printf("%s scheduling updated\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}
