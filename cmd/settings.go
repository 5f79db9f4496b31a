// Package cmd implements the command-line interface for incread.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/incread/incread/color"
	"github.com/incread/incread/icon"
	"github.com/incread/incread/settings"
	"github.com/incread/incread/style"
	"github.com/incread/incread/where"
	"github.com/invopop/jsonschema"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func errUnknownField(field string) error {
	closest := lo.MinBy(settings.Keys(), func(a string, b string) bool {
		return levenshtein.Distance(field, a) < levenshtein.Distance(field, b)
	})
	msg := fmt.Sprintf(
		"unknown field %s, did you mean %s?",
		style.Fg(color.Red)(field),
		style.Fg(color.Yellow)(closest),
	)

	return errors.New(msg)
}

func completionFieldKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return settings.Keys(), cobra.ShellCompDirectiveNoFileComp
}

// displayValue renders a field value for terminal output. Strings come out
// bare, everything else as JSON.
func displayValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case settings.Method:
		return string(value)
	case *string:
		if value == nil {
			return "null"
		}
		return *value
	default:
		return string(lo.Must(json.Marshal(value)))
	}
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}

// settingsCmd serves as the parent command for the profile's reading settings.
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect and edit the reading settings document of a profile",
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsGetCmd.Flags().StringP("key", "k", "", "The specific settings field to retrieve")
	_ = settingsGetCmd.RegisterFlagCompletionFunc("key", completionFieldKeys)
	settingsGetCmd.SetOut(os.Stdout)
}

// settingsGetCmd retrieves the current value of a single settings field.
var settingsGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Retrieve the current value of a settings field",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionFieldKeys,
	Run: func(cmd *cobra.Command, args []string) {
		var field string
		flagKey, _ := cmd.Flags().GetString("key")

		if len(args) >= 1 {
			field = args[0]
		} else if flagKey != "" {
			field = flagKey
		} else {
			handleErr(errors.New("key is required as an argument or --key flag"))
		}

		if _, ok := settings.Lookup(field); !ok {
			handleErr(errUnknownField(field))
		}

		doc := openProfile(cmd).Document()
		cmd.Println(displayValue(lo.Must(doc.Get(field))))
	},
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
	settingsSetCmd.Flags().StringP("key", "k", "", "The settings field to update")
	settingsSetCmd.Flags().StringP("value", "v", "", "The new value to assign to the field")
	_ = settingsSetCmd.RegisterFlagCompletionFunc("key", completionFieldKeys)
}

// settingsSetCmd updates the value of a single settings field.
var settingsSetCmd = &cobra.Command{
	Use:               "set [key] [value]",
	Short:             "Update the value of a settings field",
	Args:              cobra.MaximumNArgs(2),
	ValidArgsFunction: completionFieldKeys,
	Run: func(cmd *cobra.Command, args []string) {
		var field, value string

		flagKey, _ := cmd.Flags().GetString("key")
		flagValue, _ := cmd.Flags().GetString("value")

		if len(args) >= 1 {
			field = args[0]
		} else if flagKey != "" {
			field = flagKey
		} else {
			handleErr(errors.New("key is required as an argument or --key flag"))
		}

		if len(args) >= 2 {
			value = args[1]
		} else if flagValue != "" {
			value = flagValue
		} else {
			handleErr(errors.New("value is required as an argument or --value flag"))
		}

		if _, ok := settings.Lookup(field); !ok {
			handleErr(errUnknownField(field))
		}

		manager := openProfile(cmd)
		handleErr(manager.Document().SetFromString(field, value))
		handleErr(manager.Save())

		fmt.Printf(
			"%s set %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(field),
			style.Fg(color.Yellow)(displayValue(lo.Must(manager.Document().Get(field)))),
		)
	},
}

func init() {
	settingsCmd.AddCommand(settingsResetCmd)

	settingsResetCmd.Flags().StringP("key", "k", "", "The settings field to restore to its default value")
	settingsResetCmd.Flags().BoolP("all", "a", false, "Restore every settings field to its factory default")
	settingsResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	_ = settingsResetCmd.RegisterFlagCompletionFunc("key", completionFieldKeys)
}

// settingsResetCmd restores settings fields to their factory default values.
var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore a settings field to its factory default",
	PreRun: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("key") && !cmd.Flags().Changed("all") {
			handleErr(fmt.Errorf("either --key or --all must be set"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		var (
			field = lo.Must(cmd.Flags().GetString("key"))
			all   = lo.Must(cmd.Flags().GetBool("all"))
		)

		manager := openProfile(cmd)
		doc := manager.Document()

		if all {
			for _, k := range settings.Keys() {
				lo.Must0(doc.Reset(k))
			}
		} else if _, ok := settings.Lookup(field); !ok {
			handleErr(errUnknownField(field))
		} else {
			lo.Must0(doc.Reset(field))
		}

		handleErr(manager.Save())

		if all {
			fmt.Printf(
				"%s reset all settings fields\n",
				style.Fg(color.Green)(icon.Get(icon.Success)),
			)
		} else {
			fmt.Printf(
				"%s reset %s to default value %s\n",
				style.Fg(color.Green)(icon.Get(icon.Success)),
				style.Fg(color.Purple)(field),
				style.Fg(color.Yellow)(displayValue(lo.Must(doc.Get(field)))),
			)
		}
	},
}

func init() {
	settingsCmd.AddCommand(settingsInfoCmd)
	settingsInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Specify the settings fields to describe")
	settingsInfoCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	_ = settingsInfoCmd.RegisterFlagCompletionFunc("key", completionFieldKeys)

	settingsInfoCmd.SetOut(os.Stdout)
}

// prettyField renders a field description block for terminal output.
func prettyField(f settings.Field) string {
	blue := style.Fg(color.Blue)
	return fmt.Sprintf(
		"%s\n%s %s\n%s %s\n%s %s",
		style.Faint(wordwrap.String(f.Description, 80)),
		blue("Key:    "), style.Fg(color.Purple)(f.Key),
		blue("Default:"), style.Fg(color.Yellow)(displayValue(f.Default)),
		blue("Type:   "), f.TypeName(),
	)
}

// settingsInfoCmd displays descriptions and defaults for settings fields. It
// documents the schema and works without an attached profile.
var settingsInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display detailed information and descriptions for settings fields",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			keys   = lo.Must(cmd.Flags().GetStringSlice("key"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			fields = settings.Fields()
		)

		if len(keys) > 0 {
			fields = make([]settings.Field, 0, len(keys))

			for _, k := range keys {
				field, ok := settings.Lookup(k)
				if !ok {
					handleErr(errUnknownField(k))
				}

				fields = append(fields, field)
			}
		}

		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})

		if asJson {
			type fieldInfo struct {
				Key         string `json:"key"`
				Default     any    `json:"default"`
				Description string `json:"description"`
				Type        string `json:"type"`
			}

			infos := lo.Map(fields, func(f settings.Field, _ int) fieldInfo {
				return fieldInfo{
					Key:         f.Key,
					Default:     f.Default,
					Description: f.Description,
					Type:        f.TypeName(),
				}
			})

			encoder := json.NewEncoder(cmd.OutOrStdout())
			lo.Must0(encoder.Encode(infos))
			return
		}

		for i, field := range fields {
			fmt.Print(prettyField(field))

			if i < len(fields)-1 {
				fmt.Println()
				fmt.Println()
			} else {
				fmt.Println()
			}
		}
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsShowCmd.Flags().BoolP("json", "j", false, "Output the raw settings document as JSON")
	settingsShowCmd.SetOut(os.Stdout)
}

// settingsShowCmd displays the profile's full settings document.
var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the profile's full settings document",
	Run: func(cmd *cobra.Command, args []string) {
		doc := openProfile(cmd).Document()

		if lo.Must(cmd.Flags().GetBool("json")) {
			data := lo.Must(json.MarshalIndent(doc, "", "  "))
			cmd.Println(string(data))
			return
		}

		for _, field := range settings.Fields() {
			cmd.Printf(
				"%s %s\n",
				style.Fg(color.Purple)(fmt.Sprintf("%-18s", field.Key)),
				displayValue(field.Value(doc)),
			)
		}
	},
}

func init() {
	settingsCmd.AddCommand(settingsPathCmd)
	settingsPathCmd.SetOut(os.Stdout)
}

// settingsPathCmd displays the settings document location without loading it,
// so it stays usable when the document itself cannot be parsed.
var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Display the location of the profile's settings document",
	Run: func(cmd *cobra.Command, args []string) {
		dir, err := resolveMediaDir(cmd)
		handleErr(err)

		cmd.Println(where.SettingsFile(dir))
	},
}

func init() {
	settingsCmd.AddCommand(settingsSchemaCmd)
	settingsSchemaCmd.SetOut(os.Stdout)
}

// settingsSchemaCmd generates the JSON schema of the settings document.
var settingsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the settings document",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.ExpandedStruct = true

		schema := reflector.Reflect(&settings.Document{})
		for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
			if field, ok := settings.Lookup(pair.Key); ok {
				pair.Value.Description = strings.ReplaceAll(field.Description, "\n", " ")
			}
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
