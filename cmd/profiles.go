// Package cmd implements the command-line interface for incread.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/incread/incread/color"
	"github.com/incread/incread/icon"
	"github.com/incread/incread/recent"
	"github.com/incread/incread/style"
	"github.com/incread/incread/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(profilesCmd)
}

// profilesCmd manages the remembered profiles.
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage the remembered profiles",
}

func init() {
	profilesCmd.AddCommand(profilesListCmd)
	profilesListCmd.Flags().BoolP("raw", "r", false, "Print the media directories only")
	profilesListCmd.SetOut(os.Stdout)
}

// profilesListCmd displays the remembered profiles, most used first.
var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display the remembered profiles",
	Run: func(cmd *cobra.Command, args []string) {
		dirs := recent.List()

		if lo.Must(cmd.Flags().GetBool("raw")) {
			for _, dir := range dirs {
				cmd.Println(dir)
			}
			return
		}

		if len(dirs) == 0 {
			cmd.Println("No remembered profiles")
			return
		}

		cmd.Printf(
			"%s %s\n\n",
			icon.Get(icon.Profile),
			util.Quantify(len(dirs), "remembered profile", "remembered profiles"),
		)
		for _, dir := range dirs {
			cmd.Printf(
				"%s %s\n",
				style.Fg(color.Purple)(fmt.Sprintf("%-20s", recent.Name(dir))),
				style.Faint(dir),
			)
		}
	},
}

func init() {
	profilesCmd.AddCommand(profilesLatestCmd)
	profilesLatestCmd.SetOut(os.Stdout)
}

// profilesLatestCmd displays the most recently opened profile, the one
// commands fall back to when no media directory is configured.
var profilesLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Display the most recently opened profile",
	Run: func(cmd *cobra.Command, args []string) {
		latest := recent.Latest()
		if latest.IsAbsent() {
			handleErr(errors.New("no remembered profiles"))
		}

		cmd.Println(latest.MustGet())
	},
}

func init() {
	profilesCmd.AddCommand(profilesForgetCmd)

	profilesForgetCmd.Flags().StringP("dir", "d", "", "The media directory or name of the profile to forget")
	profilesForgetCmd.Flags().BoolP("all", "a", false, "Forget every remembered profile")
	profilesForgetCmd.MarkFlagsMutuallyExclusive("dir", "all")

	_ = profilesForgetCmd.RegisterFlagCompletionFunc("dir", func(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return recent.List(), cobra.ShellCompDirectiveNoFileComp
	})
}

// profilesForgetCmd drops profiles from the remembered list.
var profilesForgetCmd = &cobra.Command{
	Use:   "forget",
	Short: "Drop a profile from the remembered list",
	PreRun: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("dir") && !cmd.Flags().Changed("all") {
			handleErr(fmt.Errorf("either --dir or --all must be set"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("all")) {
			for _, dir := range recent.List() {
				handleErr(recent.Forget(dir))
			}

			fmt.Printf("%s forgot all profiles\n", style.Fg(color.Green)(icon.Get(icon.Success)))
			return
		}

		dir := lo.Must(cmd.Flags().GetString("dir"))
		target := recent.Suggest(dir)
		if target.IsAbsent() {
			handleErr(fmt.Errorf("no remembered profile matches %s", style.Fg(color.Red)(dir)))
		}

		handleErr(recent.Forget(target.MustGet()))
		fmt.Printf(
			"%s forgot %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(target.MustGet()),
		)
	},
}
