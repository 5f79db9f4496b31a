// Package cmd implements the command-line interface for incread.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/incread/incread/color"
	"github.com/incread/incread/constant"
	"github.com/incread/incread/host"
	"github.com/incread/incread/icon"
	"github.com/incread/incread/key"
	"github.com/incread/incread/log"
	"github.com/incread/incread/recent"
	"github.com/incread/incread/settings"
	"github.com/incread/incread/style"
	"github.com/incread/incread/util"
	"github.com/incread/incread/version"
	"github.com/incread/incread/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("media-dir", "m", "", "Profile media directory that holds the settings document")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("media-dir", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return recent.List(), cobra.ShellCompDirectiveDefault
	}))

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// session holds the profile attached for the lifetime of one invocation.
var session struct {
	profile *host.Local
	manager *settings.Manager
}

// resolveMediaDir picks the profile media directory: an explicit --media-dir
// flag wins, then the configured default, then the most recently opened one.
func resolveMediaDir(cmd *cobra.Command) (string, error) {
	if dir := lo.Must(cmd.Flags().GetString("media-dir")); dir != "" {
		return dir, nil
	}

	if dir := viper.GetString(key.ProfileMediaDir); dir != "" {
		return dir, nil
	}

	if dir := recent.Latest(); dir.IsPresent() {
		return dir.MustGet(), nil
	}

	return "", errors.New("no profile media directory: pass --media-dir or set " + key.ProfileMediaDir)
}

// openProfile attaches the settings document of the resolved profile, reusing
// the already attached one within the same invocation. Documents that had to
// be reconciled with the current defaults announce it once, on stderr so that
// command output stays pipeable.
func openProfile(cmd *cobra.Command) *settings.Manager {
	if session.manager != nil {
		return session.manager
	}

	dir, err := resolveMediaDir(cmd)
	handleErr(err)

	session.profile = host.NewLocal(dir)
	manager, err := settings.Attach(session.profile)
	handleErr(err)

	if manager.Adjusted() {
		log.Infof("settings document at %s was reconciled with the current defaults", manager.Path())
		_, _ = fmt.Fprintf(os.Stderr, "%s settings were reconciled with the current defaults\n", icon.Get(icon.Warn))
	}

	if err := recent.Remember(dir, 1); err != nil {
		log.Error(err)
	}

	session.manager = manager
	return manager
}

// closeProfile fires the profile unload hooks, which persist pending changes.
func closeProfile() {
	if session.profile != nil {
		session.profile.FireProfileUnload()
	}
}

// rootCmd defines the entry point for the incread application.
var rootCmd = &cobra.Command{
	Use:   constant.Incread,
	Short: "A command-line companion for incremental reading profiles",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A command-line companion for incremental reading profiles"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeProfile()
	},
}

// Execute initializes child command routing and processes the CLI entry point.
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
