// Package cmd implements the dirlog command line.
package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/LixenWraith/dirlog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app holds the state shared by the commands of one command tree.
type app struct {
	v        *viper.Viper
	registry *dirlog.Registry
	log      *slog.Logger
}

// Execute runs the dirlog command line with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree. Each call has its own configuration
// and registry.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "dirlog",
		Short: "Append timestamped lines to a daily log file",
		Long: `dirlog appends priority-filtered, timestamped lines to
<dir>/log_<YYYY-MM-DD>.txt, creating the directory and the file as needed.

Configuration is read from flags, DIRLOG_* environment variables and an
optional config file (toml, yaml or json).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			return a.initConfig()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.registry == nil {
				return nil
			}
			if err := a.registry.Close(); err != nil {
				a.log.Warn("closing log files", "error", err)
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (toml, yaml or json)")
	flags.StringP("dir", "d", "", "log directory (default: directory of the dirlog executable)")
	flags.StringP("level", "l", dirlog.DefaultLevel, "priority threshold: "+strings.Join(dirlog.ValidPriorities(), ", "))
	flags.String("prefix", dirlog.DefaultPrefix, "log file name prefix")
	flags.String("ext", dirlog.DefaultExtension, "log file extension")

	_ = a.v.BindPFlag("config", flags.Lookup("config"))
	_ = a.v.BindPFlag("directory", flags.Lookup("dir"))
	_ = a.v.BindPFlag("level", flags.Lookup("level"))
	_ = a.v.BindPFlag("prefix", flags.Lookup("prefix"))
	_ = a.v.BindPFlag("extension", flags.Lookup("ext"))

	for _, p := range []dirlog.Priority{
		dirlog.PriorityDebug,
		dirlog.PriorityInfo,
		dirlog.PriorityWarn,
		dirlog.PriorityError,
		dirlog.PriorityFatal,
	} {
		rootCmd.AddCommand(newLevelCmd(a, p))
	}
	rootCmd.AddCommand(newRawCmd(a))
	rootCmd.AddCommand(newStatusCmd(a))

	return rootCmd
}

// initConfig layers defaults, the optional config file and DIRLOG_* variables.
func (a *app) initConfig() error {
	dirlog.SetDefaults(a.v)

	a.v.SetEnvPrefix("DIRLOG")
	a.v.AutomaticEnv()

	if cfgFile := a.v.GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// logger returns the logger selected by the current configuration.
func (a *app) logger() (*dirlog.Logger, error) {
	cfg, err := dirlog.DecodeConfig(a.v)
	if err != nil {
		return nil, err
	}
	if a.registry == nil {
		a.registry = dirlog.NewRegistry("")
	}
	return a.registry.GetWithConfig(cfg)
}

// reportFailures writes queued failure diagnostics to the command's log.
func (a *app) reportFailures(l *dirlog.Logger) {
	for _, d := range l.Diagnostics() {
		if d.Failure() {
			a.log.Warn(d.Message, "kind", d.Kind.String(), "path", d.Path, "error", d.Err)
		}
	}
}
