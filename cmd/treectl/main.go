// Package main provides the treectl command-line entry point. treectl runs
// object-tree control commands either one at a time from argv or line by
// line from a script or stdin.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"treectl/internal/commands"
	_ "treectl/internal/commands/builtin" // Import for side effects (init functions)
	"treectl/internal/config"
	"treectl/internal/logger"
	"treectl/internal/objtree"
	"treectl/internal/output"
	"treectl/internal/session"
	"treectl/internal/shell"
	"treectl/internal/version"
)

var (
	logLevel   string
	logFile    string
	configFile string
	outputMode string
	testMode   bool
	quiet      bool
	detailed   bool

	exitStatus = commands.StatusSuccess
)

var rootCmd = &cobra.Command{
	Use:   "treectl",
	Short: "Control a runtime object tree with typed commands",
	Long: `treectl executes control commands against an object tree of typed attributes.
Arguments are plain tokens; each command converts them to the types it needs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var runCmd = &cobra.Command{
	Use:   "run COMMAND [ARGS...]",
	Short: "Execute a single command",
	Long: `Execute one command and exit with its status:
0 success, 2 unknown command, 3 invalid argument, 4 attribute not found,
6 read-only, 7 too many arguments, 9 missing arguments, 1 anything else.`,
	Args:              cobra.MinimumNArgs(1),
	PersistentPreRunE: prepare,
	RunE:              runCommand,
}

var shellCmd = &cobra.Command{
	Use:               "shell [FILE]",
	Short:             "Execute commands line by line from FILE or stdin",
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: prepare,
	RunE:              runShell,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		if detailed {
			fmt.Println(version.GetDetailedVersion())
			return
		}
		fmt.Println(version.GetFormattedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if exitStatus == commands.StatusSuccess {
			exitStatus = commands.StatusUnknownError
		}
	}
	os.Exit(exitStatus)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: warn]")
	flags.StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	flags.StringVar(&configFile, "config", "", "Config file [default: $XDG_CONFIG_HOME/treectl/treectl.yaml]")
	flags.StringVar(&outputMode, "output", "", "Output mode (auto|styled|plain|json)")
	flags.BoolVar(&testMode, "test-mode", false, "Run in deterministic test mode")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Suppress command output; report results through the exit status only")

	// Tokens after the command name belong to the command, even "-1".
	runCmd.Flags().SetInterspersed(false)
	versionCmd.Flags().BoolVar(&detailed, "detailed", false, "Show build details")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(versionCmd)
}

var sess *session.Session

// newViper returns a fresh viper instance bound to the global flags.
func newViper() (*viper.Viper, error) {
	v := viper.New()
	flags := rootCmd.PersistentFlags()
	for _, name := range []string{"log-level", "log-file", "output"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return nil, fmt.Errorf("error binding %s flag: %w", name, err)
		}
	}
	return v, nil
}

// prepare loads configuration, configures logging and builds the session,
// applying configured attributes and autostart commands.
func prepare(_ *cobra.Command, _ []string) error {
	v, err := newViper()
	if err != nil {
		return err
	}
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return err
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile, testMode); err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}

	configLog := logger.NewStyledLogger("Config")
	if cfg.File != "" {
		configLog.Debug("Loaded config file", "path", cfg.File)
	} else {
		configLog.Debug("No config file found")
	}

	options := []output.Option{output.WithMode(cfg.OutputMode())}
	if testMode {
		options = append(options, output.TestMode())
	}
	if quiet {
		options = append(options, output.Silent())
	}

	sess = session.New(objtree.NewDefaultTree(), output.NewPrinter(options...))
	logger.Info("Session created", "session", sess.ID())

	if err := cfg.Apply(sess.Root()); err != nil {
		logger.Error("Config attributes rejected", "error", err)
		exitStatus = commands.ExitStatus(err)
		return err
	}
	if err := shell.RunLines(cfg.Autostart, commands.GetGlobalRegistry(), sess); err != nil {
		logger.Error("Autostart failed", "error", err)
		exitStatus = commands.ExitStatus(err)
		return err
	}
	return nil
}

func runCommand(_ *cobra.Command, args []string) error {
	err := commands.GetGlobalRegistry().Execute(args, sess)
	exitStatus = commands.ExitStatus(err)
	return err
}

func runShell(_ *cobra.Command, args []string) error {
	var in io.Reader = os.Stdin
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	status, err := shell.Run(ctx, in, commands.GetGlobalRegistry(), sess)
	exitStatus = status
	return err
}
