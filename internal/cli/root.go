package cli

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/arthur-debert/appsel/internal/version"
	"github.com/arthur-debert/appsel/pkg/config"
	"github.com/arthur-debert/appsel/pkg/core"
	"github.com/arthur-debert/appsel/pkg/errors"
	"github.com/arthur-debert/appsel/pkg/filesystem"
	"github.com/arthur-debert/appsel/pkg/logging"
	"github.com/arthur-debert/appsel/pkg/paths"
	"github.com/arthur-debert/appsel/pkg/topics"
	"github.com/arthur-debert/appsel/pkg/types"
	"github.com/arthur-debert/appsel/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// Options lets tests run the CLI against a fake system
type Options struct {
	// FS defaults to the OS filesystem
	FS types.FS
	// Dirs defaults to the XDG directories of the running session
	Dirs *paths.Dirs
	// LogOutput is the console log destination, os.Stderr by default
	LogOutput io.Writer
}

// app is the state shared by the commands of one invocation
type app struct {
	opts Options

	verbosity  int
	configPath string
	format     string

	loggingReady bool
	cfg          *config.Config
	session      *core.Session
	topics       *topics.TopicManager
}

// Execute runs appsel with the process arguments and returns its exit code
func Execute() int {
	return run(Options{}, os.Args[1:], os.Stdout, os.Stderr)
}

func run(opts Options, args []string, stdout, stderr io.Writer) int {
	a := &app{opts: opts}
	rootCmd := a.rootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		a.reportError(stderr, err)
		if errors.GetErrorCode(err) == errors.ErrUnknown {
			fmt.Fprintf(stderr, MsgUsageHint, rootCmd.Name())
		}
		return 1
	}
	return 0
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithOptions(Options{})
}

// NewRootCmdWithOptions creates the root command over opts
func NewRootCmdWithOptions(opts Options) *cobra.Command {
	a := &app{opts: opts}
	return a.rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "appsel",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.loadConfig(); err != nil {
				a.setupLogging(false)
				return err
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help and report incorrect usage
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "", MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return config.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{ID: "query", Title: "QUERIES:"})
	rootCmd.AddGroup(&cobra.Group{ID: "edit", Title: "CHANGES:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(a.newTypesCmd())
	rootCmd.AddCommand(a.newShowCmd())
	rootCmd.AddCommand(a.newAppsCmd())
	rootCmd.AddCommand(a.newAppCmd())
	rootCmd.AddCommand(a.newPathsCmd())
	rootCmd.AddCommand(a.newSetDefaultCmd())
	rootCmd.AddCommand(a.newClearDefaultCmd())
	rootCmd.AddCommand(a.newAddCmd())
	rootCmd.AddCommand(a.newRemoveCmd())
	rootCmd.AddCommand(a.newDisableCmd())
	rootCmd.AddCommand(a.newEnableCmd())
	rootCmd.AddCommand(a.newSetDefaultsByAppCmd())
	rootCmd.AddCommand(a.newConfigCmd())
	rootCmd.AddCommand(a.newTopicsCmd())
	rootCmd.AddCommand(a.newVersionCmd())
	rootCmd.AddCommand(a.newCompletionCmd())

	// Topic-based help system, from the topics embedded in the binary
	topicFS, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		opts := topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.RendererFor(ui.DetectFormat(os.Stdout) == ui.FormatTerminal),
		}
		if tm, err := topics.Initialize(rootCmd, topicFS, opts); err == nil {
			a.topics = tm
		}
	}

	return rootCmd
}

// loadConfig reads the configuration once and sets up logging from it
func (a *app) loadConfig() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}

	overrides := map[string]interface{}{}
	if a.format != "" {
		overrides["output.format"] = a.format
	}
	cfg, err := config.LoadWithOverrides(a.configFile(), overrides)
	if err != nil {
		return nil, err
	}
	a.cfg = cfg
	a.setupLogging(cfg.Logging.File)
	return cfg, nil
}

func (a *app) setupLogging(file bool) {
	if a.loggingReady {
		return
	}
	logging.SetupLoggerWithOptions(logging.Options{
		Verbosity: a.verbosity,
		File:      file,
		Console:   a.opts.LogOutput,
	})
	a.loggingReady = true
}

func (a *app) configFile() string {
	if a.configPath != "" {
		return a.configPath
	}
	return a.dirs().ConfigFile()
}

func (a *app) dirs() paths.Dirs {
	if a.opts.Dirs != nil {
		return *a.opts.Dirs
	}
	return paths.FromEnvironment()
}

func (a *app) fs() types.FS {
	if a.opts.FS != nil {
		return a.opts.FS
	}
	return filesystem.NewOS()
}

// openSession loads every association source, once per invocation
func (a *app) openSession() (*core.Session, error) {
	if a.session != nil {
		return a.session, nil
	}
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	dirs := a.dirs()
	a.session = core.Open(core.Options{
		Config:     cfg,
		FS:         a.fs(),
		Dirs:       &dirs,
		ConfigPath: a.configFile(),
	})
	return a.session, nil
}

// renderer picks the output format: --format, then the configuration
func (a *app) renderer(w io.Writer) (ui.Renderer, error) {
	name := a.format
	if name == "" && a.cfg != nil {
		name = a.cfg.Output.Format
	}
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid output format").
			WithDetail("format", name)
	}
	return ui.NewRenderer(format, w)
}

func (a *app) render(cmd *cobra.Command, result interface{}) error {
	r, err := a.renderer(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return r.RenderResult(result)
}

func (a *app) reportError(w io.Writer, err error) {
	r, rerr := a.renderer(w)
	if rerr != nil {
		r, _ = ui.NewRenderer(ui.FormatText, w)
	}
	if rerr := r.RenderError(err); rerr != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}
