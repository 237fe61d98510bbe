package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rishabh06704/getdaysleft/internal/app"
	"github.com/rishabh06704/getdaysleft/internal/clipboard"
	"github.com/rishabh06704/getdaysleft/internal/config"
	"github.com/rishabh06704/getdaysleft/internal/countdown"
	"github.com/rishabh06704/getdaysleft/internal/flags"
	"github.com/rishabh06704/getdaysleft/internal/log"
	"github.com/rishabh06704/getdaysleft/internal/share"
	"github.com/rishabh06704/getdaysleft/internal/ui/styles"
	"github.com/rishabh06704/getdaysleft/internal/watcher"
)

func init() {
	// Query the terminal background before Bubble Tea owns stdin, so the
	// OSC 11 reply can't leak into the date field.
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

const envPrefix = "GETDAYSLEFT"

var (
	version    = "dev"
	cfgFile    string
	configPath string
	debug      bool
	logFile    string
	cfg        config.Config

	closeLog = func() {}
)

// Flags shared by the root, link and show commands.
var (
	dateFlag string
	timeFlag string
	urlFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "getdaysleft",
	Short: "Count the days left until a date",
	Long: `getdaysleft counts down to (or up from) a date and time.

Pick a date and an optional time, press enter, and the number of days,
hours, minutes and seconds left is shown and updated every second.
Dates in the past count "days ago" instead.

Examples:
  getdaysleft
  getdaysleft --date 2030-01-01 --time 09:30
  getdaysleft --url "https://getdaysleft.com/?date=2030-01-01&time=09%3A30"`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: prepare,
	PersistentPostRun: func(*cobra.Command, []string) { closeLog() },
	RunE:              runApp,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/getdaysleft/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false,
		"write a debug log (also enabled by "+envPrefix+"_DEBUG)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "debug.log",
		"debug log path")

	addTargetFlags(rootCmd)
}

func addTargetFlags(c *cobra.Command) {
	c.Flags().StringVar(&dateFlag, "date", "", "target date, YYYY-MM-DD")
	c.Flags().StringVar(&timeFlag, "time", "", "target time, HH:MM (default 00:00)")
	c.Flags().StringVar(&urlFlag, "url", "", "share link to read the date and time from")
	c.MarkFlagsMutuallyExclusive("date", "url")
}

// prepare sets up logging, writes a default config on first run, then
// loads and applies the config.
func prepare(cmd *cobra.Command, _ []string) error {
	if err := initLogging(); err != nil {
		return err
	}

	configPath = resolveConfigPath()
	if configPath != "" {
		if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
			// Run with defaults if the file can't be written.
			_ = config.WriteDefaultConfig(configPath)
		}
	}

	loaded, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	if err := styles.ApplyTheme(cfg.Theme.Styles()); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}
	log.Debug(log.CatConfig, "config loaded", "path", configPath, "command", cmd.Name())
	return nil
}

func initLogging() error {
	if !debug && os.Getenv(envPrefix+"_DEBUG") == "" {
		return nil
	}
	closer, err := log.InitWithTeaLog(logFile, "getdaysleft")
	if err != nil {
		return err
	}
	closeLog = closer
	debug = true
	// The log file is appended to; the run id tells sessions apart.
	log.Info(log.CatCLI, "debug logging enabled", "version", version, "run", uuid.NewString())
	return nil
}

func resolveConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// loadConfig reads path over the defaults. Environment variables such as
// GETDAYSLEFT_LOCALE or GETDAYSLEFT_SHARE_ORIGIN override the file.
// A missing file is not an error.
func loadConfig(path string) (config.Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return config.Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var c config.Config
	if err := v.Unmarshal(&c); err != nil {
		return config.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := config.Validate(c); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	d := config.Defaults()
	v.SetDefault("locale", d.Locale)
	v.SetDefault("share.origin", d.Share.Origin)
	v.SetDefault("share.path", d.Share.Path)
	v.SetDefault("ui.show_help", d.UI.ShowHelp)
	v.SetDefault("ui.mouse", d.UI.Mouse)
	v.SetDefault("theme.preset", d.Theme.Preset)
	v.SetDefault("theme.colors", d.Theme.Colors)
	for name, enabled := range d.Flags {
		v.SetDefault("flags."+name, enabled)
	}
}

// targetFromFlags returns the date and time from --url, or --date/--time.
func targetFromFlags() (string, string, error) {
	if urlFlag == "" {
		return dateFlag, timeFlag, nil
	}
	date, clock, err := share.ParseURL(urlFlag)
	if err != nil {
		return "", "", fmt.Errorf("reading --url: %w", err)
	}
	return date, clock, nil
}

// newCopier returns the system clipboard, forced onto OSC 52 when the
// force-osc52 flag is on.
func newCopier(reg *flags.Registry, out io.Writer) *clipboard.System {
	c := clipboard.NewSystem(out)
	if reg.Enabled(flags.FlagForceOSC52) {
		c.Remote = func() bool { return true }
	}
	return c
}

func newSettings(c config.Config, printers *countdown.PrinterCache, out io.Writer) app.Settings {
	return app.Settings{
		Formatter: countdown.NewFormatter(c.LocaleContext(config.DetectHostLocale), printers),
		Linker: share.Linker{
			Origin: c.Share.Origin,
			Path:   c.Share.Path,
			Copier: newCopier(flags.New(c.Flags), out),
		},
	}
}

func runApp(_ *cobra.Command, _ []string) error {
	date, clock, err := targetFromFlags()
	if err != nil {
		return err
	}

	printers := countdown.NewPrinterCache()
	// OSC 52 goes to stderr; stdout belongs to the renderer.
	settings := newSettings(cfg, printers, os.Stderr)

	var w *watcher.Watcher
	if configPath != "" {
		w = startWatcher(configPath)
	}
	if w != nil {
		defer func() { _ = w.Stop() }()
	}

	reload := func() (app.Settings, error) {
		c, err := loadConfig(configPath)
		if err != nil {
			return app.Settings{}, err
		}
		if err := styles.ApplyTheme(c.Theme.Styles()); err != nil {
			return app.Settings{}, err
		}
		return newSettings(c, printers, os.Stderr), nil
	}

	zone.NewGlobal()
	model := app.New(app.Options{
		Date:      date,
		Time:      clock,
		AutoStart: flags.New(cfg.Flags).Enabled(flags.FlagAutoStart),
		Settings:  settings,
		ShowHelp:  cfg.UI.ShowHelp,
		Mouse:     cfg.UI.Mouse,
		Debug:     debug,
		Watcher:   w,
		Reload:    reload,
	})
	defer model.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// startWatcher watches the config file. Live reload is optional, so
// failures are logged and nil is returned.
func startWatcher(path string) *watcher.Watcher {
	w, err := watcher.New(watcher.DefaultConfig(path))
	if err != nil {
		log.ErrorErr(log.CatWatcher, "creating config watcher", err)
		return nil
	}
	if err := w.Start(); err != nil {
		log.ErrorErr(log.CatWatcher, "starting config watcher", err, "path", path)
		_ = w.Stop()
		return nil
	}
	return w
}

// Execute runs the root command
func Execute() error {
	return run()
}

// reportedError is an error the display already showed to the user.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// run executes the root command and prints any error not yet shown.
func run() error {
	err := rootCmd.Execute()
	var reported reportedError
	if err != nil && !errors.As(err, &reported) {
		rootCmd.PrintErrln("Error:", err)
	}
	return err
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
