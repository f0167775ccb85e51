// Package main provides the CLI entrypoint for numdrill.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/numdrill/internal/audio"
	"github.com/verte-zerg/numdrill/internal/config"
	"github.com/verte-zerg/numdrill/internal/drill"
	"github.com/verte-zerg/numdrill/internal/generator"
	"github.com/verte-zerg/numdrill/internal/model"
	"github.com/verte-zerg/numdrill/internal/tui"
)

const (
	defaultDigits = 1
	defaultTrials = 10
	defaultVolume = 1.0
)

var (
	drillDigits int
	drillTrials int
	drillVolume float64
	drillVoice  string
	drillRate   int
	drillEngine string
	drillMute   bool

	voicesEngine string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "numdrill",
		Short:         "Spoken number dictation drill",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runDrillCmd,
	}

	rootCmd.Flags().IntVar(&drillDigits, "digits", defaultDigits, "digits per target (1-3)")
	rootCmd.Flags().IntVar(&drillTrials, "trials", defaultTrials, "trials per session")
	rootCmd.Flags().Float64Var(&drillVolume, "volume", defaultVolume, "speech volume (0-1)")
	rootCmd.Flags().StringVar(&drillVoice, "voice", "", "preferred voice name or pattern")
	rootCmd.Flags().IntVar(&drillRate, "rate", 0, "speech rate in words per minute (0 = engine default)")
	rootCmd.Flags().StringVar(&drillEngine, "engine", "", "text-to-speech engine (default: autodetect)")
	rootCmd.Flags().BoolVar(&drillMute, "mute", false, "run without audio")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVoicesCmd())

	return rootCmd
}

func runDrillCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "digits", &drillDigits, fileCfg.Drill.Digits)
	applyIntConfig(cmd, "trials", &drillTrials, fileCfg.Drill.Trials)
	applyFloatConfig(cmd, "volume", &drillVolume, fileCfg.Drill.Volume)
	applyStringConfig(cmd, "voice", &drillVoice, fileCfg.Drill.Voice)
	applyIntConfig(cmd, "rate", &drillRate, fileCfg.Drill.Rate)
	applyStringConfig(cmd, "engine", &drillEngine, fileCfg.Drill.Engine)
	applyBoolConfig(cmd, "mute", &drillMute, fileCfg.Drill.Mute)

	cfg := model.Config{
		Digits: drillDigits,
		Trials: drillTrials,
		Volume: drillVolume,
		Voice:  drillVoice,
		Rate:   drillRate,
		Engine: drillEngine,
		Mute:   drillMute,
	}

	if err := validateConfig(cfg); err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("numdrill requires an interactive terminal")
	}

	sink := newSink(cfg)
	session := drill.NewSession(cfg, generator.New())
	model := tui.NewModel(session, sink)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// newSink degrades to silence when no engine is available; the drill still
// runs with on-screen feedback only.
func newSink(cfg model.Config) audio.Sink {
	if cfg.Mute {
		return audio.NopSink{}
	}
	sink, err := audio.NewCommandSink(cfg)
	if err != nil {
		logErrf("%v; running in silent mode\n", err)
		return audio.NopSink{}
	}
	return sink
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newVoicesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "voices",
		Short: "List voices reported by the speech engine",
		Args:  cobra.NoArgs,
		RunE:  runVoicesCmd,
	}
	cmd.Flags().StringVar(&voicesEngine, "engine", "", "text-to-speech engine (default: autodetect)")
	return cmd
}

func runVoicesCmd(cmd *cobra.Command, _ []string) error {
	sink, err := audio.NewCommandSink(model.Config{Engine: voicesEngine, Volume: defaultVolume})
	if err != nil {
		return err
	}
	if err := sink.Probe(); err != nil {
		return fmt.Errorf("failed to probe voices: %w", err)
	}
	voices := sink.Voices()
	if len(voices) == 0 {
		return fmt.Errorf("engine %s reported no voices", sink.Engine())
	}
	for _, v := range voices {
		line := v.Name
		if v.Lang != "" {
			line += "\t" + v.Lang
		}
		if v.Gender != "" {
			line += "\t" + v.Gender
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# numdrill configuration
# Uncomment a value to enable it. CLI flags override config values.

[drill]
# digits = %d             # Digits per target (1-3)
# trials = %d            # Trials per session
# volume = %.1f           # Speech volume (0-1)
# voice = ""             # Preferred voice name or pattern
# rate = 0               # Speech rate in words per minute (0 = engine default)
# engine = ""            # say, espeak-ng, espeak, or spd-say (default: autodetect)
# mute = false           # Run without audio
`,
		defaultDigits,
		defaultTrials,
		defaultVolume,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Digits < model.MinDigits || cfg.Digits > model.MaxDigits {
		return fmt.Errorf("--digits must be between %d and %d", model.MinDigits, model.MaxDigits)
	}
	if cfg.Trials <= 0 {
		return fmt.Errorf("--trials must be > 0")
	}
	if cfg.Volume < 0 || cfg.Volume > 1 {
		return fmt.Errorf("--volume must be between 0 and 1")
	}
	if cfg.Rate < 0 {
		return fmt.Errorf("--rate must be >= 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
