package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/Zyko0/go-sdl3/bin/binimg"
	"github.com/Zyko0/go-sdl3/bin/binsdl"
	"github.com/Zyko0/go-sdl3/bin/binttf"
	"github.com/Zyko0/go-sdl3/sdl"
	"github.com/Zyko0/go-sdl3/ttf"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/AndHofma/musical-ear-test/internal/config"
	"github.com/AndHofma/musical-ear-test/internal/met"
	"github.com/AndHofma/musical-ear-test/internal/stimuli"
	"github.com/AndHofma/musical-ear-test/internal/ui"
)

func init() {
	// SDL3 requires the main thread for window and event handling.
	runtime.LockOSThread()
}

var (
	configPath string
	verbose    bool

	audioDir      string
	resultsDir    string
	windowed      bool
	questionnaire bool
	showScore     bool
	maxTestTrials int
	triggerDevice string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "met",
	Short: "Musical Ear Test - auditory discrimination experiment",
	Long: `met administers the Musical Ear Test: the subject hears pairs of
short melodies and rhythms and judges whether the two members of each
pair are identical. Responses are written progressively to timestamped
CSV files in the results directory.

Run without arguments to start a full session. Use "met setup" to pick
directories and screen options, "met check" to validate the stimulus
inventory without opening a window.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runExperiment,
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Open the setup screen and save the configuration",
	RunE:  runSetup,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the stimulus inventory without starting a session",
	RunE:  runCheck,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	rootCmd.Flags().StringVar(&audioDir, "audio-dir", "", "Override the stimulus directory")
	rootCmd.Flags().StringVar(&resultsDir, "results-dir", "", "Override the results directory")
	rootCmd.Flags().BoolVar(&windowed, "windowed", false, "Run in a window instead of fullscreen")
	rootCmd.Flags().BoolVar(&questionnaire, "questionnaire", false, "Show the musicality questionnaire first")
	rootCmd.Flags().BoolVar(&showScore, "show-score", false, "Show the per-part score before the end screen")
	rootCmd.Flags().IntVar(&maxTestTrials, "max-test-trials", 0, "Cap test trials per part (0 = all)")
	rootCmd.Flags().StringVar(&triggerDevice, "trigger", "", "DLP-IO8-G serial device for marker output")

	checkCmd.Flags().StringVar(&audioDir, "audio-dir", "", "Override the stimulus directory")

	rootCmd.AddCommand(setupCmd, checkCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if audioDir != "" {
		cfg.AudioDir = audioDir
	}
	if resultsDir != "" {
		cfg.ResultsDir = resultsDir
	}
	if cmd.Flags().Changed("windowed") {
		cfg.Screen.Fullscreen = !windowed
	}
	if cmd.Flags().Changed("questionnaire") {
		cfg.Questionnaire.Enabled = questionnaire
	}
	if cmd.Flags().Changed("show-score") {
		cfg.ShowScore = showScore
	}
	if cmd.Flags().Changed("max-test-trials") {
		cfg.Trial.MaxTestTrials = maxTestTrials
	}
	if triggerDevice != "" {
		cfg.Trigger.Device = triggerDevice
	}
	if verbose {
		cfg.Log.Verbose = true
	}
	return cfg, nil
}

func runExperiment(cmd *cobra.Command, args []string) error {
	defer binsdl.Load().Unload()
	defer binimg.Load().Unload()
	defer binttf.Load().Unload()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return met.Run(cfg, logger)
}

func runSetup(cmd *cobra.Command, args []string) error {
	defer binsdl.Load().Unload()
	defer binttf.Load().Unload()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("SDL init: %w", err)
	}
	defer sdl.Quit()
	if err := ttf.Init(); err != nil {
		return fmt.Errorf("TTF init: %w", err)
	}
	defer ttf.Quit()

	u, err := ui.Setup("Musical Ear Test - Setup", 800, 760, false,
		cfg.Font.File, 18,
		sdl.Color{R: 240, G: 240, B: 240, A: 255},
		sdl.Color{R: 0, G: 0, B: 0, A: 255})
	if err != nil {
		return err
	}
	defer u.Destroy()

	if !u.SetupForm(cfg) {
		logger.Info("setup cancelled, config unchanged")
		return nil
	}
	if err := cfg.Save(configPath); err != nil {
		return err
	}
	logger.Info("config saved", zap.String("path", configPath))
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	inv, err := stimuli.Scan(cfg.AudioDir)
	if err != nil {
		return err
	}

	for _, part := range stimuli.Parts {
		set := inv.ForPart(part)
		fmt.Printf("%-8s %d examples, %d test trials\n", part, len(set.Examples), len(set.Tests))
	}

	total := len(inv.Paths())
	if total == 0 {
		return fmt.Errorf("no stimuli found in %s", cfg.AudioDir)
	}
	fmt.Printf("%d stimulus files OK\n", total)
	return nil
}
