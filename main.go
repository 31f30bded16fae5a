package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"lidar-radar.klederson.com/internal/app"
	"lidar-radar.klederson.com/internal/config"
	"lidar-radar.klederson.com/internal/trial"
)

var (
	opts        = config.Default()
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
	flagTrials  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lidar-radar",
		Short: "Lidar Radar - sliding-window scan buffer with a terminal radar view",
		Long: `Lidar Radar keeps the most recent lidar scans in a fixed-size ring
buffer and draws the latest one on a half-disc ASCII radar.

Scans come from a simulated sensor sweeping a room. Use the arrow keys to
move the distance probe, which reads from the oldest buffered scan.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.Validate()
		},
		RunE: run,
	}

	rootCmd.PersistentFlags().Float64Var(&opts.Resolution, "resolution", config.DefaultResolution, "Degrees between readings")
	rootCmd.PersistentFlags().IntVar(&opts.Capacity, "capacity", config.DefaultCapacity, "Buffer slots (one is always kept free)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", time.Now().UnixNano(), "Random seed for simulated data")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.Flags().Float64Var(&opts.MaxRange, "range", config.MaxRange, "Maximum radar range in meters")
	rootCmd.Flags().DurationVar(&opts.ScanInterval, "interval", config.ScanInterval, "Time between simulated scans")

	trialsCmd := &cobra.Command{
		Use:   "trials",
		Short: "Run randomized push/pop/distance checks against fresh buffers",
		Args:  cobra.NoArgs,
		RunE:  runTrials,
	}
	trialsCmd.Flags().IntVar(&flagTrials, "count", config.TrialCount, "Number of trials to run")
	rootCmd.AddCommand(trialsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger logs to stderr and, when set, the log file. The viewer owns
// the terminal, so it passes console=false.
func newLogger(console bool) (zerolog.Logger, func(), error) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if flagDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var writers []io.Writer
	if console {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339, NoColor: true})
	}
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return zerolog.Nop(), closeFn, fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, zerolog.ConsoleWriter{Out: f, TimeFormat: time.RFC3339, NoColor: true})
		closeFn = func() { _ = f.Close() }
	}
	if len(writers) == 0 {
		return zerolog.Nop(), closeFn, nil
	}
	return zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger(), closeFn, nil
}

func run(cmd *cobra.Command, args []string) error {
	log, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	model, err := app.New(opts, flagSeed, log)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
	)

	// Start the sensor with reference to the tea program
	if err := model.StartSensor(p); err != nil {
		return err
	}

	_, err = p.Run()
	return err
}

func runTrials(cmd *cobra.Command, args []string) error {
	log, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	log.Info().Int("count", flagTrials).Int64("seed", flagSeed).Int("capacity", opts.Capacity).Msg("running trials")
	sum, err := trial.NewRunner(flagSeed, opts.Capacity, cmd.OutOrStdout(), log).Run(cmd.Context(), flagTrials)
	if err != nil {
		return err
	}
	if sum.Errors > 0 {
		log.Warn().Int("errors", sum.Errors).Int("trials", sum.Trials).Msg("trials finished with errors")
	}
	return nil
}
