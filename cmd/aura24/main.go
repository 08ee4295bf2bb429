package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/aura24/internal/app"
	"github.com/san-kum/aura24/internal/clock"
	"github.com/san-kum/aura24/internal/config"
	"github.com/san-kum/aura24/internal/export"
	"github.com/san-kum/aura24/internal/logging"
	"github.com/san-kum/aura24/internal/models"
	"github.com/san-kum/aura24/internal/oracle"
	"github.com/san-kum/aura24/internal/sim"
	"github.com/san-kum/aura24/internal/tui"
	"github.com/san-kum/aura24/internal/viz"
)

var (
	configFile string
	configOut  string
	event      string
	seed       int64
	logFile    string
	verbose    bool
	provider   string
	batches    int
	svgPath    string

	cfg *config.Config
	log = zap.NewNop()
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "aura24",
		Short:             "a 24 hour presence that dissolves at midnight",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) { _ = log.Sync() },
		RunE:              runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&configOut, "config-out", "", "write the effective config (yaml, no credentials) to this path")
	rootCmd.PersistentFlags().StringVar(&event, "event", "", "event preset")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&provider, "provider", "", "generator provider (gemini, fallback, static)")

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "simulate nearby souls and summarize them",
		RunE:  runScan,
	}
	scanCmd.Flags().IntVar(&batches, "batches", 250, "number of batches")
	scanCmd.Flags().StringVar(&svgPath, "svg", "", "also write one batch as a radar snapshot (svg)")

	oracleCmd := &cobra.Command{
		Use:   "oracle",
		Short: "ask the generator for one oracle prompt",
		RunE:  runOracle,
	}

	ritualCmd := &cobra.Command{
		Use:   "ritual",
		Short: "ask the generator for one shared ritual",
		RunE:  runRitual,
	}

	countdownCmd := &cobra.Command{
		Use:   "countdown",
		Short: "time left until the cycle ends",
		RunE:  runCountdown,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list event presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tOPENS\tENDS")
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s %d\t%s %d 23:59:59\n", name, p.Month, p.StartDay, p.Month, p.Day)
			}
			w.Flush()
		},
	}

	rootCmd.AddCommand(scanCmd, oracleCmd, ritualCmd, countdownCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration, lets flags win over it and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.LoadWithEnv(configFile)
	if err != nil {
		return err
	}
	if event != "" {
		if err := cfg.UsePreset(event); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("seed") {
		cfg.Sim.Seed = seed
	}
	if provider != "" {
		cfg.Generator.Provider = provider
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if configOut != "" {
		if err := config.Save(configOut, cfg); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
	}

	log, err = logging.New(logging.Options{File: cfg.Log.File, Level: cfg.Log.Level, Verbose: verbose})
	if err != nil {
		return err
	}
	viz.SetTheme(cfg.UI.Theme)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	machine := newMachine(cfg, time.Now().In(loc), loc, log)
	o, err := newOracle(ctx)
	if err != nil {
		return err
	}

	log.Info("starting",
		zap.String("event", cfg.Event.Name),
		zap.String("phase", machine.Phase().String()),
		zap.String("generator", o.SourceName()))

	m := tui.New(machine, sim.NewSeeded(cfg.Sim.Seed, cfg.Sim.Delay), o, tui.WithLogger(log))
	return tui.Run(m)
}

// newMachine opens the run on the locked screen when the activation window is
// enforced and now lies outside it.
func newMachine(c *config.Config, now time.Time, loc *time.Location, l *zap.Logger) *app.Machine {
	cutoff := clock.CutoffFor(now, c.Event.Month, c.Event.Day, loc)
	opts := []app.Option{
		app.OnTransition(func(from, to app.Phase) {
			l.Debug("phase", zap.Stringer("from", from), zap.Stringer("to", to))
		}),
	}
	if c.Activation.Enforce {
		w := clock.WindowFor(now, c.Event.Month, c.Activation.StartDay, c.Event.Day, loc)
		if !w.Contains(now) {
			opts = append(opts, app.StartLocked())
		}
	}
	return app.New(clock.NewCountdown(cutoff), opts...)
}

func newOracle(ctx context.Context) (*oracle.Oracle, error) {
	src, err := oracle.Open(ctx, oracle.Settings{
		Provider: cfg.Generator.Provider,
		APIKey:   cfg.Credential(),
		Model:    cfg.Generator.Model,
	}, log)
	if err != nil {
		return nil, err
	}
	return oracle.New(src, oracle.WithTimeout(cfg.Generator.Timeout), oracle.WithLogger(log)), nil
}

func runScan(cmd *cobra.Command, args []string) error {
	if batches < 1 {
		return fmt.Errorf("batches must be positive, got %d", batches)
	}
	s := sim.NewSeeded(cfg.Sim.Seed, 0)
	st := s.Scan(batches)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BATCHES\tSOULS\tDIST MIN\tDIST MEAN\tDIST MAX\tAFFINITY\tREACHABLE\tRESONANT")
	fmt.Fprintf(w, "%d\t%d\t%.1fm\t%.1fm\t%.1fm\t%.1f%%\t%.1f%%\t%.1f%%\n",
		st.Batches, st.Souls,
		st.MinDistance, st.MeanDistance, st.MaxDistance,
		st.MeanAffinity,
		100*st.ReachableShare(), 100*st.ResonantShare())
	w.Flush()
	fmt.Println()

	graph := asciigraph.Plot(st.HistogramSeries(),
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("affinity histogram (tenths)"),
	)
	fmt.Println(graph)

	if svgPath != "" {
		svg := export.RadarSVG(models.DefaultProfile(), s.Simulate(), 20, 4)
		if err := export.WriteFile(svgPath, svg); err != nil {
			return err
		}
		fmt.Printf("\nradar snapshot: %s\n", svgPath)
	}
	return nil
}

func runOracle(cmd *cobra.Command, args []string) error {
	o, err := newOracle(context.Background())
	if err != nil {
		return err
	}
	p := o.FetchOraclePrompt(context.Background())
	fmt.Printf("%s\n\n  \"%s\"\n", o.SourceName(), p.Phrase)
	return nil
}

func runRitual(cmd *cobra.Command, args []string) error {
	o, err := newOracle(context.Background())
	if err != nil {
		return err
	}
	r := o.FetchRitual(context.Background())
	fmt.Printf("%s\n\n  %s\n  %s\n", o.SourceName(), r.Title, r.Instructions)
	return nil
}

func runCountdown(cmd *cobra.Command, args []string) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	now := time.Now().In(loc)
	cutoff := clock.CutoffFor(now, cfg.Event.Month, cfg.Event.Day, loc)
	cd := clock.NewCountdown(cutoff)
	if cd.Expired(now) {
		fmt.Printf("%s  the cycle has ended\n", clock.ZeroDisplay)
		return nil
	}
	fmt.Printf("%s  until %s\n", cd.Format(now), cutoff.Format(time.RFC1123))
	return nil
}
