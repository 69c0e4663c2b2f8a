package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/san-kum/world2/internal/analysis"
	"github.com/san-kum/world2/internal/chart"
	"github.com/san-kum/world2/internal/config"
	"github.com/san-kum/world2/internal/sim"
	"github.com/san-kum/world2/internal/tui"
	"github.com/san-kum/world2/internal/world"
)

var version = "dev"

var (
	verbose      bool
	figure       string
	scenarioFile string
	presetName   string
	showChart    bool
	field        string
	plotWidth    int
	plotHeight   int
	writePath    string
)

// main is the entry point for the world2 CLI; it registers commands and
// flags and renders the standard run when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "world2",
		Short: "Forrester's world model in the terminal",
		RunE:  runFigure,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		})))
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the model and print a figure",
		RunE:  runFigure,
	}
	runCmd.Flags().StringVar(&figure, "figure", "4-1", "figure to print")
	runCmd.Flags().StringVar(&scenarioFile, "scenario", "", "scenario file path (yaml)")
	runCmd.Flags().StringVar(&presetName, "preset", "", "use preset scenario")
	runCmd.Flags().BoolVar(&showChart, "chart", true, "print the time plot")

	figuresCmd := &cobra.Command{
		Use:   "figures",
		Short: "list book figures",
		RunE:  listFigures,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot one variable against time",
		RunE:  plotField,
	}
	plotCmd.Flags().StringVar(&field, "field", "P", "variable to plot")
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 10, "plot height")
	plotCmd.Flags().StringVar(&scenarioFile, "scenario", "", "scenario file path (yaml)")
	plotCmd.Flags().StringVar(&presetName, "preset", "", "use preset scenario")

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list preset scenarios",
		RunE:  listScenarios,
	}
	scenariosCmd.Flags().StringVar(&writePath, "write", "", "write a starter scenario file")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "summarize a run",
		RunE:  runStats,
	}
	statsCmd.Flags().StringVar(&scenarioFile, "scenario", "", "scenario file path (yaml)")
	statsCmd.Flags().StringVar(&presetName, "preset", "", "use preset scenario")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch the run unfold in a TUI",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := resolveScenario(cmd)
			if err != nil {
				return err
			}
			return tui.Run(sc.Constants)
		},
	}
	liveCmd.Flags().StringVar(&scenarioFile, "scenario", "", "scenario file path (yaml)")
	liveCmd.Flags().StringVar(&presetName, "preset", "", "use preset scenario")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	rootCmd.AddCommand(runCmd, figuresCmd, plotCmd, scenariosCmd, statsCmd, liveCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveScenario layers preset, scenario file, and the figure flag in
// increasing precedence.
func resolveScenario(cmd *cobra.Command) (config.Scenario, error) {
	sc := *config.Default()

	if presetName != "" {
		p := config.GetPreset(presetName)
		if p == nil {
			return sc, fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets())
		}
		sc = *p
	}

	if scenarioFile != "" {
		loaded, err := config.Load(scenarioFile)
		if err != nil {
			return sc, fmt.Errorf("failed to load scenario: %w", err)
		}
		sc = *loaded
	}

	if cmd.Flags().Changed("figure") {
		sc.Figure = figure
	}

	return sc, nil
}

func runFigure(cmd *cobra.Command, args []string) error {
	sc, err := resolveScenario(cmd)
	if err != nil {
		return err
	}

	charts := chart.NewRegistry()
	fig, err := charts.Get(sc.Figure)
	if err != nil {
		return err
	}

	// A bare --figure plays the figure's own scenario; a preset or file
	// supplies its own constants.
	c := sc.Constants
	if presetName == "" && scenarioFile == "" {
		c = fig.Constants()
	}
	slog.Debug("scenario resolved", "figure", fig.Name, "nrun1", c.NRUN1, "poln1", c.POLN1)

	history, runErr := sim.New(world.New(c)).Run(context.Background())
	if runErr != nil && len(history) == 0 {
		return runErr
	}
	slog.Debug("run complete", "ticks", len(history), "end", history[len(history)-1].Time)

	if showChart {
		out, err := fig.Plot().Render(history)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n\n", fig.Title)
		fmt.Println(out)
		if fig.Caption != "" {
			fmt.Printf("\n%s\n", fig.Caption)
		}
	} else {
		last := history[len(history)-1]
		fmt.Printf("%d ticks to year %.1f\n", len(history), last.Time)
	}

	if runErr != nil {
		last := history[len(history)-1]
		return fmt.Errorf("run stopped at year %.1f: %w", last.Time, runErr)
	}
	return nil
}

func listFigures(cmd *cobra.Command, args []string) error {
	charts := chart.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSERIES\tTITLE")
	for _, f := range charts.List() {
		fields := make([]string, len(f.Series))
		for i, s := range f.Series {
			fields[i] = s.Field
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", f.Name, strings.Join(fields, ","), f.Title)
	}
	return w.Flush()
}

func plotField(cmd *cobra.Command, args []string) error {
	sc, err := resolveScenario(cmd)
	if err != nil {
		return err
	}
	if _, ok := (world.Vars{}).Value(field); !ok {
		return fmt.Errorf("unknown field: %s", field)
	}

	history, runErr := sim.New(world.New(sc.Constants)).Run(context.Background())
	if runErr != nil && len(history) == 0 {
		return runErr
	}

	data := make([]float64, len(history))
	for i, v := range history {
		data[i], _ = v.Value(field)
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(fmt.Sprintf("%s, %.0f to %.0f", field, history[0].Time, history[len(history)-1].Time)),
	)
	fmt.Println(graph)

	if runErr != nil {
		last := history[len(history)-1]
		return fmt.Errorf("run stopped at year %.1f: %w", last.Time, runErr)
	}
	return nil
}

func listScenarios(cmd *cobra.Command, args []string) error {
	if writePath != "" {
		if err := config.Save(writePath, config.Default()); err != nil {
			return err
		}
		fmt.Printf("wrote starter scenario to %s\n", writePath)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFIGURE")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\n", name, p.Figure)
	}
	return w.Flush()
}

func runStats(cmd *cobra.Command, args []string) error {
	sc, err := resolveScenario(cmd)
	if err != nil {
		return err
	}

	history, runErr := sim.New(world.New(sc.Constants)).Run(context.Background())
	if runErr != nil && len(history) == 0 {
		return runErr
	}

	s, err := analysis.Summarize(history)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tPEAK\tYEAR\tFINAL")
	for _, st := range s.Fields {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%s\n",
			st.Field, chart.FormatNumber(st.Max), st.MaxYear, chart.FormatNumber(st.Final))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d ticks from %.1f to %.1f\n", s.Ticks, s.Start, s.End)
	fmt.Printf("natural resources remaining: %.0f%%\n", s.ResourceFraction*100)

	if runErr != nil {
		return fmt.Errorf("run stopped at year %.1f: %w", s.End, runErr)
	}
	return nil
}
