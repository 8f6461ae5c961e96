package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/avolodin/sortlab/internal/algorithms"
	"github.com/avolodin/sortlab/internal/analysis"
	"github.com/avolodin/sortlab/internal/config"
	"github.com/avolodin/sortlab/internal/dataset"
	"github.com/avolodin/sortlab/internal/export"
	"github.com/avolodin/sortlab/internal/playback"
	"github.com/avolodin/sortlab/internal/step"
	"github.com/avolodin/sortlab/internal/storage"
	"github.com/avolodin/sortlab/internal/tui"
	"github.com/avolodin/sortlab/internal/viz"
)

var (
	dataDir    string
	size       int
	seed       int64
	pattern    string
	speed      string
	delayMs    int
	configFile string
	preset     string
	saveRun    bool
	watch      bool
	frameRate  int
	svgOut     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sortlab",
		Short: "sorting algorithm visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig("")
			if err != nil {
				return err
			}
			reg := algorithms.NewRegistry()
			gen := dataset.NewGenerator(resolveSeed(cfg), cfg.MinValue, cfg.MaxValue)
			return viz.Run(reg, gen, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sortlab", "data directory")
	rootCmd.PersistentFlags().IntVar(&size, "size", 0, "array size")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (default: current time)")
	rootCmd.PersistentFlags().StringVar(&pattern, "pattern", "", "input pattern (random, sorted, reversed, nearly-sorted, few-unique)")
	rootCmd.PersistentFlags().StringVar(&speed, "speed", "", "speed preset")
	rootCmd.PersistentFlags().IntVar(&delayMs, "delay-ms", 0, "explicit inter-step delay in ms (overrides --speed)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "run an algorithm headless and print its metrics",
		Args:  cobra.ExactArgs(1),
		RunE:  runAlgorithm,
	}
	runCmd.Flags().BoolVar(&saveRun, "save", false, "store the run under the data directory")
	runCmd.Flags().BoolVar(&watch, "watch", false, "animate the run in the terminal")
	runCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate for --watch")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list available algorithms",
		RunE:  listAlgorithms,
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [algorithm...]",
		Short: "run several algorithms on the same input",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareAlgorithms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list run presets for an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for algorithm: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, name := range names {
				p := config.GetPreset(args[0], name)
				fmt.Printf("  %-12s size=%d pattern=%s speed=%s\n", name, p.Size, p.Pattern, p.Speed)
			}
			return nil
		},
	}

	speedsCmd := &cobra.Command{
		Use:   "speeds",
		Short: "list speed presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListSpeeds() {
				d, _ := config.SpeedDelay(name)
				fmt.Printf("  %-10s %s per step\n", name, d)
			}
			return nil
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "print a stored run's metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "print a stored run's step trace as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [algorithm]",
		Short: "run an algorithm and write the result chart as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "", "output file (default: <algorithm>.svg)")

	rootCmd.AddCommand(runCmd, listCmd, runsCmd, compareCmd, presetsCmd, speedsCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers preset < config file < explicit flags on top of
// the defaults. algorithm may be empty when the command takes none.
func resolveConfig(algorithm string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		if algorithm == "" {
			return nil, fmt.Errorf("--preset requires an algorithm argument")
		}
		p := config.GetPreset(algorithm, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(algorithm))
		}
		cfg = p.Normalized()
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded.Normalized()
	}

	if algorithm != "" {
		cfg.Algorithm = algorithm
	}
	if size > 0 {
		cfg.Size = size
	}
	if pattern != "" {
		cfg.Pattern = pattern
	}
	if speed != "" {
		cfg.Speed = speed
	}
	if delayMs > 0 {
		cfg.DelayMs = delayMs
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	return cfg, nil
}

func resolveSeed(cfg *config.Config) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}

func runAlgorithm(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(args[0])
	if err != nil {
		return err
	}

	reg := algorithms.NewRegistry()
	algo, err := reg.Get(cfg.Algorithm)
	if err != nil {
		return fmt.Errorf("%w: %s", err, cfg.Algorithm)
	}

	runSeed := resolveSeed(cfg)
	gen := dataset.NewGenerator(runSeed, cfg.MinValue, cfg.MaxValue)
	input, err := gen.Generate(dataset.Pattern(cfg.Pattern), cfg.Size)
	if err != nil {
		return fmt.Errorf("%w: %s", err, cfg.Pattern)
	}

	res, err := algo.Sort(input)
	if err != nil {
		return fmt.Errorf("sort failed: %w", err)
	}

	if watch {
		if err := watchRun(algo, input, cfg); err != nil {
			return err
		}
	}

	printSummary(os.Stdout, algo, input, res)
	plotComparisons(input, res)

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(algo.ID, cfg.Pattern, runSeed, input, res)
		if err != nil {
			return err
		}
		fmt.Printf("\nsaved run %s\n", runID)
	}
	return nil
}

// watchRun replays the trace through the playback controller with the
// plain ANSI renderer and blocks until the cycle completes.
func watchRun(algo algorithms.Algorithm, input []int, cfg *config.Config) error {
	renderer := tui.NewLiveRenderer(algo.ID, frameRate)
	ctrl := playback.NewController(playback.Producer(algo.Sort), func() []int { return step.Snapshot(input) }, renderer)
	ctrl.SetDelay(cfg.Delay())

	done := make(chan playback.Metrics, 1)
	ctrl.Subscribe(playback.EventPlaybackComplete, func(n playback.Notification) {
		done <- n.Metrics
	})

	if err := ctrl.Start(); err != nil {
		return err
	}
	met := <-done
	fmt.Printf("\nplayback finished in %s\n\n", met.Elapsed().Round(time.Millisecond))
	return nil
}

func printSummary(w io.Writer, algo algorithms.Algorithm, input []int, res *step.Result) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "algorithm\t%s\n", algo.Name)
	fmt.Fprintf(tw, "input size\t%d\n", len(input))
	fmt.Fprintf(tw, "input inversions\t%d\n", analysis.Inversions(input))
	fmt.Fprintf(tw, "steps\t%d\n", len(res.Steps))
	fmt.Fprintf(tw, "comparisons\t%d\n", res.Comparisons)
	fmt.Fprintf(tw, "swaps\t%d\n", res.Swaps)
	fmt.Fprintf(tw, "array accesses\t%d\n", res.ArrayAccesses)
	tw.Flush()
}

func plotComparisons(input []int, res *step.Result) {
	if len(res.Steps) < 2 {
		return
	}
	summary := analysis.Summarize(input, res)
	graph := asciigraph.Plot(summary.Comparisons,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("cumulative comparisons per step"),
	)
	fmt.Println()
	fmt.Println(graph)
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	reg := algorithms.NewRegistry()
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tBEST\tAVERAGE\tWORST\tSPACE\tSTABLE\tDIFFICULTY")
	for _, a := range reg.All() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%v\t%d/5\n",
			a.ID, a.Name, a.Time.Best, a.Time.Average, a.Time.Worst, a.Space, a.Stable, a.Difficulty)
	}
	return tw.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no stored runs")
		return nil
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tALGORITHM\tSIZE\tPATTERN\tCOMPARISONS\tSWAPS\tACCESSES\tSTEPS")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\t%d\t%d\t%d\n",
			r.ID, r.Algorithm, r.Size, r.Pattern, r.Comparisons, r.Swaps, r.ArrayAccesses, r.Steps)
	}
	return tw.Flush()
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig("")
	if err != nil {
		return err
	}

	reg := algorithms.NewRegistry()
	gen := dataset.NewGenerator(resolveSeed(cfg), cfg.MinValue, cfg.MaxValue)
	input, err := gen.Generate(dataset.Pattern(cfg.Pattern), cfg.Size)
	if err != nil {
		return fmt.Errorf("%w: %s", err, cfg.Pattern)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tCOMPARISONS\tSWAPS\tACCESSES\tSTEPS")
	for _, id := range args {
		algo, err := reg.Get(id)
		if err != nil {
			return fmt.Errorf("%w: %s", err, id)
		}
		res, err := algo.Sort(input)
		if err != nil {
			return fmt.Errorf("%s failed: %w", id, err)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", algo.Name, res.Comparisons, res.Swaps, res.ArrayAccesses, len(res.Steps))
	}
	return tw.Flush()
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return fmt.Errorf("load run: %w", err)
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(args[0])
	if err != nil {
		return err
	}

	reg := algorithms.NewRegistry()
	algo, err := reg.Get(cfg.Algorithm)
	if err != nil {
		return fmt.Errorf("%w: %s", err, cfg.Algorithm)
	}

	gen := dataset.NewGenerator(resolveSeed(cfg), cfg.MinValue, cfg.MaxValue)
	input, err := gen.Generate(dataset.Pattern(cfg.Pattern), cfg.Size)
	if err != nil {
		return fmt.Errorf("%w: %s", err, cfg.Pattern)
	}

	res, err := algo.Sort(input)
	if err != nil {
		return fmt.Errorf("sort failed: %w", err)
	}

	out := svgOut
	if out == "" {
		out = algo.ID + ".svg"
	}
	title := fmt.Sprintf("%s, n=%d, %s", algo.Name, len(input), cfg.Pattern)
	if err := os.WriteFile(out, []byte(export.RunSVG(title, input, res)), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	f, err := os.Open(st.StepsCSVPath(args[0]))
	if err != nil {
		return fmt.Errorf("open step trace: %w", err)
	}
	defer f.Close()
	_, err = io.Copy(os.Stdout, f)
	return err
}
