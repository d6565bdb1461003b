// Command treescan scans a directory hierarchy into an n-ary tree,
// reports what it found, times a few traversals over the result, and
// can export the tree as Graphviz DOT.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/docker/go-units"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"go.lepak.sg/ntree"
	"go.lepak.sg/ntree/dot"
	"go.lepak.sg/ntree/scan"
	"go.lepak.sg/ntree/stopwatch"
)

var opts struct {
	workers  int
	interval time.Duration
	top      int
	trials   int
	dotPath  string
	verbose  bool
}

var rootCmd = &cobra.Command{
	Use:          "treescan [path]",
	Short:        "Scan a directory into an n-ary tree and poke at it",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if opts.verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		path := "."
		if len(args) == 1 {
			path = args[0]
		}
		return run(cmd.Context(), path)
	},
}

func init() {
	rootCmd.Flags().IntVarP(&opts.workers, "workers", "w", scan.DefaultWorkers, "concurrent directory readers")
	rootCmd.Flags().DurationVarP(&opts.interval, "interval", "i", 500*time.Millisecond, "progress refresh interval")
	rootCmd.Flags().IntVarP(&opts.top, "top", "t", 10, "list the n largest files, 0 to disable")
	rootCmd.Flags().IntVar(&opts.trials, "trials", 10, "traversal timing trials, 0 to disable")
	rootCmd.Flags().StringVar(&opts.dotPath, "dot", "", "write the tree as Graphviz DOT to this file")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, path string) error {
	scanner, err := scan.New(path, opts.workers)
	if err != nil {
		return err
	}

	watch := stopwatch.New()
	done := make(chan error, 1)
	go func() {
		done <- scanner.Start(ctx)
	}()
	if err := report(ctx, scanner.Progress(), done); err != nil {
		return err
	}
	elapsed := watch.Elapsed()

	tree := scanner.Tree()
	p := scanner.Progress()
	fmt.Printf("Scanned %d files and %d directories (%s) in %s: %d tree nodes.\n",
		p.Files(), p.Directories(),
		units.HumanSize(float64(p.Bytes())),
		elapsed.Round(time.Millisecond),
		tree.Size())

	runTrials(tree)
	if opts.top > 0 {
		printLargest(tree)
	}
	if opts.dotPath != "" {
		label := func(fi scan.FileInfo) string { return fi.Name + fi.Extension }
		if err := dot.WriteFile(opts.dotPath, tree, "files", label); err != nil {
			return err
		}
		fmt.Printf("Wrote %s.\n", opts.dotPath)
	}
	return nil
}

// report repaints the scan counters onto a spinner until the scan
// finishes, then hands back Start's result.
func report(ctx context.Context, p *scan.Progress, done <-chan error) error {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("scanning"),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	ticker := time.NewTicker(opts.interval)
	defer ticker.Stop()

	for {
		select {
		case err := <-done:
			_ = bar.Finish()
			return err
		case <-ticker.C:
			bar.Describe(fmt.Sprintf("scanning: %d files, %d dirs, %s",
				p.Files(), p.Directories(), units.HumanSize(float64(p.Bytes()))))
			_ = bar.Add(1)
		case <-ctx.Done():
			err := <-done
			_ = bar.Finish()
			return err
		}
	}
}

// runTrials times the two full-tree traversal orders doing a typical
// job: summing the sizes of every regular file.
func runTrials(tree *ntree.Tree[scan.FileInfo]) {
	if opts.trials < 1 {
		return
	}

	var total int64
	pre := stopwatch.Average(opts.trials, func() {
		total = 0
		for it := tree.PreOrder(); it.Next(); {
			if fi := it.Item(); fi.Type == scan.Regular {
				total += fi.Size
			}
		}
	})
	post := stopwatch.Average(opts.trials, func() {
		total = 0
		for fi := range tree.Values() {
			if fi.Type == scan.Regular {
				total += fi.Size
			}
		}
	})

	fmt.Printf("Traversal average over %d trials: pre-order %s, post-order %s.\n",
		opts.trials, pre, post)
}

func printLargest(tree *ntree.Tree[scan.FileInfo]) {
	files := scan.LargestFiles(tree, opts.top)
	if len(files) == 0 {
		return
	}

	fmt.Printf("Largest %d files:\n", len(files))
	for _, fi := range files {
		fmt.Printf("  %10s  %s%s\n", units.HumanSize(float64(fi.Size)), fi.Name, fi.Extension)
	}
}
