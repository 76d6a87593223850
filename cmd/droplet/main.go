// droplet prints the exterior surface area of solids made of unit cubes.
//
// Each input lists one cube per line as "x,y,z", and it may be compressed with zstd or gzip.
// With no inputs, or with "-", it reads from the standard input.
//
//	droplet [flags] [input ...]
package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/janpfeifer/droplet/internal/batch"
	"github.com/janpfeifer/droplet/internal/cellset"
	"github.com/janpfeifer/droplet/internal/droplet"
	"github.com/janpfeifer/droplet/internal/profilers"
	"github.com/janpfeifer/droplet/internal/scan"
	"github.com/janpfeifer/droplet/internal/ui/cli"
	"github.com/janpfeifer/droplet/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"os"
	"strings"
	"time"
)

var (
	flagCellSet = flag.String("set", cellset.DefaultConfig,
		fmt.Sprintf("Cell set implementation and its parameters, as \"name:key=value,...\". Registered: %s.",
			strings.Join(cellset.Registered(), ", ")))
	flagNaive       = flag.Bool("naive", false, "Also report the naive total surface area, including enclosed air pockets.")
	flagStats       = flag.Bool("stats", false, "Report all the statistics of each droplet.")
	flagParallelism = flag.Int("parallelism", 0, "Number of inputs processed at once. If 0, it uses GOMAXPROCS.")
	flagColor       = flag.String("color", "auto", "Style the output: \"auto\" (if stdout is a terminal), \"always\" or \"never\".")
	flagMaxCells    = flag.Int64("max_cells", droplet.DefaultMaxCells, "Maximum number of cells in the bounds of a droplet expanded by one, it limits memory use.")
	flagSpinner     = flag.Bool("spinner", true, "Display a spinning symbol on stderr while computing, if it is a terminal.")
)

func main() {
	klog.InitFlags(nil)
	flag.Usage = func() {
		_, _ = fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [input ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	styled := must.M1(parseColor(*flagColor))
	if *flagParallelism < 0 {
		klog.Fatalf("Invalid -parallelism=%d", *flagParallelism)
	}
	if *flagMaxCells <= 0 {
		klog.Fatalf("Invalid -max_cells=%d", *flagMaxCells)
	}

	profilers.Setup()
	defer profilers.OnQuit()

	// Capture Control+C
	ctx, cancel := context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()

	inputs := flag.Args()
	if len(inputs) == 0 {
		inputs = []string{scan.StdinName}
	}
	var spinner *spinning.Spinning
	if *flagSpinner && cli.IsTerminal(os.Stderr) {
		spinner = spinning.New(ctx, os.Stderr)
	}
	results, err := batch.Run(ctx, inputs, batch.Config{
		CellSet:     *flagCellSet,
		Parallelism: *flagParallelism,
		MaxCells:    *flagMaxCells,
	})
	if spinner != nil {
		spinner.Done()
	}
	if err != nil {
		profilers.OnQuit()
		klog.V(1).Infof("Error details: %+v", err)
		klog.Exitf("Failed: %v", err)
	}

	reporter := &cli.Reporter{Styled: styled, Naive: *flagNaive, Stats: *flagStats}
	must.M(reporter.Report(os.Stdout, results))
}

// parseColor interprets the -color flag.
func parseColor(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "auto":
		return cli.IsTerminal(os.Stdout), nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	}
	return false, errors.Errorf("invalid -color=%q, valid values are \"auto\", \"always\" or \"never\"", value)
}
