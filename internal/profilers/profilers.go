// Package profilers implement helper functions to set up profiling for the droplet programs.
//
// If linked, it will install the profiler flags -cpu_profile and -mem_profile.
package profilers

import (
	"flag"
	"k8s.io/klog/v2"
	"os"
	"runtime"
	"runtime/pprof"
)

var (
	flagCPUProfile = flag.String("cpu_profile", "", "write cpu profile to `file`")
	flagMemProfile = flag.String("mem_profile", "", "write heap profile to `file` on exit")
)

// Setup starts the CPU profiler (flag -cpu_profile), if it was configured.
// You should follow with a deferred call to OnQuit.
func Setup() {
	if *flagCPUProfile != "" {
		createCPUProfile(*flagCPUProfile)
	}
}

// OnQuit should be called before the exit of the main() function, typically this is setup as a deferred call
// just after Setup. It stops the CPU profiler and writes the heap profile (flag -mem_profile).
func OnQuit() {
	if *flagCPUProfile != "" {
		pprof.StopCPUProfile()
	}
	if *flagMemProfile != "" {
		writeMemProfile(*flagMemProfile)
	}
}

// createCPUProfile creates the file at path and starts the CPU profiling there.
func createCPUProfile(path string) {
	f, err := os.Create(path)
	if err != nil {
		klog.Fatal("could not create CPU profile: ", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		klog.Fatal("could not start CPU profile: ", err)
	}
}

func writeMemProfile(path string) {
	f, err := os.Create(path)
	if err != nil {
		klog.Errorf("could not create memory profile: %v", err)
		return
	}
	defer func() { _ = f.Close() }()
	// Up-to-date statistics.
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		klog.Errorf("could not write memory profile: %v", err)
	}
}
