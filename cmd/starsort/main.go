// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"
	nl "github.com/mlnoga/starsort/internal"
	"github.com/pbnjay/memory"
)

const version = "0.1.0"

var totalMiBs=memory.TotalMemory()/1024/1024

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
var log        = flag.String("log", "", "also save log output to `file`. `%auto` derives the name from the command, e.g. bench.log")

var n     = flag.Int64("n", 1000000, "number of synthetic stars of each kind to sort, 0=auto from physical memory")
var runs  = flag.Int64("runs", 5, "number of timed sort runs per record kind")
var algo  = flag.String("algo", "pdq", "sort algorithm, one of pdq (pattern-defeating quicksort) or quick (Hoare quicksort)")
var seed  = flag.Uint64("seed", 1, "seed for the synthetic catalog generator, in [1, 2^32-1]")

func main() {
	logWriter:=os.Stdout
	start:=time.Now()
	flag.Usage=func(){
 	    fmt.Fprintf(logWriter, `Starsort Copyright (c) 2020 Markus L. Noga
This program comes with ABSOLUTELY NO WARRANTY.
This is free software, and you are welcome to redistribute it under certain conditions.
Refer to https://www.gnu.org/licenses/gpl-3.0.en.html for details.

Usage: %s [-flag value] (bench|legal|version|help)

Commands:
  bench   Sort synthetic compact and extended star catalogs by declination, verify and time the results
  legal   Show license and attribution information
  version Show version information

Flags:
`, os.Args[0])
	    flag.PrintDefaults()
	}
	flag.Parse()

    args:=flag.Args()
    if len(args)<1 {
    	flag.Usage()
    	return
    }

	// Initialize logging to file in addition to stdout, if selected
	if *log=="%auto" {
		*log=args[0]+".log"
	}
	if *log!="" {
		if err:=nl.LogAlsoToFile(filepath.Clean(*log)); err!=nil {
			nl.LogFatalf("Unable to open logfile '%s': %s\n", *log, err.Error())
		}
		defer nl.LogClose()
	}

	// Enable CPU profiling if flagged
    if *cpuprofile != "" {
        f, err := os.Create(*cpuprofile)
        if err != nil {
            nl.LogFatal("Could not create CPU profile: ", err)
        }
        defer f.Close()
        if err := pprof.StartCPUProfile(f); err != nil {
            nl.LogFatal("Could not start CPU profile: ", err)
        }
        defer pprof.StopCPUProfile()
    }

	var err error
    switch args[0] {
    case "bench":
    	err=cmdBench(benchConfig{
    		Stars: *n,
    		Runs:  *runs,
    		Algo:  *algo,
    		Seed:  *seed,
    	})

    case "legal":
    	cmdLegal()

    case "version":
    	nl.LogPrintf("Version %s\n", version)

    case "help", "?":
    	flag.Usage()
    	return

    default:
    	fmt.Fprintf(logWriter, "Unknown command '%s'\n\n", args[0])
    	flag.Usage()
    	return
    }

    if err!=nil {
    	nl.LogPrintf("Error: %s\n", err.Error())
    	nl.LogClose()
    	os.Exit(-1)
    }

	nl.LogPrintf("\nDone after %v\n", time.Since(start))
}

// Prints licensing information. The text ends in a newline already
func cmdLegal() {
	nl.LogPrint(legal)
}
