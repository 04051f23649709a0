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
	"fmt"
	"math"
	"slices"
	"time"
	"github.com/klauspost/cpuid"
	"github.com/valyala/fastrand"
	"gonum.org/v1/gonum/stat"
	nl "github.com/mlnoga/starsort/internal"
	"github.com/mlnoga/starsort/internal/catalog"
	"github.com/mlnoga/starsort/internal/qsort"
)

// Settings for the bench command
type benchConfig struct {
	Stars int64    // Number of synthetic stars of each kind, 0=auto
	Runs  int64    // Number of timed runs per record kind
	Algo  string   // Sort algorithm, pdq or quick
	Seed  uint64   // Seed for the synthetic catalog generator. fastrand reseeds 0 from the clock, so it is rejected
}

// Upper bound for auto-sized synthetic catalogs
const maxAutoStars = 50000000

// Picks the number of stars per kind if not given. Source, working copy and
// the permutation check each hold one catalog of both kinds, so use a
// twentieth of physical memory for them.
func autoStars(totalMiBs uint64) int64 {
	perStar:=uint64(3*(catalog.CompactStarSize+catalog.ExtendedStarSize))
	n:=int64(totalMiBs*1024*1024/20/perStar)
	if n>maxAutoStars { n=maxAutoStars }
	if n<1 { n=1 }
	return n
}

func cmdBench(c benchConfig) error {
	if c.Stars<0 { return fmt.Errorf("invalid number of stars %d", c.Stars) }
	if c.Runs<1  { return fmt.Errorf("invalid number of runs %d", c.Runs) }
	if c.Seed==0 || c.Seed>math.MaxUint32 {
		return fmt.Errorf("invalid seed %d, must be in [1, %d]", c.Seed, uint64(math.MaxUint32))
	}
	if c.Stars==0 { c.Stars=autoStars(totalMiBs) }

	nl.LogPrintf("CPU %s with %d physical cores, %d MiB physical memory\n", cpuid.CPU.BrandName, cpuid.CPU.PhysicalCores, totalMiBs)
	nl.LogPrintf("Sorting %d synthetic stars of each kind %d times with %s sort\n", c.Stars, c.Runs, c.Algo)

	rng:=fastrand.RNG{}
	rng.Seed(uint32(c.Seed))

	compactSorter, err:=sorterFor[catalog.CompactStar](c.Algo)
	if err!=nil { return err }
	if err:=benchSort[catalog.CompactStar, int32]("compact", syntheticCompact(&rng, int(c.Stars)), compactSorter, int(c.Runs)); err!=nil {
		return err
	}

	extendedSorter, err:=sorterFor[catalog.ExtendedStar](c.Algo)
	if err!=nil { return err }
	return benchSort[catalog.ExtendedStar, float64]("extended", syntheticExtended(&rng, int(c.Stars)), extendedSorter, int(c.Runs))
}

// Resolves the name of a sort algorithm
func sorterFor[E any](algo string) (catalog.Sorter[E], error) {
	switch algo {
	case "pdq":   return slices.SortFunc[[]E, E], nil
	case "quick": return qsort.QSortFunc[E], nil
	}
	return nil, fmt.Errorf("unknown sort algorithm '%s'", algo)
}

// Compact stars with uniformly distributed positions. Declination in milliarcseconds, as in UCAC
func syntheticCompact(rng *fastrand.RNG, n int) []catalog.CompactStar {
	stars:=make([]catalog.CompactStar, n)
	for i:=range stars {
		s:=&stars[i]
		s.RA =int32(rng.Uint32n(360*3600*1000))
		s.Dec=int32(rng.Uint32n(180*3600*1000))-90*3600*1000
		s.Mag=int16(rng.Uint32n(16000))
		s.Rest[0]=uint8(i)
	}
	return stars
}

// Extended stars with uniformly distributed positions in degrees, as in Tycho
func syntheticExtended(rng *fastrand.RNG, n int) []catalog.ExtendedStar {
	stars:=make([]catalog.ExtendedStar, n)
	for i:=range stars {
		vmag:=float64(rng.Uint32n(1200))/100
		stars[i]=catalog.ExtendedStar{
			RA:   float64(rng.Uint32n(360*3600))/3600,
			Dec:  float64(int32(rng.Uint32n(180*3600))-90*3600)/3600,
			BMag: vmag+float64(rng.Uint32n(200))/100,
			VMag: vmag,
		}
	}
	return stars
}

type benchStar[D catalog.Dec] interface {
	comparable
	catalog.Star[D]
}

// Sorts copies of src runs times, verifies the last result and logs timing statistics
func benchSort[E benchStar[D], D catalog.Dec](kind string, src []E, sorter catalog.Sorter[E], runs int) error {
	work:=make([]E, len(src))
	millis:=make([]float64, runs)
	for r:=0; r<runs; r++ {
		copy(work, src)
		t0:=time.Now()
		catalog.SortByDecWith[E, D](work, sorter)
		millis[r]=float64(time.Since(t0))/float64(time.Millisecond)
	}

	if !catalog.IsSortedByDec[E, D](work) {
		return fmt.Errorf("%s stars not sorted by declination", kind)
	}
	if err:=checkPermutation(src, work); err!=nil {
		return fmt.Errorf("%s stars: %s", kind, err.Error())
	}

	mean, std:=stat.MeanStdDev(millis, nil)
	if runs<2 { std=0 }
	nl.LogPrintf("%-8s %10d stars: %10.3f ms mean, %8.3f ms stddev, %s\n",
		kind, len(src), mean, std, throughput(len(src), mean))
	return nil
}

// Formats sort throughput. Sorts too fast for the clock have no meaningful rate
func throughput(stars int, meanMillis float64) string {
	if !(meanMillis>0) { return "n/a Mstars/s" }
	return fmt.Sprintf("%8.2f Mstars/s", float64(stars)/meanMillis/1000)
}

// Checks that sorted holds the same multiset of records as src
func checkPermutation[E comparable](src, sorted []E) error {
	if len(src)!=len(sorted) {
		return fmt.Errorf("length changed from %d to %d", len(src), len(sorted))
	}
	counts:=make(map[E]int, len(src))
	for _,s:=range src    { counts[s]++ }
	for _,s:=range sorted { counts[s]-- }
	for s,c:=range counts {
		if c!=0 { return fmt.Errorf("record %v occurs %+d times more after sorting", s, -c) }
	}
	return nil
}
