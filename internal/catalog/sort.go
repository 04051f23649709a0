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


package catalog

import (
	"slices"
)

// An in-place comparison sort. Need not be stable
type Sorter[E any] func(a []E, cmp func(x, y E) int)

// Sort an array of compact stars in place, in ascending order of declination.
// Not stable: stars with equal declination may end up in any relative order.
func SortCompact(stars []CompactStar) {
	if len(stars)<2 { return }
	slices.SortFunc(stars, CompareCompact)
}

// Sort an array of extended stars in place, in ascending order of declination.
// Not stable. NaN declinations are moved to the end.
func SortExtended(stars []ExtendedStar) {
	if len(stars)<2 { return }
	slices.SortFunc(stars, CompareExtended)
}

// Sort an array of stars in place, in ascending order of declination
func SortByDec[E Star[D], D Dec](stars []E) {
	SortByDecWith[E, D](stars, slices.SortFunc[[]E, E])
}

// Sort an array of stars in place, in ascending order of declination,
// using the given sort algorithm
func SortByDecWith[E Star[D], D Dec](stars []E, sorter Sorter[E]) {
	if len(stars)<2 { return }
	sorter(stars, compareStars[E, D])
}

// Returns true if declination is non-decreasing across the array
func IsSortedByDec[E Star[D], D Dec](stars []E) bool {
	for i:=1; i<len(stars); i++ {
		if compareStars[E, D](stars[i-1], stars[i])>0 { return false }
	}
	return true
}
