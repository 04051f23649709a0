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
	"sort"
)

// Finds the stars with lo<=declination<=hi in an array sorted by declination.
// Returns the half-open index range [from, to), which is empty if lo>hi or
// either bound is NaN. Stars with NaN declination are never part of a band.
func DecBand[E Star[D], D Dec](stars []E, lo, hi D) (from, to int) {
	if lo!=lo || hi!=hi || lo>hi { return 0, 0 }
	from=sort.Search(len(stars), func(i int) bool {
		return CompareDec(stars[i].Declination(), lo)>=0
	})
	to=from+sort.Search(len(stars)-from, func(i int) bool {
		return CompareDec(stars[from+i].Declination(), hi)>0
	})
	return from, to
}

func DecBandCompact(stars []CompactStar, lo, hi int32) (from, to int) {
	return DecBand[CompactStar, int32](stars, lo, hi)
}

func DecBandExtended(stars []ExtendedStar, lo, hi float64) (from, to int) {
	return DecBand[ExtendedStar, float64](stars, lo, hi)
}
