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


// Three-way comparison of two declinations. Returns -1 if a<b, +1 if a>b, 0 otherwise.
// NaN sorts after every number, and two NaNs compare equal, so the result is a
// total preorder even for float declinations. -0 and +0 compare equal.
func CompareDec[D Dec](a, b D) int {
	aNaN, bNaN := a!=a, b!=b
	if aNaN || bNaN {
		if aNaN && bNaN { return 0 }
		if aNaN { return +1 }
		return -1
	}
	if a<b {
		return -1
	} else if a>b {
		return +1
	}
	return 0
}

// Compares two compact stars by declination
func CompareCompact(a, b CompactStar) int {
	return CompareDec(a.Dec, b.Dec)
}

// Compares two extended stars by declination. NaN declinations sort last
func CompareExtended(a, b ExtendedStar) int {
	return CompareDec(a.Dec, b.Dec)
}

// Compares two stars of any kind by declination
func compareStars[E Star[D], D Dec](a, b E) int {
	return CompareDec(a.Declination(), b.Declination())
}
