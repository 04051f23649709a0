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


// Package catalog orders star catalog records by declination, so that
// sky regions can be located by binary search over a declination band.
package catalog

import (
	"unsafe"
	"golang.org/x/exp/constraints"
)

// Byte sizes of the catalog records. Field order and widths match the
// catalog layouts, so a contiguous record buffer can be viewed as a slice.
const (
	CompactStarSize  = 44
	ExtendedStarSize = 32
)

// A star from a compact catalog with fixed-point coordinates, e.g. UCAC
type CompactStar struct {
	RA   int32      // Right ascension, fixed-point angle
	Dec  int32      // Declination, fixed-point angle. The sort key
	Mag  int16      // Magnitude, fixed-point
	Rest [34]uint8  // Catalog-specific payload, carried but never interpreted
}

// A star from an extended catalog with floating-point coordinates and two magnitude bands, e.g. Tycho
type ExtendedStar struct {
	RA   float64    // Right ascension. Unit is up to the caller
	Dec  float64    // Declination. The sort key
	BMag float64    // Magnitude in the B band
	VMag float64    // Magnitude in the V band
}

// Fail compilation if the Go layout ever drifts from the catalog layout
var _ [CompactStarSize]byte  = [unsafe.Sizeof(CompactStar{})]byte{}
var _ [ExtendedStarSize]byte = [unsafe.Sizeof(ExtendedStar{})]byte{}

// Declination types: fixed-point integers or floats
type Dec interface {
	constraints.Signed | constraints.Float
}

// A catalog record which exposes its declination
type Star[D Dec] interface {
	Declination() D
}

func (s CompactStar) Declination() int32 {
	return s.Dec
}

func (s ExtendedStar) Declination() float64 {
	return s.Dec
}
