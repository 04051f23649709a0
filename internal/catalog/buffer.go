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
	"fmt"
	"unsafe"
)

// Raw buffer entry points for hosts which hand over record memory as bytes,
// with an explicit element count and stride. Records are in native byte order.
// Misuse of count or stride is a programming error and panics.

// Sort a buffer of count compact stars, each stride bytes, by declination.
// Bytes past count*stride are left untouched.
func SortCompactBuffer(buf []byte, count, stride int) {
	checkBuffer("compact", buf, count, stride, CompactStarSize)
	sortBuffer(buf, count, SortCompact)
}

// Sort a buffer of count extended stars, each stride bytes, by declination.
// Bytes past count*stride are left untouched.
func SortExtendedBuffer(buf []byte, count, stride int) {
	checkBuffer("extended", buf, count, stride, ExtendedStarSize)
	sortBuffer(buf, count, SortExtended)
}

func checkBuffer(kind string, buf []byte, count, stride, size int) {
	if count<0 {
		panic(fmt.Sprintf("sort %s stars: negative count %d", kind, count))
	}
	if stride!=size {
		panic(fmt.Sprintf("sort %s stars: stride %d does not match record size %d", kind, stride, size))
	}
	if len(buf)/size<count {
		panic(fmt.Sprintf("sort %s stars: buffer of %d bytes too short for %d records", kind, len(buf), count))
	}
}

// Sorts the buffer through a typed view if it is suitably aligned for E,
// otherwise through an aligned scratch copy
func sortBuffer[E any](buf []byte, count int, sort func([]E)) {
	if count<2 { return }
	var zero E
	size :=int(unsafe.Sizeof(zero))
	align:=uintptr(unsafe.Alignof(zero))

	base:=unsafe.Pointer(unsafe.SliceData(buf))
	if uintptr(base)%align==0 {
		sort(unsafe.Slice((*E)(base), count))
		return
	}

	scratch:=make([]E, count)
	raw:=unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(scratch))), count*size)
	copy(raw, buf[:count*size])
	sort(scratch)
	copy(buf[:count*size], raw)
}
