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


package qsort


// Sort an array in ascending order with the given three-way comparison.
// Not stable. Comparison must be a total preorder, e.g. no raw IEEE NaN compares.
// Recurses into the smaller partition only, so stack depth stays logarithmic.
func QSortFunc[E any](a []E, cmp func(x, y E) int) {
    for len(a)>1 {
        index := QPartitionFunc(a, cmp)
        left, right := a[:index+1], a[index+1:]
        if len(left)<len(right) {
            QSortFunc(left, cmp)
            a=right
        } else {
            QSortFunc(right, cmp)
            a=left
        }
    }
}


// Partitions an array with the middle pivot element, and returns the pivot index.
// Values less than the pivot are moved left of the pivot, those greater are moved right.
// Both partitions a[:index+1] and a[index+1:] are non-empty for len(a)>1.
func QPartitionFunc[E any](a []E, cmp func(x, y E) int) int {
    left, right:=0, len(a)-1
    mid   := (left+right)>>1
    pivot := a[mid]
    l := left -1
    r := right+1
    for {
        for {
            l++
            if cmp(a[l], pivot)>=0 { break }
        }
        for {
            r--
            if cmp(a[r], pivot)<=0 { break }
        }
        if l >= r { return r }
        a[l], a[r] = a[r], a[l]
    }
}
