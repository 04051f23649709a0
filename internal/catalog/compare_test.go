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
	"math"
	"testing"
	"github.com/valyala/fastrand"
)

func sign(x int) int {
	if x<0 { return -1 } else if x>0 { return +1 }
	return 0
}

func TestCompareCompact(t *testing.T) {
	a:=CompactStar{RA:99, Dec:-5, Mag:1}
	b:=CompactStar{RA:-1, Dec: 5, Mag:9}
	c:=CompactStar{RA: 0, Dec: 5, Mag:0, Rest:[34]uint8{0xff}}
	if r:=CompareCompact(a, b); r>=0 { t.Errorf("compare(-5, 5) = %d, want negative", r) }
	if r:=CompareCompact(b, a); r<=0 { t.Errorf("compare(5, -5) = %d, want positive", r) }
	if r:=CompareCompact(b, c); r!=0 { t.Errorf("compare(5, 5) = %d, want 0, other fields must be ignored", r) }
}

func TestCompareExtendedSpecialValues(t *testing.T) {
	nan:=math.NaN()
	cases:=[]struct{
		a, b float64
		want int
	}{
		{ -1,   1,  -1 },
		{  1,  -1,  +1 },
		{  0, math.Copysign(0, -1), 0 },
		{ math.Inf(+1), nan, -1 },
		{ nan, math.Inf(+1), +1 },
		{ nan, math.Inf(-1), +1 },
		{ nan, nan, 0 },
	}
	for _,c:=range cases {
		got:=CompareExtended(ExtendedStar{Dec:c.a}, ExtendedStar{Dec:c.b})
		if got!=c.want {
			t.Errorf("compare(%g, %g) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestCompareConsistency(t *testing.T) {
	rng:=fastrand.RNG{}
	specials:=[]float64{math.NaN(), math.Inf(-1), math.Inf(+1), 0, math.Copysign(0, -1)}
	for i:=0; i<10000; i++ {
		a:=CompactStar{Dec:int32(rng.Uint32())}
		b:=CompactStar{Dec:int32(rng.Uint32n(4))-2}
		if sign(CompareCompact(a, b))!=-sign(CompareCompact(b, a)) {
			t.Fatalf("compact compare not antisymmetric for %d, %d", a.Dec, b.Dec)
		}
		if CompareCompact(a, a)!=0 {
			t.Fatalf("compact compare(%d, %d) not zero", a.Dec, a.Dec)
		}

		x:=ExtendedStar{Dec:float64(int32(rng.Uint32n(200))-100)/8}
		y:=ExtendedStar{Dec:specials[rng.Uint32n(uint32(len(specials)))]}
		if i&1==0 { y.Dec=float64(int32(rng.Uint32n(200))-100)/8 }
		if sign(CompareExtended(x, y))!=-sign(CompareExtended(y, x)) {
			t.Fatalf("extended compare not antisymmetric for %g, %g", x.Dec, y.Dec)
		}
		if CompareExtended(y, y)!=0 {
			t.Fatalf("extended compare(%g, %g) not zero", y.Dec, y.Dec)
		}
	}
}

func TestCompareExtremes(t *testing.T) {
	if r:=CompareDec[int32](math.MinInt32, math.MaxInt32); r!=-1 {
		t.Errorf("compare(min, max) = %d, want -1", r)
	}
	if r:=CompareDec[int32](math.MaxInt32, math.MinInt32); r!=+1 {
		t.Errorf("compare(max, min) = %d, want +1", r)
	}
}
