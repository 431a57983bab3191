// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package myers

import (
	"math"

	"znkr.io/vscdiff/internal/clock"
	"znkr.io/vscdiff/internal/model"
	"znkr.io/vscdiff/internal/rvecs"
)

// Sequence is the minimal capability the engine needs from either concrete sequence
// implementation: a length and a total hash function where two positions are considered equal iff
// their hashes match.
type Sequence interface {
	Length() int
	ElementHash(i int) uint64
}

// Compute compares x and y and returns a sorted, non-empty-on-both-sides edit script plus whether
// the wall-clock deadline was hit. On timeout, the result is a single trivial diff covering the
// entire input.
func Compute(x, y Sequence, deadline clock.Deadline) (diffs []model.SequenceDiff, hitTimeout bool) {
	n, m := x.Length(), y.Length()

	smin, tmin := 0, 0
	smax, tmax := n, m

	// Strip common prefix.
	for smin < smax && tmin < tmax && x.ElementHash(smin) == y.ElementHash(tmin) {
		smin++
		tmin++
	}
	// Strip common suffix.
	for smax > smin && tmax > tmin && x.ElementHash(smax-1) == y.ElementHash(tmax-1) {
		smax--
		tmax--
	}

	switch {
	case smin == smax && tmin == tmax:
		return nil, false
	case smin == smax:
		return []model.SequenceDiff{{
			Seq1: model.OffsetRange{Start: smin, EndExclusive: smin},
			Seq2: model.OffsetRange{Start: tmin, EndExclusive: tmax},
		}}, false
	case tmin == tmax:
		return []model.SequenceDiff{{
			Seq1: model.OffsetRange{Start: smin, EndExclusive: smax},
			Seq2: model.OffsetRange{Start: tmin, EndExclusive: tmin},
		}}, false
	}

	if deadline.Exceeded() {
		return trivialDiff(n, m), true
	}

	if (smax-smin)+(tmax-tmin) < smallInputThreshold {
		return computeDP(x, y, smin, smax, tmin, tmax, n, m), false
	}

	rx, ry := newFlags(n, m)
	e := &engine{rx: rx, ry: ry, deadline: deadline}
	smin0, smax0, tmin0, tmax0 := e.init(x, y, smin, smax, tmin, tmax)
	e.compare(smin0, smax0, tmin0, tmax0)

	if e.timedOut {
		return trivialDiff(n, m), true
	}
	return fromFlags(rx, ry, n, m), false
}

func trivialDiff(n, m int) []model.SequenceDiff {
	return []model.SequenceDiff{{
		Seq1: model.OffsetRange{Start: 0, EndExclusive: n},
		Seq2: model.OffsetRange{Start: 0, EndExclusive: m},
	}}
}

func newFlags(n, m int) (rx, ry []bool) {
	return rvecs.Make(n, m)
}

// fromFlags groups consecutive runs of deletions/insertions into SequenceDiff entries. A match
// (neither flag set) advances both s and t together; a deletion advances s alone and an insertion
// advances t alone, so a contiguous block of deletions immediately followed by a contiguous block
// of insertions forms a single SequenceDiff, matching how a D-path alternates matches and
// non-diagonal moves.
func fromFlags(rx, ry []bool, n, m int) []model.SequenceDiff {
	var diffs []model.SequenceDiff
	s, t := 0, 0
	for s < n || t < m {
		del := s < n && rx[s]
		ins := t < m && ry[t]
		if del || ins {
			s0, t0 := s, t
			for s < n && rx[s] {
				s++
			}
			for t < m && ry[t] {
				t++
			}
			diffs = append(diffs, model.SequenceDiff{
				Seq1: model.OffsetRange{Start: s0, EndExclusive: s},
				Seq2: model.OffsetRange{Start: t0, EndExclusive: t},
			})
		} else {
			s++
			t++
		}
	}
	return diffs
}

// engine is the linear-space bidirectional Myers search (Myers 1986, section 4b). It operates on
// integer element IDs after a "unique line" reduction: elements that appear in only one of the two
// inputs are always a deletion or insertion and never participate in the search, which dramatically
// shrinks the search space for large inputs that mostly differ.
//
// Unlike a cost-limited heuristic search, this engine always finds an optimal path; the only abort
// condition is the wall-clock deadline, checked once per outer d-iteration.
type engine struct {
	// v-arrays for forwards and backwards iteration respectively. A v-array stores the furthest
	// reaching endpoint of a d-path in diagonal k in v[v0+k], where v0 translates k in [-d, d] to
	// an index in [0, 2*d].
	vf, vb []int
	v0     int

	// idsx, idsy hold the reduced integer IDs for x and y (only elements common to both sides).
	idsx, idsy []int

	// xidx, yidx map indices into idsx/idsy back to indices into the result vectors.
	xidx, yidx []int

	// rx, ry are the result vectors: rx[s] is true iff element s of x is deleted, ry[t] is true iff
	// element t of y is inserted.
	rx, ry []bool

	deadline clock.Deadline
	timedOut bool
}

// init performs the unique-element reduction over [smin,smax) x [tmin,tmax) and returns the bounds
// of the reduced problem.
func (e *engine) init(x, y Sequence, smin, smax, tmin, tmax int) (rsmin, rsmax, rtmin, rtmax int) {
	// Assign a unique bucket per distinct hash value seen in x, then flip the sign once the same
	// hash is also seen in y, so that a positive ID means "appears in both sides". This mirrors the
	// map[T]int unique-line reduction, generalized to a hash key so it works for any Sequence.
	unique := make(map[uint64]int, smax-smin)
	for s := smin; s < smax; s++ {
		h := x.ElementHash(s)
		if unique[h] == 0 {
			unique[h] = -(len(unique) + 1)
		}
	}
	ny := 0
	for t := tmin; t < tmax; t++ {
		h := y.ElementHash(t)
		if id := unique[h]; id < 0 {
			unique[h] = -id
			ny++
		} else if id > 0 {
			ny++
		}
	}
	nx := 0
	for s := smin; s < smax; s++ {
		if unique[x.ElementHash(s)] > 0 {
			nx++
		}
	}

	idsx := make([]int, 0, nx)
	idsy := make([]int, 0, ny)
	xidx := make([]int, 0, nx)
	yidx := make([]int, 0, ny)
	for s := smin; s < smax; s++ {
		if id := unique[x.ElementHash(s)]; id > 0 {
			xidx = append(xidx, s)
			idsx = append(idsx, id)
		} else {
			e.rx[s] = true
		}
	}
	for t := tmin; t < tmax; t++ {
		if id := unique[y.ElementHash(t)]; id > 0 {
			yidx = append(yidx, t)
			idsy = append(idsy, id)
		} else {
			e.ry[t] = true
		}
	}

	e.idsx, e.idsy = idsx, idsy
	e.xidx, e.yidx = xidx, yidx

	N, M := len(idsx), len(idsy)
	diagonals := N + M
	vlen := 2*diagonals + 3
	buf := make([]int, 2*vlen)
	e.vf = buf[:vlen]
	e.vb = buf[vlen:]
	e.v0 = diagonals + 1

	return 0, N, 0, M
}

// compare finds an optimal edit script from (smin, tmin) to (smax, tmax) in the reduced ID space.
func (e *engine) compare(smin, smax, tmin, tmax int) {
	if e.timedOut {
		return
	}
	// Strip common prefix and suffix: split requires inputs that share neither.
	x, y := e.idsx, e.idsy
	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}
	for smin < smax && tmin < tmax && x[smax-1] == y[tmax-1] {
		smax--
		tmax--
	}
	switch {
	case smin == smax:
		for t := tmin; t < tmax; t++ {
			e.ry[e.yidx[t]] = true
		}
	case tmin == tmax:
		for s := smin; s < smax; s++ {
			e.rx[e.xidx[s]] = true
		}
	default:
		s0, s1, t0, t1, ok := e.split(smin, smax, tmin, tmax)
		if !ok {
			e.timedOut = true
			return
		}
		e.compare(smin, s0, tmin, t0)
		e.compare(s1, smax, t1, tmax)
	}
}

// split finds the endpoints of a, possibly empty, run of matches in the middle of an optimal path
// from (smin, tmin) to (smax, tmax). The inputs must not share a common prefix or suffix and may
// not both be empty.
func (e *engine) split(smin, smax, tmin, tmax int) (s0, s1, t0, t1 int, ok bool) {
	x, y := e.idsx, e.idsy
	vf, vb := e.vf, e.vb
	v0 := e.v0

	kmin, kmax := smin-tmax, smax-tmin
	fmid, bmid := smin-tmin, smax-tmax
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	N, M := smax-smin, tmax-tmin
	odd := (N-M)%2 != 0

	vf[v0+fmid] = smin
	vb[v0+bmid] = smax

	for d := 1; ; d++ {
		if e.deadline.Exceeded() {
			return 0, 0, 0, 0, false
		}

		// Forwards iteration.
		if fmin > kmin {
			fmin--
			vf[v0+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf[v0+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		for k := fmin; k <= fmax; k += 2 {
			k0 := k + v0
			var s int
			if vf[k0-1] < vf[k0+1] {
				s = vf[k0+1]
			} else {
				s = vf[k0-1] + 1
			}
			t := s - k

			s0, t0 := s, t
			for s < smax && t < tmax && x[s] == y[t] {
				s++
				t++
			}
			vf[k0] = s

			if odd && bmin <= k && k <= bmax && s >= vb[k0] {
				return s0, s, t0, t, true
			}
		}

		// Backwards iteration.
		if bmin > kmin {
			bmin--
			vb[v0+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb[v0+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			k0 := k + v0
			var s int
			if vb[k0-1] < vb[k0+1] {
				s = vb[k0-1]
			} else {
				s = vb[k0+1] - 1
			}
			t := s - k

			s0, t0 := s, t
			for s > smin && t > tmin && x[s-1] == y[t-1] {
				s--
				t--
			}
			vb[k0] = s

			if !odd && fmin <= k && k <= fmax && s <= vf[v0+k] {
				return s, s0, t, t0, true
			}
		}
	}
}
