/* Copyright (C) 2025 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package alnviz

/* -------------------------------------------------------------------------- */

import "fmt"
import "math"

/* -------------------------------------------------------------------------- */

// A single alignment segment of a layer. Segments are row views materialized
// from the layer columns; Id is the position of the segment in the record
// stream the layer was built from. ABegin <= AEnd always holds, whereas the
// B coordinates run backwards (BBegin > BEnd) for reverse alignments, which
// draws them with negative slope.
type Segment struct {
  ABegin int64
  AEnd   int64
  BBegin int64
  BEnd   int64
  Id     int
}

/* -------------------------------------------------------------------------- */

// Strand of the alignment, derived from the direction of the B interval.
func (obj Segment) Orientation() byte {
  if obj.BBegin > obj.BEnd {
    return '-'
  }
  return '+'
}

// Corners of the axis-aligned bounding box as closed intervals.
func (obj Segment) BoundingBox() (xlo, xhi, ylo, yhi int64) {
  xlo = obj.ABegin
  xhi = obj.AEnd
  ylo = i64Min(obj.BBegin, obj.BEnd)
  yhi = i64Max(obj.BBegin, obj.BEnd)
  return
}

// Bounding box as a View.
func (obj Segment) BoundingView() View {
  xlo, xhi, ylo, yhi := obj.BoundingBox()
  return View{xlo, ylo, xhi-xlo, yhi-ylo}
}

// Euclidean distance between the point (x, y) and the segment drawn from
// (ABegin, BBegin) to (AEnd, BEnd).
func (obj Segment) Distance(x, y float64) float64 {
  x1 := float64(obj.ABegin)
  y1 := float64(obj.BBegin)
  x2 := float64(obj.AEnd)
  y2 := float64(obj.BEnd)

  dx := x2 - x1
  dy := y2 - y1

  d2 := dx*dx + dy*dy
  if d2 == 0.0 {
    return math.Hypot(x-x1, y-y1)
  }
  t := ((x-x1)*dx + (y-y1)*dy)/d2
  if t < 0.0 {
    t = 0.0
  }
  if t > 1.0 {
    t = 1.0
  }
  return math.Hypot(x-(x1+t*dx), y-(y1+t*dy))
}

/* -------------------------------------------------------------------------- */

func (obj Segment) String() string {
  return fmt.Sprintf("segment %d: A[%d %d] B[%d %d] %c",
    obj.Id, obj.ABegin, obj.AEnd, obj.BBegin, obj.BEnd, obj.Orientation())
}
