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
import "image/color"

/* -------------------------------------------------------------------------- */

// One alignment file's segments plus display style. Segment coordinates are
// stored column-wise and never change once the layer is built; a new load
// produces a new layer. The B columns hold reverse alignments with
// BBegin > BEnd.
type Layer struct {
  ABegin []int64
  AEnd   []int64
  BBegin []int64
  BEnd   []int64

  Name         string
  Visible      bool
  ColorForward color.RGBA
  ColorReverse color.RGBA
  Thickness    float64

  Tree *QuadTree
}

/* constructors
 * -------------------------------------------------------------------------- */

// Create a layer from a stream of already-filtered alignment records. The
// segment id equals the position of the record in the stream. An empty
// stream yields a valid, empty layer. B coordinates are normalized so that
// forward alignments run upwards and reverse alignments downwards; a record
// with ABegin > AEnd is malformed and aborts construction.
func NewLayer(records []AlnRecord, name string) (Layer, error) {
  layer := Layer{}
  layer.Name         = name
  layer.Visible      = true
  layer.ColorForward = color.RGBA{0x00, 0xff, 0x00, 0xff}
  layer.ColorReverse = color.RGBA{0xff, 0x00, 0x00, 0xff}
  layer.Thickness    = 1.0

  layer.ABegin = make([]int64, len(records))
  layer.AEnd   = make([]int64, len(records))
  layer.BBegin = make([]int64, len(records))
  layer.BEnd   = make([]int64, len(records))

  for i, r := range records {
    if r.ABegin > r.AEnd {
      return Layer{}, fmt.Errorf("NewLayer(): record %d has aBegin > aEnd", i)
    }
    blo := i64Min(r.BBegin, r.BEnd)
    bhi := i64Max(r.BBegin, r.BEnd)

    layer.ABegin[i] = r.ABegin
    layer.AEnd  [i] = r.AEnd
    if r.Reverse {
      layer.BBegin[i] = bhi
      layer.BEnd  [i] = blo
    } else {
      layer.BBegin[i] = blo
      layer.BEnd  [i] = bhi
    }
  }
  return layer, nil
}

/* -------------------------------------------------------------------------- */

// Number of segments in the layer.
func (obj Layer) Length() int {
  return len(obj.ABegin)
}

// Row view of the i'th segment.
func (obj Layer) Segment(i int) Segment {
  if i < 0 || i >= obj.Length() {
    panic("Segment(): index out of range")
  }
  return Segment{obj.ABegin[i], obj.AEnd[i], obj.BBegin[i], obj.BEnd[i], i}
}

// Materialize row views for a list of segment ids.
func (obj Layer) Segments(ids []int) []Segment {
  segments := make([]Segment, len(ids))
  for i, id := range ids {
    segments[i] = obj.Segment(id)
  }
  return segments
}

/* spatial index
 * -------------------------------------------------------------------------- */

// Construct the spatial index of the layer over the given genome bounds.
func (obj *Layer) BuildIndex(bounds View, options ...interface{}) error {
  tree, err := NewQuadTree(obj, bounds, options...)
  if err != nil {
    return err
  }
  obj.Tree = tree
  return nil
}

// Ids of all segments intersecting the frame. The index must have been
// built.
func (obj Layer) QueryFrame(frame Frame) []int {
  if obj.Tree == nil {
    panic("QueryFrame(): spatial index not built")
  }
  return obj.Tree.QueryFrame(frame)
}

func (obj Layer) QueryView(view View) []int {
  if obj.Tree == nil {
    panic("QueryView(): spatial index not built")
  }
  return obj.Tree.QueryView(view)
}

/* -------------------------------------------------------------------------- */

func (obj Layer) String() string {
  return fmt.Sprintf("layer `%s' with %d segments", obj.Name, obj.Length())
}
