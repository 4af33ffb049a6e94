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

import "math"
import "sort"

/* -------------------------------------------------------------------------- */

// Id of the segment closest to the point (x, y), if its distance is within
// the tolerance. Only segments whose bounding box reaches into the square of
// radius tolerance around the point are considered, so the spatial index
// prunes the candidate set. Ties are broken by the lowest segment id. The
// second return value is false if no segment lies within the tolerance.
func (obj Layer) Pick(x, y, tolerance float64) (int, bool) {
  if tolerance < 0.0 {
    tolerance = 0.0
  }
  xlo := int64(math.Floor(x - tolerance))
  ylo := int64(math.Floor(y - tolerance))
  xhi := int64(math.Ceil (x + tolerance))
  yhi := int64(math.Ceil (y + tolerance))

  ids := obj.QueryView(View{xlo, ylo, xhi-xlo, yhi-ylo})
  sort.Ints(ids)

  best     := -1
  distance := math.Inf(1)

  for _, id := range ids {
    if d := obj.Segment(id).Distance(x, y); d <= tolerance && d < distance {
      best     = id
      distance = d
    }
  }
  return best, best != -1
}

/* -------------------------------------------------------------------------- */

// Nearest segment across all visible layers. Returns the layer index, the
// segment id within that layer, and false if nothing lies within the
// tolerance. If two layers hold equally close segments the earlier layer
// wins.
func (obj *Plot) Pick(x, y, tolerance float64) (int, int, bool) {
  layer    := -1
  segment  := -1
  distance := math.Inf(1)

  for i := 0; i < len(obj.Layers); i++ {
    if !obj.Layers[i].Visible {
      continue
    }
    id, ok := obj.Layers[i].Pick(x, y, tolerance)
    if !ok {
      continue
    }
    if d := obj.Layers[i].Segment(id).Distance(x, y); d < distance {
      layer    = i
      segment  = id
      distance = d
    }
  }
  return layer, segment, layer != -1
}
