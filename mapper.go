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

/* -------------------------------------------------------------------------- */

type Axis int

const (
  XAxis Axis = iota // genome A
  YAxis             // genome B
)

// Position label formats, from raw genome-wide coordinates to fully resolved
// scaffold and contig names.
type LabelFormat int

const (
  LabelPlain              LabelFormat = iota // genome-wide position
  LabelContig                                // contig-relative position
  LabelScaffold                              // scaffold-relative position
  LabelScaffoldContig                        // scaffold and contig
  LabelScaffoldName                          // named scaffold
  LabelScaffoldNameContig                    // named scaffold and contig
)

/* -------------------------------------------------------------------------- */

// Affine transform between genomic and screen coordinates for a fixed frame
// and canvas. The vertical axis is inverted: genomic Y grows upwards, pixel
// Y grows downwards. The mapper holds no genome topology; scaffold and
// contig resolution is delegated to the attached resolver functions.
type Mapper struct {
  Frame     Frame
  Width     float64
  Height    float64
  ResolverA PositionResolver
  ResolverB PositionResolver
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewMapper(frame Frame, width, height int) Mapper {
  if frame.W <= 0.0 || frame.H <= 0.0 {
    panic("NewMapper(): frame width and height must be positive")
  }
  if width <= 0 || height <= 0 {
    panic("NewMapper(): canvas dimensions must be positive")
  }
  return Mapper{Frame: frame, Width: float64(width), Height: float64(height)}
}

/* coordinate transforms
 * -------------------------------------------------------------------------- */

// Map a genomic point to pixel coordinates.
func (obj Mapper) ToScreen(gx, gy float64) (float64, float64) {
  px := (gx - obj.Frame.X)/obj.Frame.W * obj.Width
  py := obj.Height - (gy - obj.Frame.Y)/obj.Frame.H * obj.Height
  return px, py
}

// Map a pixel to genomic coordinates. Exact algebraic inverse of ToScreen.
func (obj Mapper) ToGenomic(px, py float64) (float64, float64) {
  gx := obj.Frame.X + px/obj.Width * obj.Frame.W
  gy := obj.Frame.Y + (obj.Height - py)/obj.Height * obj.Frame.H
  return gx, gy
}

/* position labels
 * -------------------------------------------------------------------------- */

// Format a coordinate offset with units chosen from the magnitude of the
// visible span: base pairs below 1 kb, then kb, Mb and Gb with increasing
// precision.
func formatUnits(value int64, span float64) string {
  switch {
  case span < 1.0e3:
    return fmt.Sprintf("%d bp", value)
  case span < 1.0e6:
    return fmt.Sprintf("%.1f kb", float64(value)/1.0e3)
  case span < 1.0e9:
    return fmt.Sprintf("%.2f Mb", float64(value)/1.0e6)
  default:
    return fmt.Sprintf("%.2f Gb", float64(value)/1.0e9)
  }
}

// Human readable label of a genome-wide position on the given axis. Formats
// requiring genome topology use the axis resolver; if no resolver is
// attached or the position cannot be resolved, the label falls back to the
// raw genome-wide form. Scaffold and contig ordinals are 1-based.
func (obj Mapper) Label(position int64, axis Axis, format LabelFormat) string {
  span     := obj.Frame.W
  resolver := obj.ResolverA
  if axis == YAxis {
    span     = obj.Frame.H
    resolver = obj.ResolverB
  }
  if format == LabelPlain || resolver == nil {
    return formatUnits(position, span)
  }
  r, err := resolver(position)
  if err != nil {
    return formatUnits(position, span)
  }
  switch format {
  case LabelContig:
    if r.Contig < 0 {
      return fmt.Sprintf("scf%d:%s", r.Scaffold+1, formatUnits(r.Offset, span))
    }
    return fmt.Sprintf("ctg%d:%s", r.Contig+1, formatUnits(r.ContigOffset, span))
  case LabelScaffold:
    return fmt.Sprintf("scf%d:%s", r.Scaffold+1, formatUnits(r.Offset, span))
  case LabelScaffoldContig:
    if r.Contig < 0 {
      return fmt.Sprintf("scf%d:%s", r.Scaffold+1, formatUnits(r.Offset, span))
    }
    return fmt.Sprintf("scf%d/ctg%d:%s", r.Scaffold+1, r.Contig+1, formatUnits(r.ContigOffset, span))
  case LabelScaffoldName:
    return fmt.Sprintf("%s:%s", r.Name, formatUnits(r.Offset, span))
  case LabelScaffoldNameContig:
    if r.Contig < 0 {
      return fmt.Sprintf("%s:%s", r.Name, formatUnits(r.Offset, span))
    }
    return fmt.Sprintf("%s/ctg%d:%s", r.Name, r.Contig+1, formatUnits(r.ContigOffset, span))
  default:
    return formatUnits(position, span)
  }
}
