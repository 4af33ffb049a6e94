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

// Visible genomic region. X spans genome A, Y spans genome B; the frame
// {X, Y, W, H} covers [X, X+W] x [Y, Y+H] in genomic units. Width and height
// of a valid frame are always positive.
type Frame struct {
  X, Y, W, H float64
}

// Integer discretization of a Frame, used for display and index queries. A
// view covers the closed box [X, X+W] x [Y, Y+H].
type View struct {
  X, Y, W, H int64
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewFrame(x, y, w, h float64) Frame {
  if w <= 0.0 || h <= 0.0 {
    panic("NewFrame(): frame width and height must be positive")
  }
  return Frame{x, y, w, h}
}

/* -------------------------------------------------------------------------- */

// Smallest View covering the frame.
func (frame Frame) View() View {
  x := int64(math.Floor(frame.X))
  y := int64(math.Floor(frame.Y))
  w := int64(math.Ceil (frame.X+frame.W)) - x
  h := int64(math.Ceil (frame.Y+frame.H)) - y
  return View{x, y, w, h}
}

func (frame Frame) Contains(gx, gy float64) bool {
  return gx >= frame.X && gx <= frame.X+frame.W &&
         gy >= frame.Y && gy <= frame.Y+frame.H
}

// Clamp the frame to the given bounds. The result is fully contained in
// bounds with both dimensions positive; frames larger than the bounds are
// shrunk, frames smaller than one genomic unit are grown to the dimension
// floor.
func (frame Frame) ClampTo(bounds Frame) Frame {
  w := fMax(fMin(frame.W, bounds.W), fMin(1.0, bounds.W))
  h := fMax(fMin(frame.H, bounds.H), fMin(1.0, bounds.H))
  x := fMax(bounds.X, fMin(frame.X, bounds.X+bounds.W-w))
  y := fMax(bounds.Y, fMin(frame.Y, bounds.Y+bounds.H-h))
  return Frame{x, y, w, h}
}

// Expand the bounds to the aspect ratio of a canvas, keeping the bounds
// centered. The result is the frame in which the full bounds rectangle is
// visible without distortion on the canvas.
func FitFrame(bounds Frame, canvasWidth, canvasHeight float64) Frame {
  if canvasWidth <= 0.0 || canvasHeight <= 0.0 {
    panic("FitFrame(): canvas dimensions must be positive")
  }
  scale := fMax(bounds.W/canvasWidth, bounds.H/canvasHeight)
  w     := scale*canvasWidth
  h     := scale*canvasHeight
  x     := bounds.X - (w-bounds.W)/2.0
  y     := bounds.Y - (h-bounds.H)/2.0
  return Frame{x, y, w, h}
}

func (frame Frame) String() string {
  return fmt.Sprintf("frame{%f %f %f %f}", frame.X, frame.Y, frame.W, frame.H)
}

/* -------------------------------------------------------------------------- */

func (view View) Frame() Frame {
  return Frame{float64(view.X), float64(view.Y), float64(view.W), float64(view.H)}
}

func (view View) Intersects(other View) bool {
  return view.X <= other.X+other.W && other.X <= view.X+view.W &&
         view.Y <= other.Y+other.H && other.Y <= view.Y+view.H
}

// True if the closed box of the argument lies fully inside the closed box
// of the receiver.
func (view View) ContainsView(other View) bool {
  return view.X <= other.X && other.X+other.W <= view.X+view.W &&
         view.Y <= other.Y && other.Y+other.H <= view.Y+view.H
}

func (view View) String() string {
  return fmt.Sprintf("view{%d %d %d %d}", view.X, view.Y, view.W, view.H)
}
