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

// Visible frame of the plot together with the undo history of previous
// frames. The viewport starts in the overview state where the frame covers
// the full genome bounds; zooming pushes frames onto the history and ZoomOut
// pops them. All transitions clamp the frame to the genome bounds, so its
// width and height stay positive unconditionally. A viewport has a single
// owner and must not be mutated concurrently.
type Viewport struct {
  bounds  Frame
  frame   Frame
  history []Frame
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewViewport(alen, blen int64) *Viewport {
  if alen <= 0 || blen <= 0 {
    panic("NewViewport(): genome lengths must be positive")
  }
  viewport := new(Viewport)
  viewport.bounds = Frame{0.0, 0.0, float64(alen), float64(blen)}
  viewport.frame  = viewport.bounds
  return viewport
}

/* -------------------------------------------------------------------------- */

// Full genome bounds.
func (obj *Viewport) Bounds() Frame {
  return obj.bounds
}

func (obj *Viewport) CurrentFrame() Frame {
  return obj.frame
}

func (obj *Viewport) CurrentView() View {
  return obj.frame.View()
}

// True if the viewport shows the full genome and no zoom history remains.
func (obj *Viewport) Overview() bool {
  return len(obj.history) == 0 && obj.frame == obj.bounds
}

// Number of frames on the zoom history.
func (obj *Viewport) Depth() int {
  return len(obj.history)
}

/* transitions
 * -------------------------------------------------------------------------- */

// Push the current frame onto the history and show the given frame, clamped
// to the genome bounds.
func (obj *Viewport) ZoomTo(frame Frame) Frame {
  obj.history = append(obj.history, obj.frame)
  obj.frame   = frame.ClampTo(obj.bounds)
  return obj.frame
}

// Zoom to an integer rectangle, e.g. from a rubber-band selection. The
// rectangle may be dragged in any direction; negative dimensions are
// normalized before zooming.
func (obj *Viewport) ZoomToView(view View) Frame {
  x, w := view.X, view.W
  y, h := view.Y, view.H
  if w < 0 {
    x, w = x+w, -w
  }
  if h < 0 {
    y, h = y+h, -h
  }
  return obj.ZoomTo(View{x, y, w, h}.Frame())
}

// Scale the current frame around the anchor point; a factor greater than one
// zooms in. The anchor keeps its relative position inside the frame. The
// history is not touched, so successive wheel steps do not pile up undo
// entries.
func (obj *Viewport) ZoomBy(factor float64, ax, ay float64) Frame {
  if factor <= 0.0 {
    panic("ZoomBy(): factor must be positive")
  }
  frame := obj.frame
  frame.W = frame.W/factor
  frame.H = frame.H/factor
  frame.X = ax - (ax - frame.X)/factor
  frame.Y = ay - (ay - frame.Y)/factor

  obj.frame = frame.ClampTo(obj.bounds)
  return obj.frame
}

// Translate the current frame, clamped so that it cannot overshoot the
// genome edges.
func (obj *Viewport) Pan(dx, dy float64) Frame {
  frame := obj.frame
  frame.X += dx
  frame.Y += dy

  obj.frame = frame.ClampTo(obj.bounds)
  return obj.frame
}

// Pop the last frame from the history. At the overview state this is a
// no-op.
func (obj *Viewport) ZoomOut() Frame {
  if n := len(obj.history); n > 0 {
    obj.frame   = obj.history[n-1]
    obj.history = obj.history[0:n-1]
  }
  return obj.frame
}

// Drop the complete history and return to the overview state.
func (obj *Viewport) Reset() Frame {
  obj.history = nil
  obj.frame   = obj.bounds
  return obj.frame
}
