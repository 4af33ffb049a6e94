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

//import "fmt"
import "testing"

/* -------------------------------------------------------------------------- */

func TestLayer1(t *testing.T) {
  layer, err := NewLayer([]AlnRecord{
    {ABegin: 10, AEnd: 20, BBegin: 30, BEnd: 40},
    {ABegin: 50, AEnd: 60, BBegin: 70, BEnd: 80, Reverse: true}}, "test")
  if err != nil {
    t.Error(err)
    return
  }
  if layer.Length() != 2 {
    t.Error("test failed")
  }
  // forward alignments run upwards
  s := layer.Segment(0)
  if s.BBegin != 30 || s.BEnd != 40 || s.Orientation() != '+' {
    t.Error("test failed")
  }
  // reverse alignments run downwards
  s = layer.Segment(1)
  if s.BBegin != 80 || s.BEnd != 70 || s.Orientation() != '-' {
    t.Error("test failed")
  }
  // ids equal the position in the record stream
  if layer.Segment(0).Id != 0 || layer.Segment(1).Id != 1 {
    t.Error("test failed")
  }
}

func TestLayer2(t *testing.T) {
  // an empty record stream yields a valid, empty layer
  layer, err := NewLayer([]AlnRecord{}, "empty")
  if err != nil {
    t.Error(err)
    return
  }
  if layer.Length() != 0 {
    t.Error("test failed")
  }
  if err := layer.BuildIndex(View{0, 0, 1000, 1000}); err != nil {
    t.Error(err)
    return
  }
  if ids := layer.QueryView(View{0, 0, 1000, 1000}); len(ids) != 0 {
    t.Error("test failed")
  }
}

func TestLayer3(t *testing.T) {
  // layer construction is all-or-nothing
  if _, err := NewLayer([]AlnRecord{
    {ABegin: 10, AEnd: 20, BBegin: 30, BEnd: 40},
    {ABegin: 20, AEnd: 10, BBegin: 30, BEnd: 40}}, "test"); err == nil {
    t.Error("test failed")
  }
}

func TestSegment1(t *testing.T) {
  s := Segment{ABegin: 600, AEnd: 900, BBegin: 400, BEnd: 100, Id: 1}

  xlo, xhi, ylo, yhi := s.BoundingBox()
  if xlo != 600 || xhi != 900 || ylo != 100 || yhi != 400 {
    t.Error("test failed")
  }
  if s.BoundingView() != (View{600, 100, 300, 300}) {
    t.Error("test failed")
  }
  // distance to a point on the segment is zero
  if d := s.Distance(750, 250); d != 0.0 {
    t.Error("test failed")
  }
  // distance beyond the end point is measured to the end point
  s = Segment{ABegin: 0, AEnd: 100, BBegin: 0, BEnd: 0}
  if d := s.Distance(110, 0); d != 10.0 {
    t.Error("test failed")
  }
}
