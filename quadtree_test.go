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
import "math/rand"
import "testing"

/* -------------------------------------------------------------------------- */

func testLayer(records []AlnRecord) Layer {
  layer, err := NewLayer(records, "test")
  if err != nil {
    panic(err)
  }
  return layer
}

/* -------------------------------------------------------------------------- */

func TestQuadTree1(t *testing.T) {
  layer := testLayer([]AlnRecord{
    {ABegin:   0, AEnd: 500, BBegin:   0, BEnd: 500},
    {ABegin: 600, AEnd: 900, BBegin: 100, BEnd: 400, Reverse: true}})

  if err := layer.BuildIndex(View{0, 0, 1000000, 1000000}, OptionLeafThreshold{1}); err != nil {
    t.Error(err)
    return
  }
  ids := layer.QueryView(View{0, 0, 1000000, 1000000})
  if len(ids) != 2 {
    t.Error("test failed")
  }
  ids = layer.QueryView(View{0, 0, 400, 400})
  if len(ids) != 1 || ids[0] != 0 {
    t.Error("test failed")
  }
}

func TestQuadTree2(t *testing.T) {
  // a segment straddling the center of the bounds must stay at the root and
  // still be found by queries into either half
  layer := testLayer([]AlnRecord{
    {ABegin: 400, AEnd: 600, BBegin: 400, BEnd: 600},
    {ABegin:  10, AEnd:  20, BBegin:  10, BEnd:  20},
    {ABegin: 910, AEnd: 920, BBegin: 910, BEnd: 920}})

  tree, err := NewQuadTree(&layer, View{0, 0, 1000, 1000}, OptionLeafThreshold{1})
  if err != nil {
    t.Error(err)
    return
  }
  found := false
  for _, id := range tree.Root.Segments {
    if id == 0 {
      found = true
    }
  }
  if !found {
    t.Error("test failed")
  }
  if ids := tree.QueryView(View{350, 350, 100, 100}); len(ids) != 1 || ids[0] != 0 {
    t.Error("test failed")
  }
  if ids := tree.QueryView(View{550, 550, 100, 100}); len(ids) != 1 || ids[0] != 0 {
    t.Error("test failed")
  }
}

func TestQuadTree3(t *testing.T) {
  // every segment appears exactly once in a full-bounds query, and each
  // segment is found by a query of its own bounding box
  records := make([]AlnRecord, 200)
  rng     := rand.New(rand.NewSource(42))

  for i := 0; i < len(records); i++ {
    x := rng.Int63n(900000)
    y := rng.Int63n(900000)
    w := rng.Int63n(50000)+1
    h := rng.Int63n(50000)+1
    records[i] = AlnRecord{ABegin: x, AEnd: x+w, BBegin: y, BEnd: y+h, Reverse: i % 3 == 0}
  }
  layer := testLayer(records)
  if err := layer.BuildIndex(View{0, 0, 1000000, 1000000}, OptionLeafThreshold{4}); err != nil {
    t.Error(err)
    return
  }
  ids  := layer.QueryView(View{0, 0, 1000000, 1000000})
  seen := make(map[int]int)
  for _, id := range ids {
    seen[id]++
  }
  if len(ids) != len(records) || len(seen) != len(records) {
    t.Error("test failed")
  }
  for i := 0; i < len(records); i++ {
    hit := false
    for _, id := range layer.QueryView(layer.Segment(i).BoundingView()) {
      if id == i {
        hit = true
      }
    }
    if !hit {
      t.Error("test failed")
    }
  }
}

func TestQuadTree4(t *testing.T) {
  // inverted or empty frames yield an empty result
  layer := testLayer([]AlnRecord{
    {ABegin: 0, AEnd: 500, BBegin: 0, BEnd: 500}})

  if err := layer.BuildIndex(View{0, 0, 1000, 1000}); err != nil {
    t.Error(err)
    return
  }
  if ids := layer.QueryFrame(Frame{0, 0, -100, 100}); len(ids) != 0 {
    t.Error("test failed")
  }
  if ids := layer.QueryFrame(Frame{0, 0, 100, 0}); len(ids) != 0 {
    t.Error("test failed")
  }
  if ids := layer.QueryView(View{0, 0, -1, 10}); len(ids) != 0 {
    t.Error("test failed")
  }
}

func TestQuadTree5(t *testing.T) {
  // repeated queries return identical results
  records := make([]AlnRecord, 50)
  rng     := rand.New(rand.NewSource(7))

  for i := 0; i < len(records); i++ {
    x := rng.Int63n(9000)
    y := rng.Int63n(9000)
    records[i] = AlnRecord{ABegin: x, AEnd: x+500, BBegin: y, BEnd: y+500}
  }
  layer := testLayer(records)
  if err := layer.BuildIndex(View{0, 0, 10000, 10000}, OptionLeafThreshold{2}); err != nil {
    t.Error(err)
    return
  }
  a := layer.QueryView(View{2000, 2000, 4000, 4000})
  b := layer.QueryView(View{2000, 2000, 4000, 4000})
  if len(a) != len(b) {
    t.Error("test failed")
  } else {
    for i := 0; i < len(a); i++ {
      if a[i] != b[i] {
        t.Error("test failed")
      }
    }
  }
}

func TestQuadTree6(t *testing.T) {
  // maximum depth bounds the tree even for overlapping segments
  records := make([]AlnRecord, 100)
  for i := 0; i < len(records); i++ {
    records[i] = AlnRecord{ABegin: 10, AEnd: 20, BBegin: 10, BEnd: 20}
  }
  layer := testLayer(records)
  if err := layer.BuildIndex(View{0, 0, 1 << 40, 1 << 40}, OptionLeafThreshold{1}, OptionMaxDepth{5}); err != nil {
    t.Error(err)
    return
  }
  if layer.Tree.Depth() > 6 {
    t.Error("test failed")
  }
  if ids := layer.QueryView(View{0, 0, 1 << 40, 1 << 40}); len(ids) != len(records) {
    t.Error("test failed")
  }
}

func TestQuadTree7(t *testing.T) {
  // extreme genome aspect ratios: 1Gb x 1kb
  layer := testLayer([]AlnRecord{
    {ABegin:         0, AEnd:      1000, BBegin:   0, BEnd: 100},
    {ABegin: 250000000, AEnd: 250001000, BBegin: 200, BEnd: 300, Reverse: true},
    {ABegin: 500000000, AEnd: 500001000, BBegin: 400, BEnd: 500},
    {ABegin: 999999000, AEnd: 999999999, BBegin: 900, BEnd: 999}})

  if err := layer.BuildIndex(View{0, 0, 1000000000, 1000}, OptionLeafThreshold{1}); err != nil {
    t.Error(err)
    return
  }
  if ids := layer.QueryView(View{0, 0, 1000000000, 1000}); len(ids) != 4 {
    t.Error("test failed")
  }
  for i := 0; i < layer.Length(); i++ {
    ids := layer.QueryView(layer.Segment(i).BoundingView())
    hit := false
    for _, id := range ids {
      if id == i {
        hit = true
      }
    }
    if !hit {
      t.Error("test failed")
    }
  }
  if ids := layer.QueryView(View{200000000, 0, 100000000, 1000}); len(ids) != 1 || ids[0] != 1 {
    t.Error("test failed")
  }
}
