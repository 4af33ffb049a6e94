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

type OptionLeafThreshold struct {
  Value int
}

type OptionMaxDepth struct {
  Value int
}

/* -------------------------------------------------------------------------- */

// Node of the spatial index. Leaves have a nil Children slice; branch nodes
// carry four quadrant children, of which empty ones are nil, and keep in
// Segments those segments whose bounding box straddles a quadrant boundary.
// Every segment of a layer is stored at exactly one node.
type QuadNode struct {
  Bounds   View
  Segments []int
  Children []*QuadNode
}

func (obj *QuadNode) Leaf() bool {
  return obj.Children == nil
}

/* -------------------------------------------------------------------------- */

type QuadTreeConfig struct {
  LeafThreshold int
  MaxDepth      int
}

func QuadTreeDefaultConfig() QuadTreeConfig {
  config := QuadTreeConfig{}
  config.LeafThreshold = 64
  config.MaxDepth      = 20
  return config
}

/* -------------------------------------------------------------------------- */

// Spatial index over the segments of one layer. The tree is built once and
// never mutated, so that queries from any number of goroutines need no
// locking. A segment is assigned to the smallest node on its root path whose
// bounds fully contain the segment bounding box; segments reaching outside
// the genome bounds remain at the root. Query cost is O(log n + k) for
// well-spread segments and degrades towards O(n) if most segments span the
// whole genome.
type QuadTree struct {
  Root   *QuadNode
  Bounds View
  config   QuadTreeConfig
  xlo, xhi []int64
  ylo, yhi []int64
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewQuadTree(layer *Layer, bounds View, options ...interface{}) (*QuadTree, error) {
  if bounds.W < 0 || bounds.H < 0 {
    panic("NewQuadTree(): invalid bounds")
  }
  config := QuadTreeDefaultConfig()

  // parse options
  for _, option := range options {
    switch opt := option.(type) {
    case OptionLeafThreshold:
      config.LeafThreshold = opt.Value
    case OptionMaxDepth:
      config.MaxDepth = opt.Value
    default:
      return nil, fmt.Errorf("NewQuadTree(): invalid option `%v'", option)
    }
  }
  if config.LeafThreshold < 1 {
    return nil, fmt.Errorf("NewQuadTree(): leaf threshold must be positive")
  }
  if config.MaxDepth < 0 {
    return nil, fmt.Errorf("NewQuadTree(): maximum depth must be non-negative")
  }
  n := layer.Length()

  tree := new(QuadTree)
  tree.Bounds = bounds
  tree.config = config
  tree.xlo    = make([]int64, n)
  tree.xhi    = make([]int64, n)
  tree.ylo    = make([]int64, n)
  tree.yhi    = make([]int64, n)

  ids := make([]int, n)
  for i := 0; i < n; i++ {
    tree.xlo[i] = layer.ABegin[i]
    tree.xhi[i] = layer.AEnd  [i]
    tree.ylo[i] = i64Min(layer.BBegin[i], layer.BEnd[i])
    tree.yhi[i] = i64Max(layer.BBegin[i], layer.BEnd[i])
    ids[i] = i
  }
  tree.Root = tree.build(bounds, ids, 0)

  return tree, nil
}

/* -------------------------------------------------------------------------- */

func quarter(bounds View) [4]View {
  w0 := bounds.W/2
  h0 := bounds.H/2
  w1 := bounds.W - w0
  h1 := bounds.H - h0
  return [4]View{
    {bounds.X,    bounds.Y,    w0, h0},
    {bounds.X+w0, bounds.Y,    w1, h0},
    {bounds.X,    bounds.Y+h0, w0, h1},
    {bounds.X+w0, bounds.Y+h0, w1, h1}}
}

func (obj *QuadTree) boundingView(id int) View {
  return View{obj.xlo[id], obj.ylo[id], obj.xhi[id]-obj.xlo[id], obj.yhi[id]-obj.ylo[id]}
}

func (obj *QuadTree) build(bounds View, ids []int, depth int) *QuadNode {
  node := new(QuadNode)
  node.Bounds = bounds

  if len(ids) <= obj.config.LeafThreshold || depth >= obj.config.MaxDepth {
    node.Segments = ids
    return node
  }
  quadrants := quarter(bounds)

  local := []int{}
  sub   := [4][]int{}

  for _, id := range ids {
    assigned := false
    for k := 0; k < 4; k++ {
      if quadrants[k].ContainsView(obj.boundingView(id)) {
        sub[k]   = append(sub[k], id)
        assigned = true
        break
      }
    }
    if !assigned {
      local = append(local, id)
    }
  }
  node.Segments = local
  node.Children = make([]*QuadNode, 4)
  for k := 0; k < 4; k++ {
    if len(sub[k]) > 0 {
      node.Children[k] = obj.build(quadrants[k], sub[k], depth+1)
    }
  }
  return node
}

/* queries
 * -------------------------------------------------------------------------- */

func (obj *QuadTree) segmentIntersects(id int, view View) bool {
  return obj.xlo[id] <= view.X+view.W && view.X <= obj.xhi[id] &&
         obj.ylo[id] <= view.Y+view.H && view.Y <= obj.yhi[id]
}

func (obj *QuadTree) query(node *QuadNode, view View, result []int) []int {
  if node == nil || !node.Bounds.Intersects(view) {
    return result
  }
  for _, id := range node.Segments {
    if obj.segmentIntersects(id, view) {
      result = append(result, id)
    }
  }
  for _, child := range node.Children {
    result = obj.query(child, view, result)
  }
  return result
}

// Ids of all segments whose bounding box intersects the view. The traversal
// order is fixed for a given tree, so repeated queries return identical
// results. Views with negative dimensions yield an empty result.
func (obj *QuadTree) QueryView(view View) []int {
  if view.W < 0 || view.H < 0 {
    return []int{}
  }
  return obj.query(obj.Root, view, []int{})
}

// Ids of all segments intersecting the frame. Inverted or zero-area frames
// yield an empty result.
func (obj *QuadTree) QueryFrame(frame Frame) []int {
  if frame.W <= 0.0 || frame.H <= 0.0 {
    return []int{}
  }
  return obj.QueryView(frame.View())
}

/* -------------------------------------------------------------------------- */

func (obj *QuadTree) depth(node *QuadNode) int {
  if node == nil {
    return 0
  }
  d := 0
  for _, child := range node.Children {
    if k := obj.depth(child); k > d {
      d = k
    }
  }
  return d+1
}

func (obj *QuadTree) nodes(node *QuadNode) int {
  if node == nil {
    return 0
  }
  n := 1
  for _, child := range node.Children {
    n += obj.nodes(child)
  }
  return n
}

// Height of the tree.
func (obj *QuadTree) Depth() int {
  return obj.depth(obj.Root)
}

// Number of allocated nodes.
func (obj *QuadTree) Nodes() int {
  return obj.nodes(obj.Root)
}

func (obj *QuadTree) String() string {
  return fmt.Sprintf("quad-tree with %d nodes and depth %d over %s",
    obj.Nodes(), obj.Depth(), obj.Bounds.String())
}
