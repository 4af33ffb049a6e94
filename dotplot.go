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
import "log"
import "io/ioutil"

/* -------------------------------------------------------------------------- */

type OptionDotLimit struct {
  Value int
}

type OptionAlphabet struct {
  Value ComplementableAlphabet
}

/* -------------------------------------------------------------------------- */

type DotKind byte

const (
  DotMatch    DotKind = iota // exact k-mer match
  DotInverted                // reverse complement match
)

// A single exact-match point in genome-wide coordinates. Dots are transient
// and regenerated per query.
type Dot struct {
  X, Y int64
  Kind DotKind
}

// Exact-match point set of one window pair. If the dot limit was reached
// during generation, Dots holds the first Limit dots and Truncated is set.
type DotPlot struct {
  K         int
  Dots      []Dot
  Truncated bool
}

/* -------------------------------------------------------------------------- */

type DotPlotConfig struct {
  Logger   *log.Logger
  Alphabet ComplementableAlphabet
  Limit    int
}

func DotPlotDefaultConfig() DotPlotConfig {
  config := DotPlotConfig{}
  config.Logger   = log.New(ioutil.Discard, "", 0)
  config.Alphabet = NucleotideAlphabet{}
  config.Limit    = 1000000
  return config
}

/* -------------------------------------------------------------------------- */

// Compute the exact-match dot plot between two sequence windows. K-mers of
// the A window are packed into two-bit codes and hashed to their positions;
// the B window is then scanned once, emitting a match dot for every shared
// k-mer and an inverted dot for every k-mer whose reverse complement occurs
// in A. Bytes outside the alphabet reset the rolling window, so no k-mer
// spans a gap. Dots carry genome-wide coordinates, obtained by adding the
// window offsets to the k-mer start positions. Generation stops early once
// the dot limit is reached; the result is then flagged as truncated. The
// output is deterministic: identical windows and k yield the identical dot
// sequence.
func NewDotPlot(a, b []byte, aOffset, bOffset int64, k int, options ...interface{}) (*DotPlot, error) {
  config := DotPlotDefaultConfig()

  // parse options
  for _, option := range options {
    switch opt := option.(type) {
    case OptionLogger:
      config.Logger = opt.Value
    case OptionDotLimit:
      config.Limit = opt.Value
    case OptionAlphabet:
      config.Alphabet = opt.Value
    default:
      return nil, fmt.Errorf("NewDotPlot(): invalid option `%v'", option)
    }
  }
  if k < 1 || k > 31 {
    return nil, fmt.Errorf("NewDotPlot(): k must be between 1 and 31")
  }
  if config.Limit < 1 {
    return nil, fmt.Errorf("NewDotPlot(): dot limit must be positive")
  }
  config.Logger.Printf("computing dot-plot with k=%d on a %d x %d window", k, len(a), len(b))

  result := DotPlot{K: k, Dots: []Dot{}}

  keymask := (uint64(1) << (2*uint(k))) - 1
  shift   := uint(2*(k-1))

  // hash all k-mers of the A window to their start positions
  table := make(map[uint64][]int64)
  key   := uint64(0)
  valid := 0
  for i := 0; i < len(a); i++ {
    c, err := config.Alphabet.Code(a[i])
    if err != nil {
      key, valid = 0, 0
      continue
    }
    key = ((key << 2) | uint64(c)) & keymask
    if valid++; valid >= k {
      table[key] = append(table[key], aOffset+int64(i-k+1))
    }
  }
  config.Logger.Printf("indexed %d distinct k-mers", len(table))

  emit := func(x, y int64, kind DotKind) bool {
    if len(result.Dots) >= config.Limit {
      result.Truncated = true
      return false
    }
    result.Dots = append(result.Dots, Dot{x, y, kind})
    return true
  }
  // scan the B window, tracking the forward code and the code of the
  // reverse complement simultaneously
  fkey := uint64(0)
  rkey := uint64(0)
  valid = 0
loop:
  for j := 0; j < len(b); j++ {
    c, err := config.Alphabet.Code(b[j])
    if err != nil {
      fkey, rkey, valid = 0, 0, 0
      continue
    }
    r, err := config.Alphabet.ComplementCoded(c)
    if err != nil {
      return nil, err
    }
    fkey = ((fkey << 2) | uint64(c)) & keymask
    rkey = (rkey >> 2) | (uint64(r) << shift)
    if valid++; valid < k {
      continue
    }
    y := bOffset+int64(j-k+1)
    for _, x := range table[fkey] {
      if !emit(x, y, DotMatch) {
        break loop
      }
    }
    for _, x := range table[rkey] {
      if !emit(x, y, DotInverted) {
        break loop
      }
    }
  }
  config.Logger.Printf("dot-plot yielded %d dots (truncated: %v)", len(result.Dots), result.Truncated)

  return &result, nil
}
