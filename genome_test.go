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
import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

func TestGenome1(t *testing.T) {
  genome := NewGenome([]string{"s1", "s2", "s3"}, []int64{100, 200, 50})

  if genome.Length() != 3 || genome.TotalLength() != 350 {
    t.Error("test failed")
  }
  if genome.Offset(0) != 0 || genome.Offset(1) != 100 || genome.Offset(2) != 300 {
    t.Error("test failed")
  }
  boundaries := genome.Boundaries()
  expected   := []int64{0, 100, 300, 350}
  if len(boundaries) != len(expected) {
    t.Error("test failed")
  } else {
    for i := 0; i < len(expected); i++ {
      if boundaries[i] != expected[i] {
        t.Error("test failed")
      }
    }
  }
  if length, err := genome.SeqLength("s2"); err != nil || length != 200 {
    t.Error("test failed")
  }
  if _, err := genome.SeqLength("s4"); err == nil {
    t.Error("test failed")
  }
}

func TestGenome2(t *testing.T) {
  genome := NewGenome([]string{"s1", "s2", "s3"}, []int64{100, 200, 50})

  r, err := genome.ResolvePosition(0)
  if err != nil || r.Scaffold != 0 || r.Offset != 0 || r.Name != "s1" {
    t.Error("test failed")
  }
  r, err = genome.ResolvePosition(99)
  if err != nil || r.Scaffold != 0 || r.Offset != 99 {
    t.Error("test failed")
  }
  r, err = genome.ResolvePosition(100)
  if err != nil || r.Scaffold != 1 || r.Offset != 0 || r.Name != "s2" {
    t.Error("test failed")
  }
  r, err = genome.ResolvePosition(349)
  if err != nil || r.Scaffold != 2 || r.Offset != 49 {
    t.Error("test failed")
  }
  if _, err := genome.ResolvePosition(350); err == nil {
    t.Error("test failed")
  }
  if _, err := genome.ResolvePosition(-1); err == nil {
    t.Error("test failed")
  }
}

func TestGenome3(t *testing.T) {
  genome := NewGenome([]string{"s1", "s2"}, []int64{100, 200})
  genome.SetContigs(1, []Range{{10, 20}, {30, 60}})

  r, err := genome.ResolvePosition(115)
  if err != nil || r.Contig != 0 || r.ContigOffset != 5 {
    t.Error("test failed")
  }
  r, err = genome.ResolvePosition(135)
  if err != nil || r.Contig != 1 || r.ContigOffset != 5 {
    t.Error("test failed")
  }
  // gap between the contigs
  r, err = genome.ResolvePosition(125)
  if err != nil || r.Contig != -1 {
    t.Error("test failed")
  }
  // no contig list attached to the first scaffold
  r, err = genome.ResolvePosition(50)
  if err != nil || r.Contig != -1 {
    t.Error("test failed")
  }
}

func TestGenome4(t *testing.T) {
  genome := Genome{}

  if err := genome.Read(strings.NewReader("s1 100\ns2 200\n")); err != nil {
    t.Error(err)
    return
  }
  if genome.Length() != 2 || genome.TotalLength() != 300 {
    t.Error("test failed")
  }
  other := NewGenome([]string{"s1", "s2"}, []int64{100, 200})
  if !genome.Equals(other) {
    t.Error("test failed")
  }
  if genome.Equals(NewGenome([]string{"s1"}, []int64{100})) {
    t.Error("test failed")
  }
}
