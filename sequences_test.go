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

func TestSequences1(t *testing.T) {
  seqs := EmptySequenceSet()

  if err := seqs.ReadFasta(strings.NewReader(">s1\nacgt\n>s2\nttgg\ncc\n")); err != nil {
    t.Error(err)
    return
  }
  if len(seqs.Seqnames) != 2 || seqs.Seqnames[0] != "s1" || seqs.Seqnames[1] != "s2" {
    t.Error("test failed")
  }
  if string(seqs.Sequences["s2"]) != "ttggcc" {
    t.Error("test failed")
  }
  slice, err := seqs.GetSlice("s2", Range{2, 4})
  if err != nil || string(slice) != "gg" {
    t.Error("test failed")
  }
  // out of bounds ranges are clamped
  slice, err = seqs.GetSlice("s1", Range{2, 100})
  if err != nil || string(slice) != "gt" {
    t.Error("test failed")
  }
  if _, err := seqs.GetSlice("s3", Range{0, 1}); err == nil {
    t.Error("test failed")
  }
}

func TestSequences2(t *testing.T) {
  seqs := NewSequenceSet(
    []string{"s1"},
    [][]byte{[]byte("acNNgtNa")})

  contigs, err := seqs.Contigs("s1")
  if err != nil {
    t.Error(err)
    return
  }
  expected := []Range{{0, 2}, {4, 6}, {7, 8}}
  if len(contigs) != len(expected) {
    t.Error("test failed")
  } else {
    for i := 0; i < len(expected); i++ {
      if contigs[i] != expected[i] {
        t.Error("test failed")
      }
    }
  }
}

func TestSequences3(t *testing.T) {
  // windows are assembled across scaffold boundaries; missing scaffolds are
  // filled with n
  genome := NewGenome([]string{"s1", "s2", "s3"}, []int64{4, 4, 4})
  seqs   := NewSequenceSet(
    []string{"s1", "s3"},
    [][]byte{[]byte("acgt"), []byte("ttgg")})

  if window := seqs.GenomeWindow(genome, 0, 12); string(window) != "acgtnnnnttgg" {
    t.Errorf("test failed: %s", string(window))
  }
  if window := seqs.GenomeWindow(genome, 2, 6); string(window) != "gtnn" {
    t.Errorf("test failed: %s", string(window))
  }
  // the interval is clamped to the genome
  if window := seqs.GenomeWindow(genome, 10, 100); string(window) != "gg" {
    t.Errorf("test failed: %s", string(window))
  }
  if window := seqs.GenomeWindow(genome, -5, 2); string(window) != "ac" {
    t.Errorf("test failed: %s", string(window))
  }
  if window := seqs.GenomeWindow(genome, 8, 8); len(window) != 0 {
    t.Error("test failed")
  }
}

func TestSequences4(t *testing.T) {
  seqs := NewSequenceSet(
    []string{"s1", "s2"},
    [][]byte{[]byte("acgt"), []byte("ttgg")})

  genome := seqs.Skeleton()
  if genome.Length() != 2 || genome.TotalLength() != 8 {
    t.Error("test failed")
  }
  if genome.Seqnames[0] != "s1" || genome.Seqnames[1] != "s2" {
    t.Error("test failed")
  }
}
