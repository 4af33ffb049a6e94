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
import "io/ioutil"
import "path/filepath"
import "testing"

/* -------------------------------------------------------------------------- */

func scenarioSet() AlnSet {
  set := AlnSet{}
  set.GenomeA.AddSequence("A", 1000000)
  set.GenomeB.AddSequence("B", 1000000)
  set.Records = []AlnRecord{
    {ABegin:   0, AEnd: 500, BBegin:   0, BEnd: 500, Matches: 450, Length: 500},
    {ABegin: 600, AEnd: 900, BBegin: 100, BEnd: 400, Matches: 250, Length: 300, Reverse: true}}
  return set
}

/* -------------------------------------------------------------------------- */

func TestPlot1(t *testing.T) {
  plot, err := BuildPlot([]AlnSet{scenarioSet()})
  if err != nil {
    t.Error(err)
    return
  }
  if plot.ALen() != 1000000 || plot.BLen() != 1000000 {
    t.Error("test failed")
  }
  result := plot.QueryFrame(Frame{0, 0, 1000000, 1000000})
  if len(result) != 1 || len(result[0]) != 2 {
    t.Error("test failed")
  }
  result = plot.QueryFrame(Frame{0, 0, 400, 400})
  if len(result[0]) != 1 || result[0][0].Id != 0 {
    t.Error("test failed")
  }
  if layer, id, ok := plot.Pick(250, 250, 5); !ok || layer != 0 || id != 0 {
    t.Error("test failed")
  }
  // invisible layers contribute an empty slice
  plot.Layers[0].Visible = false
  if result := plot.Query(); len(result[0]) != 0 {
    t.Error("test failed")
  }
  if _, _, ok := plot.Pick(250, 250, 5); ok {
    t.Error("test failed")
  }
}

func TestPlot2(t *testing.T) {
  plot, err := BuildPlot([]AlnSet{scenarioSet()})
  if err != nil {
    t.Error(err)
    return
  }
  plot.ZoomTo(Frame{0, 0, 1.0e6, 1.0e6})
  plot.ZoomTo(Frame{0, 0, 1.0e3, 1.0e3})

  if frame := plot.ZoomOut(); frame != (Frame{0, 0, 1.0e6, 1.0e6}) {
    t.Error("test failed")
  }
  plot.Reset()
  if !plot.Overview() {
    t.Error("test failed")
  }
}

func TestPlot3(t *testing.T) {
  // sets must agree on the genome skeletons
  a := scenarioSet()
  b := scenarioSet()
  b.GenomeA = NewGenome([]string{"X"}, []int64{500})

  if _, err := BuildPlot([]AlnSet{a, b}); err == nil {
    t.Error("test failed")
  }
  if _, err := BuildPlot([]AlnSet{}); err == nil {
    t.Error("test failed")
  }
  // records failing the filter do not enter the layer
  plot, err := BuildPlot([]AlnSet{a}, OptionFilter{AlnFilter{MinLength: 400}})
  if err != nil {
    t.Error(err)
    return
  }
  if plot.Layers[0].Length() != 1 {
    t.Error("test failed")
  }
}

func TestPlot4(t *testing.T) {
  // a set without skeletons derives a single-scaffold genome from the
  // coordinate extent of its records
  set := AlnSet{}
  set.Records = []AlnRecord{
    {ABegin: 0, AEnd: 5000, BBegin: 0, BEnd: 7000, Matches: 1, Length: 1}}

  plot, err := BuildPlot([]AlnSet{set})
  if err != nil {
    t.Error(err)
    return
  }
  if plot.ALen() != 5000 || plot.BLen() != 7000 {
    t.Error("test failed")
  }
}

func TestPlot5(t *testing.T) {
  set := AlnSet{}
  set.GenomeA.AddSequence("s1", 20)
  set.GenomeB.AddSequence("r1", 20)
  set.Records = []AlnRecord{
    {ABegin: 0, AEnd: 20, BBegin: 0, BEnd: 20, Matches: 20, Length: 20}}

  plot, err := BuildPlot([]AlnSet{set}, OptionKmerSize{4})
  if err != nil {
    t.Error(err)
    return
  }
  // no sequences attached yet
  if _, err := plot.DotPlot(Frame{0, 0, 10, 10}); err == nil {
    t.Error("test failed")
  }
  seqs := NewSequenceSet([]string{"s1"}, [][]byte{[]byte("acgtacgtacgtacgtacgt")})
  reqs := NewSequenceSet([]string{"r1"}, [][]byte{[]byte("acgtacgtacgtacgtacgt")})
  if err := plot.AttachSequences(seqs, reqs); err != nil {
    t.Error(err)
    return
  }
  dots, err := plot.DotPlot(Frame{0, 0, 10, 10})
  if err != nil {
    t.Error(err)
    return
  }
  if len(dots.Dots) == 0 || dots.K != 4 {
    t.Error("test failed")
  }
  // identical frames yield identical dot sequences
  other, err := plot.DotPlot(Frame{0, 0, 10, 10})
  if err != nil {
    t.Error(err)
    return
  }
  if len(other.Dots) != len(dots.Dots) {
    t.Error("test failed")
  } else {
    for i := 0; i < len(dots.Dots); i++ {
      if other.Dots[i] != dots.Dots[i] {
        t.Error("test failed")
      }
    }
  }
}

func TestPlot6(t *testing.T) {
  // above the resolution threshold the dot-plot is empty
  set := AlnSet{}
  set.GenomeA.AddSequence("s1", 100)
  set.GenomeB.AddSequence("r1", 100)
  set.Records = []AlnRecord{
    {ABegin: 0, AEnd: 100, BBegin: 0, BEnd: 100, Matches: 100, Length: 100}}

  plot, err := BuildPlot([]AlnSet{set}, OptionKmerSize{4}, OptionDotThreshold{50.0})
  if err != nil {
    t.Error(err)
    return
  }
  seqs := NewSequenceSet([]string{"s1"}, [][]byte{make([]byte, 100)})
  reqs := NewSequenceSet([]string{"r1"}, [][]byte{make([]byte, 100)})
  if err := plot.AttachSequences(seqs, reqs); err != nil {
    t.Error(err)
    return
  }
  dots, err := plot.DotPlot(Frame{0, 0, 80, 80})
  if err != nil {
    t.Error(err)
    return
  }
  if len(dots.Dots) != 0 {
    t.Error("test failed")
  }
}

func TestPlot7(t *testing.T) {
  // mismatch between skeleton and sequence lengths is rejected
  set := AlnSet{}
  set.GenomeA.AddSequence("s1", 20)
  set.GenomeB.AddSequence("r1", 20)
  set.Records = []AlnRecord{
    {ABegin: 0, AEnd: 20, BBegin: 0, BEnd: 20, Matches: 20, Length: 20}}

  plot, err := BuildPlot([]AlnSet{set})
  if err != nil {
    t.Error(err)
    return
  }
  seqs := NewSequenceSet([]string{"s1"}, [][]byte{[]byte("acgt")})
  reqs := NewSequenceSet([]string{"r1"}, [][]byte{make([]byte, 20)})
  if err := plot.AttachSequences(seqs, reqs); err == nil {
    t.Error("test failed")
  }
}

func TestPlot8(t *testing.T) {
  plot, err := BuildPlot([]AlnSet{scenarioSet()})
  if err != nil {
    t.Error(err)
    return
  }
  // no trace formatter attached
  if s := plot.Describe(0, 0); s != "" {
    t.Error("test failed")
  }
  plot.TraceFormatter = func(s Segment) string {
    return fmt.Sprintf("alignment %d", s.Id)
  }
  if s := plot.Describe(0, 1); s != "alignment 1" {
    t.Error("test failed")
  }
}

func TestPlotReader1(t *testing.T) {
  filename := filepath.Join(t.TempDir(), "test.aln")

  if err := ioutil.WriteFile(filename, []byte(alnTestTable), 0666); err != nil {
    t.Error(err)
    return
  }
  reader := NewPlotReader([]string{filename}, 3)
  result := <- reader.Channel

  if result.Error != nil {
    t.Error(result.Error)
    return
  }
  if result.Generation != 3 || result.Plot == nil {
    t.Error("test failed")
  }
  if result.Plot.ALen() != 1000000 || len(result.Plot.Layers) != 1 {
    t.Error("test failed")
  }
  if result.Plot.Layers[0].Length() != 2 {
    t.Error("test failed")
  }
  // the channel is closed after the single send
  if _, ok := <- reader.Channel; ok {
    t.Error("test failed")
  }
}

func TestPlotReader2(t *testing.T) {
  reader := NewPlotReader([]string{"does-not-exist.aln"}, 0)
  result := <- reader.Channel

  if result.Error == nil || result.Plot != nil {
    t.Error("test failed")
  }
}
