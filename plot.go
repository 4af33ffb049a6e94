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

import "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

type OptionLogger struct {
  Value *log.Logger
}

type OptionThreads struct {
  Value int
}

type OptionFilter struct {
  Value AlnFilter
}

type OptionKmerSize struct {
  Value int
}

type OptionDotThreshold struct {
  Value float64
}

/* -------------------------------------------------------------------------- */

type PlotConfig struct {
  Logger        *log.Logger
  Threads       int
  LeafThreshold int
  MaxDepth      int
  Filter        AlnFilter
  KmerSize      int
  DotLimit      int
  DotThreshold  float64
}

func PlotDefaultConfig() PlotConfig {
  config := PlotConfig{}
  config.Logger        = log.New(ioutil.Discard, "", 0)
  config.Threads       = 1
  config.LeafThreshold = 64
  config.MaxDepth      = 20
  config.KmerSize      = 16
  config.DotLimit      = 1000000
  config.DotThreshold  = 1.0e6
  return config
}

/* -------------------------------------------------------------------------- */

// Aggregate of one comparison session: the two genome skeletons, optionally
// their sequences, the alignment layers with their spatial indices, and the
// viewport. A plot is constructed atomically by BuildPlot and, apart from
// the viewport and layer styles, never mutated afterwards; queries may
// therefore run from any number of goroutines. TraceFormatter, if set, is
// invoked by Describe to format the alignment of a picked segment.
type Plot struct {
  GenomeA Genome
  GenomeB Genome
  SeqA    SequenceSet
  SeqB    SequenceSet
  Layers  []Layer

  TraceFormatter func(Segment) string

  viewport *Viewport
  config    PlotConfig
}

/* constructors
 * -------------------------------------------------------------------------- */

// Construct a plot from one alignment set per layer. All sets must agree on
// the genome skeletons; sets without skeleton information adopt the skeleton
// of the others, and if no set carries one, a single-scaffold skeleton is
// derived from the coordinate extent of the records. Layer indices are
// built in parallel. Construction is all-or-nothing: on error no partially
// built plot is returned.
func BuildPlot(sets []AlnSet, options ...interface{}) (*Plot, error) {
  config := PlotDefaultConfig()

  // parse options
  for _, option := range options {
    switch opt := option.(type) {
    case OptionLogger:
      config.Logger = opt.Value
    case OptionThreads:
      config.Threads = opt.Value
    case OptionLeafThreshold:
      config.LeafThreshold = opt.Value
    case OptionMaxDepth:
      config.MaxDepth = opt.Value
    case OptionFilter:
      config.Filter = opt.Value
    case OptionKmerSize:
      config.KmerSize = opt.Value
    case OptionDotLimit:
      config.DotLimit = opt.Value
    case OptionDotThreshold:
      config.DotThreshold = opt.Value
    default:
      return nil, fmt.Errorf("BuildPlot(): invalid option `%v'", option)
    }
  }
  if config.Threads < 1 {
    return nil, fmt.Errorf("BuildPlot(): number of threads must be positive")
  }
  if len(sets) == 0 {
    return nil, fmt.Errorf("BuildPlot(): no alignment sets given")
  }
  // determine genome skeletons
  genomeA := Genome{}
  genomeB := Genome{}
  for _, set := range sets {
    if genomeA.Length() == 0 {
      genomeA = set.GenomeA
    }
    if genomeB.Length() == 0 {
      genomeB = set.GenomeB
    }
  }
  for i, set := range sets {
    if set.GenomeA.Length() > 0 && !set.GenomeA.Equals(genomeA) {
      return nil, fmt.Errorf("BuildPlot(): set %d disagrees on genome A", i)
    }
    if set.GenomeB.Length() > 0 && !set.GenomeB.Equals(genomeB) {
      return nil, fmt.Errorf("BuildPlot(): set %d disagrees on genome B", i)
    }
  }
  if genomeA.Length() == 0 {
    length := int64(0)
    for _, set := range sets {
      for _, r := range set.Records {
        length = i64Max(length, r.AEnd)
      }
    }
    genomeA.AddSequence("A", i64Max(length, 1))
  }
  if genomeB.Length() == 0 {
    length := int64(0)
    for _, set := range sets {
      for _, r := range set.Records {
        length = i64Max(length, i64Max(r.BBegin, r.BEnd))
      }
    }
    genomeB.AddSequence("B", i64Max(length, 1))
  }
  // build layers
  layers := make([]Layer, len(sets))
  for i, set := range sets {
    records := FilterAlignments(set.Records, config.Filter)

    name := set.Name
    if name == "" {
      name = fmt.Sprintf("layer %d", i+1)
    }
    layer, err := NewLayer(records, name)
    if err != nil {
      return nil, err
    }
    layers[i] = layer
    config.Logger.Printf("layer `%s': %d of %d records passed the filters", name, len(records), len(set.Records))
  }
  // build spatial indices on a worker pool
  bounds := View{0, 0, genomeA.TotalLength(), genomeB.TotalLength()}

  pool := threadpool.New(config.Threads, 100*config.Threads)
  jg   := pool.NewJobGroup()

  if err := pool.AddRangeJob(0, len(layers), jg, func(i int, pool threadpool.ThreadPool, erf func() error) error {
    return layers[i].BuildIndex(bounds,
      OptionLeafThreshold{config.LeafThreshold},
      OptionMaxDepth     {config.MaxDepth})
  }); err != nil {
    return nil, err
  }
  if err := pool.Wait(jg); err != nil {
    return nil, err
  }
  for i := 0; i < len(layers); i++ {
    config.Logger.Printf("layer `%s': %s", layers[i].Name, layers[i].Tree.String())
  }
  plot := new(Plot)
  plot.GenomeA  = genomeA
  plot.GenomeB  = genomeB
  plot.Layers   = layers
  plot.viewport = NewViewport(genomeA.TotalLength(), genomeB.TotalLength())
  plot.config   = config

  return plot, nil
}

/* -------------------------------------------------------------------------- */

// Length of genome A.
func (obj *Plot) ALen() int64 {
  return obj.GenomeA.TotalLength()
}

// Length of genome B.
func (obj *Plot) BLen() int64 {
  return obj.GenomeB.TotalLength()
}

// Full genome bounds.
func (obj *Plot) Bounds() Frame {
  return obj.viewport.Bounds()
}

func (obj *Plot) CurrentFrame() Frame {
  return obj.viewport.CurrentFrame()
}

func (obj *Plot) CurrentView() View {
  return obj.viewport.CurrentView()
}

func (obj *Plot) Overview() bool {
  return obj.viewport.Overview()
}

/* viewport transitions
 * -------------------------------------------------------------------------- */

func (obj *Plot) ZoomTo(frame Frame) Frame {
  return obj.viewport.ZoomTo(frame)
}

func (obj *Plot) ZoomToView(view View) Frame {
  return obj.viewport.ZoomToView(view)
}

func (obj *Plot) ZoomBy(factor, ax, ay float64) Frame {
  return obj.viewport.ZoomBy(factor, ax, ay)
}

func (obj *Plot) Pan(dx, dy float64) Frame {
  return obj.viewport.Pan(dx, dy)
}

func (obj *Plot) ZoomOut() Frame {
  return obj.viewport.ZoomOut()
}

func (obj *Plot) Reset() Frame {
  return obj.viewport.Reset()
}

/* queries
 * -------------------------------------------------------------------------- */

// Segments of all layers intersecting the frame, one slice per layer in
// layer order. Invisible layers contribute an empty slice, so indices into
// the result always match layer indices.
func (obj *Plot) QueryFrame(frame Frame) [][]Segment {
  result := make([][]Segment, len(obj.Layers))
  for i := 0; i < len(obj.Layers); i++ {
    if !obj.Layers[i].Visible {
      result[i] = []Segment{}
      continue
    }
    result[i] = obj.Layers[i].Segments(obj.Layers[i].QueryFrame(frame))
  }
  return result
}

// Segments intersecting the current frame.
func (obj *Plot) Query() [][]Segment {
  return obj.QueryFrame(obj.viewport.CurrentFrame())
}

/* coordinate mapping
 * -------------------------------------------------------------------------- */

// Mapper between the current frame and a canvas of the given dimensions,
// with the genome skeletons attached as position resolvers.
func (obj *Plot) Mapper(width, height int) Mapper {
  mapper := NewMapper(obj.viewport.CurrentFrame(), width, height)
  mapper.ResolverA = obj.GenomeA.ResolvePosition
  mapper.ResolverB = obj.GenomeB.ResolvePosition
  return mapper
}

// Label a genome-wide position on the given axis, with units scaled to the
// current frame.
func (obj *Plot) Label(position int64, axis Axis, format LabelFormat) string {
  return obj.Mapper(1, 1).Label(position, axis, format)
}

/* sequences and dot-plots
 * -------------------------------------------------------------------------- */

// Attach genome sequences for dot-plot generation. Scaffolds present in
// both the skeleton and the sequence set must agree on their length; contig
// lists are derived from the gap characters of the attached sequences.
func (obj *Plot) AttachSequences(seqA, seqB SequenceSet) error {
  attach := func(genome *Genome, seqs SequenceSet) error {
    for i := 0; i < genome.Length(); i++ {
      name := genome.Seqnames[i]
      sequence, ok := seqs.Sequences[name]
      if !ok {
        continue
      }
      if int64(len(sequence)) != genome.Lengths[i] {
        return fmt.Errorf("AttachSequences(): sequence length of scaffold `%s' does not match the skeleton", name)
      }
      contigs, err := seqs.Contigs(name)
      if err != nil {
        return err
      }
      genome.SetContigs(i, contigs)
    }
    return nil
  }
  if err := attach(&obj.GenomeA, seqA); err != nil {
    return err
  }
  if err := attach(&obj.GenomeB, seqB); err != nil {
    return err
  }
  obj.SeqA = seqA
  obj.SeqB = seqB
  return nil
}

// Exact-match dot plot for the given frame. Above the resolution threshold
// the result is empty, since segment rendering suffices there. The frame is
// clamped to the genome bounds; windows are extended by k-1 bases so that
// k-mers starting near the right edge are not lost.
func (obj *Plot) DotPlot(frame Frame) (*DotPlot, error) {
  frame = frame.ClampTo(obj.viewport.Bounds())
  if frame.W >= obj.config.DotThreshold || frame.H >= obj.config.DotThreshold {
    return &DotPlot{K: obj.config.KmerSize, Dots: []Dot{}}, nil
  }
  if len(obj.SeqA.Seqnames) == 0 || len(obj.SeqB.Seqnames) == 0 {
    return nil, fmt.Errorf("DotPlot(): no sequences attached")
  }
  view := frame.View()
  k    := int64(obj.config.KmerSize)

  a := obj.SeqA.GenomeWindow(obj.GenomeA, view.X, view.X+view.W+k-1)
  b := obj.SeqB.GenomeWindow(obj.GenomeB, view.Y, view.Y+view.H+k-1)

  return NewDotPlot(a, b, view.X, view.Y, obj.config.KmerSize,
    OptionLogger  {obj.config.Logger},
    OptionDotLimit{obj.config.DotLimit})
}

/* pick time formatting
 * -------------------------------------------------------------------------- */

// Formatted alignment text of a picked segment, or the empty string if no
// trace formatter is attached.
func (obj *Plot) Describe(layer, id int) string {
  if obj.TraceFormatter == nil {
    return ""
  }
  return obj.TraceFormatter(obj.Layers[layer].Segment(id))
}

/* background loading
 * -------------------------------------------------------------------------- */

// Result of a background load. Generation echoes the value given to
// NewPlotReader, so that a receiver can discard results of superseded
// loads.
type LoadResult struct {
  Plot       *Plot
  Error      error
  Generation int
}

type PlotReader struct {
  Channel chan LoadResult
}

// Import alignment files and build the plot on a background goroutine. The
// single result is delivered over Channel, which is closed afterwards; the
// builder keeps no reference to the plot once it is sent, so ownership
// passes completely to the receiver. The channel is buffered, hence an
// abandoned load cannot leak its goroutine.
func NewPlotReader(filenames []string, generation int, options ...interface{}) *PlotReader {
  reader := new(PlotReader)
  reader.Channel = make(chan LoadResult, 1)

  go func() {
    sets := make([]AlnSet, len(filenames))
    for i, filename := range filenames {
      if err := sets[i].Import(filename); err != nil {
        reader.Channel <- LoadResult{nil, err, generation}
        close(reader.Channel)
        return
      }
      sets[i].Name = filename
    }
    plot, err := BuildPlot(sets, options...)
    reader.Channel <- LoadResult{plot, err, generation}
    close(reader.Channel)
  }()
  return reader
}
