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

package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "image/color"
import   "log"
import   "os"

import   "github.com/pborman/getopt"
import   "github.com/pbenner/threadpool"

import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/vg"
import   "gonum.org/v1/plot/vg/draw"

import . "github.com/pangenome/alnviz"
import   "github.com/pangenome/alnviz/lib/progress"

/* -------------------------------------------------------------------------- */

type Config struct {
  Frame      string
  FastaA     string
  FastaB     string
  Dots       bool
  Width      int
  Height     int
  Filter     AlnFilter
  Threads    int
  Verbose    int
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func buildPlot(config Config, filenames []string) *Plot {
  options := []interface{}{
    OptionThreads{Value: config.Threads},
    OptionFilter {Value: config.Filter}}
  if config.Verbose >= 2 {
    options = append(options, OptionLogger{Value: log.New(os.Stderr, "", 0)})
  }
  PrintStderr(config, 1, "Building plot from %d alignment file(s)... ", len(filenames))
  reader := NewPlotReader(filenames, 0, options...)
  result := <- reader.Channel
  if result.Error != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(result.Error)
  }
  PrintStderr(config, 1, "done\n")
  return result.Plot
}

func importFasta(config Config, filename string) SequenceSet {
  s := EmptySequenceSet()
  PrintStderr(config, 1, "Reading fasta file `%s'... ", filename)
  if err := s.ImportFasta(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return s
}

func parseFrame(config Config, aln *Plot) Frame {
  if config.Frame == "" {
    return aln.Bounds()
  }
  frame := Frame{}
  if _, err := fmt.Sscanf(config.Frame, "%f,%f,%f,%f", &frame.X, &frame.Y, &frame.W, &frame.H); err != nil {
    log.Fatalf("parsing frame `%s' failed: %v", config.Frame, err)
  }
  if frame.W <= 0.0 || frame.H <= 0.0 {
    log.Fatalf("frame `%s' has non-positive dimensions", config.Frame)
  }
  return frame
}

/* -------------------------------------------------------------------------- */

// Convert the segments of one layer into line plotters. Forward alignments
// are drawn in the layer's forward color, reverse alignments in the reverse
// color.
func segmentLines(layer Layer, segments []Segment) []plot.Plotter {
  plotters := make([]plot.Plotter, 0, len(segments))
  for _, s := range segments {
    xy := plotter.XYs{
      {X: float64(s.ABegin), Y: float64(s.BBegin)},
      {X: float64(s.AEnd  ), Y: float64(s.BEnd  )}}
    line, err := plotter.NewLine(xy)
    if err != nil {
      continue
    }
    if s.Orientation() == '-' {
      line.LineStyle.Color = layer.ColorReverse
    } else {
      line.LineStyle.Color = layer.ColorForward
    }
    line.LineStyle.Width = vg.Points(layer.Thickness)
    plotters = append(plotters, line)
  }
  return plotters
}

func dotScatter(dots []Dot, kind DotKind, c color.Color) plot.Plotter {
  xy := plotter.XYs{}
  for _, dot := range dots {
    if dot.Kind != kind {
      continue
    }
    xy = append(xy, plotter.XY{X: float64(dot.X), Y: float64(dot.Y)})
  }
  if len(xy) == 0 {
    return nil
  }
  scatter, err := plotter.NewScatter(xy)
  if err != nil {
    return nil
  }
  scatter.GlyphStyle.Color  = c
  scatter.GlyphStyle.Radius = vg.Points(0.5)
  scatter.GlyphStyle.Shape  = draw.CircleGlyph{}
  return scatter
}

/* -------------------------------------------------------------------------- */

func alnToPng(config Config, filenames []string, filenameOut string) {
  aln := buildPlot(config, filenames)

  if config.Dots {
    if config.FastaA == "" || config.FastaB == "" {
      log.Fatal("rendering dots requires --fasta-a and --fasta-b")
    }
    seqA := importFasta(config, config.FastaA)
    seqB := importFasta(config, config.FastaB)
    if err := aln.AttachSequences(seqA, seqB); err != nil {
      log.Fatal(err)
    }
  }
  frame := aln.ZoomTo(parseFrame(config, aln))

  // query all layers and convert segments to line plotters in parallel
  results := aln.Query()
  plotters := make([][]plot.Plotter, len(results))

  pool := threadpool.New(config.Threads, 100*config.Threads)
  jg   := pool.NewJobGroup()

  pool.AddRangeJob(0, len(results), jg, func(i int, pool threadpool.ThreadPool, erf func() error) error {
    plotters[i] = segmentLines(aln.Layers[i], results[i])
    return nil
  })
  pool.Wait(jg)

  p := plot.New()
  p.BackgroundColor = color.Black
  p.X.Label.Text = "genome A"
  p.Y.Label.Text = "genome B"
  p.X.Min = frame.X
  p.X.Max = frame.X+frame.W
  p.Y.Min = frame.Y
  p.Y.Max = frame.Y+frame.H
  // genomic Y grows upwards but dot-plots are drawn top-down
  p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
  p.X.LineStyle.Color       = color.White
  p.Y.LineStyle.Color       = color.White
  p.X.Label.TextStyle.Color = color.White
  p.Y.Label.TextStyle.Color = color.White
  p.X.Tick.LineStyle.Color  = color.White
  p.Y.Tick.LineStyle.Color  = color.White
  p.X.Tick.Label.Color      = color.White
  p.Y.Tick.Label.Color      = color.White

  n := 0
  for i := 0; i < len(plotters); i++ {
    n += len(plotters[i])
  }
  PrintStderr(config, 1, "Drawing %d segments...\n", n)
  pb := progress.New(n, 100)
  k  := 0
  for i := 0; i < len(plotters); i++ {
    for _, line := range plotters[i] {
      p.Add(line)
      if k++; config.Verbose >= 1 {
        pb.PrintStderr(k)
      }
    }
  }
  if config.Dots {
    dots, err := aln.DotPlot(frame)
    if err != nil {
      log.Fatal(err)
    }
    if dots.Truncated {
      PrintStderr(config, 1, "Dot-plot was truncated at %d dots\n", len(dots.Dots))
    }
    if scatter := dotScatter(dots.Dots, DotMatch, color.RGBA{0x00, 0xff, 0x00, 0xff}); scatter != nil {
      p.Add(scatter)
    }
    if scatter := dotScatter(dots.Dots, DotInverted, color.RGBA{0xff, 0x00, 0x00, 0xff}); scatter != nil {
      p.Add(scatter)
    }
  }
  if err := p.Save(vg.Points(float64(config.Width)), vg.Points(float64(config.Height)), filenameOut); err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Wrote plot to `%s'\n", filenameOut)
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}
  options := getopt.New()

  optFrame       := options. StringLong("frame",        0 ,   "", "visible frame as x,y,w,h   [default: full genome]")
  optFastaA      := options. StringLong("fasta-a",      0 ,   "", "fasta file of genome A (required for --dots)")
  optFastaB      := options. StringLong("fasta-b",      0 ,   "", "fasta file of genome B (required for --dots)")
  optDots        := options.   BoolLong("dots",         0 ,       "render the k-mer dot-plot of the frame")
  optWidth       := options.    IntLong("width",        0 ,  800, "canvas width  in points    [default: 800]")
  optHeight      := options.    IntLong("height",       0 ,  800, "canvas height in points    [default: 800]")
  optMinLength   := options.    IntLong("min-length",   0 ,    0, "minimum alignment length   [default: 0]")
  optMinIdentity := options. StringLong("min-identity", 0 ,  "0", "minimum percent identity   [default: 0]")
  optMinSpan     := options.    IntLong("min-span",     0 ,    0, "minimum span on genome A   [default: 0]")
  optThreads     := options.    IntLong("threads",      0 ,    1, "number of threads          [default: 1]")
  optVerbose     := options.CounterLong("verbose",     'v',       "verbose level [-v or -vv]")
  optHelp        := options.   BoolLong("help",        'h',       "print help")

  options.SetParameters("<INPUT.aln>... <OUTPUT.png>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) < 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  minIdentity := 0.0
  if _, err := fmt.Sscanf(*optMinIdentity, "%f", &minIdentity); err != nil {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Frame              = *optFrame
  config.FastaA             = *optFastaA
  config.FastaB             = *optFastaB
  config.Dots               = *optDots
  config.Width              = *optWidth
  config.Height             = *optHeight
  config.Filter.MinLength   = int64(*optMinLength)
  config.Filter.MinIdentity = minIdentity
  config.Filter.MinSpan     = int64(*optMinSpan)
  config.Threads            = *optThreads
  config.Verbose            = *optVerbose

  args := options.Args()

  alnToPng(config, args[0:len(args)-1], args[len(args)-1])
}
