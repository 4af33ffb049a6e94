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

import   "bufio"
import   "fmt"
import   "log"
import   "os"

import   "github.com/pborman/getopt"

import . "github.com/pangenome/alnviz"

/* -------------------------------------------------------------------------- */

type Config struct {
  Frame      string
  Pick       string
  Tolerance  float64
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

func parseFrame(config Config, plot *Plot) Frame {
  if config.Frame == "" {
    return plot.Bounds()
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

func queryFrame(config Config, plot *Plot, frame Frame) {
  writer := bufio.NewWriter(os.Stdout)
  defer writer.Flush()

  plot.ZoomTo(frame)

  for i, segments := range plot.Query() {
    for _, s := range segments {
      fmt.Fprintf(writer, "%s\t%d\t%d\t%d\t%d\t%d\t%c\n",
        plot.Layers[i].Name, s.Id, s.ABegin, s.AEnd, s.BBegin, s.BEnd, s.Orientation())
    }
  }
}

func pickSegment(config Config, plot *Plot) {
  x := 0.0
  y := 0.0
  if _, err := fmt.Sscanf(config.Pick, "%f,%f", &x, &y); err != nil {
    log.Fatalf("parsing point `%s' failed: %v", config.Pick, err)
  }
  plot.TraceFormatter = func(s Segment) string {
    a := plot.Label(s.ABegin, XAxis, LabelScaffoldName)
    b := plot.Label(s.BBegin, YAxis, LabelScaffoldName)
    return fmt.Sprintf("%s at %s / %s", s.String(), a, b)
  }
  layer, id, ok := plot.Pick(x, y, config.Tolerance)
  if !ok {
    fmt.Println("no segment within tolerance")
    return
  }
  fmt.Printf("%s\t%s\n", plot.Layers[layer].Name, plot.Describe(layer, id))
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}
  options := getopt.New()

  optFrame       := options. StringLong("frame",        0 ,   "", "query frame as x,y,w,h     [default: full genome]")
  optPick        := options. StringLong("pick",         0 ,   "", "pick nearest segment at x,y instead of querying")
  optTolerance   := options. StringLong("tolerance",    0 , "10", "pick tolerance in genomic units [default: 10]")
  optMinLength   := options.    IntLong("min-length",   0 ,    0, "minimum alignment length   [default: 0]")
  optMinIdentity := options. StringLong("min-identity", 0 ,  "0", "minimum percent identity   [default: 0]")
  optMinSpan     := options.    IntLong("min-span",     0 ,    0, "minimum span on genome A   [default: 0]")
  optThreads     := options.    IntLong("threads",      0 ,    1, "number of threads          [default: 1]")
  optVerbose     := options.CounterLong("verbose",     'v',       "verbose level [-v or -vv]")
  optHelp        := options.   BoolLong("help",        'h',       "print help")

  options.SetParameters("<INPUT.aln>...")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) < 1 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  minIdentity := 0.0
  if _, err := fmt.Sscanf(*optMinIdentity, "%f", &minIdentity); err != nil {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  tolerance := 0.0
  if _, err := fmt.Sscanf(*optTolerance, "%f", &tolerance); err != nil {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Frame              = *optFrame
  config.Pick               = *optPick
  config.Tolerance          = tolerance
  config.Filter.MinLength   = int64(*optMinLength)
  config.Filter.MinIdentity = minIdentity
  config.Filter.MinSpan     = int64(*optMinSpan)
  config.Threads            = *optThreads
  config.Verbose            = *optVerbose

  plot := buildPlot(config, options.Args())

  if config.Pick != "" {
    pickSegment(config, plot)
  } else {
    queryFrame(config, plot, parseFrame(config, plot))
  }
}
