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
import   "log"
import   "os"

import   "github.com/pborman/getopt"

import . "github.com/pangenome/alnviz"

/* -------------------------------------------------------------------------- */

type Config struct {
  Filter   AlnFilter
  Verbose  int
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importAlnSet(config Config, filename string) AlnSet {
  set := AlnSet{}
  PrintStderr(config, 1, "Reading alignment file `%s'... ", filename)
  if err := set.Import(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  set.Name = filename
  return set
}

/* -------------------------------------------------------------------------- */

func alnStatistics(config Config, filenames []string) {
  for _, filename := range filenames {
    set     := importAlnSet(config, filename)
    records := FilterAlignments(set.Records, config.Filter)
    stats   := SummarizeAlignments(records)

    fmt.Printf("%s:\n", filename)
    fmt.Printf("  %-14s %10d\n",     "segments"     , stats.Segments)
    fmt.Printf("  %-14s %10d\n",     "forward"      , stats.Forward)
    fmt.Printf("  %-14s %10d\n",     "reverse"      , stats.Reverse)
    fmt.Printf("  %-14s %10d\n",     "aligned bases", stats.AlignedBases)
    fmt.Printf("  %-14s %13.2f%%\n", "mean identity", stats.MeanIdentity)
    if stats.Segments > 0 {
      fmt.Printf("  %-14s %v\n", "span A", stats.SpanA)
      fmt.Printf("  %-14s %v\n", "span B", stats.SpanB)
    }
    if n, m := len(records), len(set.Records); n != m {
      fmt.Printf("  %-14s %10d of %d\n", "filtered", m-n, m)
    }
  }
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}
  options := getopt.New()

  optMinLength   := options.    IntLong("min-length",   0 ,    0, "minimum alignment length   [default: 0]")
  optMinIdentity := options. StringLong("min-identity", 0 ,  "0", "minimum percent identity   [default: 0]")
  optMinSpan     := options.    IntLong("min-span",     0 ,    0, "minimum span on genome A   [default: 0]")
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
  config.Filter.MinLength   = int64(*optMinLength)
  config.Filter.MinIdentity = minIdentity
  config.Filter.MinSpan     = int64(*optMinSpan)
  config.Verbose            = *optVerbose

  alnStatistics(config, options.Args())
}
