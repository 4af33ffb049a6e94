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

import "bufio"
import "bytes"
import "compress/gzip"
import "fmt"
import "io"
import "os"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// A single alignment between two genomes in genome-wide coordinates. The
// record is the unit handed over by alignment parsers; coordinates refer to
// the concatenated scaffold axes of genome A and genome B. Matches is the
// number of matching bases and Length the total alignment length, so that
// the percent identity is 100*Matches/Length.
type AlnRecord struct {
  ABegin  int64
  AEnd    int64
  BBegin  int64
  BEnd    int64
  Reverse bool
  Matches int64
  Length  int64
}

// Percent identity of the alignment.
func (obj AlnRecord) Identity() float64 {
  if obj.Length == 0 {
    return 0.0
  }
  return 100.0*float64(obj.Matches)/float64(obj.Length)
}

/* -------------------------------------------------------------------------- */

// Alignment records of one comparison together with the skeletons of the two
// genomes they refer to.
type AlnSet struct {
  Name    string
  GenomeA Genome
  GenomeB Genome
  Records []AlnRecord
}

/* filters
 * -------------------------------------------------------------------------- */

// Cutoffs applied when alignment files are loaded. Zero values pass every
// record.
type AlnFilter struct {
  MinLength   int64
  MinIdentity float64
  MinSpan     int64
}

// Drop all records that are shorter than MinLength, less identical than
// MinIdentity, or span less than MinSpan bases on the A axis.
func FilterAlignments(records []AlnRecord, filter AlnFilter) []AlnRecord {
  result := []AlnRecord{}
  for _, r := range records {
    if r.Length < filter.MinLength {
      continue
    }
    if r.Identity() < filter.MinIdentity {
      continue
    }
    if r.AEnd - r.ABegin < filter.MinSpan {
      continue
    }
    result = append(result, r)
  }
  return result
}

/* statistics
 * -------------------------------------------------------------------------- */

type AlnStatistics struct {
  Segments     int
  Forward      int
  Reverse      int
  AlignedBases int64
  MeanIdentity float64
  SpanA        Range
  SpanB        Range
}

// Summary statistics over a record list. The mean identity is weighted by
// alignment length.
func SummarizeAlignments(records []AlnRecord) AlnStatistics {
  stats := AlnStatistics{}
  stats.Segments = len(records)

  matches := int64(0)

  for i, r := range records {
    if r.Reverse {
      stats.Reverse ++
    } else {
      stats.Forward ++
    }
    stats.AlignedBases += r.Length
    matches            += r.Matches

    alo := i64Min(r.ABegin, r.AEnd)
    ahi := i64Max(r.ABegin, r.AEnd)
    blo := i64Min(r.BBegin, r.BEnd)
    bhi := i64Max(r.BBegin, r.BEnd)
    if i == 0 {
      stats.SpanA = Range{alo, ahi}
      stats.SpanB = Range{blo, bhi}
    } else {
      stats.SpanA = Range{i64Min(stats.SpanA.From, alo), i64Max(stats.SpanA.To, ahi)}
      stats.SpanB = Range{i64Min(stats.SpanB.From, blo), i64Max(stats.SpanB.To, bhi)}
    }
  }
  if stats.AlignedBases > 0 {
    stats.MeanIdentity = 100.0*float64(matches)/float64(stats.AlignedBases)
  }
  return stats
}

/* i/o
 * -------------------------------------------------------------------------- */

// Read alignment records from a whitespace separated table. Header lines of
// the form
//   # A <seqname> <length>
//   # B <seqname> <length>
// define the scaffolds of the two genomes in order; all other lines starting
// with `#' are ignored. Data lines carry seven columns:
//   <aBegin> <aEnd> <bBegin> <bEnd> <strand> <matches> <length>
// where strand is `+' or `-'. Reading is all-or-nothing; on error the object
// is left untouched.
func (obj *AlnSet) Read(reader io.Reader) error {
  genomeA := Genome{}
  genomeB := Genome{}
  records := []AlnRecord{}

  scanner := bufio.NewScanner(reader)
  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if fields[0][0] == '#' {
      if len(fields) == 4 && fields[0] == "#" {
        length, err := strconv.ParseInt(fields[3], 10, 64)
        if err != nil {
          return fmt.Errorf("Read(): invalid genome header: %v", err)
        }
        switch fields[1] {
        case "A": genomeA.AddSequence(fields[2], length)
        case "B": genomeB.AddSequence(fields[2], length)
        }
      }
      continue
    }
    if len(fields) != 7 {
      return fmt.Errorf("Read(): expected seven columns but line has %d", len(fields))
    }
    values := [4]int64{}
    for i := 0; i < 4; i++ {
      v, err := strconv.ParseInt(fields[i], 10, 64)
      if err != nil {
        return fmt.Errorf("Read(): parsing coordinate `%s' failed: %v", fields[i], err)
      }
      values[i] = v
    }
    matches, err := strconv.ParseInt(fields[5], 10, 64)
    if err != nil {
      return fmt.Errorf("Read(): parsing matches `%s' failed: %v", fields[5], err)
    }
    length, err := strconv.ParseInt(fields[6], 10, 64)
    if err != nil {
      return fmt.Errorf("Read(): parsing length `%s' failed: %v", fields[6], err)
    }
    record := AlnRecord{}
    record.ABegin  = values[0]
    record.AEnd    = values[1]
    record.BBegin  = values[2]
    record.BEnd    = values[3]
    record.Matches = matches
    record.Length  = length
    switch fields[4] {
    case "+": record.Reverse = false
    case "-": record.Reverse = true
    default :
      return fmt.Errorf("Read(): invalid strand field `%s'", fields[4])
    }
    if record.ABegin > record.AEnd {
      return fmt.Errorf("Read(): record %d has aBegin > aEnd", len(records))
    }
    records = append(records, record)
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  obj.GenomeA = genomeA
  obj.GenomeB = genomeB
  obj.Records = records
  return nil
}

func (obj *AlnSet) Import(filename string) error {
  var reader io.Reader
  // open file
  f, err := os.Open(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  // check if file is gzipped
  if isGzip(filename) {
    g, err := gzip.NewReader(f)
    if err != nil {
      return err
    }
    defer g.Close()
    reader = g
  } else {
    reader = f
  }
  return obj.Read(reader)
}

func (obj AlnSet) Write(writer io.Writer) error {
  for i := 0; i < obj.GenomeA.Length(); i++ {
    if _, err := fmt.Fprintf(writer, "# A %s %d\n", obj.GenomeA.Seqnames[i], obj.GenomeA.Lengths[i]); err != nil {
      return err
    }
  }
  for i := 0; i < obj.GenomeB.Length(); i++ {
    if _, err := fmt.Fprintf(writer, "# B %s %d\n", obj.GenomeB.Seqnames[i], obj.GenomeB.Lengths[i]); err != nil {
      return err
    }
  }
  for _, r := range obj.Records {
    strand := '+'
    if r.Reverse {
      strand = '-'
    }
    if _, err := fmt.Fprintf(writer, "%d\t%d\t%d\t%d\t%c\t%d\t%d\n",
      r.ABegin, r.AEnd, r.BBegin, r.BEnd, strand, r.Matches, r.Length); err != nil {
      return err
    }
  }
  return nil
}

func (obj AlnSet) Export(filename string, compress bool) error {
  var buffer bytes.Buffer

  writer := bufio.NewWriter(&buffer)
  if err := obj.Write(writer); err != nil {
    return err
  }
  writer.Flush()

  return writeFile(filename, &buffer, compress)
}
