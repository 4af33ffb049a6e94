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
import "errors"
import "fmt"
import "io"
import "os"
import "sort"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// Structure containing the skeleton of a genome, i.e. scaffold names and
// lengths but no sequence data. Scaffolds are laid out back to back on a
// single genome-wide axis; the offset of a scaffold is the sum of the
// lengths of all preceding scaffolds.
type Genome struct {
  Seqnames []string
  Lengths  []int64
  offsets  []int64
  contigs  [][]Range
}

// Scaffold and contig coordinates of a single genome-wide position.
type ResolvedPosition struct {
  Scaffold     int
  Contig       int
  Offset       int64
  ContigOffset int64
  Name         string
}

// Function resolving a genome-wide position into scaffold/contig coordinates.
type PositionResolver func(position int64) (ResolvedPosition, error)

/* constructors
 * -------------------------------------------------------------------------- */

func NewGenome(seqnames []string, lengths []int64) Genome {
  if len(seqnames) != len(lengths) {
    panic("NewGenome(): invalid parameters")
  }
  genome := Genome{}
  for i := 0; i < len(seqnames); i++ {
    genome.AddSequence(seqnames[i], lengths[i])
  }
  return genome
}

/* -------------------------------------------------------------------------- */

// Append a scaffold to the genome. Returns the index of the new scaffold.
func (genome *Genome) AddSequence(seqname string, length int64) int {
  if length < 0 {
    panic("AddSequence(): negative scaffold length")
  }
  if len(genome.offsets) == 0 {
    genome.offsets = []int64{0}
  }
  genome.Seqnames = append(genome.Seqnames, seqname)
  genome.Lengths  = append(genome.Lengths,  length)
  genome.offsets  = append(genome.offsets,  genome.offsets[len(genome.offsets)-1]+length)
  genome.contigs  = append(genome.contigs,  nil)
  return len(genome.Seqnames)-1
}

// Number of scaffolds in the genome.
func (genome Genome) Length() int {
  return len(genome.Seqnames)
}

// Sum of all scaffold lengths.
func (genome Genome) TotalLength() int64 {
  if len(genome.offsets) == 0 {
    return 0
  }
  return genome.offsets[len(genome.offsets)-1]
}

// Length of the given scaffold. Returns an error if the scaffold
// is not found.
func (genome Genome) SeqLength(seqname string) (int64, error) {
  for i, s := range genome.Seqnames {
    if seqname == s {
      return genome.Lengths[i], nil
    }
  }
  return 0, errors.New("sequence not found")
}

// Genome-wide offset of the i'th scaffold.
func (genome Genome) Offset(i int) int64 {
  if i < 0 || i >= genome.Length() {
    panic("Offset(): scaffold index out of range")
  }
  return genome.offsets[i]
}

// Cumulative scaffold offsets including the leading zero and the total
// length, i.e. n+1 values for n scaffolds. Renderers use the interior
// values to draw scaffold grid lines.
func (genome Genome) Boundaries() []int64 {
  boundaries := make([]int64, len(genome.offsets))
  copy(boundaries, genome.offsets)
  return boundaries
}

func (genome Genome) Equals(other Genome) bool {
  if genome.Length() != other.Length() {
    return false
  }
  for i := 0; i < genome.Length(); i++ {
    if genome.Seqnames[i] != other.Seqnames[i] {
      return false
    }
    if genome.Lengths[i] != other.Lengths[i] {
      return false
    }
  }
  return true
}

/* contigs
 * -------------------------------------------------------------------------- */

// Attach the list of contigs, i.e. gap-free stretches, to the i'th scaffold.
// Ranges are scaffold-relative and must be sorted.
func (genome *Genome) SetContigs(i int, contigs []Range) {
  if i < 0 || i >= genome.Length() {
    panic("SetContigs(): scaffold index out of range")
  }
  genome.contigs[i] = contigs
}

func (genome Genome) Contigs(i int) []Range {
  if i < 0 || i >= genome.Length() {
    panic("Contigs(): scaffold index out of range")
  }
  return genome.contigs[i]
}

/* position resolution
 * -------------------------------------------------------------------------- */

// Resolve a genome-wide position into scaffold and contig coordinates. The
// contig index is -1 if no contig list is attached to the scaffold or if the
// position falls into a gap.
func (genome Genome) ResolvePosition(position int64) (ResolvedPosition, error) {
  n := genome.Length()
  if n == 0 || position < 0 || position >= genome.TotalLength() {
    return ResolvedPosition{}, fmt.Errorf("ResolvePosition(): position `%d' outside genome", position)
  }
  i := sort.Search(n, func(j int) bool {
    return genome.offsets[j+1] > position
  })
  result := ResolvedPosition{}
  result.Scaffold     = i
  result.Contig       = -1
  result.Offset       = position - genome.offsets[i]
  result.ContigOffset = result.Offset
  result.Name         = genome.Seqnames[i]

  if contigs := genome.contigs[i]; len(contigs) > 0 {
    k := sort.Search(len(contigs), func(j int) bool {
      return contigs[j].To > result.Offset
    })
    if k < len(contigs) && contigs[k].Contains(result.Offset) {
      result.Contig       = k
      result.ContigOffset = result.Offset - contigs[k].From
    }
  }
  return result, nil
}

/* convert to string
 * -------------------------------------------------------------------------- */

func (genome Genome) String() string {
  var buffer bytes.Buffer

  buffer.WriteString(
    fmt.Sprintf("%14s %12s %14s\n", "seqnames", "lengths", "offsets"))

  for i := 0; i < genome.Length(); i++ {
    if i != 0 {
      buffer.WriteString("\n")
    }
    buffer.WriteString(
      fmt.Sprintf("%14s %12d %14d",
        genome.Seqnames[i],
        genome.Lengths [i],
        genome.offsets [i]))
  }
  return buffer.String()
}

/* i/o
 * -------------------------------------------------------------------------- */

// Read scaffold sizes from a whitespace separated table where the first
// column is the name of the scaffold and the second column the scaffold
// length. This is the format of UCSC chromInfo files.
func (genome *Genome) Read(reader io.Reader) error {

  seqnames := []string{}
  lengths  := []int64{}

  scanner := bufio.NewScanner(reader)
  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) < 2 {
      return fmt.Errorf("Read(): invalid genome file")
    }
    t, err := strconv.ParseInt(fields[1], 10, 64)
    if err != nil {
      return err
    }
    seqnames = append(seqnames, fields[0])
    lengths  = append(lengths,  t)
  }
  *genome = NewGenome(seqnames, lengths)
  return nil
}

func (genome *Genome) Import(filename string) error {
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
  return genome.Read(reader)
}

func (genome Genome) Write(writer io.Writer) error {
  for i := 0; i < genome.Length(); i++ {
    if _, err := fmt.Fprintf(writer, "%s\t%d\n", genome.Seqnames[i], genome.Lengths[i]); err != nil {
      return err
    }
  }
  return nil
}

func (genome Genome) Export(filename string, compress bool) error {
  var buffer bytes.Buffer

  writer := bufio.NewWriter(&buffer)
  if err := genome.Write(writer); err != nil {
    return err
  }
  writer.Flush()

  return writeFile(filename, &buffer, compress)
}
