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
import "strings"
import "unicode"

/* -------------------------------------------------------------------------- */

// Structure containing genomic sequences in scaffold order.
type SequenceSet struct {
  Sequences map[string][]byte
  Seqnames  []string
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewSequenceSet(seqnames []string, sequences [][]byte) SequenceSet {
  if len(seqnames) != len(sequences) {
    panic("NewSequenceSet(): invalid parameters")
  }
  n := len(sequences)
  s := make(map[string][]byte)
  t := make([]string, n)

  for i := 0; i < n; i++ {
    if _, ok := s[seqnames[i]]; ok {
      panic(fmt.Sprintf("duplicate sequence name `%s'", seqnames[i]))
    } else {
      s[seqnames[i]] = sequences[i]
    }
    t[i] = seqnames[i]
  }
  return SequenceSet{s, t}
}

func EmptySequenceSet() SequenceSet {
  return SequenceSet{make(map[string][]byte), []string{}}
}

/* -------------------------------------------------------------------------- */

// Scaffold-relative subsequence. The range is clamped to the length of the
// sequence, an error is returned only if the scaffold is unknown.
func (obj SequenceSet) GetSlice(name string, r Range) ([]byte, error) {
  sequence, ok := obj.Sequences[name]
  if !ok {
    return nil, fmt.Errorf("GetSlice(): invalid sequence name `%s'", name)
  }
  from := i64Max(r.From, 0)
  to   := i64Min(r.To, int64(len(sequence)))
  if from >= to {
    return []byte{}, nil
  }
  return sequence[from:to], nil
}

// Genome skeleton matching this sequence set, with scaffolds in set order.
func (obj SequenceSet) Skeleton() Genome {
  genome := Genome{}
  for _, name := range obj.Seqnames {
    genome.AddSequence(name, int64(len(obj.Sequences[name])))
  }
  return genome
}

// Contigs of the named scaffold, i.e. maximal stretches free of gap
// characters (nN).
func (obj SequenceSet) Contigs(name string) ([]Range, error) {
  sequence, ok := obj.Sequences[name]
  if !ok {
    return nil, fmt.Errorf("Contigs(): invalid sequence name `%s'", name)
  }
  contigs := []Range{}
  from    := int64(-1)
  for i := 0; i < len(sequence); i++ {
    if sequence[i] == 'n' || sequence[i] == 'N' {
      if from != -1 {
        contigs = append(contigs, NewRange(from, int64(i)))
        from    = -1
      }
    } else {
      if from == -1 {
        from = int64(i)
      }
    }
  }
  if from != -1 {
    contigs = append(contigs, NewRange(from, int64(len(sequence))))
  }
  return contigs, nil
}

/* -------------------------------------------------------------------------- */

// Assemble the bases of a genome-wide window by concatenating scaffold
// sequences according to the given skeleton. Scaffolds missing from the set
// and positions beyond the available sequence are filled with `n', so that
// no k-mer window can span them. The interval is clamped to the genome.
func (obj SequenceSet) GenomeWindow(genome Genome, from, to int64) []byte {
  from = i64Max(from, 0)
  to   = i64Min(to, genome.TotalLength())
  if from >= to {
    return []byte{}
  }
  window := make([]byte, 0, to-from)

  for i := 0; i < genome.Length() && genome.Offset(i) < to; i++ {
    lo := i64Max(from, genome.Offset(i))
    hi := i64Min(to,   genome.Offset(i)+genome.Lengths[i])
    if lo >= hi {
      continue
    }
    sequence := obj.Sequences[genome.Seqnames[i]]
    for p := lo - genome.Offset(i); p < hi - genome.Offset(i); p++ {
      if p < int64(len(sequence)) {
        window = append(window, sequence[p])
      } else {
        window = append(window, 'n')
      }
    }
  }
  return window
}

/* i/o
 * -------------------------------------------------------------------------- */

func (obj *SequenceSet) ReadFasta(reader io.Reader) error {
  scanner := bufio.NewScanner(reader)

  if obj.Sequences == nil {
    obj.Sequences = make(map[string][]byte)
  }
  // current sequence
  name := ""
  seq  := []byte{}

  save := func() error {
    if name == "" {
      return nil
    }
    if _, ok := obj.Sequences[name]; ok {
      return fmt.Errorf("ReadFasta(): sequence name `%s' occurred multiple times", name)
    }
    obj.Sequences[name] = seq
    obj.Seqnames        = append(obj.Seqnames, name)
    return nil
  }
  for scanner.Scan() {
    line := scanner.Text()
    if len(line) == 0 {
      continue
    }
    if line[0] == '>' {
      // save data from previous entry
      if err := save(); err != nil {
        return err
      }
      // header
      fields := strings.FieldsFunc(line, func(c rune) bool {
        return unicode.IsSpace(c) || c == '>' || c == '|'
      })
      if len(fields) == 0 {
        return fmt.Errorf("ReadFasta(): invalid fasta file")
      }
      name = fields[0]
      seq  = []byte{}
    } else {
      // data
      if name == "" {
        return fmt.Errorf("ReadFasta(): invalid fasta file")
      }
      // append sequence
      seq = append(seq, line...)
    }
  }
  return save()
}

func (obj *SequenceSet) ImportFasta(filename string) error {

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
  return obj.ReadFasta(reader)
}

func (obj SequenceSet) WriteFasta(writer io.Writer) error {
  for _, name := range obj.Seqnames {
    seq := obj.Sequences[name]
    if _, err := fmt.Fprintf(writer,  ">%s\n", name); err != nil {
      return err
    }
    for i := 0; i < len(seq); i += 80 {
      from := i
      to   := i+80
      if to >= len(seq) {
        to = len(seq)
      }
      if _, err := fmt.Fprintf(writer, "%s\n", seq[from:to]); err != nil {
        return err
      }
    }
  }
  return nil
}

func (obj SequenceSet) ExportFasta(filename string, compress bool) error {
  var buffer bytes.Buffer

  writer := bufio.NewWriter(&buffer)
  if err := obj.WriteFasta(writer); err != nil {
    return err
  }
  writer.Flush()

  return writeFile(filename, &buffer, compress)
}
