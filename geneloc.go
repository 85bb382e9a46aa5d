/* Copyright (C) 2018 Philipp Benner
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

package mrcoverage

/* -------------------------------------------------------------------------- */

import "bufio"
import "bytes"
import "compress/gzip"
import "fmt"
import "os"
import "strings"

/* -------------------------------------------------------------------------- */

// Many-to-one mapping from gene identifiers to cytoband labels. The mapping
// is used to aggregate copy-number events at cytoband resolution; it plays
// no role for mutation or fusion events.
type GeneLocationMap map[string]string

/* constructors
 * -------------------------------------------------------------------------- */

func NewGeneLocationMap(genes, cytobands []string) GeneLocationMap {
  if len(genes) != len(cytobands) {
    panic("NewGeneLocationMap(): invalid parameters")
  }
  m := make(GeneLocationMap)

  for i := 0; i < len(genes); i++ {
    m[genes[i]] = cytobands[i]
  }
  return m
}

/* -------------------------------------------------------------------------- */

// Translate maps a set of gene identifiers to the set of distinct cytobands
// they are located on. Genes without a location are returned in the second
// result; the caller decides whether the gap is worth a warning.
func (m GeneLocationMap) Translate(genes EventSet) (EventSet, []string) {
  cytobands := EmptyEventSet()
  unmapped  := []string{}

  for gene := range genes {
    if cytoband, ok := m[gene]; ok {
      cytobands.Add(cytoband)
    } else {
      unmapped = append(unmapped, gene)
    }
  }
  return cytobands, unmapped
}

/* i/o
 * -------------------------------------------------------------------------- */

// Import a gene location map from a table with two columns, i.e.
//  GENE CYTOBAND
// Duplicate gene entries overwrite previous ones.
func ImportGeneLocationMap(filename string) (GeneLocationMap, error) {

  var scanner *bufio.Scanner
  // open file
  f, err := os.Open(filename)
  if err != nil {
    return nil, err
  }
  defer f.Close()

  // check if file is gzipped
  if isGzip(filename) {
    g, err := gzip.NewReader(f)
    if err != nil {
      return nil, err
    }
    defer g.Close()
    scanner = bufio.NewScanner(g)
  } else {
    scanner = bufio.NewScanner(f)
  }
  m := make(GeneLocationMap)

  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) != 2 {
      return nil, fmt.Errorf("ImportGeneLocationMap(): invalid table")
    }
    m[fields[0]] = fields[1]
  }
  if err := scanner.Err(); err != nil {
    return nil, err
  }
  return m, nil
}

// Export the gene location map as a two column table.
func (m GeneLocationMap) ExportTable(filename string, compress bool) error {
  var buffer bytes.Buffer

  writer := bufio.NewWriter(&buffer)
  genes  := NewEventSet()
  for gene := range m {
    genes.Add(gene)
  }
  for _, gene := range genes.Slice() {
    fmt.Fprintf(writer, "%s %s\n", gene, m[gene])
  }
  writer.Flush()

  return writeFile(filename, &buffer, compress)
}
