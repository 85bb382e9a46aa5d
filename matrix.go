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
import "compress/gzip"
import "fmt"
import "math"
import "os"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// Dense matrix with named rows (genes or regulators) and named columns
// (samples). Missing values are stored as NaN. Matrices are read-only once
// imported.
type MolecularMatrix struct {
  Rows    []string
  Samples []string
  Values  [][]float64
  rowIndex map[string]int
  colIndex map[string]int
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewMolecularMatrix(rows, samples []string, values [][]float64) MolecularMatrix {
  if len(rows) != len(values) {
    panic("NewMolecularMatrix(): invalid parameters")
  }
  for i := 0; i < len(values); i++ {
    if len(values[i]) != len(samples) {
      panic("NewMolecularMatrix(): invalid parameters")
    }
  }
  rowIndex := make(map[string]int)
  colIndex := make(map[string]int)
  for i, name := range rows {
    rowIndex[name] = i
  }
  for j, name := range samples {
    colIndex[name] = j
  }
  return MolecularMatrix{rows, samples, values, rowIndex, colIndex}
}

/* -------------------------------------------------------------------------- */

// At returns the matrix entry for the given row and sample. The second
// result is false if the row or sample is absent or the entry is missing.
func (m *MolecularMatrix) At(row, sample string) (float64, bool) {
  i, ok := m.rowIndex[row]
  if !ok {
    return math.NaN(), false
  }
  j, ok := m.colIndex[sample]
  if !ok {
    return math.NaN(), false
  }
  if math.IsNaN(m.Values[i][j]) {
    return math.NaN(), false
  }
  return m.Values[i][j], true
}

func (m *MolecularMatrix) HasSample(sample string) bool {
  _, ok := m.colIndex[sample]
  return ok
}

// Column returns the values of one sample indexed by row name; ok is false
// if the sample is absent.
func (m *MolecularMatrix) Column(sample string) (map[string]float64, bool) {
  j, ok := m.colIndex[sample]
  if !ok {
    return nil, false
  }
  r := make(map[string]float64)
  for i, name := range m.Rows {
    r[name] = m.Values[i][j]
  }
  return r, true
}

/* i/o
 * -------------------------------------------------------------------------- */

// Import a matrix from a whitespace separated table. The header lists the
// sample names; every following line starts with the row name. Missing
// values may be given as NA.
func ImportMolecularMatrix(filename string) (MolecularMatrix, error) {
  m := MolecularMatrix{}

  var scanner *bufio.Scanner
  // open file
  f, err := os.Open(filename)
  if err != nil {
    return m, err
  }
  defer f.Close()

  // check if file is gzipped
  if isGzip(filename) {
    g, err := gzip.NewReader(f)
    if err != nil {
      return m, err
    }
    defer g.Close()
    scanner = bufio.NewScanner(g)
  } else {
    scanner = bufio.NewScanner(f)
  }
  samples := []string{}
  rows    := []string{}
  values  := [][]float64{}

  // scan header
  if scanner.Scan() {
    samples = strings.Fields(scanner.Text())
    if len(samples) == 0 {
      return m, fmt.Errorf("ImportMolecularMatrix(): empty header")
    }
  }
  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) != len(samples)+1 {
      return m, fmt.Errorf("ImportMolecularMatrix(): invalid table")
    }
    row := make([]float64, len(samples))
    for j, field := range fields[1:] {
      if field == "NA" {
        row[j] = math.NaN()
        continue
      }
      v, err := strconv.ParseFloat(field, 64)
      if err != nil {
        return m, err
      }
      row[j] = v
    }
    rows   = append(rows,   fields[0])
    values = append(values, row)
  }
  if err := scanner.Err(); err != nil {
    return m, err
  }
  return NewMolecularMatrix(rows, samples, values), nil
}

/* -------------------------------------------------------------------------- */

// Regulator activity scores (regulator x sample). Scores are signed; large
// positive values indicate active regulators.
type ActivityMatrix struct {
  MolecularMatrix
}

// Mutation indicators (gene x sample). Any positive entry marks an observed
// mutation.
type MutationMatrix struct {
  MolecularMatrix
}

// Copy-number scores (gene x sample). Scores below the negative threshold
// are deletions, scores above the positive threshold amplifications.
type CopyNumberMatrix struct {
  MolecularMatrix
}

// Fusion indicators (gene x sample). A sample absent from the matrix has no
// fusion events; this is not an error.
type FusionMatrix struct {
  MolecularMatrix
}

/* -------------------------------------------------------------------------- */

func ImportActivityMatrix(filename string) (ActivityMatrix, error) {
  m, err := ImportMolecularMatrix(filename)
  return ActivityMatrix{m}, err
}

func ImportMutationMatrix(filename string) (MutationMatrix, error) {
  m, err := ImportMolecularMatrix(filename)
  return MutationMatrix{m}, err
}

func ImportCopyNumberMatrix(filename string) (CopyNumberMatrix, error) {
  m, err := ImportMolecularMatrix(filename)
  return CopyNumberMatrix{m}, err
}

func ImportFusionMatrix(filename string) (FusionMatrix, error) {
  m, err := ImportMolecularMatrix(filename)
  return FusionMatrix{m}, err
}
