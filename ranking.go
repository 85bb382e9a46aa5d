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
import "os"
import "strings"

/* -------------------------------------------------------------------------- */

// Ordered list of regulators, most important first. The order is
// significant: the first k elements define the regulator prefix used for
// coverage at rank cutoff k. Rankings are never reordered.
type RegulatorRanking struct {
  Regulators []string
  index        map[string]int
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewRegulatorRanking(regulators []string) (RegulatorRanking, error) {
  index := make(map[string]int)

  for i, regulator := range regulators {
    if _, ok := index[regulator]; ok {
      return RegulatorRanking{}, fmt.Errorf("NewRegulatorRanking(): duplicate regulator `%s'", regulator)
    }
    index[regulator] = i
  }
  r := make([]string, len(regulators))
  copy(r, regulators)

  return RegulatorRanking{r, index}, nil
}

/* -------------------------------------------------------------------------- */

func (obj RegulatorRanking) Length() int {
  return len(obj.Regulators)
}

// TopK returns the first k regulators. For k larger than the ranking the
// full ranking is returned.
func (obj RegulatorRanking) TopK(k int) []string {
  if k > len(obj.Regulators) {
    k = len(obj.Regulators)
  }
  if k < 0 {
    k = 0
  }
  return obj.Regulators[0:k]
}

// Rank returns the one-based rank of the given regulator.
func (obj RegulatorRanking) Rank(regulator string) (int, bool) {
  if i, ok := obj.index[regulator]; ok {
    return i+1, true
  }
  return 0, false
}

func (obj RegulatorRanking) Contains(regulator string) bool {
  _, ok := obj.index[regulator]
  return ok
}

// Set returns the regulators as an unordered set.
func (obj RegulatorRanking) Set() EventSet {
  return NewEventSet(obj.Regulators...)
}

/* i/o
 * -------------------------------------------------------------------------- */

// Import a ranking from a file with one regulator per line, most important
// first. Empty lines are skipped.
func ImportRegulatorRanking(filename string) (RegulatorRanking, error) {

  var scanner *bufio.Scanner
  // open file
  f, err := os.Open(filename)
  if err != nil {
    return RegulatorRanking{}, err
  }
  defer f.Close()

  // check if file is gzipped
  if isGzip(filename) {
    g, err := gzip.NewReader(f)
    if err != nil {
      return RegulatorRanking{}, err
    }
    defer g.Close()
    scanner = bufio.NewScanner(g)
  } else {
    scanner = bufio.NewScanner(f)
  }
  regulators := []string{}

  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    regulators = append(regulators, fields[0])
  }
  if err := scanner.Err(); err != nil {
    return RegulatorRanking{}, err
  }
  return NewRegulatorRanking(regulators)
}
