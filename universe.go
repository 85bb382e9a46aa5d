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

// Per event type, the set of event identifiers considered statistically
// testable. Observed events outside the universe are discarded before any
// coverage computation.
type HypothesisUniverse map[EventType]EventSet

/* constructors
 * -------------------------------------------------------------------------- */

func NewHypothesisUniverse(mut, amp, del, fus EventSet) (HypothesisUniverse, error) {
  universe := HypothesisUniverse{
    EventMut: mut,
    EventAmp: amp,
    EventDel: del,
    EventFus: fus }

  if err := universe.validate(); err != nil {
    return nil, err
  }
  return universe, nil
}

func (universe HypothesisUniverse) validate() error {
  for _, t := range []EventType{EventMut, EventAmp, EventDel} {
    if universe[t].Length() == 0 {
      return newConfigurationError("no %s hypotheses defined", t)
    }
  }
  if universe[EventFus].Length() == 0 {
    Warnf("no fusion hypotheses defined, fusion coverage will be empty")
  }
  return nil
}

/* -------------------------------------------------------------------------- */

// Restrict intersects the given set with the universe of the given event
// type. An undefined universe yields the empty set.
func (universe HypothesisUniverse) Restrict(t EventType, events EventSet) EventSet {
  if universe[t] == nil {
    return EmptyEventSet()
  }
  return events.Intersection(universe[t])
}

/* i/o
 * -------------------------------------------------------------------------- */

// Import a hypothesis universe from a table with one line per event type:
//  mut GENE1 GENE2 ...
//  amp GENE3 GENE4 ...
// All universes are given as gene identifiers; the amp/del universes are
// applied before the translation to cytobands. Lines for the same type are
// merged.
func ImportHypothesisUniverse(filename string) (HypothesisUniverse, error) {

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
  universe := HypothesisUniverse{}

  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    t := EventType(fields[0])
    switch t {
    case EventMut, EventAmp, EventDel, EventFus:
    default:
      return nil, fmt.Errorf("ImportHypothesisUniverse(): invalid event type `%s'", fields[0])
    }
    if universe[t] == nil {
      universe[t] = EmptyEventSet()
    }
    for _, event := range fields[1:] {
      universe[t].Add(event)
    }
  }
  if err := scanner.Err(); err != nil {
    return nil, err
  }
  if err := universe.validate(); err != nil {
    return nil, err
  }
  return universe, nil
}
