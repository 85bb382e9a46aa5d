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
import "os"
import "sort"
import "strings"

/* -------------------------------------------------------------------------- */

// Genomic alteration types considered by the coverage engine. Mutation and
// fusion events are identified by gene symbols, amplification and deletion
// events by cytoband labels once translated.
type EventType string

const (
  EventMut EventType = "mut"
  EventAmp EventType = "amp"
  EventDel EventType = "del"
  EventFus EventType = "fus"
)

// EventTypes lists all event types in canonical order.
var EventTypes = []EventType{EventMut, EventAmp, EventDel, EventFus}

/* -------------------------------------------------------------------------- */

// Structure containing a set of event identifiers.
type EventSet map[string]bool

/* -------------------------------------------------------------------------- */

func NewEventSet(events ...string) EventSet {
  s := make(EventSet)

  for _, event := range events {
    s[event] = true
  }
  return s
}

func EmptyEventSet() EventSet {
  return make(EventSet)
}

/* -------------------------------------------------------------------------- */

func (s EventSet) Has(event string) bool {
  return s[event]
}

func (s EventSet) Length() int {
  return len(s)
}

func (s EventSet) Add(event string) {
  s[event] = true
}

func (s EventSet) Clone() EventSet {
  r := make(EventSet)
  for event := range s {
    r[event] = true
  }
  return r
}

func (s EventSet) Union(sets ...EventSet) EventSet {
  r := s.Clone()
  for _, t := range sets {
    for event := range t {
      r[event] = true
    }
  }
  return r
}

func (s EventSet) Intersection(t EventSet) EventSet {
  r := make(EventSet)
  // iterate over the smaller set
  if len(t) < len(s) {
    s, t = t, s
  }
  for event := range s {
    if t[event] {
      r[event] = true
    }
  }
  return r
}

// Slice returns the events in sorted order.
func (s EventSet) Slice() []string {
  r := make([]string, 0, len(s))
  for event := range s {
    r = append(r, event)
  }
  sort.Strings(r)
  return r
}

func (s EventSet) String() string {
  return strings.Join(s.Slice(), " ")
}

/* i/o
 * -------------------------------------------------------------------------- */

// Import an event set from a file with one event identifier per line. Used
// for mutation whitelists.
func (s EventSet) ImportLines(filename string) error {

  var scanner *bufio.Scanner
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
    scanner = bufio.NewScanner(g)
  } else {
    scanner = bufio.NewScanner(f)
  }
  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    s[fields[0]] = true
  }
  return scanner.Err()
}
