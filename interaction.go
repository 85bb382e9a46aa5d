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

// Global catalog of regulator interactions: for each event type a mapping
// from regulator to the set of associated events. Amplification and
// deletion interactions are recorded at the gene level; they are translated
// to cytobands when an InteractionMap is built. The catalog is immutable
// once constructed.
type InteractionCatalog map[EventType]map[string]EventSet

/* -------------------------------------------------------------------------- */

func (catalog InteractionCatalog) add(t EventType, regulator, event string) {
  if catalog[t] == nil {
    catalog[t] = map[string]EventSet{}
  }
  if catalog[t][regulator] == nil {
    catalog[t][regulator] = EmptyEventSet()
  }
  catalog[t][regulator].Add(event)
}

// Regulators returns the set of regulators with at least one interaction of
// any type.
func (catalog InteractionCatalog) Regulators() EventSet {
  regulators := EmptyEventSet()
  for _, interactions := range catalog {
    for regulator := range interactions {
      regulators.Add(regulator)
    }
  }
  return regulators
}

/* -------------------------------------------------------------------------- */

// Interaction catalog restricted to a selected regulator set, with
// mutation and copy-number evidence reconciled and copy-number events
// translated to cytobands. Fus is nil if no selected regulator has fusion
// interactions.
type InteractionMap struct {
  Mut map[string]EventSet
  Amp map[string]EventSet
  Del map[string]EventSet
  Fus map[string]EventSet
}

/* constructors
 * -------------------------------------------------------------------------- */

// restrict the interactions of one event type to the selected regulators
func restrictInteractions(interactions map[string]EventSet, regulators EventSet) map[string]EventSet {
  r := map[string]EventSet{}
  for regulator, events := range interactions {
    if regulators.Has(regulator) {
      r[regulator] = events.Clone()
    }
  }
  return r
}

// merge interaction maps per regulator key; keys present in only one input
// pass through unchanged, keys present in several are unioned
func unionByRegulator(maps ...map[string]EventSet) map[string]EventSet {
  r := map[string]EventSet{}
  for _, m := range maps {
    for regulator, events := range m {
      if r[regulator] == nil {
        r[regulator] = events.Clone()
      } else {
        r[regulator] = r[regulator].Union(events)
      }
    }
  }
  return r
}

// translate the gene-level event sets of all regulators to cytobands; a
// regulator whose genes map to no cytoband is dropped with a warning, and
// if not a single event of the given type could be mapped the translation
// fails with a DataMappingError
func translateInteractions(t EventType, interactions map[string]EventSet, locations GeneLocationMap) (map[string]EventSet, error) {
  r := map[string]EventSet{}
  n := 0
  for regulator, genes := range interactions {
    cytobands, unmapped := locations.Translate(genes)
    if len(unmapped) > 0 {
      Warnf("%s interactions of regulator `%s': %d gene(s) without cytoband", t, regulator, len(unmapped))
    }
    if cytobands.Length() == 0 {
      Warnf("dropping regulator `%s' from %s interactions: no gene maps to a cytoband", regulator, t)
      continue
    }
    r[regulator] = cytobands
    n += cytobands.Length()
  }
  if len(interactions) > 0 && n == 0 {
    return nil, DataMappingError{t, "no gene of any regulator maps to a cytoband"}
  }
  return r, nil
}

// NewInteractionMap restricts the catalog to the selected regulators,
// reconciles the evidence types and translates copy-number interactions to
// cytobands. Evidence is cross-fertilized: an event explainable by a
// copy-number change also counts as mutation evidence and vice versa.
func NewInteractionMap(catalog InteractionCatalog, locations GeneLocationMap, regulators EventSet) (InteractionMap, error) {
  imap := InteractionMap{}

  if regulators.Length() == 0 {
    return imap, newConfigurationError("empty regulator selection")
  }
  mut := restrictInteractions(catalog[EventMut], regulators)
  amp := restrictInteractions(catalog[EventAmp], regulators)
  del := restrictInteractions(catalog[EventDel], regulators)
  fus := restrictInteractions(catalog[EventFus], regulators)

  for t, interactions := range map[EventType]map[string]EventSet{EventMut: mut, EventAmp: amp, EventDel: del} {
    if len(interactions) == 0 {
      return imap, newConfigurationError("no %s interactions for any selected regulator", t)
    }
  }
  if len(fus) == 0 {
    Warnf("no fusion interactions for any selected regulator")
  }
  // reconcile evidence types at the gene level
  imap.Mut = unionByRegulator(mut, del, amp)

  // translate copy-number interactions to cytobands
  if m, err := translateInteractions(EventAmp, unionByRegulator(amp, mut), locations); err != nil {
    return InteractionMap{}, err
  } else {
    imap.Amp = m
  }
  if m, err := translateInteractions(EventDel, unionByRegulator(del, mut), locations); err != nil {
    return InteractionMap{}, err
  } else {
    imap.Del = m
  }
  if len(fus) > 0 {
    imap.Fus = fus
  }
  return imap, nil
}

/* -------------------------------------------------------------------------- */

// ByType returns the interactions of the given event type; nil for fusion
// if no selected regulator had fusion interactions.
func (imap InteractionMap) ByType(t EventType) map[string]EventSet {
  switch t {
  case EventMut: return imap.Mut
  case EventAmp: return imap.Amp
  case EventDel: return imap.Del
  case EventFus: return imap.Fus
  }
  return nil
}

/* i/o
 * -------------------------------------------------------------------------- */

// Import an interaction catalog from a table with one line per regulator
// and event type:
//  TYPE REGULATOR EVENT1 EVENT2 ...
// where TYPE is one of mut, amp, del, fus. Lines with the same type and
// regulator are merged.
func ImportInteractionCatalog(filename string) (InteractionCatalog, error) {

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
  catalog := InteractionCatalog{}

  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) < 2 {
      return nil, fmt.Errorf("ImportInteractionCatalog(): invalid table")
    }
    t := EventType(fields[0])
    switch t {
    case EventMut, EventAmp, EventDel, EventFus:
    default:
      return nil, fmt.Errorf("ImportInteractionCatalog(): invalid event type `%s'", fields[0])
    }
    for _, event := range fields[2:] {
      catalog.add(t, fields[1], event)
    }
  }
  if err := scanner.Err(); err != nil {
    return nil, err
  }
  return catalog, nil
}
