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

//import "fmt"
import "errors"
import "testing"

/* -------------------------------------------------------------------------- */

func silenceWarnings() func() {
  warnf := Warnf
  Warnf  = func(format string, args ...interface{}) {}
  return func() { Warnf = warnf }
}

func testCatalog() InteractionCatalog {
  return InteractionCatalog{
    EventMut: map[string]EventSet{
      "A": NewEventSet("g1") },
    EventDel: map[string]EventSet{
      "A": NewEventSet("g2") },
    EventAmp: map[string]EventSet{
      "B": NewEventSet("g1", "g2") } }
}

func testLocations() GeneLocationMap {
  return NewGeneLocationMap(
    []string{"g1", "g2"},
    []string{"c1", "c1"})
}

/* -------------------------------------------------------------------------- */

func TestInteractionReconciliation(t *testing.T) {
  defer silenceWarnings()()

  imap, err := NewInteractionMap(testCatalog(), testLocations(), NewEventSet("A", "B"))
  if err != nil {
    t.Error("TestInteractionReconciliation failed!")
  }
  // mutation evidence of A is cross-fertilized with its deletion evidence
  if r := imap.Mut["A"]; r.Length() != 2 || !r.Has("g1") || !r.Has("g2") {
    t.Error("TestInteractionReconciliation failed!")
  }
  // deletions of A merge mutation evidence and are translated to cytobands
  if r := imap.Del["A"]; r.Length() != 1 || !r.Has("c1") {
    t.Error("TestInteractionReconciliation failed!")
  }
  // fusion interactions are absent from the catalog
  if imap.Fus != nil {
    t.Error("TestInteractionReconciliation failed!")
  }
}

func TestInteractionTranslation(t *testing.T) {
  defer silenceWarnings()()

  locations := NewGeneLocationMap(
    []string{"g1", "g2a", "g2b"},
    []string{"c1", "c1",  "c2"})
  catalog := InteractionCatalog{
    EventMut: map[string]EventSet{
      "A": NewEventSet("g1") },
    EventDel: map[string]EventSet{
      "A": NewEventSet("g1") },
    EventAmp: map[string]EventSet{
      "A": NewEventSet("g1", "g2a", "g2b") } }

  imap, err := NewInteractionMap(catalog, locations, NewEventSet("A"))
  if err != nil {
    t.Error("TestInteractionTranslation failed!")
  }
  // cytobands are deduplicated
  if r := imap.Amp["A"]; r.Length() != 2 || !r.Has("c1") || !r.Has("c2") {
    t.Error("TestInteractionTranslation failed!")
  }
}

func TestInteractionEmptySelection(t *testing.T) {
  defer silenceWarnings()()

  _, err := NewInteractionMap(testCatalog(), testLocations(), NewEventSet())
  if err == nil {
    t.Error("TestInteractionEmptySelection failed!")
  }
  var configurationError ConfigurationError
  if !errors.As(err, &configurationError) {
    t.Error("TestInteractionEmptySelection failed!")
  }
}

func TestInteractionNoMatchingRegulators(t *testing.T) {
  defer silenceWarnings()()

  // regulator C has no interactions of any type
  _, err := NewInteractionMap(testCatalog(), testLocations(), NewEventSet("C"))
  if err == nil {
    t.Error("TestInteractionNoMatchingRegulators failed!")
  }
  var configurationError ConfigurationError
  if !errors.As(err, &configurationError) {
    t.Error("TestInteractionNoMatchingRegulators failed!")
  }
}

func TestInteractionMappingFailure(t *testing.T) {
  defer silenceWarnings()()

  // no gene has a cytoband assignment
  _, err := NewInteractionMap(testCatalog(), NewGeneLocationMap([]string{}, []string{}), NewEventSet("A", "B"))
  if err == nil {
    t.Error("TestInteractionMappingFailure failed!")
  }
  var mappingError DataMappingError
  if !errors.As(err, &mappingError) {
    t.Error("TestInteractionMappingFailure failed!")
  }
}

func TestInteractionIsolatedMappingGap(t *testing.T) {
  defer silenceWarnings()()

  // g2 has no cytoband assignment; regulator B keeps its amplification
  // interactions via g1, regulator C is dropped
  locations := NewGeneLocationMap([]string{"g1"}, []string{"c1"})
  catalog   := testCatalog()
  catalog[EventAmp]["C"] = NewEventSet("g2")

  imap, err := NewInteractionMap(catalog, locations, NewEventSet("A", "B", "C"))
  if err != nil {
    t.Error("TestInteractionIsolatedMappingGap failed!")
  }
  if _, ok := imap.Amp["C"]; ok {
    t.Error("TestInteractionIsolatedMappingGap failed!")
  }
  if r := imap.Amp["B"]; r.Length() != 1 || !r.Has("c1") {
    t.Error("TestInteractionIsolatedMappingGap failed!")
  }
}
