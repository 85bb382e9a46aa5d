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

import "math"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// Coverage of a single sample at one rank cutoff: the covered events per
// type and the corresponding fractions of the validated event sets. A
// fraction is NaN whenever its denominator is empty or the sample has no
// active regulator at this cutoff. Records are never mutated once computed.
type CoverageRecord struct {
  K             int
  Covered       map[EventType]EventSet
  Fraction      map[EventType]float64
  TotalFraction float64
}

// EventCount returns the summed number of covered events over all types.
func (record CoverageRecord) EventCount() int {
  n := 0
  for _, events := range record.Covered {
    n += events.Length()
  }
  return n
}

/* -------------------------------------------------------------------------- */

type CoverageOptions struct {
  // optional explicit rank cutoffs; if nil the default schedule is used
  KValues []int
  // memoize on the active set itself instead of its size (see below)
  StrictMemoization bool
}

/* -------------------------------------------------------------------------- */

// memoKey summarizes the active regulator set for memoization. The
// historical behavior keys on the set size only, which treats two
// differently composed active sets of equal size as equivalent coverage;
// strict mode keys on the set itself.
func memoKey(active EventSet, strict bool) string {
  if strict {
    return strings.Join(active.Slice(), "\x00")
  }
  return strconv.Itoa(active.Length())
}

// coverageAt computes the covered events and fractions for one active
// regulator set.
func coverageAt(k int, active EventSet, profile SampleProfile, imap InteractionMap) CoverageRecord {
  record := CoverageRecord{K: k}
  record.Covered  = map[EventType]EventSet{}
  record.Fraction = map[EventType]float64{}

  nCovered   := 0
  nValidated := 0
  for _, t := range EventTypes {
    validated    := profile.Events[t]
    interactions := imap.ByType(t)
    covered      := EmptyEventSet()
    for regulator := range active {
      if events, ok := interactions[regulator]; ok {
        covered = covered.Union(events.Intersection(validated))
      }
    }
    record.Covered[t] = covered
    // without a denominator, or without any active regulator, the fraction
    // is undefined rather than zero
    if validated.Length() == 0 || active.Length() == 0 {
      record.Fraction[t] = math.NaN()
    } else {
      record.Fraction[t] = float64(covered.Length())/float64(validated.Length())
    }
    nCovered   += covered.Length()
    nValidated += validated.Length()
  }
  if nValidated == 0 || active.Length() == 0 {
    record.TotalFraction = math.NaN()
  } else {
    record.TotalFraction = float64(nCovered)/float64(nValidated)
  }
  return record
}

/* -------------------------------------------------------------------------- */

// ComputeSampleCoverage walks the rank cutoffs in increasing order and
// computes the coverage of the sample's validated events by the active
// regulators among the top k of the ranking. Consecutive cutoffs with an
// unchanged active set reuse the previous record instead of recomputing.
// Cutoffs between schedule points are not interpolated.
func ComputeSampleCoverage(profile SampleProfile, imap InteractionMap, ranking RegulatorRanking, options CoverageOptions) ([]CoverageRecord, error) {
  ks := options.KValues
  if len(ks) == 0 {
    ks = DefaultKSchedule(ranking.Length())
  } else {
    if err := validateKSchedule(ks, ranking.Length()); err != nil {
      return nil, err
    }
  }
  records := make([]CoverageRecord, 0, len(ks))

  active  := EmptyEventSet()
  prev    := 0 // regulators of the ranking consumed so far
  prevKey := ""
  for i, k := range ks {
    // grow the active set along the ranking prefix
    for _, regulator := range ranking.Regulators[prev:k] {
      if profile.ActiveRegulators.Has(regulator) {
        active.Add(regulator)
      }
    }
    prev = k

    key := memoKey(active, options.StrictMemoization)
    if i > 0 && key == prevKey {
      // the active set did not change, reuse the previous record
      record  := records[i-1]
      record.K = k
      records  = append(records, record)
      continue
    }
    prevKey = key
    records = append(records, coverageAt(k, active, profile, imap))
  }
  return records, nil
}
