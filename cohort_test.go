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
import "math"
import "testing"

/* -------------------------------------------------------------------------- */

func testRecord(k int, fraction float64, covered map[EventType]EventSet) CoverageRecord {
  record := CoverageRecord{K: k, TotalFraction: fraction}
  record.Covered  = map[EventType]EventSet{}
  record.Fraction = map[EventType]float64{}
  for _, t := range EventTypes {
    record.Covered[t] = EmptyEventSet()
  }
  for t, events := range covered {
    record.Covered[t] = events
  }
  return record
}

/* -------------------------------------------------------------------------- */

func TestCohortMeanExcludesUndefined(t *testing.T) {

  cohort := CohortCoverage{
    Samples: []string{"s1", "s2", "s3"},
    Records: [][]CoverageRecord{
      { testRecord(1, 0.4,        nil) },
      { testRecord(1, math.NaN(), nil) },
      { testRecord(1, 0.8,        nil) } },
    Errors: make([]error, 3) }

  curve := cohort.Aggregate()
  if len(curve) != 1 {
    t.Error("TestCohortMeanExcludesUndefined failed!")
  }
  if math.Abs(curve[0].MeanFraction-0.6) > 1e-12 {
    t.Error("TestCohortMeanExcludesUndefined failed!")
  }
}

func TestCohortUniqueEvents(t *testing.T) {

  // the same identifier in two samples counts once, but the same spelling
  // in two event types counts per type
  cohort := CohortCoverage{
    Samples: []string{"s1", "s2"},
    Records: [][]CoverageRecord{
      { testRecord(1, 0.5, map[EventType]EventSet{
          EventMut: NewEventSet("g1"),
          EventAmp: NewEventSet("g1") }) },
      { testRecord(1, 0.5, map[EventType]EventSet{
          EventMut: NewEventSet("g1", "g2") }) } },
    Errors: make([]error, 2) }

  curve := cohort.Aggregate()
  if curve[0].UniqueEventCount != 3 {
    t.Error("TestCohortUniqueEvents failed!")
  }
  if curve[0].MeanEventCount != 2.0 {
    t.Error("TestCohortUniqueEvents failed!")
  }
}

func TestCohortErrorIsolation(t *testing.T) {
  defer silenceWarnings()()

  errors   := make([]error, 3)
  errors[1] = DataMappingError{EventAmp, "test"}

  cohort := CohortCoverage{
    Samples: []string{"s1", "s2", "s3"},
    Records: [][]CoverageRecord{
      { testRecord(1, 0.4, nil) },
      nil,
      { testRecord(1, 0.8, nil) } },
    Errors: errors }

  curve := cohort.Aggregate()
  if math.Abs(curve[0].MeanFraction-0.6) > 1e-12 {
    t.Error("TestCohortErrorIsolation failed!")
  }
}

func TestCohortParallelComputation(t *testing.T) {
  defer silenceWarnings()()

  ranking, _ := NewRegulatorRanking([]string{"R1", "R2", "R3"})
  profiles   := []SampleProfile{}
  for i := 0; i < 8; i++ {
    profiles = append(profiles, testCoverageProfile())
  }
  cohort := ComputeCohortCoverage(profiles, testCoverageMap(), ranking, CoverageOptions{}, 4)

  for i := 0; i < len(profiles); i++ {
    if cohort.Errors[i] != nil {
      t.Error("TestCohortParallelComputation failed!")
    }
    if len(cohort.Records[i]) != 3 {
      t.Error("TestCohortParallelComputation failed!")
    }
  }
  curve := cohort.Aggregate()
  if len(curve) != 3 {
    t.Error("TestCohortParallelComputation failed!")
  }
  // all samples are identical, the mean equals the per-sample fraction
  if curve[2].MeanFraction != 1.0 {
    t.Error("TestCohortParallelComputation failed!")
  }
}
