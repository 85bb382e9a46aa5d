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

func testCoverageProfile() SampleProfile {
  return SampleProfile{
    Sample          : "s1",
    ActiveRegulators: NewEventSet("R1", "R3"),
    Events          : map[EventType]EventSet{
      EventMut: NewEventSet("e1", "e2"),
      EventAmp: NewEventSet("c1"),
      EventDel: EmptyEventSet(),
      EventFus: EmptyEventSet() } }
}

func testCoverageMap() InteractionMap {
  return InteractionMap{
    Mut: map[string]EventSet{
      "R1": NewEventSet("e1"),
      "R2": NewEventSet("e9"),
      "R3": NewEventSet("e2") },
    Amp: map[string]EventSet{
      "R3": NewEventSet("c1") },
    Del: map[string]EventSet{
      "R1": NewEventSet("c9") } }
}

/* -------------------------------------------------------------------------- */

func TestCoverageFractions(t *testing.T) {
  defer silenceWarnings()()

  ranking, _ := NewRegulatorRanking([]string{"R1", "R2", "R3"})

  records, err := ComputeSampleCoverage(testCoverageProfile(), testCoverageMap(), ranking, CoverageOptions{})
  if err != nil {
    t.Error("TestCoverageFractions failed!")
  }
  if len(records) != 3 {
    t.Error("TestCoverageFractions failed!")
  }
  // k=1: R1 explains e1 of two validated mutations
  if r := records[0]; r.Fraction[EventMut] != 0.5 || r.TotalFraction != 1.0/3.0 {
    t.Error("TestCoverageFractions failed!")
  }
  // the validated deletion set is empty, its fraction must be NaN not zero
  if !math.IsNaN(records[0].Fraction[EventDel]) {
    t.Error("TestCoverageFractions failed!")
  }
  // the amplification set is nonempty but uncovered at k=1
  if records[0].Fraction[EventAmp] != 0.0 {
    t.Error("TestCoverageFractions failed!")
  }
  // k=3: R3 explains e2 and c1
  if r := records[2]; r.Fraction[EventMut] != 1.0 || r.Fraction[EventAmp] != 1.0 || r.TotalFraction != 1.0 {
    t.Error("TestCoverageFractions failed!")
  }
  // all defined fractions lie in [0,1]
  for _, record := range records {
    for _, t_ := range EventTypes {
      if v := record.Fraction[t_]; !math.IsNaN(v) && (v < 0.0 || v > 1.0) {
        t.Error("TestCoverageFractions failed!")
      }
    }
  }
}

func TestCoverageMonotonicity(t *testing.T) {
  defer silenceWarnings()()

  ranking, _ := NewRegulatorRanking([]string{"R1", "R2", "R3"})

  records, _ := ComputeSampleCoverage(testCoverageProfile(), testCoverageMap(), ranking, CoverageOptions{})

  for i := 1; i < len(records); i++ {
    for _, t_ := range EventTypes {
      for event := range records[i-1].Covered[t_] {
        if !records[i].Covered[t_].Has(event) {
          t.Error("TestCoverageMonotonicity failed!")
        }
      }
      if records[i].Fraction[t_] < records[i-1].Fraction[t_] {
        t.Error("TestCoverageMonotonicity failed!")
      }
    }
  }
}

func TestCoverageMemoization(t *testing.T) {
  defer silenceWarnings()()

  ranking, _ := NewRegulatorRanking([]string{"R1", "R2", "R3"})

  for _, strict := range []bool{false, true} {
    records, _ := ComputeSampleCoverage(testCoverageProfile(), testCoverageMap(), ranking, CoverageOptions{StrictMemoization: strict})

    // R2 is inactive: the active set is unchanged from k=1 to k=2 and the
    // record must be reused verbatim
    if records[1].K != 2 {
      t.Error("TestCoverageMemoization failed!")
    }
    if records[1].TotalFraction != records[0].TotalFraction {
      t.Error("TestCoverageMemoization failed!")
    }
    for _, t_ := range EventTypes {
      if records[1].Covered[t_].Length() != records[0].Covered[t_].Length() {
        t.Error("TestCoverageMemoization failed!")
      }
    }
  }
}

func TestCoverageExplicitSchedule(t *testing.T) {
  defer silenceWarnings()()

  ranking, _ := NewRegulatorRanking([]string{"R1", "R2", "R3"})

  records, err := ComputeSampleCoverage(testCoverageProfile(), testCoverageMap(), ranking, CoverageOptions{KValues: []int{1, 3}})
  if err != nil {
    t.Error("TestCoverageExplicitSchedule failed!")
  }
  if len(records) != 2 || records[0].K != 1 || records[1].K != 3 {
    t.Error("TestCoverageExplicitSchedule failed!")
  }
  if records[1].TotalFraction != 1.0 {
    t.Error("TestCoverageExplicitSchedule failed!")
  }
  // an empty schedule falls back to the default schedule
  if records, _ := ComputeSampleCoverage(testCoverageProfile(), testCoverageMap(), ranking, CoverageOptions{KValues: []int{}}); len(records) != 3 {
    t.Error("TestCoverageExplicitSchedule failed!")
  }
  // schedules must be strictly increasing and within the ranking
  if _, err := ComputeSampleCoverage(testCoverageProfile(), testCoverageMap(), ranking, CoverageOptions{KValues: []int{3, 1}}); err == nil {
    t.Error("TestCoverageExplicitSchedule failed!")
  }
  if _, err := ComputeSampleCoverage(testCoverageProfile(), testCoverageMap(), ranking, CoverageOptions{KValues: []int{4}}); err == nil {
    t.Error("TestCoverageExplicitSchedule failed!")
  }
}

func TestCoverageEmptyDenominator(t *testing.T) {
  defer silenceWarnings()()

  ranking, _ := NewRegulatorRanking([]string{"R1"})
  profile    := SampleProfile{
    Sample          : "s1",
    ActiveRegulators: NewEventSet("R1"),
    Events          : map[EventType]EventSet{
      EventMut: EmptyEventSet(),
      EventAmp: EmptyEventSet(),
      EventDel: EmptyEventSet(),
      EventFus: EmptyEventSet() } }

  records, _ := ComputeSampleCoverage(profile, testCoverageMap(), ranking, CoverageOptions{})
  if !math.IsNaN(records[0].TotalFraction) {
    t.Error("TestCoverageEmptyDenominator failed!")
  }
}

func TestCoverageNoActiveRegulators(t *testing.T) {
  defer silenceWarnings()()

  ranking, _ := NewRegulatorRanking([]string{"R1"})
  profile    := testCoverageProfile()
  profile.ActiveRegulators = EmptyEventSet()

  // the denominators are nonzero, but without an active regulator the
  // fractions are undefined rather than zero
  records, _ := ComputeSampleCoverage(profile, testCoverageMap(), ranking, CoverageOptions{})
  if !math.IsNaN(records[0].TotalFraction) || !math.IsNaN(records[0].Fraction[EventMut]) {
    t.Error("TestCoverageNoActiveRegulators failed!")
  }
}
