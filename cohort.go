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

import "fmt"
import "math"

import . "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

// Per-sample coverage records for a cohort, aligned on a common rank cutoff
// schedule. Samples whose computation failed carry a non-nil entry in
// Errors and are excluded from aggregation.
type CohortCoverage struct {
  Samples []string
  Records [][]CoverageRecord
  Errors  []error
}

/* -------------------------------------------------------------------------- */

// ComputeCohortCoverage computes the coverage of every sample in parallel.
// Samples share no mutable state: each result depends only on the sample's
// profile and the read-only interaction map, so results are joined by
// sample index. A failure in one sample does not abort its siblings.
func ComputeCohortCoverage(profiles []SampleProfile, imap InteractionMap, ranking RegulatorRanking, options CoverageOptions, threads int) CohortCoverage {
  if threads < 1 {
    threads = 1
  }
  cohort := CohortCoverage{}
  cohort.Samples = make([]string,          len(profiles))
  cohort.Records = make([][]CoverageRecord, len(profiles))
  cohort.Errors  = make([]error,           len(profiles))

  pool     := New(threads, 100*threads)
  jobGroup := pool.NewJobGroup()

  pool.AddRangeJob(0, len(profiles), jobGroup, func(i int, pool ThreadPool, erf func() error) error {
    cohort.Samples[i] = profiles[i].Sample
    if records, err := ComputeSampleCoverage(profiles[i], imap, ranking, options); err != nil {
      cohort.Errors[i] = fmt.Errorf("sample `%s': %v", profiles[i].Sample, err)
    } else {
      cohort.Records[i] = records
    }
    return nil
  })
  pool.Wait(jobGroup)

  return cohort
}

/* -------------------------------------------------------------------------- */

// Aggregate reduces the per-sample records into a cohort saturation curve.
// For every schedule index the mean total fraction is taken over samples
// with a defined value, the mean event count over all successfully
// computed samples, and the distinct covered events are counted over the
// whole cohort. Events of different types are counted in separate
// namespaces, i.e. a gene and a cytoband with the same spelling do not
// collapse.
func (cohort CohortCoverage) Aggregate() SaturationCurve {
  curve := SaturationCurve{}

  // records of samples that computed successfully
  records := [][]CoverageRecord{}
  for i := 0; i < len(cohort.Records); i++ {
    if cohort.Errors[i] == nil && cohort.Records[i] != nil {
      records = append(records, cohort.Records[i])
    }
  }
  if len(records) == 0 {
    return curve
  }
  n := len(records[0])

  for j := 0; j < n; j++ {
    point := SaturationPoint{K: records[0][j].K}

    sumFraction := 0.0
    nFraction   := 0
    sumEvents   := 0
    unique      := EmptyEventSet()
    for _, sampleRecords := range records {
      record := sampleRecords[j]
      if !math.IsNaN(record.TotalFraction) {
        sumFraction += record.TotalFraction
        nFraction   += 1
      }
      sumEvents += record.EventCount()
      for _, t := range EventTypes {
        for event := range record.Covered[t] {
          unique.Add(fmt.Sprintf("%s:%s", t, event))
        }
      }
    }
    if nFraction == 0 {
      point.MeanFraction = math.NaN()
    } else {
      point.MeanFraction = sumFraction/float64(nFraction)
    }
    point.MeanEventCount   = float64(sumEvents)/float64(len(records))
    point.UniqueEventCount = unique.Length()

    curve = append(curve, point)
  }
  return curve
}
