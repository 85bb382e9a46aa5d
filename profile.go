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

/* -------------------------------------------------------------------------- */

type ProfileOptions struct {
  // two-sided significance level for regulator activity
  Alpha        float64
  // absolute copy-number score threshold
  CnvThreshold float64
  // optional second filter on validated mutation events
  Whitelist    EventSet
}

func DefaultProfileOptions() ProfileOptions {
  return ProfileOptions{
    Alpha       : 0.05,
    CnvThreshold: 0.5 }
}

/* -------------------------------------------------------------------------- */

// Molecular profile of a single sample: the set of active regulators and
// the validated observed events per type. Mutation and fusion events are
// gene symbols; amplification and deletion events are cytoband labels.
// Profiles are read-only once extracted.
type SampleProfile struct {
  Sample           string
  ActiveRegulators EventSet
  Events           map[EventType]EventSet
  // number of validated mutation events removed by the whitelist
  WhitelistRemoved int
}

/* -------------------------------------------------------------------------- */

// activityThreshold converts a two-sided significance level into a z-score
// cutoff, i.e. Phi^-1(1-alpha/2).
func activityThreshold(alpha float64) float64 {
  return math.Sqrt2*math.Erfinv(1.0-alpha)
}

// positiveEvents returns the row names with a positive entry in the given
// sample column.
func positiveEvents(m *MolecularMatrix, sample string) EventSet {
  events := EmptyEventSet()
  for _, gene := range m.Rows {
    if v, ok := m.At(gene, sample); ok && v > 0 {
      events.Add(gene)
    }
  }
  return events
}

/* constructors
 * -------------------------------------------------------------------------- */

// NewSampleProfile extracts the profile of a single sample from the
// molecular matrices. Observed events are intersected with the hypothesis
// universe of their type; copy-number events are filtered at the gene level
// and then translated to cytobands.
func NewSampleProfile(
  sample       string,
  activity     ActivityMatrix,
  mutations    MutationMatrix,
  copyNumber   CopyNumberMatrix,
  fusions      FusionMatrix,
  universe     HypothesisUniverse,
  locations    GeneLocationMap,
  options      ProfileOptions) SampleProfile {

  profile := SampleProfile{Sample: sample}
  profile.Events = map[EventType]EventSet{}

  // active regulators: significantly positive activity scores
  threshold := activityThreshold(options.Alpha)
  active    := EmptyEventSet()
  for _, regulator := range activity.Rows {
    if v, ok := activity.At(regulator, sample); ok && v > threshold {
      active.Add(regulator)
    }
  }
  if active.Length() == 0 {
    Warnf("sample `%s' has no active regulators", sample)
  }
  profile.ActiveRegulators = active

  // validated mutation events
  mut := universe.Restrict(EventMut, positiveEvents(&mutations.MolecularMatrix, sample))
  if options.Whitelist != nil {
    filtered := mut.Intersection(options.Whitelist)
    profile.WhitelistRemoved = mut.Length() - filtered.Length()
    mut = filtered
  }
  profile.Events[EventMut] = mut

  // validated copy-number events, filtered at the gene level and then
  // translated to cytobands
  ampGenes := EmptyEventSet()
  delGenes := EmptyEventSet()
  for _, gene := range copyNumber.Rows {
    if v, ok := copyNumber.At(gene, sample); ok {
      if v > +options.CnvThreshold {
        ampGenes.Add(gene)
      }
      if v < -options.CnvThreshold {
        delGenes.Add(gene)
      }
    }
  }
  for _, t := range []EventType{EventAmp, EventDel} {
    genes := ampGenes
    if t == EventDel {
      genes = delGenes
    }
    cytobands, unmapped := locations.Translate(universe.Restrict(t, genes))
    if len(unmapped) > 0 {
      Warnf("sample `%s': %d %s gene(s) without cytoband", sample, len(unmapped), t)
    }
    profile.Events[t] = cytobands
  }

  // validated fusion events; a sample absent from the fusion matrix has no
  // fusion events
  if fusions.HasSample(sample) {
    profile.Events[EventFus] = universe.Restrict(EventFus, positiveEvents(&fusions.MolecularMatrix, sample))
  } else {
    profile.Events[EventFus] = EmptyEventSet()
  }
  for _, t := range EventTypes {
    if profile.Events[t].Length() == 0 {
      Warnf("sample `%s' has no validated %s events, the %s fraction is undefined", sample, t, t)
    }
  }
  return profile
}

/* -------------------------------------------------------------------------- */

// CohortSamples returns the samples eligible for coverage computation: the
// intersection of the mutation matrix columns, the copy-number matrix
// columns, and the externally supplied list of samples with valid activity
// inferences. Order follows the supplied list; excluded samples are dropped
// silently.
func CohortSamples(mutations MutationMatrix, copyNumber CopyNumberMatrix, validSamples []string) []string {
  samples := []string{}
  for _, sample := range validSamples {
    if mutations.HasSample(sample) && copyNumber.HasSample(sample) {
      samples = append(samples, sample)
    }
  }
  return samples
}
