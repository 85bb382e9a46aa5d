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

package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "log"
import   "os"
import   "strconv"
import   "strings"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/mrcoverage"
import   "github.com/pbenner/mrcoverage/lib/progress"

import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/plotutil"
import   "gonum.org/v1/plot/vg"

/* -------------------------------------------------------------------------- */

type Config struct {
  Alpha             float64
  CnvThreshold      float64
  TargetFraction    float64
  KValues           []int
  StrictMemoization bool
  FilenameFusion    string
  FilenameWhitelist string
  FilenameSamples   string
  FilenamePlot      string
  Threads           int
  Verbose           int
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importRanking(config Config, filename string) RegulatorRanking {
  PrintStderr(config, 1, "Reading regulator ranking `%s'... ", filename)
  ranking, err := ImportRegulatorRanking(filename)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return ranking
}

func importCatalog(config Config, filename string) InteractionCatalog {
  PrintStderr(config, 1, "Reading interaction catalog `%s'... ", filename)
  catalog, err := ImportInteractionCatalog(filename)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return catalog
}

func importLocations(config Config, filename string) GeneLocationMap {
  PrintStderr(config, 1, "Reading gene locations `%s'... ", filename)
  locations, err := ImportGeneLocationMap(filename)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return locations
}

func importUniverse(config Config, filename string) HypothesisUniverse {
  PrintStderr(config, 1, "Reading hypothesis universe `%s'... ", filename)
  universe, err := ImportHypothesisUniverse(filename)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return universe
}

func importMatrix(config Config, filename, description string) MolecularMatrix {
  PrintStderr(config, 1, "Reading %s matrix `%s'... ", description, filename)
  matrix, err := ImportMolecularMatrix(filename)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return matrix
}

func importWhitelist(config Config, filename string) EventSet {
  whitelist := EmptyEventSet()
  PrintStderr(config, 1, "Reading mutation whitelist `%s'... ", filename)
  if err := whitelist.ImportLines(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return whitelist
}

func importSamples(config Config, filename string) []string {
  samples := EmptyEventSet()
  PrintStderr(config, 1, "Reading sample list `%s'... ", filename)
  if err := samples.ImportLines(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return samples.Slice()
}

/* -------------------------------------------------------------------------- */

func savePlot(config Config, filename string, curve SaturationCurve) {
  xy := make(plotter.XYs, len(curve))
  for i, point := range curve {
    xy[i].X = float64(point.K)
    xy[i].Y = point.MeanFraction
  }
  p := plot.New()
  p.Title.Text   = ""
  p.X.Label.Text = "number of regulators"
  p.Y.Label.Text = "mean coverage"

  if err := plotutil.AddLines(p, xy); err != nil {
    log.Fatal(err)
  }
  if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Wrote saturation plot to `%s'\n", filename)
}

/* -------------------------------------------------------------------------- */

func saturationCurve(config Config, filenameRanking, filenameCatalog, filenameLocations, filenameUniverse, filenameActivity, filenameMutations, filenameCnv, filenameOut string) {

  ranking   := importRanking  (config, filenameRanking)
  catalog   := importCatalog  (config, filenameCatalog)
  locations := importLocations(config, filenameLocations)
  universe  := importUniverse (config, filenameUniverse)

  activity   := ActivityMatrix  {MolecularMatrix: importMatrix(config, filenameActivity,  "activity")}
  mutations  := MutationMatrix  {MolecularMatrix: importMatrix(config, filenameMutations, "mutation")}
  copyNumber := CopyNumberMatrix{MolecularMatrix: importMatrix(config, filenameCnv,       "copy-number")}
  fusions    := FusionMatrix{}
  if config.FilenameFusion != "" {
    fusions = FusionMatrix{MolecularMatrix: importMatrix(config, config.FilenameFusion, "fusion")}
  }

  options := DefaultProfileOptions()
  options.Alpha        = config.Alpha
  options.CnvThreshold = config.CnvThreshold
  if config.FilenameWhitelist != "" {
    options.Whitelist = importWhitelist(config, config.FilenameWhitelist)
  }

  // restrict the catalog to the ranked regulators
  imap, err := NewInteractionMap(catalog, locations, ranking.Set())
  if err != nil {
    log.Fatal(err)
  }

  validSamples := activity.Samples
  if config.FilenameSamples != "" {
    validSamples = importSamples(config, config.FilenameSamples)
  }
  samples := CohortSamples(mutations, copyNumber, validSamples)
  if len(samples) == 0 {
    log.Fatal("no sample is present in all of the activity, mutation and copy-number data")
  }

  PrintStderr(config, 1, "Extracting %d sample profiles...\n", len(samples))
  pb       := progress.New("profiles", len(samples), 100)
  profiles := make([]SampleProfile, len(samples))
  for i, sample := range samples {
    profiles[i] = NewSampleProfile(sample, activity, mutations, copyNumber, fusions, universe, locations, options)
    if config.Verbose >= 1 {
      pb.Increment()
    }
  }
  if options.Whitelist != nil {
    removed := 0
    for i := range profiles {
      removed += profiles[i].WhitelistRemoved
    }
    PrintStderr(config, 1, "Whitelist removed %d validated mutation event(s) across the cohort\n", removed)
  }

  PrintStderr(config, 1, "Computing coverage with %d thread(s)... ", config.Threads)
  cohort := ComputeCohortCoverage(profiles, imap, ranking,
    CoverageOptions{KValues: config.KValues, StrictMemoization: config.StrictMemoization}, config.Threads)
  PrintStderr(config, 1, "done\n")

  for i := range cohort.Errors {
    if cohort.Errors[i] != nil {
      fmt.Fprintf(os.Stderr, "warning: %v\n", cohort.Errors[i])
    }
  }
  curve := cohort.Aggregate()

  if err := curve.WriteTable(filenameOut, true, strings.HasSuffix(filenameOut, ".gz")); err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Wrote saturation curve to `%s'\n", filenameOut)

  if k, ok := curve.SelectThreshold(config.TargetFraction); ok {
    fmt.Printf("saturation at %.0f%% of maximal coverage reached at k = %d\n", 100*config.TargetFraction, k)
  } else {
    fmt.Printf("saturation at %.0f%% of maximal coverage not reached\n", 100*config.TargetFraction)
  }
  if config.FilenamePlot != "" {
    savePlot(config, config.FilenamePlot, curve)
  }
}

/* -------------------------------------------------------------------------- */

func parseKValues(str string) []int {
  if str == "" {
    return nil
  }
  ks := []int{}
  for _, field := range strings.Split(str, ",") {
    k, err := strconv.Atoi(strings.TrimSpace(field))
    if err != nil {
      log.Fatalf("parsing k-values failed: %v", err)
    }
    ks = append(ks, k)
  }
  return ks
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}
  options := getopt.New()

  optAlpha     := options. StringLong("alpha",           0 , "0.05", "two-sided significance level for regulator activity [default: 0.05]")
  optCnv       := options. StringLong("cnv-threshold",   0 ,  "0.5", "absolute copy-number score threshold [default: 0.5]")
  optTarget    := options. StringLong("target-fraction", 0 , "0.85", "target fraction of maximal coverage [default: 0.85]")
  optKValues   := options. StringLong("k-values",        0 ,     "", "comma separated rank cutoffs [default: adaptive schedule]")
  optStrict    := options.   BoolLong("strict-memoization", 0,       "memoize on active regulator sets instead of their sizes")
  optFusion    := options. StringLong("fusion",          0 ,     "", "fusion indicator matrix [optional]")
  optWhitelist := options. StringLong("whitelist",       0 ,     "", "mutation whitelist, one gene per line [optional]")
  optSamples   := options. StringLong("samples",         0 ,     "", "samples with valid activity inference, one per line [default: all activity matrix samples]")
  optPlot      := options. StringLong("plot",            0 ,     "", "save saturation plot to file [optional]")
  optThreads   := options.    IntLong("threads",         0 ,      1, "number of threads [default: 1]")
  optVerbose   := options.CounterLong("verbose",        'v',         "verbose level [-v or -vv]")
  optHelp      := options.   BoolLong("help",           'h',         "print help")

  options.SetParameters("<RANKING.txt> <CATALOG.table> <CYTOBANDS.table> <UNIVERSE.table> <ACTIVITY.table> <MUTATIONS.table> <CNV.table> <OUTPUT.table>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 8 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if v, err := strconv.ParseFloat(*optAlpha, 64); err != nil {
    log.Fatal(err)
  } else {
    config.Alpha = v
  }
  if v, err := strconv.ParseFloat(*optCnv, 64); err != nil {
    log.Fatal(err)
  } else {
    config.CnvThreshold = v
  }
  if v, err := strconv.ParseFloat(*optTarget, 64); err != nil {
    log.Fatal(err)
  } else {
    config.TargetFraction = v
  }
  config.KValues           = parseKValues(*optKValues)
  config.StrictMemoization = *optStrict
  config.FilenameFusion    = *optFusion
  config.FilenameWhitelist = *optWhitelist
  config.FilenameSamples   = *optSamples
  config.FilenamePlot      = *optPlot
  config.Threads           = *optThreads
  config.Verbose           = *optVerbose

  saturationCurve(config,
    options.Args()[0],
    options.Args()[1],
    options.Args()[2],
    options.Args()[3],
    options.Args()[4],
    options.Args()[5],
    options.Args()[6],
    options.Args()[7])
}
