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
import   "strings"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/mrcoverage"

/* -------------------------------------------------------------------------- */

type Config struct {
  Genome  string
  Verbose int
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func cytobandFromUCSC(config Config, filenameOut string) {
  PrintStderr(config, 1, "Importing gene locations from UCSC (%s)... ", config.Genome)
  locations, err := ImportGeneLocationMapFromUCSC(config.Genome)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  if err := locations.ExportTable(filenameOut, strings.HasSuffix(filenameOut, ".gz")); err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Wrote %d gene locations to `%s'\n", len(locations), filenameOut)
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}
  options := getopt.New()

  optGenome  := options. StringLong("genome",  0 , "hg19", "UCSC genome assembly [default: hg19]")
  optVerbose := options.CounterLong("verbose", 'v',         "verbose level [-v or -vv]")
  optHelp    := options.   BoolLong("help",    'h',         "print help")

  options.SetParameters("<OUTPUT.table>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 1 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Genome  = *optGenome
  config.Verbose = *optVerbose

  cytobandFromUCSC(config, options.Args()[0])
}
