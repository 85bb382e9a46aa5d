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
import "log"

/* -------------------------------------------------------------------------- */

// A ConfigurationError indicates that the analysis is not runnable as
// configured, e.g. an empty regulator selection or a missing hypothesis
// set. It always aborts the run before any per-sample computation.
type ConfigurationError struct {
  Message string
}

func (err ConfigurationError) Error() string {
  return fmt.Sprintf("invalid configuration: %s", err.Message)
}

func newConfigurationError(format string, args ...interface{}) ConfigurationError {
  return ConfigurationError{fmt.Sprintf(format, args...)}
}

/* -------------------------------------------------------------------------- */

// A DataMappingError indicates a systemic failure of the gene to cytoband
// translation, i.e. not a single event of the given type could be mapped.
// Isolated mapping gaps are warnings instead.
type DataMappingError struct {
  Type    EventType
  Message string
}

func (err DataMappingError) Error() string {
  return fmt.Sprintf("mapping %s events failed: %s", err.Type, err.Message)
}

/* -------------------------------------------------------------------------- */

// Warnf is called for all non-fatal conditions (missing fusion data, samples
// without active regulators, isolated mapping gaps). It may be replaced to
// redirect or silence warnings; library code never terminates the process.
var Warnf func(format string, args ...interface{}) = func(format string, args ...interface{}) {
  log.Printf("warning: "+format, args...)
}
