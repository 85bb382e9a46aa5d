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
import "bytes"
import "fmt"
import "math"
import "os"

/* -------------------------------------------------------------------------- */

// Cohort coverage summary at a single rank cutoff.
type SaturationPoint struct {
  K                int
  MeanFraction     float64
  MeanEventCount   float64
  UniqueEventCount int
}

// Saturation curve of a cohort: coverage as a function of the rank cutoff,
// ordered by increasing k.
type SaturationCurve []SaturationPoint

/* -------------------------------------------------------------------------- */

// SelectThreshold normalizes a numeric curve by its maximum and returns the
// smallest cutoff whose normalized value reaches the target fraction. The
// second result is false if the target is never reached; this is not an
// error, the caller decides how to proceed.
func SelectThreshold(ks []int, values []float64, target float64) (int, bool) {
  if len(ks) != len(values) {
    panic("SelectThreshold(): invalid parameters")
  }
  max := math.NaN()
  for _, v := range values {
    if math.IsNaN(v) {
      continue
    }
    if math.IsNaN(max) || v > max {
      max = v
    }
  }
  if math.IsNaN(max) || max <= 0.0 {
    return 0, false
  }
  for i, v := range values {
    if !math.IsNaN(v) && v/max >= target {
      return ks[i], true
    }
  }
  return 0, false
}

// SelectThreshold applies the threshold selection to the mean coverage
// fraction of the curve.
func (curve SaturationCurve) SelectThreshold(target float64) (int, bool) {
  ks     := make([]int,     len(curve))
  values := make([]float64, len(curve))
  for i, point := range curve {
    ks    [i] = point.K
    values[i] = point.MeanFraction
  }
  return SelectThreshold(ks, values, target)
}

/* convert to string
 * -------------------------------------------------------------------------- */

func (curve SaturationCurve) String() string {
  var buffer bytes.Buffer

  writer := bufio.NewWriter(&buffer)
  curve.writeTable(writer, true)
  writer.Flush()

  return buffer.String()
}

/* i/o
 * -------------------------------------------------------------------------- */

func (curve SaturationCurve) writeTable(w *bufio.Writer, header bool) {
  if header {
    fmt.Fprintf(w, "%6s %13s %16s %18s\n",
      "k", "mean_fraction", "mean_event_count", "unique_event_count")
  }
  for _, point := range curve {
    fmt.Fprintf(w,  "%6d", point.K)
    if math.IsNaN(point.MeanFraction) {
      fmt.Fprintf(w, " %13s", "NA")
    } else {
      fmt.Fprintf(w, " %13f", point.MeanFraction)
    }
    fmt.Fprintf(w, " %16f", point.MeanEventCount)
    fmt.Fprintf(w, " %18d", point.UniqueEventCount)
    w.WriteString("\n")
  }
}

// Export the saturation curve as a table. The first line contains the
// header of the table.
func (curve SaturationCurve) WriteTable(filename string, header, compress bool) error {
  var buffer bytes.Buffer

  writer := bufio.NewWriter(&buffer)
  curve.writeTable(writer, header)
  writer.Flush()

  return writeFile(filename, &buffer, compress)
}

// Import a saturation curve from a table written by WriteTable.
func ImportSaturationCurve(filename string) (SaturationCurve, error) {
  curve := SaturationCurve{}

  f, err := os.Open(filename)
  if err != nil {
    return nil, err
  }
  defer f.Close()

  scanner := bufio.NewScanner(f)
  // scan header
  if scanner.Scan() {
    var k int
    if _, err := fmt.Sscanf(scanner.Text(), "%d", &k); err == nil {
      // no header, parse first line as data
      point, err := parseSaturationPoint(scanner.Text())
      if err != nil {
        return nil, err
      }
      curve = append(curve, point)
    }
  }
  for scanner.Scan() {
    if len(scanner.Text()) == 0 {
      continue
    }
    point, err := parseSaturationPoint(scanner.Text())
    if err != nil {
      return nil, err
    }
    curve = append(curve, point)
  }
  return curve, scanner.Err()
}

func parseSaturationPoint(line string) (SaturationPoint, error) {
  point := SaturationPoint{}

  var fraction string
  if _, err := fmt.Sscanf(line, "%d %s %f %d",
    &point.K, &fraction, &point.MeanEventCount, &point.UniqueEventCount); err != nil {
    return point, fmt.Errorf("ImportSaturationCurve(): invalid table: %v", err)
  }
  if fraction == "NA" {
    point.MeanFraction = math.NaN()
  } else {
    if _, err := fmt.Sscanf(fraction, "%f", &point.MeanFraction); err != nil {
      return point, fmt.Errorf("ImportSaturationCurve(): invalid table: %v", err)
    }
  }
  return point, nil
}
