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

package progress

/* -------------------------------------------------------------------------- */

import "bytes"
import "bufio"
import "fmt"
import "os"
import "sync/atomic"

/* -------------------------------------------------------------------------- */

// Terminal progress bar over n work items, e.g. the samples of a cohort.
// Increment may be called from multiple goroutines.
type Progress struct {
  N, K, LineWidth int
  Label           string
  counter         int64
}

/* -------------------------------------------------------------------------- */

func New(label string, n, k int) *Progress {
  progress := Progress{N: n, K: n/k, LineWidth: 40, Label: label}
  if k > n {
    progress.K = 1
  }
  return &progress
}

/* -------------------------------------------------------------------------- */

const __line_del__ = "\033[2K\r"

func (progress *Progress) line(i int) string {
  var buffer bytes.Buffer
  writer := bufio.NewWriter(&buffer)

  p := float64(i)/float64(progress.N)
  // carriage return
  fmt.Fprintf(writer, "%s%s |", __line_del__, progress.Label)

  for j := 1; j < progress.LineWidth-1; j++ {
    if float64(j)/float64(progress.LineWidth) < p {
      fmt.Fprintf(writer, ">")
    } else {
      fmt.Fprintf(writer, " ")
    }
  }
  fmt.Fprintf(writer, "| %6.2f%% (%d/%d)", p*100, i, progress.N)
  // add newline if finished
  if i == progress.N {
    fmt.Fprintf(writer, "\n")
  }
  writer.Flush()

  return buffer.String()
}

func (progress *Progress) PrintStderr(i int) {
  if i == 0 || i == progress.N || (i % progress.K == 0) {
    fmt.Fprint(os.Stderr, progress.line(i))
  }
}

// Increment advances the bar by one item and redraws it if due.
func (progress *Progress) Increment() {
  i := int(atomic.AddInt64(&progress.counter, 1))
  progress.PrintStderr(i)
}
