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

/* -------------------------------------------------------------------------- */

// DefaultKSchedule returns the rank cutoffs at which coverage is evaluated
// for a ranking of length n. Short rankings are evaluated at every cutoff;
// for long rankings a fixed schedule favors resolution at small k and
// samples large k coarsely. The schedule is strictly increasing and always
// ends at n.
func DefaultKSchedule(n int) []int {
  ks := []int{}
  if n <= 0 {
    return ks
  }
  if n <= 100 {
    for k := 1; k <= n; k++ {
      ks = append(ks, k)
    }
    return ks
  }
  for k :=   1; k <=   50; k +=   1 { ks = append(ks, k) }
  for k :=  52; k <=  100; k +=   2 { ks = append(ks, k) }
  for k := 110; k <=  300; k +=  10 { ks = append(ks, k) }
  for k := 325; k <=  625; k +=  25 { ks = append(ks, k) }
  for k := 700; k <= 1200; k += 100 { ks = append(ks, k) }
  // trim to the ranking length and terminate at n
  for len(ks) > 0 && ks[len(ks)-1] >= n {
    ks = ks[0:len(ks)-1]
  }
  return append(ks, n)
}

/* -------------------------------------------------------------------------- */

// validateKSchedule checks a user supplied schedule: cutoffs must be
// strictly increasing and within 1..n.
func validateKSchedule(ks []int, n int) error {
  for i, k := range ks {
    if k < 1 || k > n {
      return fmt.Errorf("invalid rank cutoff %d for ranking of length %d", k, n)
    }
    if i > 0 && ks[i-1] >= k {
      return fmt.Errorf("rank cutoffs must be strictly increasing")
    }
  }
  return nil
}
