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
import "testing"

/* -------------------------------------------------------------------------- */

func TestScheduleShortRanking(t *testing.T) {

  ks := DefaultKSchedule(100)
  if len(ks) != 100 {
    t.Error("TestScheduleShortRanking failed!")
  }
  for i, k := range ks {
    if k != i+1 {
      t.Error("TestScheduleShortRanking failed!")
    }
  }
  if len(DefaultKSchedule(0)) != 0 {
    t.Error("TestScheduleShortRanking failed!")
  }
}

func TestScheduleLongRanking(t *testing.T) {

  ks := DefaultKSchedule(1253)

  // strictly increasing and terminating at the ranking length
  for i := 1; i < len(ks); i++ {
    if ks[i-1] >= ks[i] {
      t.Error("TestScheduleLongRanking failed!")
    }
  }
  if ks[len(ks)-1] != 1253 {
    t.Error("TestScheduleLongRanking failed!")
  }
  // dense at small k, coarse at large k
  contains := func(k int) bool {
    for _, v := range ks {
      if v == k {
        return true
      }
    }
    return false
  }
  if !contains(50) || !contains(52) || !contains(110) || !contains(325) || !contains(700) || !contains(1200) {
    t.Error("TestScheduleLongRanking failed!")
  }
  if contains(51) || contains(101) || contains(326) || contains(1201) {
    t.Error("TestScheduleLongRanking failed!")
  }
}

func TestScheduleIntermediateRanking(t *testing.T) {

  // the schedule must end at n even if n is not a schedule point
  ks := DefaultKSchedule(115)
  if ks[len(ks)-1] != 115 {
    t.Error("TestScheduleIntermediateRanking failed!")
  }
  for i := 1; i < len(ks); i++ {
    if ks[i-1] >= ks[i] {
      t.Error("TestScheduleIntermediateRanking failed!")
    }
  }
}
