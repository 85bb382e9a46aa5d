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

import "database/sql"
import "fmt"
import "sort"
import "strings"

import _ "github.com/go-sql-driver/mysql"

/* -------------------------------------------------------------------------- */

type ucscCytoband struct {
  chrom string
  from  int
  to    int
  name  string
}

/* -------------------------------------------------------------------------- */

// Import a gene location map from the UCSC genome browser database. Each
// gene from the refGene table is assigned the cytoband containing its
// transcript midpoint. Cytoband labels are reported without the `chr'
// prefix, e.g. 8q24.21.
func ImportGeneLocationMapFromUCSC(genome string) (GeneLocationMap, error) {
  m := make(GeneLocationMap)
  /* variables for storing a single database row */
  var i_chrom, i_name string
  var i_from, i_to int

  /* open connection */
  db, err := sql.Open("mysql",
    fmt.Sprintf("genome@tcp(genome-mysql.cse.ucsc.edu:3306)/%s", genome))
  if err != nil {
    return nil, err
  }
  defer db.Close()

  if err := db.Ping(); err != nil {
    return nil, err
  }

  /* receive cytobands */
  bands := map[string][]ucscCytoband{}

  rows, err := db.Query(
    "SELECT chrom, chromStart, chromEnd, name FROM cytoBand")
  if err != nil {
    return nil, err
  }
  defer rows.Close()
  for rows.Next() {
    if err := rows.Scan(&i_chrom, &i_from, &i_to, &i_name); err != nil {
      return nil, err
    }
    bands[i_chrom] = append(bands[i_chrom], ucscCytoband{i_chrom, i_from, i_to, i_name})
  }
  for chrom := range bands {
    sort.Slice(bands[chrom], func(i, j int) bool {
      return bands[chrom][i].from < bands[chrom][j].from
    })
  }

  /* receive genes */
  genes, err := db.Query(
    "SELECT name2, chrom, txStart, txEnd FROM refGene")
  if err != nil {
    return nil, err
  }
  defer genes.Close()
  for genes.Next() {
    if err := genes.Scan(&i_name, &i_chrom, &i_from, &i_to); err != nil {
      return nil, err
    }
    mid := (i_from + i_to)/2
    for _, band := range bands[i_chrom] {
      if band.from <= mid && mid < band.to {
        m[i_name] = fmt.Sprintf("%s%s", strings.TrimPrefix(i_chrom, "chr"), band.name)
        break
      }
    }
  }
  return m, nil
}
