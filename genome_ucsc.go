/* Copyright (C) 2025 Philipp Benner
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

package alnviz

/* -------------------------------------------------------------------------- */

import "database/sql"
import "fmt"

import _ "github.com/go-sql-driver/mysql"

/* import genome from ucsc
 * -------------------------------------------------------------------------- */

// Import the genome skeleton of a UCSC assembly (e.g. hg38) from the public
// UCSC MySQL server. Only scaffold names and lengths are retrieved; sequence
// data must be obtained separately.
func ImportGenomeFromUCSC(assembly string) (Genome, error) {
  genome := Genome{}
  /* variables for storing a single database row */
  var i_seqname string
  var i_length  int64

  /* open connection */
  db, err := sql.Open("mysql",
    fmt.Sprintf("genome@tcp(genome-mysql.cse.ucsc.edu:3306)/%s", assembly))
  if err != nil {
    return genome, err
  }
  defer db.Close()

  err = db.Ping()
  if err != nil {
    return genome, err
  }

  /* receive data */
  rows, err := db.Query("SELECT chrom, size FROM chromInfo ORDER BY size DESC, chrom")
  if err != nil {
    return genome, err
  }
  defer rows.Close()
  for rows.Next() {
    err := rows.Scan(&i_seqname, &i_length)
    if err != nil {
      return genome, err
    }
    genome.AddSequence(i_seqname, i_length)
  }
  return genome, nil
}
