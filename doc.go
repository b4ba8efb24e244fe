/*
 * doc.go, part of gomcnp.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package mcnp is the main package of the goMCNP library. It provides the pieces shared by the
readers and writers of the files used by the MCNP Monte Carlo particle-transport code:
FORTRAN-style number casting, card tokenizing, continuation-line handling and the error types
all the sub-packages use.



	**goMCNP Capabilities**


    Reads and writes INP surface cards for every surface kind, including the
	macrobodies, checking every card against the rules of its kind.

    Reads whole INP decks (message block, title, cells, surfaces and data),
	and writes them back.

    Converts quadric surfaces to the general quadric form, so the sense of
	a point with respect to a surface can be computed.

    Reads PTRAC files (plain or compressed), both sequentially and concurrently,
	reconstructing the full event history for each simulated particle.

    Builds and plots energy spectra from the events in a PTRAC file.

    Stores decoded PTRAC runs in SQLite databases.

    Every record can be turned into a dictionary and encoded as JSON or YAML, so
	goMCNP data can be shared with other MCNP tools.


The sub-packages are:

	inp       surface cards, surface blocks and INP decks
	geom      quadric form of surfaces
	ptrac     PTRAC headers, histories and events
	ptrac/store  SQLite storage for PTRAC runs
	spectrum  energy histograms and plots
	mcnpjson  dictionary interchange
*/
package mcnp
