/*
 * interfaces.go, part of gomcnp.
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

package mcnp

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it just returns the current value.
	//The decorate slice should contain a list of functions in the calling stack, plus, for each function any relevant information, or nothing. If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
}

// RecordError is the interface for errors produced while reading record streams, such as PTRAC files.
type RecordError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastRecordError has a useless function to distinguish the harmless errors (i.e. the end of the stream) so they can be
// filtered in a typeswitch that looks for this interface.
type LastRecordError interface {
	RecordError
	NormalLastRecordTermination() //does nothing, just to separate this interface from other RecordError's
}

// Arguer is implemented by every record that can be turned into the dictionary
// form used to exchange data with other MCNP tooling.
type Arguer interface {
	ToArguments() map[string]any
}

// MCNPer is implemented by every record that can be written back as MCNP input text.
type MCNPer interface {
	ToMCNP() string
}
