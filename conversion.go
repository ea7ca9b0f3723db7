/*
 * conversion.go, part of gobigdft.
 *
 * Copyright 2026 The gobigdft authors
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

package bigdft

//This provides useful conversion factors and other constants.
//They follow the values used by the BigDFT code itself, so that
//quantities converted here match the ones the engine reports.

//Conversions
const (
	Bohr2A  = 0.529177249 //Bohr to angstroem
	A2Bohr  = 1 / Bohr2A
	H2EV    = 27.21138602 //Hartree to electron-Volt
	EV2H    = 1 / H2EV
	H2CmM1  = 219474.6313705                   //Hartree to cm^-1
	AMU2EMU = 1.660538782e-27 / 9.10938215e-31 //atomic to electronic mass unit
	EMU2AMU = 1 / AMU2EMU
)

//Units names as written by BigDFT.
const (
	Angstroem = "angstroem"
	Atomic    = "atomic"
	Bohr      = "bohr"
	Reduced   = "reduced"
)

//Boundary conditions, as they appear (lowercased) in a logfile.
const (
	Free     = "free"
	Surface  = "surface"
	Wire     = "wire"
	Periodic = "periodic"
)

//LengthFactor returns the factor that transforms a length in the given units
//to bohr (atomic units). ok is false for units that are not absolute lengths,
//such as reduced coordinates.
func LengthFactor(units string) (f float64, ok bool) {
	switch units {
	case Angstroem:
		return A2Bohr, true
	case Atomic, Bohr, "":
		return 1, true
	}
	return 0, false
}
