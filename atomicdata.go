package bigdft

//A map for assigning mass (in atomic mass units) to elements.
//TODO: Add the rest of the elements present in BigDFT's eleconf-inc.f90.
var symbolMass = map[string]float64{
	"H":  1.00794,
	"He": 4.002602,
	"Li": 6.941,
	"Be": 9.012182,
	"B":  10.811,
	"C":  12.011,
	"N":  14.00674,
	"O":  15.9994,
	"F":  18.9984032,
	"Ne": 20.1797,
	"Na": 22.989768,
	"Mg": 24.3050,
	"Al": 26.981539,
	"Si": 28.0855,
	"P":  30.973762,
	"S":  32.066,
	"Cl": 35.4527,
	"Ar": 39.948,
}

//A map for assigning covalent radii (angstroem) to elements
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
var symbolCovrad = map[string]float64{
	"H":  0.31,
	"He": 0.28,
	"Li": 1.28,
	"Be": 0.96,
	"B":  0.84,
	"C":  0.76, //the sp3 radius
	"N":  0.71,
	"O":  0.66,
	"F":  0.57,
	"Ne": 0.58,
	"Na": 1.66,
	"Mg": 1.41,
	"Al": 1.21,
	"Si": 1.11,
	"P":  1.07,
	"S":  1.05,
	"Cl": 1.02,
	"Ar": 1.06,
}

//Mass returns the mass, in atomic mass units, of the element with the given symbol,
//and whether the element is known.
func Mass(symbol string) (float64, bool) {
	m, ok := symbolMass[symbol]
	return m, ok
}

//CovalentRadius returns the covalent radius, in angstroem, of the element with
//the given symbol, and whether the element is known.
func CovalentRadius(symbol string) (float64, bool) {
	r, ok := symbolCovrad[symbol]
	return r, ok
}
