package posinp

import (
	bigdft "github.com/gobigdft/gobigdft"
)

//BondTolerance is the default factor applied to the sum of covalent radii
//when looking for bonds.
const BondTolerance = 1.2

//Bond is a pair of bonded atoms, with its length in angstroem.
type Bond struct {
	I, J   int
	Length float64
}

//Bonds returns the pairs of atoms closer than tol times the sum of their
//covalent radii, ordered by I and then J. Atoms of unknown elements are never
//bonded. Periodic images are not considered.
func (P *Posinp) Bonds(tol float64) ([]Bond, error) {
	radii := make([]float64, P.Len())
	for i, t := range P.types {
		radii[i], _ = bigdft.CovalentRadius(t)
	}
	var bonds []Bond
	for i := 0; i < P.Len(); i++ {
		if radii[i] == 0 {
			continue
		}
		for j := i + 1; j < P.Len(); j++ {
			if radii[j] == 0 {
				continue
			}
			d, err := P.Distance(i, j)
			if err != nil {
				return nil, Error{err.Error(), []string{"Distance", "Bonds"}, false}
			}
			d *= bigdft.Bohr2A
			if d <= tol*(radii[i]+radii[j]) {
				bonds = append(bonds, Bond{i, j, d})
			}
		}
	}
	return bonds, nil
}
