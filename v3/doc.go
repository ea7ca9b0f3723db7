/*Package v3 implements a Matrix type representing a row-major Nx3 matrix.
The v3.Matrix is used in gobigdft for anything that is "one 3D vector per atom":
the cartesian positions of a geometry and the atomic forces read from a logfile.
It is based in gonum's (gonum.org/v1/gonum/mat) Dense type, with the additional
restriction of a fixed number of columns.

Within the package it is understood that a "vector" is a row vector, i.e. the
cartesian coordinates of a point in 3D space (or the force on one atom).
*/
package v3
