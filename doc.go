/*Package bigdft is the root package of gobigdft, a library to interpret the output of
the BigDFT electronic-structure code.

BigDFT writes its output ("logfile") as one or more YAML documents. gobigdft reads
those documents, resolves the quantities a user is usually interested in (energy,
forces, eigenvalues, geometry, convergence criteria...) and groups the documents of
a geometry optimization in a single object, so that the logfile is the one source of
truth for whatever is computed on top of a BigDFT run.


	**gobigdft packages**


    logfile: Logfile, Sequence and the attribute schema. Start here.

    yamldoc: loading and dumping (possibly compressed) multi-document YAML
	streams, keeping key order and the exact text of every number.

    inputparams: the input parameters of a calculation, cleaned from
	default values.

    posinp: the atomic geometry of a calculation.

    v3: an Nx3 matrix, based on gonum, for positions and forces.

    logplot: plots of the convergence of a geometry optimization.

The root package only carries unit conversion factors and atomic data.
All quantities are kept in the units the engine writes them (Hartree, Bohr, GPa)
unless a function explicitly says otherwise.
*/
package bigdft
