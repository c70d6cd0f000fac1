/*
Pdbtools looks at PDB files interactively.

Usage:

	pdbtools [flags]

You give it a PDB ID and it reads the file from the cache or downloads
it. Then there is a menu. You can print header details, print the
sequence of a chain, write chains as FASTA, copy residue lines to or
from a file, rename a chain, list non-standard residues and plot the
temperature factor of a chain as a PNG.

Downloaded files are kept in a cache. By default this is a directory
holding files like 1ABC.pdb, so a file you put there yourself will be
used too. The cache can also be in memory, an sqlite database or an S3
bucket. Without flags, the cache is set up from the environment:

	PDBTOOLS_CACHE_DRIVER   fs, memory, sqlite or s3
	PDBTOOLS_CACHE_DIR      directory for fs
	PDBTOOLS_CACHE_DB       database file for sqlite
	PDBTOOLS_S3_BUCKET, PDBTOOLS_S3_REGION, PDBTOOLS_S3_ENDPOINT,
	PDBTOOLS_S3_PREFIX, PDBTOOLS_S3_PATH_STYLE

Type q, Q or quit to leave. At a chain ID prompt only quit works,
since q is a chain.
*/
package main
