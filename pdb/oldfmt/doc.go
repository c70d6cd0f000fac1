// Package oldfmt reads and edits PDB files in the old fixed-column
// format.
//
// Everything here works on a Document, which is just the lines of a
// file in order. Nothing does I/O and nothing changes a Document in
// place. Fields are cut from fixed byte ranges given in columns.go, so
// a line can be rewritten (see WithChainID and RenameChain) without
// moving any other column.
//
// Only the records we need are recognised: ATOM, HETATM, HEADER, TITLE,
// SOURCE, KEYWDS, AUTHOR, the REMARK 2 resolution line and the journal
// title sub-record. Everything else is OTHER and is passed through.
package oldfmt
