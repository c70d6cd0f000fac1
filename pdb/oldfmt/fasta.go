package oldfmt

// ToFasta formats one chain's sequence as a FASTA entry. The comment
// line is ">header: id" and the sequence is wrapped at 80 columns.
func ToFasta(header string, id ChainID, seq string) string {
	return ">" + header + ": " + id.String() + "\n" + Wrap80(seq) + "\n"
}
