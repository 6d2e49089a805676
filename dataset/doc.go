// Package dataset reads clustering inputs.
//
// The text format is a header line "K M" followed by one point per line with
// M whitespace-separated coordinates:
//
//	2 1
//	0
//	1
//	9
//
// Blank lines are skipped. Every other line is a distinct point, identified
// by its position in the file. Blobs named *.zst or *.lz4 are decompressed
// transparently by Load.
package dataset
