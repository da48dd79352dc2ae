// Package bgremove makes near-white pixels of a raster image transparent.
//
// A pixel is background when its red, green and blue channels are all strictly
// above Threshold. Background pixels are replaced with transparent white; every
// other pixel keeps its original channels, alpha included. Results are written
// as PNG. The package works entirely in memory apart from the file helpers,
// which write atomically so a failed run never leaves a partial output behind.
package bgremove
