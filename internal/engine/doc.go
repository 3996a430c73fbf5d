// Package engine computes board transitions for task moves.
//
// Everything here is a pure function of its inputs: the board passed in is
// never modified, untouched columns are shared with the result, and modified
// columns get fresh task slices.
package engine
