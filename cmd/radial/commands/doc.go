// Package commands implements the radial CLI, a tool for checking dial
// configurations without a window.
//
//	radial resolve --min 0 --max 100 --arc gauge --tick 10 --precise 1 --precise-distance 60 70 0
//	radial svg --min 0 --max 12 --radius 50 3
//
// Pointer offsets are relative to the dial center in screen coordinates
// (Y grows downward). Put negative offsets after "--".
package commands
