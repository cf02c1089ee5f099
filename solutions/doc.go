// Package solutions holds the per-day solver functions. Each dayNN.go
// file is generated by `questbench scaffold` and registers its three
// parts with the default registry from init. The harness never imports
// this package directly; cmd/questbench pulls it in for the
// registration side effect.
package solutions
