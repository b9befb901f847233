// Package corelib is the standard library installed by default: the
// arithmetic/comparison/logical/bitwise/assignment operators, the `[]`
// index operator, and the string/collection/arrow-function helpers every
// host embedding the engine expects to find already wired up.
package corelib

import "github.com/cwbudde/go-xpr/internal/library"

// Name is the library key recorded in every piece of metadata this
// package installs (model.OperatorMetadata.Lib / FunctionMetadata.Lib).
const Name = "core"

// New builds the core library. Hosts that want additional operators or
// functions install their own library.Library alongside this one rather
// than forking it.
func New() *library.Library {
	lib := library.New(Name)
	registerArithmetic(lib)
	registerComparison(lib)
	registerLogical(lib)
	registerBitwise(lib)
	registerAssignment(lib)
	registerIndex(lib)
	registerStrings(lib)
	registerCollections(lib)
	registerArrow(lib)
	return lib
}
