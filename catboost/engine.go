package catboost

import "unsafe"

// modelHandle is the opaque token identifying a native model instance. It
// carries no meaning beyond being passed back into engine calls.
type modelHandle unsafe.Pointer

// engine is the native scoring contract. Boolean-returning operations use
// false to signal failure; the diagnostic is then available from lastError.
//
// The production implementation is capiEngine (capi.go, behind the capi
// build tag). Tests substitute an instrumented in-memory engine to exercise
// the boundary without the native library.
type engine interface {
	// create allocates a handle. It returns nil only when the engine is out
	// of resources.
	create() modelHandle

	// destroy releases a handle. Valid on handles that never loaded a model.
	destroy(h modelHandle)

	// loadFile populates the handle from a serialized model file.
	loadFile(h modelHandle, path string) bool

	// loadBuffer populates the handle from an in-memory serialized model.
	// data must be non-empty.
	loadBuffer(h modelHandle, data []byte) bool

	// hashCategorical maps a raw categorical string to the fixed-width hash
	// the engine's tree splits reference. Deterministic and stateless.
	hashCategorical(value string) int32

	// calcHashed runs one batched prediction with pre-hashed categoricals.
	// floats and hashed are parallel row tables of the given widths; out
	// receives len(floats)*dimensions scores.
	calcHashed(h modelHandle, floats [][]float32, hashed [][]int32, floatWidth, catWidth int, out []float64) bool

	floatFeaturesCount(h modelHandle) int
	catFeaturesCount(h modelHandle) int
	treeCount(h modelHandle) int
	dimensionsCount(h modelHandle) int

	// lastError returns the engine's most recent diagnostic. The slot is
	// shared process-wide; see the package documentation.
	lastError() string
}
