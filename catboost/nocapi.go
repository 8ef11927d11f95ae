//go:build !capi

package catboost

// Without the capi build tag the package compiles with no cgo, so the
// boundary tests run where libcatboostmodel is not installed. Production
// scoring requires the tag; any attempt to load a model without it aborts
// with instructions.
type unavailableEngine struct{}

var defaultEngine engine = unavailableEngine{}

func (unavailableEngine) create() modelHandle {
	panic("gocatboost: built without the capi build tag; rebuild with -tags capi and libcatboostmodel installed")
}

// The remaining methods are unreachable: every load path goes through
// create first.

func (unavailableEngine) destroy(modelHandle) {}

func (unavailableEngine) loadFile(modelHandle, string) bool { return false }

func (unavailableEngine) loadBuffer(modelHandle, []byte) bool { return false }

func (unavailableEngine) hashCategorical(string) int32 { return 0 }

func (unavailableEngine) calcHashed(modelHandle, [][]float32, [][]int32, int, int, []float64) bool {
	return false
}

func (unavailableEngine) floatFeaturesCount(modelHandle) int { return 0 }

func (unavailableEngine) catFeaturesCount(modelHandle) int { return 0 }

func (unavailableEngine) treeCount(modelHandle) int { return 0 }

func (unavailableEngine) dimensionsCount(modelHandle) int { return 0 }

func (unavailableEngine) lastError() string { return "" }
