package catboost

import (
	"hash/fnv"
	"sync"
	"unsafe"
)

// fakeEngine is an instrumented in-memory stand-in for the native scoring
// engine. It counts handle create/destroy pairs, records scoring calls, and
// produces deterministic scores from the marshalled inputs, so the resource
// and marshalling boundary can be tested without libcatboostmodel.
type fakeEngine struct {
	mu sync.Mutex

	// declared model geometry reported after load
	floatFeatures int
	catFeatures   int
	trees         int
	dimensions    int

	failLoad   bool
	failCalc   bool
	errMessage string

	created   int
	destroyed int
	calcCalls int

	live       map[modelHandle]bool
	lastFloats [][]float32
	lastHashed [][]int32
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		floatFeatures: 3,
		catFeatures:   1,
		trees:         1000,
		dimensions:    1,
		errMessage:    "fake engine failure",
		live:          make(map[modelHandle]bool),
	}
}

func (f *fakeEngine) create() modelHandle {
	f.mu.Lock()
	defer f.mu.Unlock()
	h := modelHandle(unsafe.Pointer(new(byte)))
	f.created++
	f.live[h] = true
	return h
}

func (f *fakeEngine) destroy(h modelHandle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.destroyed++
	delete(f.live, h)
}

func (f *fakeEngine) loadFile(h modelHandle, path string) bool {
	return !f.failLoad
}

func (f *fakeEngine) loadBuffer(h modelHandle, data []byte) bool {
	return !f.failLoad
}

func (f *fakeEngine) hashCategorical(value string) int32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(value))
	return int32(h.Sum32())
}

// calcHashed scores each row as a deterministic function of its marshalled
// floats and hashes, so equal inputs always produce bit-identical outputs
// and different categorical values produce different scores.
func (f *fakeEngine) calcHashed(h modelHandle, floats [][]float32, hashed [][]int32, floatWidth, catWidth int, out []float64) bool {
	f.mu.Lock()
	f.calcCalls++
	f.lastFloats = floats
	f.lastHashed = hashed
	f.mu.Unlock()

	if f.failCalc {
		return false
	}
	for i := range floats {
		var score float64
		for _, v := range floats[i] {
			score += float64(v) / 100
		}
		for _, hv := range hashed[i] {
			score += float64(hv%97) / 10
		}
		for d := 0; d < f.dimensions; d++ {
			out[i*f.dimensions+d] = score + float64(d)
		}
	}
	return true
}

func (f *fakeEngine) floatFeaturesCount(h modelHandle) int { return f.floatFeatures }
func (f *fakeEngine) catFeaturesCount(h modelHandle) int   { return f.catFeatures }
func (f *fakeEngine) treeCount(h modelHandle) int          { return f.trees }
func (f *fakeEngine) dimensionsCount(h modelHandle) int    { return f.dimensions }

func (f *fakeEngine) lastError() string { return f.errMessage }

func (f *fakeEngine) counts() (created, destroyed, calcs int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.created, f.destroyed, f.calcCalls
}
