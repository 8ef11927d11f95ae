package catboost

import (
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	pkgerrs "github.com/YuminosukeSato/gocatboost/pkg/errors"
	"github.com/YuminosukeSato/gocatboost/pkg/log"
)

// Model owns a handle to a natively loaded CatBoost model and scores
// feature batches through it.
//
// Only loaded models are ever returned to callers: the public loaders
// either complete native loading or release the handle and return an error,
// so prediction and introspection are always well-defined on a *Model.
//
// A loaded Model is never mutated, so it is safe to share across goroutines
// for concurrent prediction. That claim rests on the native engine being
// reentrant for pure-read calcer calls, which upstream states for the model
// calcer API (catboost issue #272) but this wrapper cannot verify. Close
// must not overlap an in-flight prediction; the caller establishes that
// ordering.
type Model struct {
	eng    engine
	handle modelHandle

	// declared feature geometry, read from the engine once at load time
	floatFeatures int
	catFeatures   int
	trees         int
	dimensions    int

	closed    atomic.Bool
	closeOnce sync.Once
}

// Load reads a serialized CatBoost model from path and returns a loaded
// Model. The file is an opaque blob handed to the engine unmodified.
func Load(path string) (*Model, error) {
	return loadWith(defaultEngine, path)
}

// LoadFromBuffer loads a serialized CatBoost model from an in-memory byte
// sequence.
func LoadFromBuffer(data []byte) (*Model, error) {
	return loadBufferWith(defaultEngine, data)
}

func loadWith(eng engine, path string) (*Model, error) {
	m := newModel(eng)
	if !eng.loadFile(m.handle, path) {
		cause := pkgerrs.NewEngineError("LoadFullModelFromFile", eng.lastError())
		_ = m.Close()
		return nil, pkgerrs.NewModelLoadError(path, cause)
	}
	m.finishLoad(path, "file")
	return m, nil
}

func loadBufferWith(eng engine, data []byte) (*Model, error) {
	if len(data) == 0 {
		return nil, pkgerrs.NewModelLoadError("", pkgerrs.ErrEmptyModelData)
	}
	m := newModel(eng)
	if !eng.loadBuffer(m.handle, data) {
		cause := pkgerrs.NewEngineError("LoadFullModelFromBuffer", eng.lastError())
		_ = m.Close()
		return nil, pkgerrs.NewModelLoadError("", cause)
	}
	m.finishLoad("", "buffer")
	return m, nil
}

// newModel allocates a native handle. The engine gives no recoverable
// signal for allocation failure, so a nil handle is treated as resource
// exhaustion and aborts the process.
func newModel(eng engine) *Model {
	h := eng.create()
	if h == nil {
		panic("gocatboost: native model handle allocation failed")
	}
	return &Model{eng: eng, handle: h}
}

// finishLoad caches the model's declared geometry and arms the finalizer.
// The cached counts make introspection infallible and keep batch validation
// off the native boundary.
func (m *Model) finishLoad(path, source string) {
	m.floatFeatures = m.eng.floatFeaturesCount(m.handle)
	m.catFeatures = m.eng.catFeaturesCount(m.handle)
	m.trees = m.eng.treeCount(m.handle)
	m.dimensions = m.eng.dimensionsCount(m.handle)
	runtime.SetFinalizer(m, (*Model).finalize)

	log.GetLoggerWithName("catboost").Info("model loaded",
		log.ModelPathKey, path,
		log.ModelSourceKey, source,
		log.FloatFeaturesKey, m.floatFeatures,
		log.CatFeaturesKey, m.catFeatures,
		log.TreesKey, m.trees,
		log.DimensionsKey, m.dimensions,
	)
}

// Close releases the native handle. It is idempotent; the first call wins
// and later calls are no-ops. Close must not run concurrently with a
// prediction on the same Model.
//
// Models that fall out of scope without Close are released by a finalizer,
// but explicit Close is the supported path; the finalizer only bounds the
// leak when a caller forgets.
func (m *Model) Close() error {
	m.closeOnce.Do(func() {
		m.closed.Store(true)
		runtime.SetFinalizer(m, nil)
		m.eng.destroy(m.handle)
		log.GetLoggerWithName("catboost").Debug("model closed",
			log.TreesKey, m.trees,
		)
	})
	return nil
}

func (m *Model) finalize() {
	_ = m.Close()
}

// PredictRaw scores a batch and returns the ensemble's unnormalized outputs,
// one score per row, or rows*DimensionsCount() values row-major for
// multi-dimensional models.
//
// floatFeatures and catFeatures are parallel row tables: row i of each
// describes the same document. Every float row must have exactly
// FloatFeaturesCount() values and every categorical row exactly
// CatFeaturesCount() values; shape violations and empty batches fail with a
// typed error before any native call. Categorical strings are hashed
// through the engine's hash per call, never cached.
func (m *Model) PredictRaw(floatFeatures [][]float32, catFeatures [][]string) ([]float64, error) {
	return m.predict("PredictRaw", floatFeatures, catFeatures)
}

// PredictProbability scores a batch and maps every raw score through the
// logistic function 1/(1+exp(-x)).
//
// This is the binary-classification convention. For multi-dimensional
// models the per-dimension sigmoid outputs do not form a probability
// distribution; callers are responsible for knowing their model's output
// semantics.
func (m *Model) PredictProbability(floatFeatures [][]float32, catFeatures [][]string) ([]float64, error) {
	raw, err := m.predict("PredictProbability", floatFeatures, catFeatures)
	if err != nil {
		return nil, err
	}
	for i, x := range raw {
		raw[i] = sigmoid(x)
	}
	return raw, nil
}

func (m *Model) predict(op string, floatFeatures [][]float32, catFeatures [][]string) ([]float64, error) {
	if m.closed.Load() {
		return nil, pkgerrs.Wrap(pkgerrs.ErrModelClosed, "gocatboost: "+op)
	}
	if err := m.validateBatch(op, floatFeatures, catFeatures); err != nil {
		return nil, err
	}

	log.GetLoggerWithName("catboost").Debug("scoring batch",
		log.OperationKey, op,
		log.RowsKey, len(floatFeatures),
	)

	hashed := make([][]int32, len(catFeatures))
	for i, row := range catFeatures {
		hashedRow := make([]int32, len(row))
		for j, value := range row {
			hashedRow[j] = m.eng.hashCategorical(value)
		}
		hashed[i] = hashedRow
	}

	out := make([]float64, len(floatFeatures)*m.dimensions)
	if !m.eng.calcHashed(m.handle, floatFeatures, hashed, m.floatFeatures, m.catFeatures, out) {
		cause := pkgerrs.NewEngineError("CalcModelPredictionWithHashedCatFeatures", m.eng.lastError())
		return nil, pkgerrs.NewPredictionError(op, cause)
	}
	return out, nil
}

// FloatFeaturesCount returns the number of float features the model expects
// per row.
func (m *Model) FloatFeaturesCount() int { return m.floatFeatures }

// CatFeaturesCount returns the number of categorical features the model
// expects per row.
func (m *Model) CatFeaturesCount() int { return m.catFeatures }

// TreeCount returns the number of trees in the loaded ensemble.
func (m *Model) TreeCount() int { return m.trees }

// DimensionsCount returns the model's output dimensionality.
func (m *Model) DimensionsCount() int { return m.dimensions }

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
