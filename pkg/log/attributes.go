// Package log defines standard attribute keys for model scoring operations.
//
// Using these keys keeps field names consistent across load, prediction and
// teardown events, which makes the binding's logs easy to filter in
// aggregate. The keys follow a hierarchical naming convention
// (e.g. "model.path", "batch.rows").

package log

// Model context.
const (
	// ComponentKey identifies which package emitted the record.
	ComponentKey = "component"

	// ModelPathKey is the filesystem path a model was loaded from.
	// Empty for buffer loads.
	ModelPathKey = "model.path"

	// ModelSourceKey distinguishes how the model was loaded: "file" or "buffer".
	ModelSourceKey = "model.source"

	// FloatFeaturesKey is the model's expected float feature count.
	FloatFeaturesKey = "model.float_features"

	// CatFeaturesKey is the model's expected categorical feature count.
	CatFeaturesKey = "model.cat_features"

	// TreesKey is the number of trees in the loaded ensemble.
	TreesKey = "model.trees"

	// DimensionsKey is the model's output dimensionality.
	DimensionsKey = "model.dimensions"
)

// Scoring context.
const (
	// OperationKey names the public operation being performed.
	// Standard values: "PredictRaw", "PredictProbability", "PredictMatrix".
	OperationKey = "scoring.operation"

	// RowsKey is the number of rows in a feature batch.
	RowsKey = "batch.rows"
)
