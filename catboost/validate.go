package catboost

import (
	pkgerrs "github.com/YuminosukeSato/gocatboost/pkg/errors"
)

// validateBatch rejects malformed batches before they reach the native
// boundary. Widths are checked against the model's declared feature counts
// rather than the first input row, so a zero-row batch cannot slip through
// as "trivially rectangular" and a uniformly-wrong batch is still caught.
func (m *Model) validateBatch(op string, floatFeatures [][]float32, catFeatures [][]string) error {
	if len(floatFeatures) == 0 {
		return pkgerrs.Wrap(pkgerrs.ErrEmptyBatch, "gocatboost: "+op)
	}
	if len(catFeatures) != len(floatFeatures) {
		return pkgerrs.NewBatchShapeError(op, len(floatFeatures), len(catFeatures), 0, -1)
	}
	for i, row := range floatFeatures {
		if len(row) != m.floatFeatures {
			return pkgerrs.NewBatchShapeError(op, m.floatFeatures, len(row), 1, i)
		}
	}
	for i, row := range catFeatures {
		if len(row) != m.catFeatures {
			return pkgerrs.NewBatchShapeError(op, m.catFeatures, len(row), 1, i)
		}
	}
	return nil
}
