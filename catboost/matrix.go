package catboost

import (
	"gonum.org/v1/gonum/mat"
)

// PredictMatrix scores a gonum matrix of float features alongside raw
// categorical rows. Each matrix row is one document; values are narrowed to
// float32, which is the precision the native engine consumes. Shape rules
// and output layout match PredictRaw.
func (m *Model) PredictMatrix(X mat.Matrix, catFeatures [][]string) ([]float64, error) {
	rows, cols := X.Dims()
	floatFeatures := make([][]float32, rows)
	for i := 0; i < rows; i++ {
		row := make([]float32, cols)
		for j := 0; j < cols; j++ {
			row[j] = float32(X.At(i, j))
		}
		floatFeatures[i] = row
	}
	return m.predict("PredictMatrix", floatFeatures, catFeatures)
}
