//go:build capi

package catboost

import (
	"math"
	"os"
	"testing"
)

// The golden model is a small binary-classification ensemble with three
// float features, one categorical feature, 1000 trees and one output
// dimension. It is not checked in; drop the fixture at testdata/model.bin
// to run these tests against the real native engine.
const goldenModelPath = "testdata/model.bin"

func goldenModel(t *testing.T) *Model {
	t.Helper()
	if _, err := os.Stat(goldenModelPath); os.IsNotExist(err) {
		t.Skipf("golden model fixture not found at %s", goldenModelPath)
	}
	model, err := Load(goldenModelPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return model
}

func TestGoldenModelStats(t *testing.T) {
	model := goldenModel(t)
	defer model.Close()

	if got := model.FloatFeaturesCount(); got != 3 {
		t.Errorf("FloatFeaturesCount = %d, want 3", got)
	}
	if got := model.CatFeaturesCount(); got != 1 {
		t.Errorf("CatFeaturesCount = %d, want 1", got)
	}
	if got := model.TreeCount(); got != 1000 {
		t.Errorf("TreeCount = %d, want 1000", got)
	}
	if got := model.DimensionsCount(); got != 1 {
		t.Errorf("DimensionsCount = %d, want 1", got)
	}
}

func TestGoldenModelPrediction(t *testing.T) {
	model := goldenModel(t)
	defer model.Close()

	floats, cats := testBatch()
	preds, err := model.PredictRaw(floats, cats)
	if err != nil {
		t.Fatalf("PredictRaw failed: %v", err)
	}

	want := []float64{0.9980003729960197, 0.00249414628534181, -0.0013677527881450977}
	if len(preds) != len(want) {
		t.Fatalf("len(preds) = %d, want %d", len(preds), len(want))
	}
	for i := range want {
		if math.Abs(preds[i]-want[i]) > 1e-9 {
			t.Errorf("preds[%d] = %v, want %v", i, preds[i], want[i])
		}
	}
}

func TestGoldenModelBufferLoad(t *testing.T) {
	model := goldenModel(t)
	defer model.Close()

	data, err := os.ReadFile(goldenModelPath)
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	fromBuffer, err := LoadFromBuffer(data)
	if err != nil {
		t.Fatalf("LoadFromBuffer failed: %v", err)
	}
	defer fromBuffer.Close()

	floats, cats := testBatch()
	p1, err := model.PredictRaw(floats, cats)
	if err != nil {
		t.Fatalf("PredictRaw (file) failed: %v", err)
	}
	p2, err := fromBuffer.PredictRaw(floats, cats)
	if err != nil {
		t.Fatalf("PredictRaw (buffer) failed: %v", err)
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Errorf("prediction[%d] differs between file and buffer load: %v vs %v", i, p1[i], p2[i])
		}
	}
}

func TestGoldenModelLoadMissingFile(t *testing.T) {
	if _, err := os.Stat(goldenModelPath); os.IsNotExist(err) {
		t.Skip("native engine fixture checks skipped without the golden model")
	}
	if _, err := Load("testdata/no-such-model.bin"); err == nil {
		t.Fatal("expected an error loading a missing model file")
	}
}
