package errors

import (
	"strings"
	"testing"
)

func TestEngineErrorMessage(t *testing.T) {
	err := NewEngineError("LoadFullModelFromFile", "Model file doesn't exist")

	var engineErr *EngineError
	if !As(err, &engineErr) {
		t.Fatalf("expected EngineError, got %T", err)
	}
	if engineErr.Message != "Model file doesn't exist" {
		t.Errorf("diagnostic text was reformatted: %q", engineErr.Message)
	}
	if !strings.Contains(err.Error(), "Model file doesn't exist") {
		t.Errorf("Error() should carry the native diagnostic verbatim, got %q", err.Error())
	}
}

func TestEngineErrorEmptyMessage(t *testing.T) {
	err := NewEngineError("CalcModelPredictionWithHashedCatFeatures", "")
	if !strings.Contains(err.Error(), "native call failed") {
		t.Errorf("expected fallback message, got %q", err.Error())
	}
}

func TestModelLoadErrorWrapsCause(t *testing.T) {
	cause := NewEngineError("LoadFullModelFromFile", "Incorrect model file descriptor")
	err := NewModelLoadError("/models/ranker.cbm", cause)

	var loadErr *ModelLoadError
	if !As(err, &loadErr) {
		t.Fatalf("expected ModelLoadError, got %T", err)
	}
	if loadErr.Path != "/models/ranker.cbm" {
		t.Errorf("Path = %q, want /models/ranker.cbm", loadErr.Path)
	}

	var engineErr *EngineError
	if !As(err, &engineErr) {
		t.Error("ModelLoadError should unwrap to the underlying EngineError")
	}
}

func TestModelLoadErrorBufferContext(t *testing.T) {
	err := NewModelLoadError("", NewEngineError("LoadFullModelFromBuffer", "bad magic"))
	if !strings.Contains(err.Error(), "buffer") {
		t.Errorf("buffer loads should say so in the message, got %q", err.Error())
	}
}

func TestPredictionErrorWrapsCause(t *testing.T) {
	cause := NewEngineError("CalcModelPredictionWithHashedCatFeatures", "There are no trees in the model")
	err := NewPredictionError("PredictRaw", cause)

	var predErr *PredictionError
	if !As(err, &predErr) {
		t.Fatalf("expected PredictionError, got %T", err)
	}
	if predErr.Op != "PredictRaw" {
		t.Errorf("Op = %q, want PredictRaw", predErr.Op)
	}
	var engineErr *EngineError
	if !As(err, &engineErr) {
		t.Error("PredictionError should unwrap to the underlying EngineError")
	}
}

func TestBatchShapeErrorAxes(t *testing.T) {
	rowErr := NewBatchShapeError("PredictRaw", 3, 2, 0, -1)
	if !strings.Contains(rowErr.Error(), "row count mismatch") {
		t.Errorf("axis 0 message = %q", rowErr.Error())
	}

	widthErr := NewBatchShapeError("PredictRaw", 3, 4, 1, 1)
	if !strings.Contains(widthErr.Error(), "row 1 has 4 features") {
		t.Errorf("axis 1 message = %q", widthErr.Error())
	}
}

func TestSentinelErrors(t *testing.T) {
	if !Is(Wrap(ErrEmptyBatch, "PredictRaw"), ErrEmptyBatch) {
		t.Error("wrapped ErrEmptyBatch should still match via Is")
	}
	if !Is(Wrap(ErrModelClosed, "PredictRaw"), ErrModelClosed) {
		t.Error("wrapped ErrModelClosed should still match via Is")
	}
}
