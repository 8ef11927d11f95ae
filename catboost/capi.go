//go:build capi

package catboost

/*
#cgo LDFLAGS: -lcatboostmodel
#cgo CFLAGS: -I/usr/local/include

#include <stdlib.h>
#include <model_calcer_wrapper.h>
*/
import "C"

import (
	"unsafe"
)

// capiEngine scores through libcatboostmodel's model calcer C API.
type capiEngine struct{}

// defaultEngine backs every Model constructed through the public loaders.
var defaultEngine engine = capiEngine{}

// ModelCalcerHandle is a typedef of void, so cgo surfaces handles as plain
// unsafe.Pointer values.
func (capiEngine) create() modelHandle {
	return modelHandle(C.ModelCalcerCreate())
}

func (capiEngine) destroy(h modelHandle) {
	C.ModelCalcerDelete(unsafe.Pointer(h))
}

func (capiEngine) loadFile(h modelHandle, path string) bool {
	// The engine wants a NUL-terminated platform byte string, not validated
	// text; CString copies the path bytes as-is.
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))
	return bool(C.LoadFullModelFromFile(unsafe.Pointer(h), cPath))
}

func (capiEngine) loadBuffer(h modelHandle, data []byte) bool {
	// Explicit pointer+length; the buffer is not NUL-terminated.
	return bool(C.LoadFullModelFromBuffer(unsafe.Pointer(h), unsafe.Pointer(&data[0]), C.size_t(len(data))))
}

func (capiEngine) hashCategorical(value string) int32 {
	cValue := C.CString(value)
	defer C.free(unsafe.Pointer(cValue))
	return int32(C.GetStringCatFeatureHash(cValue, C.size_t(len(value))))
}

// calcHashed builds the engine's array-of-row-pointers layout in C memory
// and runs one batched prediction. The row tables must stay put for the
// duration of the call, and cgo forbids passing Go memory that itself
// contains Go pointers, so both the flattened values and the pointer tables
// live in C allocations that are freed before returning.
func (capiEngine) calcHashed(h modelHandle, floats [][]float32, hashed [][]int32, floatWidth, catWidth int, out []float64) bool {
	docCount := len(floats)

	floatRows, floatData := cFloatTable(floats, floatWidth)
	defer C.free(unsafe.Pointer(floatRows))
	defer C.free(unsafe.Pointer(floatData))

	catRows, catData := cHashTable(hashed, catWidth)
	defer C.free(unsafe.Pointer(catRows))
	defer C.free(unsafe.Pointer(catData))

	var outPtr *C.double
	if len(out) > 0 {
		outPtr = (*C.double)(unsafe.Pointer(&out[0]))
	}

	return bool(C.CalcModelPredictionWithHashedCatFeatures(
		unsafe.Pointer(h),
		C.size_t(docCount),
		floatRows, C.size_t(floatWidth),
		catRows, C.size_t(catWidth),
		outPtr, C.size_t(len(out)),
	))
}

// cFloatTable copies the batch into one flat C buffer and builds the table
// of per-row pointers into it. The caller frees both allocations.
func cFloatTable(rows [][]float32, width int) (**C.float, *C.float) {
	docCount := len(rows)
	rowPtrs := (**C.float)(C.malloc(C.size_t(docCount) * C.size_t(unsafe.Sizeof(uintptr(0)))))

	var data *C.float
	if width > 0 {
		data = (*C.float)(C.malloc(C.size_t(docCount*width) * C.size_t(unsafe.Sizeof(C.float(0)))))
		flat := unsafe.Slice(data, docCount*width)
		for i, row := range rows {
			for j, v := range row {
				flat[i*width+j] = C.float(v)
			}
		}
	}

	table := unsafe.Slice(rowPtrs, docCount)
	for i := range table {
		if width > 0 {
			table[i] = (*C.float)(unsafe.Add(unsafe.Pointer(data), uintptr(i*width)*unsafe.Sizeof(C.float(0))))
		} else {
			table[i] = nil
		}
	}
	return rowPtrs, data
}

// cHashTable is cFloatTable for pre-hashed categorical rows.
func cHashTable(rows [][]int32, width int) (**C.int, *C.int) {
	docCount := len(rows)
	rowPtrs := (**C.int)(C.malloc(C.size_t(docCount) * C.size_t(unsafe.Sizeof(uintptr(0)))))

	var data *C.int
	if width > 0 {
		data = (*C.int)(C.malloc(C.size_t(docCount*width) * C.size_t(unsafe.Sizeof(C.int(0)))))
		flat := unsafe.Slice(data, docCount*width)
		for i, row := range rows {
			for j, v := range row {
				flat[i*width+j] = C.int(v)
			}
		}
	}

	table := unsafe.Slice(rowPtrs, docCount)
	for i := range table {
		if width > 0 {
			table[i] = (*C.int)(unsafe.Add(unsafe.Pointer(data), uintptr(i*width)*unsafe.Sizeof(C.int(0))))
		} else {
			table[i] = nil
		}
	}
	return rowPtrs, data
}

func (capiEngine) floatFeaturesCount(h modelHandle) int {
	return int(C.GetFloatFeaturesCount(unsafe.Pointer(h)))
}

func (capiEngine) catFeaturesCount(h modelHandle) int {
	return int(C.GetCatFeaturesCount(unsafe.Pointer(h)))
}

func (capiEngine) treeCount(h modelHandle) int {
	return int(C.GetTreeCount(unsafe.Pointer(h)))
}

func (capiEngine) dimensionsCount(h modelHandle) int {
	return int(C.GetDimensionsCount(unsafe.Pointer(h)))
}

func (capiEngine) lastError() string {
	return C.GoString(C.GetErrorString())
}
