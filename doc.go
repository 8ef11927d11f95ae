// Package gocatboost provides a memory-safe Go binding for the CatBoost
// native scoring engine, designed for backend services that need
// low-latency gradient-boosted tree inference.
//
// The binding wraps libcatboostmodel's model calcer C API behind a small,
// thread-aware surface: load a model once, then score feature batches
// concurrently from any number of goroutines.
//
// # Features
//
// - Exactly-once native handle release, with a finalizer safety net
// - Batched scoring with mixed float and categorical string features
// - Categorical hashing through the engine's own hash function
// - Typed errors carrying the engine's diagnostics verbatim
// - Structured logging of load and teardown events
//
// # Installation
//
// The binding needs libcatboostmodel and its model_calcer_wrapper.h header
// installed where cgo can find them, then:
//
//	go get github.com/YuminosukeSato/gocatboost
//
// Builds that score for real must pass the capi build tag:
//
//	go build -tags capi
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/gocatboost/catboost"
//	)
//
//	func main() {
//	    model, err := catboost.Load("model.bin")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer model.Close()
//
//	    probs, err := model.PredictProbability(
//	        [][]float32{{-10.0, 5.0, 753.0}},
//	        [][]string{{"north"}},
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(probs)
//	}
//
// See the catboost package for the full API.
package gocatboost
