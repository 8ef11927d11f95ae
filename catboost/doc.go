// Package catboost binds the CatBoost native scoring engine
// (libcatboostmodel) for inference over tabular feature batches.
//
// The package owns the resource and marshalling boundary around the engine's
// C API: it holds one native model handle per Model, guarantees the handle
// is released exactly once, converts mixed float/categorical batches into
// the engine's row-pointer calling convention, hashes categorical string
// values through the engine's own hash function before scoring, and
// translates the engine's boolean status convention into the typed errors
// in pkg/errors.
//
// Tree storage, traversal and model parsing live entirely inside the native
// engine; this package treats the serialized model as an opaque blob.
//
// The cgo layer is guarded by the capi build tag. Build with
//
//	go build -tags capi
//
// on a machine with libcatboostmodel installed to score for real; without
// the tag the package still compiles (loading panics with instructions),
// which keeps the test suite runnable where the native library is absent.
//
// A note on diagnostics: the engine exposes a single process-wide
// last-error slot. When native calls fail concurrently on different
// goroutines, the diagnostic attached to each returned error may belong to
// either failure. Whether the slot is thread-local is not specified by the
// engine's documentation; verify against the libcatboostmodel version in
// use before relying on it.
package catboost
