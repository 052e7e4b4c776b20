// Package compute provides the runtime-selectable array engines behind
// every numeric routine in gwpop.
//
// The package keeps a single process-wide active backend:
//
//   - cpu: pure Go float64 arrays backed by gonum (default)
//   - blas32: float32 vectors through gonum's blas32 wrappers, promoted
//     to float64 storage when selected through the registry
//   - cuda: GPU arrays, only with the cuda build tag
//
// Model code reads the active engine through compute.Active() at call
// time, so switching backends takes effect immediately even for model
// instances constructed earlier:
//
//	if err := compute.SetBackend("blas32"); err != nil {
//		...
//	}
//	xp := compute.Active()
//	zs := xp.Asarray([]float64{0.1, 0.2, 0.3})
//
// Backend selection is not safe for concurrent use. Pick the backend
// once, before spawning goroutines that evaluate models, and keep it
// fixed while they run.
package compute
