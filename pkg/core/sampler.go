package core

// Sampler is a lazy, potentially infinite source of floats in [0, 1).
// Implementations live in package sampler; this interface lives in core
// so that Light and Shader, which both consume a Sampler, don't need to
// import the sampler package (avoiding an import cycle, since some
// sampler variants are themselves scene-scale singletons). next() must be
// safe to call concurrently from many rendering goroutines (spec.md §4.2).
type Sampler interface {
	Next() float32
	Reset()
}

// Logger is the narrow logging interface used across the renderer; it
// matches the shape the teacher codebase uses (a single Printf method)
// so a *log.Logger or a no-op stub satisfies it without an adapter.
type Logger interface {
	Printf(format string, args ...interface{})
}
