//go:build !release

package physics

// strictHandles makes stale handle use panic. Build with -tags release to
// degrade to a no-op contact instead.
const strictHandles = true
