//go:build release

package physics

const strictHandles = false
