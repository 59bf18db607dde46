// Package digutil provides helpers for working with Uber's dig dependency
// injection library, which wires the tools in cmd/ together.
package digutil
