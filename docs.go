// Package ctxstore is a library around a concurrency-safe, heterogeneous
// property bag for exchanging typed values between unrelated subsystems.
//
// # Repository Layout
//
//	/
//	├── cmd/
//	│   └── ctxhammer/     stress tool exercising a shared store
//	├── pkg/
//	│   ├── ctxstore/      the store itself (start here)
//	│   ├── cmdutil/       cobra scaffolding for the cmd/ tools
//	│   ├── digutil/       dig dependency injection helpers
//	│   ├── logutil/       context-aware slog logging
//	│   ├── runutil/       worker and job orchestration
//	│   └── testutil/      golden file assertions
//	└── go.mod
//
// The interesting package is pkg/ctxstore; everything else is supporting
// infrastructure shared by the tools and tests.
package ctxstore
