// Package walker traverses a parsed document in source order.
//
// Handlers are registered with functional options and receive a
// [WalkContext] describing where the node sits (path template, method,
// status code, JSON path). Each handler returns an [Action]: Continue,
// SkipChildren or Stop.
//
// The walk visits info, then each path (path-level parameters first, then
// every operation with its parameters, request body and responses), then
// the named schemas of components.schemas or definitions. Nested schemas
// are visited through properties and items; a schema already on the current
// branch is reported as a cycle instead of being visited again.
package walker
