// Package depthlabel implements the FlowMap depth recurrence: for each
// node v, the depth label ℓ(v) is the minimum over its
// K-feasible cuts C of 1 + max_{u∈C} ℓ(u), and ℓ coincides with the
// depth-optimal K-LUT mapping depth at every node. Every enumerated cut's
// depth is recorded, not only the minimizer's, because area-flow recovery
// (package areaflow) needs the full per-cut depth table to find
// depth-preserving alternatives to the minimizing cut.
package depthlabel
