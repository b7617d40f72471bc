// Package reference holds the read-only lists loaded alongside stock and
// delivery orders: regional offices, categories, couriers and bundles.
//
// Lookups never fail. Display helpers fall back to the raw code when it cannot
// be resolved, so records pointing at unknown references still render.
package reference
