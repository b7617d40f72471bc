// Package stock models the stock of teaching materials held by regional offices.
//
// The package includes:
//   - Item: the aggregate for one stock line, identified by its human-assigned code
//   - Status: the derived empty/low/safe classification of an item's quantity
//
// Key business rules:
//   - Codes are trimmed and must not be empty; uniqueness is enforced by the repository
//   - Price, quantity and safety threshold are never negative
//   - Status is always derived from quantity and safety threshold, never stored
package stock
