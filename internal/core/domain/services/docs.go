// Package services provides domain services that operate over collections of
// aggregates rather than a single one.
//
// The package includes:
//   - NumberGenerator: derives the next delivery order number for a year
//   - StockView: the region/category/status filter and sort engine over stock items
package services
