// Package kernel provides value objects shared by the stock, delivery and
// reference models.
//
// The package includes:
//   - Money: a non-negative Rupiah amount backed by shopspring/decimal
//   - Clock: the time source used for progress timestamps and order numbering
package kernel
