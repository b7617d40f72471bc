// Package delivery provides the Delivery Order (DO) aggregate that tracks the
// dispatch of one bundle of teaching materials to a student.
//
// The package includes:
//   - DeliveryOrder: the aggregate root owning status and progress history
//   - Number: the DO<year>-<sequence> identifier with an explicit numeric sequence
//   - Status: the lifecycle state machine
//   - ProgressEvent: a timestamped entry in the progress history
//
// Key business rules:
//   - A new order starts Pending with exactly one progress event
//   - The progress history is append-only and ordered by insertion
//   - Every status change appends exactly one progress event describing it
//   - Pending -> InTransit -> Delivered, with Cancelled reachable from any
//     non-terminal state; Delivered and Cancelled are terminal
//   - Orders are never deleted
package delivery
