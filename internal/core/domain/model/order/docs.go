// Package order provides the Order aggregate root and its lifecycle state machine.
//
// The package includes:
//   - Order: an order placed against exactly one table, with its line items
//   - OrderLineItem: a menu reference and a positive quantity
//   - Status: COOKING, MEAL and COMPLETION, with COMPLETION terminal
//
// Key business rules:
//   - an order without line items cannot be created
//   - orders start in COOKING; any known status may be set afterwards
//   - once COMPLETION is reached the status never changes again
//   - an order that is not in COMPLETION is active and blocks its table's
//     empty-state changes
package order
