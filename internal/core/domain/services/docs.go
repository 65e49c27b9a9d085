// Package services provides domain services for the rules that span a table and
// its orders and do not belong to a single aggregate.
//
// The package includes:
//   - TableOccupancy: changes a table's empty flag given the orders placed against it
//   - OrderPlacement: creates an order against a table
//
// Both services are stateless. Callers load the aggregates inside one unit of work,
// with the table row locked, so the decision and the write cannot interleave with
// a concurrent request on the same table.
package services
