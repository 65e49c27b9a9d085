// Package table provides the table-state part of the domain: OrderTable, which
// tracks occupancy and guest count, and TableGroup, the token that links tables
// together.
//
// State space of an OrderTable:
//
//	{occupied, empty} x {ungrouped, grouped}
//
// Key business rules:
//   - a grouped table cannot change its empty flag
//   - a table with an active order cannot change its empty flag
//   - guest count cannot change while the table is empty
//   - changing the guest count never touches the empty flag
//
// Whether the table has an active order is decided by the caller, which reads the
// orders of the table inside the same unit of work and passes the answer in.
package table
