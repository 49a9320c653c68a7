// Package match pairs the fields of two struct types by name for the reflect
// mapping engine.
//
// Key functions:
//   - NormalizeIdent: folds case and drops separators so "OrderID",
//     "order_id" and "orderId" compare equal
//   - PairFields: matches exported target fields to source fields, exact
//     names first and normalized names second
package match
