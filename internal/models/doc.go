// Package models defines the core domain models for the expense ledger.
//
// # Models
//
//   - User: a person who can create and share expenses
//   - Expense: a named expense with a total amount and a split policy
//   - Participant: membership of a user in an expense's split
//   - Share: an explicit percentage or amount recorded for a user on an expense
//   - ShareResult: the signed balance of one user on one expense
//
// # Design Principles
//
// 1. **Names as keys**: users and expenses carry surrogate UUIDs for storage,
// but every relation (participants, shares, created-by) is keyed by the
// unique name string, matching the external API.
// 2. **Avoid circular references**: relations hold name strings, never
// pointers back to the owning entity.
// 3. **Exact money**: all monetary values are decimal.Decimal with two
// fractional digits; float64 is never used for amounts.
package models
