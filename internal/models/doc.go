// Package models defines the core domain models for SplitPayment.
//
// # Models
//
//   - Folder: a named group (a trip, an event) scoping members and expenses
//   - Member: a participant in a folder, optionally linked to a registered User
//   - Expense: a single payment made by one member on behalf of the folder
//   - ExpenseShare: one member's allocated portion of an expense
//   - User: a registered account; the demo user stands in until login is used
//
// # Money
//
// Every monetary amount is a decimal.Decimal with two fractional digits.
// Floats never carry money, so sums of shares are exact.
//
// # Derived values
//
// Balances (totalPaid, totalOwed, balance) and folder totals are never stored.
// They are recomputed from expenses and shares on every read, see package calculator.
package models
