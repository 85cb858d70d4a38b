// Package monies provides the types and functions for tracking personal cash
// across multiple accounts, categorized income and expense events, peer
// loans, and recurring fixed bills. It is designed to be local-first and
// fully inspectable, so users keep control of their financial data.
//
// The core functionalities include:
//   - Ledger Management: Recording income, expenses, loan disbursements and
//     repayments against an in-memory store of accounts, loans and bills,
//     with an immutable, append-only transaction log.
//   - Allocation: Distributing a single withdrawal across accounts with an
//     explicit, swappable greedy-in-order policy.
//   - Aggregation: Stateless computation of total balance, outstanding debt,
//     committed and paid bills, the effective "safe to spend" figure, the
//     monthly burn rate with its health band, and the categorized spend
//     breakdown.
//   - Data Persistence: A small get/set key-value contract decoupling the
//     ledger from the storage medium, with defensive normalization of
//     malformed stored amounts on load.
//
// This package serves as the foundational logic for the `vault` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package monies
