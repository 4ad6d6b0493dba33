// Package leverage computes the leverage and risk tier of a personal book of
// stocks and futures.
//
// The core functionalities include:
//   - Positions: stocks valued either from their cost basis or from the profit
//     and loss reported by the broker, and futures on small (100 units per lot)
//     or large (2000 units per lot) contracts, long or short.
//   - Aggregation: a stateless function turning positions and account figures
//     (bank cash, stock settlement, futures account equity) into totals: stock
//     and futures P/L and return, total exposure, total capital, leverage and
//     risk tier.
//   - Change propagation: a Book where every mutation recomputes the totals
//     before returning, so that they are never stale.
//   - Persistence: a flat, human-readable JSON record of the book, tolerant to
//     older files.
//
// This package serves as the foundational logic for the `lev` command-line
// tool.
package leverage
