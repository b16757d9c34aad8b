// Package finplan provides the calculations behind a small personal finance
// planner. It is designed to be local-first and deterministic: every function
// is a pure transform over user supplied scalars, so the same inputs always
// give the same figures.
//
// The core functionalities include:
//   - Risk Profiling: classifying an investor into a RiskCategory from a
//     five question survey and an age based tilt.
//   - Allocation Catalog: a static, validated table of recommended asset
//     weights and example funds for each RiskCategory.
//   - Goal Projection: simulating the monthly growth of a savings goal under
//     compound returns and regular contributions, and finding the first month
//     the goal is reached.
//   - Tax: simple dividend and capital gains tax estimates.
//
// This package serves as the foundational logic for the `fpl` command-line
// tool. Presentation (markdown, charts, spreadsheets) lives in sibling packages.
package finplan
