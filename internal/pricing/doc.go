// Package pricing implements closed-form Black-Scholes valuation for
// European options.
//
// The Pricing Engine:
//   - Computes call and put fair values plus call-side Greeks
//   - Is pure: no state, no I/O, deterministic for given inputs
//   - Does not validate inputs; out-of-domain values (T<=0, sigma<=0,
//     non-positive spot or strike) propagate as NaN/Inf in the result
package pricing
