// Package codex implements a client for the Codex Exchange REST API.
//
// The package includes:
//   - Signer: ed25519 request signing producing the X-Signature, X-Public-Key and X-Tonce headers
//   - Protocol: request building from endpoint options and response parsing
//   - CodexExchange: one method per endpoint over a shared dispatch routine
//
// Example usage:
//
//	config := core.DefaultConfig().WithKeys(publicKey, secretKey)
//	ex, err := codex.New(config)
//	balances, err := ex.GetBalances(ctx)
package codex
