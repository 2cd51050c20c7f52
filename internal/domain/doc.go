// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/register). This root
// package holds the sentinel errors and validation types every layer maps on.
package domain
