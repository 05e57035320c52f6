// Package rsa defines the domain types and contracts for the from-scratch
// RSA implementation: key material built on arbitrary-precision integers,
// the generator/engine/codec interfaces, and the error taxonomy shared by
// the cryptographic components.
package rsa
