// Package keys defines the domain entities and service contracts for stored
// RSA key pairs: the persisted record of exported key material, the query
// object used for listings and the repository and application service
// interfaces implemented by the infrastructure and app layers.
package keys
