// Package storage defines the persistence contracts for trained model
// bundles. A bundle is the unit of persistence: the scorer kind, its opaque
// state bytes and the product catalog it was trained on travel together, so
// a loaded model always scores against the exact catalog it learned.
//
// The BadgerDB implementation lives in storage/badger.
package storage
