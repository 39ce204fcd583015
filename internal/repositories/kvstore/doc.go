// Package kvstore provides the local key/value persistence layer.
//
// It plays the role browser local storage plays for a web client: a flat
// map of string keys to opaque values. The countdown store keeps two keys
// here, "users" and "currentUser".
//
// # Contract
//
//   - Get of an absent key returns (nil, nil).
//   - Set upserts.
//   - Delete of an absent key is not an error.
//
// SQLiteRepository works over dbx.DBTX, so the same code runs against
// *sql.DB or inside a *sql.Tx.
package kvstore
