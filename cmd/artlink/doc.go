// Command artlink matches catalog records to media assets and manages
// the applied-link ledger.
package main
