// Package tabstore is the tabular storage collaborator: a set of named tabs,
// each a header row plus text rows, read in full and overwritten in full.
//
// There is no cross-tab transaction and no locking between processes. A
// delete is a read-modify-write of the whole tab; concurrent writers from
// another process can lose rows. This is an accepted limitation of the
// deployment (one server instance owns the database), not something the
// store papers over.
package tabstore

import (
	"errors"

	"github.com/haresh143heri/Ebasket-Return-App/internal/model"
)

// Well-known tab names.
const (
	TabScans  = "scans"
	TabRTV    = "rtv"
	TabOrders = "orders"
)

// Tabs lists every tab the application manages.
var Tabs = []string{TabScans, TabRTV, TabOrders}

// ErrUnknownTab is returned for tab names outside the managed set.
var ErrUnknownTab = errors.New("tabstore: unknown tab")

// Store is the contract the ingestion, reconciliation and retention layers
// hold against persistent storage. All values are text; the store assumes
// nothing about column sets.
type Store interface {
	// CreateIfMissing ensures the tab exists, empty if new.
	CreateIfMissing(tab string) error
	// ReadAll returns the tab's header and rows. An empty or header-only
	// tab yields a table with Header possibly nil and no rows.
	ReadAll(tab string) (*model.Table, error)
	// AppendHeaderIfEmpty writes the header row only when the tab has no
	// header yet. Headers are created lazily on first non-empty save.
	AppendHeaderIfEmpty(tab string, header []string) error
	// AppendRows appends data rows below whatever the tab holds.
	AppendRows(tab string, rows [][]string) error
	// OverwriteAll replaces the whole tab with header+rows. An empty rows
	// slice leaves the tab header-only; a nil header empties it entirely.
	OverwriteAll(tab string, header []string, rows [][]string) error
	// Close releases the backing resources.
	Close() error
}

// KnownTab reports whether tab is one of the managed tab names.
func KnownTab(tab string) bool {
	for _, t := range Tabs {
		if t == tab {
			return true
		}
	}
	return false
}
