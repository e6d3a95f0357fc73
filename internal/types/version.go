// Package types provides type definitions for the resume and cover letter documents
// edited, rendered and versioned by resume-builder.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Version is an immutable, labeled snapshot of the document package.
// Timestamp is in Unix milliseconds.
type Version struct {
	ID        string  `json:"id"`
	Timestamp int64   `json:"timestamp"`
	Data      AppData `json:"data"`
	Label     string  `json:"label"`
}

// CreatedAt returns the snapshot time.
func (v Version) CreatedAt() time.Time {
	return time.UnixMilli(v.Timestamp)
}

// Clone returns a deep copy of the version.
func (v Version) Clone() Version {
	v.Data = v.Data.Clone()
	return v
}
