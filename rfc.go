// Package rfc retrieves RFC documents from a remote source and normalizes
// them into a single document model. Documents arrive either as structured
// HTML or as plain text; both are parsed into the same Document shape.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package rfc
