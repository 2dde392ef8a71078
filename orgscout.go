// Package orgscout extracts student organization records from institutional
// web pages with unknown layouts. It locates candidate containers with a
// cascade of heuristics, builds structured records from them, classifies
// each record into a fixed category set and merges duplicates.
//
// This package contains domain types, interfaces and the pure field
// extractors. Implementations live in subdirectories named after their
// primary dependency (e.g., goquery/, sqlite/, excelize/).
package orgscout
