// Package scpscrape turns the loosely structured pages of the Chinese-branch
// SCP wiki into canonical flat records: a stable identifier, classification,
// free-text sections, media references, and tags. Field boundaries in the
// source pages are marked only by emphasis styling, labels appear in several
// scripts and spellings, and content is sometimes duplicated or missing, so
// the pipeline normalizes keys against a synonym table, cleans and
// deduplicates values, and degrades gracefully instead of failing.
//
// This package contains domain types, interfaces, and the pure
// extraction-and-normalization functions following Ben Johnson's Standard
// Package Layout. Implementations live in subdirectories named after their
// primary dependency (e.g., goquery/, http/, sqlite/).
package scpscrape
