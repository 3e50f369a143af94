// Package cache implements the flat-file, newline-delimited persistence
// layer for previously-computed arm lists, rooted-core-failure pairs, and
// core triads, per the on-disk cache file format: a missing file means
// "not yet computed" and triggers regeneration, a present file is trusted
// outright, and every record is appended as a single atomic write.
package cache
