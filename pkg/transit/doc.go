// Package transit generates and indexes the transit pillars of a chart.
//
// Three sequences are supported:
//
//   - Dayun (大运): ten-year luck cycles stepping from the month pillar,
//     starting at an externally computed year. Unbounded.
//   - Liunian (流年): the pillar of each calendar year from birth. Unbounded.
//   - Xiaoyun (小运): one pillar per year of early childhood, stepping from
//     the hour pillar, until the first Dayun begins. Finite.
//
// A [Cursor] produces the terms of one sequence. An [Index] wraps a cursor
// and answers "which term covers year Y" in constant time, advancing the
// cursor only as far as the largest year asked for and caching every term it
// passes. A [Table] combines the three indexes and answers queries for a
// combination of sequences selected by [Options].
//
// Years outside a sequence (before its first term, or after the end of
// Xiaoyun) are reported as errors with code UNSUPPORTED; call
// [Table.Support] first to avoid them. Indexes and tables are not safe for
// concurrent use.
package transit
