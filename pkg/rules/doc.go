// Package rules holds the fixed relation tables of the stem-branch system.
//
// # Overview
//
// Every table is built once when the package initialises and is reachable only
// through read-only views: range-over-func iterators ([iter.Seq],
// [iter.Seq2]) that yield values, never references into the backing storage.
// There is no mutation path after init.
//
// Tables derived from other tables are computed, not transcribed:
//
//   - Stem and branch Sheng/Ke come from the element rings in package ganzhi.
//   - Branch Chong pairs indices six apart; Po pairs (i, i-3) for even i.
//   - Branch Hai pairs each Liuhe member with the opposite of its partner.
//   - Branch Tongluhe maps every stem He pair through the Lu table.
//
// # Variants
//
// Two relation families have competing definitions. [AnheDefinition] selects
// among three Anhe tables and [XingDefinition] between a strict and a loose
// Xing table. The variants are sibling constant tables keyed by the enum.
//
// # Shensha
//
// The shensha tables (taohua, yima, hongluan, tianxi, hongyan) map a reference
// branch or stem to the branch where the star sits. They are used by the
// relationship analyzer, not by relation discovery.
package rules
