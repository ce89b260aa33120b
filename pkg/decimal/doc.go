// Package decimal adds non-negative integers written as decimal digit strings.
//
// A digit sequence is a non-empty string of ASCII '0'..'9', most significant
// digit first, with no sign and no separators. Values are not limited by any
// machine word size: addition is done column by column with a carry, in time
// linear in the longer operand.
//
// All functions are pure and safe for concurrent use.
package decimal
