package parser

// Tier is a binding-power lower bound: nestedExpression(left, tier) only
// lets an infix/postfix operator bind if its own tier is >= tier. Sixteen
// distinct tiers encode JavaScript operator precedence, from sequence (the
// loosest, admitted only when the caller imposes no restriction) up through
// postfix/call (the tightest).
type Tier int

const (
	// TierNone is the floor used to parse a full expression, including the
	// comma operator — the only context where TierSequence itself binds.
	TierNone Tier = iota
	TierSequence
	TierAssignment
	TierConditional
	TierLogicalOr
	TierLogicalAnd
	TierBitOr
	TierBitXor
	TierBitAnd
	TierEquality
	TierRelational
	TierShift
	TierAdditive
	TierMultiplicative
	TierExponent
	TierPostfix
	TierCall
)

// TierPrefix is the tier unary prefix operators parse their operand at;
// it shares its numeric tier with exponent since prefix operators are
// selected by primary-position dispatch, not by the infix loop, so there is
// no ambiguity in reusing the value.
const TierPrefix = TierExponent

// TierArgument is the tier call arguments, array elements, and other
// comma-separated-list members parse each entry at: one step above
// TierSequence, so a bare `,` never binds as part of a single list entry.
const TierArgument = TierAssignment
