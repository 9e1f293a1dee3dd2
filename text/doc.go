// Package text turns what a type designer types into glyph identifiers.
//
// Input is normalized to NFC and segmented with a CJK-aware rule: every
// CJK character is its own token, while runs of other characters stay
// together so glyph names such as "a.sc" or "uni5929" survive intact.
// Each token is then checked against the active font; tokens that do not
// exist are dropped by Parse and reported by Validate.
//
//	p := text.NewParser(svc, sess, 0)
//	p.Parse("天天 a.sc", 0) // ["天", "天", "a.sc"] if all three exist
//	p.Validate("天 zz")     // Valid=false, Invalid=["zz"]
package text
