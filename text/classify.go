package text

// wideRange is an inclusive range of code points.
type wideRange struct {
	lo, hi rune
}

// wideRanges lists the CJK-family blocks, in ascending order.
// IsWideScript relies on the order to stop early.
var wideRanges = [...]wideRange{
	{0x1100, 0x11FF},   // Hangul Jamo
	{0x2E80, 0x2EFF},   // CJK Radicals Supplement
	{0x2F00, 0x2FDF},   // Kangxi Radicals
	{0x2FF0, 0x2FFF},   // Ideographic Description Characters
	{0x3000, 0x303F},   // CJK Symbols and Punctuation
	{0x3040, 0x309F},   // Hiragana
	{0x30A0, 0x30FF},   // Katakana
	{0x3100, 0x312F},   // Bopomofo
	{0x3130, 0x318F},   // Hangul Compatibility Jamo
	{0x3190, 0x319F},   // Kanbun
	{0x31A0, 0x31BF},   // Bopomofo Extended
	{0x31C0, 0x31EF},   // CJK Strokes
	{0x31F0, 0x31FF},   // Katakana Phonetic Extensions
	{0x3200, 0x32FF},   // Enclosed CJK Letters and Months
	{0x3300, 0x33FF},   // CJK Compatibility
	{0x3400, 0x4DBF},   // CJK Extension A
	{0x4E00, 0x9FFF},   // CJK Unified Ideographs
	{0xA960, 0xA97F},   // Hangul Jamo Extended-A
	{0xAC00, 0xD7AF},   // Hangul Syllables
	{0xD7B0, 0xD7FF},   // Hangul Jamo Extended-B
	{0xF900, 0xFAFF},   // CJK Compatibility Ideographs
	{0xFE30, 0xFE4F},   // CJK Compatibility Forms
	{0xFF00, 0xFFEF},   // Halfwidth and Fullwidth Forms (incl. halfwidth Hangul)
	{0x1AFF0, 0x1AFFF}, // Kana Extended-B
	{0x1B000, 0x1B0FF}, // Kana Supplement
	{0x1B100, 0x1B12F}, // Kana Extended-A
	{0x1B130, 0x1B16F}, // Small Kana Extension
	{0x20000, 0x2A6DF}, // CJK Extension B
	{0x2A700, 0x2B73F}, // CJK Extension C
	{0x2B740, 0x2B81F}, // CJK Extension D
	{0x2B820, 0x2CEAF}, // CJK Extension E
	{0x2CEB0, 0x2EBEF}, // CJK Extension F
	{0x2EBF0, 0x2EE5F}, // CJK Extension I
	{0x2F800, 0x2FA1F}, // CJK Compatibility Ideographs Supplement
	{0x30000, 0x3134F}, // CJK Extension G
	{0x31350, 0x323AF}, // CJK Extension H
}

// IsWideScript reports whether r belongs to a CJK-family block: Han
// ideographs and their extensions, kana, Hangul, Bopomofo, and the CJK
// radicals, symbols and compatibility forms.
//
// Each wide-script character is a token of its own when input is
// segmented; see Segment.
func IsWideScript(r rune) bool {
	// ASCII, Latin, Greek, Cyrillic... all sit below Hangul Jamo.
	if r < wideRanges[0].lo {
		return false
	}
	for _, rg := range wideRanges {
		if r < rg.lo {
			return false
		}
		if r <= rg.hi {
			return true
		}
	}
	return false
}
