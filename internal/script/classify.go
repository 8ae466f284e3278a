/*
Responsibilities
- Classify text runs as RTL or LTR
- Provide the cheap whole-message RTL pre-scan

The classifier is deliberately coarse: presence of a single Arabic-block
code point marks a run as RTL. It is not an implementation of the Unicode
bidirectional algorithm and does not resolve neutrals or embedding levels.
*/
package script

// isArabic reports whether r falls in the Arabic Unicode block (U+0600–U+06FF).
func isArabic(r rune) bool {
	return r >= 0x0600 && r <= 0x06FF
}

// Classify returns RTL when text contains at least one Arabic-block code
// point and LTR otherwise. Empty text is LTR.
func Classify(text string) Script {
	if ContainsRTL(text) {
		return RTL
	}
	return LTR
}

// ContainsRTL reports whether text holds any Arabic-block code point.
// Single linear pass with no allocation; safe to call on whole raw
// messages before any parse work is spent on them.
func ContainsRTL(text string) bool {
	for _, r := range text {
		if isArabic(r) {
			return true
		}
	}
	return false
}
