package menu

import (
	"golang.org/x/text/language"
)

// scripts written right to left.
var rtlScripts = map[language.Script]bool{}

func init() {
	for _, s := range []string{"Arab", "Hebr", "Thaa", "Syrc", "Nkoo", "Adlm", "Rohg", "Mand", "Samr"} {
		rtlScripts[language.MustParseScript(s)] = true
	}
}

// IsRTL reports whether text for tag is written right to left, judged by
// the tag's most likely script.
func IsRTL(tag language.Tag) bool {
	script, conf := tag.Script()
	if conf == language.No {
		return false
	}
	return rtlScripts[script]
}

// IsRTLLocale is IsRTL for a BCP 47 string. Unparsable input is treated as
// left to right.
func IsRTLLocale(locale string) bool {
	tag, err := language.Parse(locale)
	if err != nil {
		return false
	}
	return IsRTL(tag)
}
