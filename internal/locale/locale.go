// Package locale resolves OS-style locale identifiers (the LANG value, such
// as "ja_JP.UTF-8") to a fixed, non-negative UTC offset in seconds.
//
// The table is closed: there are no DST rules and no timezone database.
// Unknown or missing identifiers resolve to Default and never to an error.
package locale

import (
	"os"

	"github.com/aelexs/civiltime/internal/domain"
)

// Locale is one entry of the supported table, identified by its OS tag.
type Locale string

// Supported locales.
const (
	EnUS Locale = "en_US.UTF-8"
	ZhCN Locale = "zh_CN.UTF-8"
	FrFR Locale = "fr_FR.UTF-8"
	DeDE Locale = "de_DE.UTF-8"
	EsES Locale = "es_ES.UTF-8"
	ItIT Locale = "it_IT.UTF-8"
	JaJP Locale = "ja_JP.UTF-8"
	KoKR Locale = "ko_KR.UTF-8"
	PtPT Locale = "pt_PT.UTF-8"
	RuRU Locale = "ru_RU.UTF-8"
	ArSA Locale = "ar_SA.UTF-8"
	HiIN Locale = "hi_IN.UTF-8"
	ThTH Locale = "th_TH.UTF-8"
	ViVN Locale = "vi_VN.UTF-8"
	NlNL Locale = "nl_NL.UTF-8"
	SvSE Locale = "sv_SE.UTF-8"
	FiFI Locale = "fi_FI.UTF-8"
)

// Default is used whenever the identifier is absent or not in the table.
const Default = ZhCN

type entry struct {
	offset  uint64
	display string
}

// table is populated once and never mutated.
var table = map[Locale]entry{
	EnUS: {0, "English (US)"},
	ZhCN: {8 * domain.SecondsPerHour, "中文 (中国)"},
	FrFR: {1 * domain.SecondsPerHour, "Français (France)"},
	DeDE: {1 * domain.SecondsPerHour, "Deutsch (Deutschland)"},
	EsES: {1 * domain.SecondsPerHour, "Español (España)"},
	ItIT: {1 * domain.SecondsPerHour, "Italiano (Italia)"},
	JaJP: {9 * domain.SecondsPerHour, "日本語 (日本)"},
	KoKR: {9 * domain.SecondsPerHour, "한국어 (한국)"},
	PtPT: {1 * domain.SecondsPerHour, "Português (Portugal)"},
	RuRU: {3 * domain.SecondsPerHour, "Русский (Россия)"},
	ArSA: {3 * domain.SecondsPerHour, "العربية (السعودية)"},
	HiIN: {5*domain.SecondsPerHour + 30*domain.SecondsPerMinute, "हिन्दी (भारत)"},
	ThTH: {7 * domain.SecondsPerHour, "ภาษาไทย (ประเทศไทย)"},
	ViVN: {7 * domain.SecondsPerHour, "Tiếng Việt (Việt Nam)"},
	NlNL: {1 * domain.SecondsPerHour, "Nederlands (Nederland)"},
	SvSE: {1 * domain.SecondsPerHour, "Svenska (Sverige)"},
	FiFI: {1 * domain.SecondsPerHour, "Suomi (Suomi)"},
}

// ordered fixes the iteration order of All.
var ordered = []Locale{
	EnUS, ZhCN, FrFR, DeDE, EsES, ItIT, JaJP, KoKR, PtPT,
	RuRU, ArSA, HiIN, ThTH, ViVN, NlNL, SvSE, FiFI,
}

// Parse looks id up by exact match. It reports false for anything not in
// the table; there is no normalization of case or encoding suffix.
func Parse(id string) (Locale, bool) {
	l := Locale(id)
	if _, ok := table[l]; !ok {
		return "", false
	}
	return l, true
}

// ParseOrDefault is Parse with the fallback applied.
func ParseOrDefault(id string) Locale {
	if l, ok := Parse(id); ok {
		return l
	}
	return Default
}

// Resolve returns the UTC offset in seconds for id, falling back to the
// default locale's offset. It never fails.
func Resolve(id string) uint64 {
	return ParseOrDefault(id).Offset()
}

// Offset returns the fixed UTC offset in seconds. Locales outside the
// table report the default offset.
func (l Locale) Offset() uint64 {
	if e, ok := table[l]; ok {
		return e.offset
	}
	return table[Default].offset
}

// DisplayName returns the locale's name in its own language.
func (l Locale) DisplayName() string {
	if e, ok := table[l]; ok {
		return e.display
	}
	return table[Default].display
}

func (l Locale) String() string { return string(l) }

// All returns every supported locale in a stable order.
func All() []Locale {
	out := make([]Locale, len(ordered))
	copy(out, ordered)
	return out
}

// Source supplies the raw locale identifier. An empty string means the
// value is absent.
type Source interface {
	Locale() string
}

// EnvSource reads an environment variable on every call. The zero value
// reads LANG.
type EnvSource struct {
	Key string
}

// Locale returns the current value of the variable, or "" if unset.
func (s EnvSource) Locale() string {
	key := s.Key
	if key == "" {
		key = domain.LocaleEnvVar
	}
	v, _ := os.LookupEnv(key)
	return v
}

// Static is a Source that always returns the same identifier.
type Static string

// Locale returns the fixed identifier.
func (s Static) Locale() string { return string(s) }

// FromSource resolves whatever src currently reports. The second result
// is false when the fallback was taken.
func FromSource(src Source) (Locale, bool) {
	if src == nil {
		return Default, false
	}
	if l, ok := Parse(src.Locale()); ok {
		return l, true
	}
	return Default, false
}

// FromEnv resolves the LANG environment variable.
func FromEnv() Locale {
	l, _ := FromSource(EnvSource{})
	return l
}

var (
	_ Source = EnvSource{}
	_ Source = Static("")
)
