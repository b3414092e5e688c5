// Package locale localizes the operator-facing status strings. Lookup is an
// explicit Catalog value handed to the presentation layer; nothing in this
// package holds a process-global current language.
package locale

import (
	"golang.org/x/text/language"
)

// Key identifies one translatable message.
type Key string

const (
	KeyStageReproject  Key = "stage_reproject"
	KeyStageGenerate   Key = "stage_generate"
	KeyReprojecting    Key = "reprojecting"
	KeyGenerating      Key = "generating"
	KeyComplete        Key = "complete"
	KeyResuming        Key = "resuming"
	KeyCheckpointFound Key = "checkpoint_found"
	KeyNoProjects      Key = "no_projects"
	KeyDataDEM         Key = "data_dem"
	KeyDataDSM         Key = "data_dsm"
	KeyAllDone         Key = "all_done"
)

var supported = []language.Tag{
	language.English,
	language.Japanese,
	language.SimplifiedChinese,
	language.Spanish,
	language.French,
	language.German,
	language.Portuguese,
	language.Russian,
	language.Italian,
	language.Korean,
	language.TraditionalChinese,
	language.Arabic,
	language.Hindi,
	language.Thai,
	language.Vietnamese,
}

var matcher = language.NewMatcher(supported)

// Catalog resolves message keys for one matched language.
type Catalog struct {
	tag      language.Tag
	messages map[Key]string
}

// Match returns the catalog best matching the preferred BCP 47 tag (for
// example "ja" or "zh-TW"). Unknown or empty preferences fall back to
// English.
func Match(preferred string) Catalog {
	tag := language.English
	if preferred != "" {
		if parsed, err := language.Parse(preferred); err == nil {
			matched, _, _ := matcher.Match(parsed)
			tag = matched
		}
	}
	// Matcher results carry extensions; index against the canonical
	// supported tag instead.
	_, idx, _ := matcher.Match(tag)
	base := supported[idx]
	return Catalog{tag: base, messages: catalogs[base]}
}

// Tag returns the catalog's resolved language.
func (c Catalog) Tag() language.Tag { return c.tag }

// Get returns the message for key, falling back to English for gaps.
func (c Catalog) Get(key Key) string {
	if c.messages != nil {
		if msg, ok := c.messages[key]; ok {
			return msg
		}
	}
	if msg, ok := catalogs[language.English][key]; ok {
		return msg
	}
	return string(key)
}
