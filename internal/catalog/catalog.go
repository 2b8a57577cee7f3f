package catalog

import (
	"strings"

	"vue-i18n-extractor/internal/textutil"

	"github.com/rs/zerolog/log"
)

// KeyPrefix namespaces generated translation keys.
const KeyPrefix = "i18n_"

// keyHexLen is the number of hex digest characters kept in a key.
const keyHexLen = 8

// KeyFor derives the translation key for a text span. The key is a pure
// function of the trimmed text: same text always yields the same key,
// within a run and across runs.
func KeyFor(text string) string {
	return KeyPrefix + textutil.Hash(strings.TrimSpace(text))[:keyHexLen]
}

// Catalog accumulates translation entries for one run, or for one file
// when used as a per-file accumulator to be merged later. Source holds the
// zh table, Target the en table; both are seeded with the original text.
type Catalog struct {
	Source map[string]string
	Target map[string]string
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		Source: make(map[string]string),
		Target: make(map[string]string),
	}
}

// Record registers a text span and returns its key. Insertion is
// insert-if-absent: the first text recorded under a key wins. Recording a
// different text under an existing key is a truncated-hash collision and
// is logged loudly instead of overwriting.
func (c *Catalog) Record(text string) string {
	trimmed := strings.TrimSpace(text)
	key := KeyFor(trimmed)

	if existing, ok := c.Source[key]; ok {
		if existing != trimmed {
			log.Error().
				Str("key", key).
				Str("existing", textutil.Truncate(existing, 30)).
				Str("incoming", textutil.Truncate(trimmed, 30)).
				Msg("Translation key collision, keeping first text")
		}
		return key
	}

	c.Source[key] = trimmed
	c.Target[key] = trimmed
	return key
}

// Merge folds another catalog into this one with the same
// insert-if-absent semantics as Record. Merging per-file catalogs in walk
// order keeps the batch tables deterministic regardless of how the files
// were processed.
func (c *Catalog) Merge(other *Catalog) {
	if other == nil {
		return
	}
	for key, text := range other.Source {
		if existing, ok := c.Source[key]; ok {
			if existing != text {
				log.Error().
					Str("key", key).
					Str("existing", textutil.Truncate(existing, 30)).
					Str("incoming", textutil.Truncate(text, 30)).
					Msg("Translation key collision during merge, keeping first text")
			}
			continue
		}
		c.Source[key] = text
		c.Target[key] = other.Target[key]
	}
}

// Len returns the number of accumulated entries.
func (c *Catalog) Len() int {
	return len(c.Source)
}
