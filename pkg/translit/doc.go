// Package translit folds Unicode text to a plain-ASCII approximation.
//
// The fold is driven by a curated transliteration table mapping Unicode
// characters to short ASCII sequences (é → e, ä → ae, ß → ss, ж → zh,
// © → (c)). Characters the table does not know are stripped of combining
// marks where possible; anything still outside printable ASCII is dropped.
// Coverage is a best-effort subset, not full Unicode transliteration.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/textkit/pkg/translit"
//
//	translit.ToASCII("Café résumé")   // "Cafe resume"
//	translit.ToASCII("Größe")         // "Groesse"
//	translit.ToASCII("Война и мир")   // "Voyna i mir"
//	translit.ToASCII("北京 2024")      // " 2024"
//
// Fold is the milder variant: it removes combining diacritics but keeps
// every script, so search indexes can normalize without losing non-Latin
// text:
//
//	translit.Fold("naïve café")       // "naive cafe"
//	translit.Fold("Łódź")             // "Łodz" (Ł has no decomposition)
//
// The table is compiled once on first use and all functions are safe for
// concurrent use.
package translit
