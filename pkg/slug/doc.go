// Package slug generates URL-safe slugs from arbitrary strings.
//
// Text is folded to ASCII through the transliteration table in
// [github.com/dmitrymomot/textkit/pkg/translit], so diacritics and
// non-Latin scripts become readable ASCII instead of disappearing:
//
//	slug.Make("Hello, World!")       // "hello-world"
//	slug.Make("Café & Restaurant")   // "cafe-restaurant"
//	slug.Make("Größe")               // "groesse"
//	slug.Make("Жизнь")               // "zhizn"
//
// Characters with no fold (emoji, CJK) are dropped; symbols outside
// letters and digits are deleted, and "-", "_" and whitespace collapse
// into single separators. Input that folds to nothing yields an empty
// slug, callers must handle that.
//
// # Configuration Options
//
// Separator sets the string used between words:
//
//	slug.Make("Product Name", slug.Separator("_"))
//	// "product_name"
//
// Lowercase(false) preserves the original case:
//
//	slug.Make("Product Name", slug.Lowercase(false))
//	// "Product-Name"
//
// MaxLength limits the slug length (rune-based); MinLength pads short
// slugs with a random suffix:
//
//	slug.Make("Very long title here", slug.MaxLength(15))
//	// "very-long-title"
//
//	slug.Make("hi", slug.MinLength(9))
//	// "hi-a3f7k2" (padded with a 6-char suffix)
//
// StripChars removes characters before processing and CustomReplace
// substitutes strings first:
//
//	slug.Make("Price: $100", slug.StripChars("$:"))
//	// "price-100"
//
//	slug.Make("Fish & Chips", slug.CustomReplace(map[string]string{"&": "and"}))
//	// "fish-and-chips"
//
// WithSuffix appends a random alphanumeric suffix for uniqueness, and
// ReservedSlugs forces a suffix onto slugs that must stay unavailable
// (case-insensitive):
//
//	slug.Make("Article Title", slug.WithSuffix(8))
//	// "article-title-a3f7k2m9"
//
//	slug.Make("admin", slug.ReservedSlugs("admin", "api"))
//	// "admin-k7x2m4"
//
// When MaxLength competes with a suffix, the base is truncated so the
// suffix survives whole.
//
// All functions are safe for concurrent use.
package slug
