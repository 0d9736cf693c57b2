package companies

import "github.com/gosimple/slug"

// DeriveCode turns a display name into the company's stable code: lower-cased,
// punctuation stripped, whitespace collapsed to hyphens. Same name, same code.
func DeriveCode(name string) string {
	return slug.Make(name)
}
