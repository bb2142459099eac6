// Package identify derives stable article identifiers from links.
package identify

import (
	"crypto/sha256"
	"fmt"
)

// IDLength is the fixed length of every article identifier.
const IDLength = 12

// ArticleID returns a short, stable identifier for an article link:
// the first 6 bytes of the SHA-256 digest, hex encoded. The same link
// always yields the same identifier, which is what deduplication and
// the knowledge-base merge key on.
func ArticleID(link string) string {
	hash := sha256.Sum256([]byte(link))
	return fmt.Sprintf("%x", hash[:IDLength/2])
}
