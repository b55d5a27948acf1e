package http

import (
	"fmt"
	"strings"

	"github.com/alos-no/cloudflare-client/pkg/cloudflare"
)

const upperhex = "0123456789ABCDEF"

// BuildPath substitutes the ordered identifiers into a printf-style path
// template, percent-encoding each one as a single opaque path segment. It
// fails with cloudflare.ErrIdentifierRequired before any network activity
// when an identifier is empty or all-whitespace.
func BuildPath(template string, ids ...string) (string, error) {
	args := make([]interface{}, 0, len(ids))

	for i, id := range ids {
		if strings.TrimSpace(id) == "" {
			return "", fmt.Errorf("%w: path segment %d of %q", cloudflare.ErrIdentifierRequired, i+1, template)
		}

		args = append(args, EscapeSegment(id))
	}

	return fmt.Sprintf(template, args...), nil
}

// EscapeSegment percent-encodes an identifier so it is always read back as
// exactly one path segment. Every byte outside the unreserved set (RFC 3986
// §2.3) is escaped, including '/', '+', and '&', so an encoded identifier
// can never introduce an extra path boundary.
func EscapeSegment(segment string) string {
	var builder strings.Builder

	builder.Grow(len(segment))

	for i := 0; i < len(segment); i++ {
		c := segment[i]

		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9',
			c == '-', c == '.', c == '_', c == '~':
			builder.WriteByte(c)
		default:
			builder.WriteByte('%')
			builder.WriteByte(upperhex[c>>4])
			builder.WriteByte(upperhex[c&15])
		}
	}

	return builder.String()
}
