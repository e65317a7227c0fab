package brushpaint

import (
	"fmt"
	"strings"
)

// Uri identifies a brush asset, such as a layer's color texture.
// The paint model treats it as an opaque handle with equality and
// hashing; resolving a Uri to actual asset data is the responsibility
// of an external asset-resolution component.
//
// The text form is [ink://<authority>]/<asset-type>:<asset-name>. The
// default authority "ink" is normalized away, so
// "ink://ink/texture:paper" and "/texture:paper" are the same value.
// The zero Uri is the unset identifier and renders as "".
type Uri struct {
	authority string
	assetType string
	assetName string
}

// ParseUri parses an asset URI string.
// Returns an error wrapping ErrInvalidUri if the string is malformed.
func ParseUri(s string) (Uri, error) {
	rest := s
	authority := ""
	if i := strings.Index(rest, "://"); i >= 0 {
		if rest[:i] != "ink" {
			return Uri{}, fmt.Errorf("%w: unsupported scheme %q in %q", ErrInvalidUri, rest[:i], s)
		}
		rest = rest[i+3:]
		j := strings.IndexByte(rest, '/')
		if j < 0 {
			return Uri{}, fmt.Errorf("%w: missing path in %q", ErrInvalidUri, s)
		}
		authority = rest[:j]
		if authority == "" {
			return Uri{}, fmt.Errorf("%w: empty authority in %q", ErrInvalidUri, s)
		}
		rest = rest[j:]
	}
	if !strings.HasPrefix(rest, "/") {
		return Uri{}, fmt.Errorf("%w: path must start with '/' in %q", ErrInvalidUri, s)
	}
	rest = rest[1:]
	assetType, assetName, ok := strings.Cut(rest, ":")
	if !ok || assetType == "" || assetName == "" {
		return Uri{}, fmt.Errorf("%w: path must be <asset-type>:<asset-name> in %q", ErrInvalidUri, s)
	}
	// Default authority is normalized away so that equality and hashing
	// see one canonical representation per asset.
	if authority == "ink" {
		authority = ""
	}
	return Uri{authority: authority, assetType: assetType, assetName: assetName}, nil
}

// IsZero returns true for the unset identifier.
func (u Uri) IsZero() bool {
	return u == Uri{}
}

// Equal reports whether two URIs identify the same asset.
func (u Uri) Equal(v Uri) bool {
	return u == v
}

// Hash returns a stable hash of the URI, consistent with Equal.
func (u Uri) Hash() uint64 {
	h := newHasher()
	h.writeString(u.authority)
	h.writeString(u.assetType)
	h.writeString(u.assetName)
	return h.sum()
}

// String returns the normalized text form. The zero Uri returns "".
func (u Uri) String() string {
	if u.IsZero() {
		return ""
	}
	var b strings.Builder
	if u.authority != "" {
		b.WriteString("ink://")
		b.WriteString(u.authority)
	}
	b.WriteByte('/')
	b.WriteString(u.assetType)
	b.WriteByte(':')
	b.WriteString(u.assetName)
	return b.String()
}
