// Package pipeline implements the text transformations behind logokit.
//
// The stages are pure string-to-string operations; the root logokit package
// owns file I/O and logging:
//   - Embedded image extraction (base64 data URIs in <image> tags)
//   - Relative reference computation for extracted files
//   - SVG cleanup for inlining (XML prolog, doctype, comments, root class)
//   - Page template rendering with the inlined SVG
//   - Local reference discovery in HTML pages
//
// Markup is matched by pattern rather than parsed, except for reference
// discovery, which uses golang.org/x/net/html. Matching by pattern keeps the
// rewritten output byte-identical outside the replaced attribute values.
package pipeline
