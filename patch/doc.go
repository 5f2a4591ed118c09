// Package patch applies RFC 6902 JSON Patch documents to nodes using
// github.com/evanphx/json-patch.
package patch
