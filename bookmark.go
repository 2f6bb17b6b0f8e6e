// Package bookmark provides a web page extraction core for a small
// bookmark manager. It fetches a fully rendered page with a headless
// browser, classifies it as a single article or a listing page, and
// extracts either the article's clean content or a deduplicated set of
// outgoing links.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, sqlite/).
package bookmark
