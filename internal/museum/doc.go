// Package museum is the client for the Metropolitan Museum of Art
// collection API. It searches for objects, fetches their details
// concurrently and maps the untrusted payloads into domain artworks.
//
// Remote failures never reach the views: Curated substitutes placeholder
// artworks and logs a warning instead.
package museum
