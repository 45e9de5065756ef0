// Package http is the host side of the capability bridge transport.
//
// Every allowlisted operation is served as POST /api/bridge/{operation}. The
// router answers anything else, including operations outside the allowlist
// and wrong methods, with an empty 404, so callers cannot tell which names
// exist.
package http
