// Package server is the static file server behind the dev tooling.
//
// It serves the working directory on localhost:8000 and marks every response
// with the cross-origin isolation headers (Cross-Origin-Opener-Policy and
// Cross-Origin-Embedder-Policy) plus a no-store Cache-Control, which the
// WebAssembly build needs for SharedArrayBuffer and for picking up rebuilt
// files on reload.
//
// # Middleware Order
//
//  1. isolation: outermost, so 404 and 500 responses are covered too
//  2. recover: turns a handler panic into a 500
//  3. rayid + request logging
//  4. method guard: 501 for anything but GET and HEAD
//  5. filesystem: files, index.html and directory listings under Root
//
// The error handler applies the isolation headers too, since requests fasthttp
// rejects while parsing go straight to it.
//
// # Lifecycle
//
// Bind and Serve are split so callers can act between the socket being ready
// and the accept loop starting, such as printing the startup line or scheduling
// the browser. Serve never returns under normal operation; the process is
// stopped by a signal and there is no graceful shutdown.
package server
