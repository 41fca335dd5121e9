// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Isolation: adds the cross-origin isolation and cache-busting headers to
//     every response, whatever its status.
//   - RayID: generates a unique Request ID (RayID) for every incoming request and
//     stores it in the context for log correlation. It does not touch the response.
package middleware
