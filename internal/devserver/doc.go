// Package devserver is a local stand-in for the URL-shortening service.
// It speaks both backend contracts the client supports, keeps links in
// memory only and does not redirect. It backs the "local" deployment and the
// end-to-end tests of the client.
package devserver
