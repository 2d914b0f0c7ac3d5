package shorten

// Package shorten implements the HTTP client of the remote URL-shortening
// service. It knows the backend contracts (request field, response shape),
// normalizes responses into one canonical short URL and classifies failures
// into validation, transport and service errors.
