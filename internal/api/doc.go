package api

// Package api contains the thin HTTP request layer for the backend
// services: the management client (auth, projects, processing runs), the
// audio service client, and the error taxonomy every call resolves to
// (AuthError, NetworkError, TimeoutError, APIError). Calls are synchronous
// and bounded by the configured timeout; background dispatch and
// cancellation live in internal/dispatch.
