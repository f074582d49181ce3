package platform

// Package platform contains OS integration glue: filesystem helpers, the
// per-user application data directory, and upload file validation.
