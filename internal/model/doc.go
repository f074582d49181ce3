package model

// Package model defines domain data structures shared across the app: user,
// project and processing-run records decoded from backend responses, page
// wrappers for list endpoints, and status enums. Structures are designed for
// direct rendering in the UI and carry no behavior beyond display helpers.
