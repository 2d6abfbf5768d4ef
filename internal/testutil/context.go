package testutil

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// TestAppKey injects an *app.App into a command context so CLI commands
// use it instead of opening the configured store
const TestAppKey ContextKey = "testApp"
