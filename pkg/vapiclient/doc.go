// Package vapiclient constructs concrete vapi.Client instances.
//
// The package is intentionally small: it normalizes the configured endpoint
// and delegates to the internal client implementation. It exists so that
// consumers depend on the vapi interfaces rather than on internal packages.
//
//	cli, err := vapiclient.New(&vapi.Config{APIKey: key})
//
// Construct one client per credential. The client's data-plane endpoint
// cache lives and dies with it.
package vapiclient
