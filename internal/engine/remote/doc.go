// Package remote adapts a decoder daemon reachable over HTTP to the engine
// contract.
//
// The daemon speaks JSON: POST {base}/translate with the source sentence and
// optional suggestions, and GET {base}/info for the thread count the daemon
// is sized for. Transport errors and daemon-reported errors both surface as
// engine faults scoped to the single request.
package remote
