// Package lambda adapts an AWS Lambda decoder function to the engine
// contract.
//
// Each Translate call invokes the function synchronously with a JSON payload
// carrying the source sentence and suggestions; the function answers with a
// translation or a structured error. Lambda concurrency is server-side, so
// the thread count here only sizes the local worker pool.
package lambda
