// Package bark is a client for the Bark push notification service
// (https://github.com/Finb/Bark), which delivers custom notifications
// to iOS devices.
//
// A Client is immutable after construction and safe for concurrent use.
// Every send is a single synchronous HTTP call: Send builds a
// path-encoded GET request, SendPost ships the same notification as a
// JSON POST body. Both share one response interpreter, so status and
// code handling cannot drift between the two.
//
// Failures are a closed set: *ValidationError before any network
// activity, *NetworkError for transport failures, *ServerError when the
// Bark server rejects the request. Dispatch with errors.Is / errors.As.
package bark
