// Package http implements the JSON-over-HTTP transport of the service.
//
// Every /api route answers with the envelope {success, data?, error?}.
// Request tracing, access logging, response compression and caller
// authentication are handled here before requests reach the service layer;
// service errors are turned into statuses by errors_mapper.go.
package http
