// Package api serves the generated hosts file over HTTP and lets clients on
// the local network trigger and inspect builds.
//
// # Endpoints
//
//	GET  /hosts.txt       the current output file (text/plain)
//	GET  /api/v1/status   version and the outcome of the last build
//	POST /api/v1/build    run a build now
//	GET  /api/v1/config   the effective configuration
//	GET  /api/v1/health   configuration and output checks
//
// # Response Format
//
// JSON responses wrap their payload in a "data" field:
//
//	{
//	  "data": { /* response payload */ }
//	}
//
// Errors use the following format:
//
//	{
//	  "error": {
//	    "code": "not_found",
//	    "message": "Human-readable error message"
//	  }
//	}
//
// Only one build runs at a time; a build request that arrives while another
// build is running is answered with 409 Conflict.
package api
