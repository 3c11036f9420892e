package rpcserver

// schema is the in-memory .proto source for the Kernel service, parsed at
// startup with protoparse rather than compiled ahead of time with protoc.
const schema = `
syntax = "proto3";

package sinepia.v1;

message SubmitRequest {
  string session_token = 1;
  string kind = 2;   // "axiom" | "theorem" | "proof"
  string name = 3;
  string expr = 4;   // the statement's type expression, or its proof term
}

message SubmitResponse {
  bool ok = 1;
  string message = 2;
  string inferred_type = 3;
  string session_token = 4; // echoed back; set on first contact
}

service Kernel {
  rpc Submit(SubmitRequest) returns (SubmitResponse);
}
`

const (
	protoFileName = "sinepia.proto"
	serviceName   = "sinepia.v1.Kernel"
	methodName    = "Submit"
)
