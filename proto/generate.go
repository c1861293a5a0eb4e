// Package runnerv1 holds the wire definitions for gRPC runner agents. The
// generated code is not committed; run go generate before building.
package runnerv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative runner.proto
