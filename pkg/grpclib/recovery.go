package grpclib

import (
	"fmt"
	"runtime/debug"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RecoveryHandlerFunc converts a panic into an internal error
func RecoveryHandlerFunc(p interface{}) error {
	fmt.Println("[PANIC]", p)
	fmt.Println(string(debug.Stack()))
	return status.Errorf(codes.Internal, "panic: %v", p)
}
