package driver

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	runnerv1 "github.com/baton-ci/baton/proto"
)

// GRPC drives runner agents speaking the RunnerService protocol. Connections
// are created lazily per endpoint and reused; grpc.NewClient does not dial
// until the first call.
type GRPC struct {
	mu    sync.Mutex
	conns map[string]*grpc.ClientConn
}

// NewGRPC creates the driver with an empty connection cache.
func NewGRPC() *GRPC {
	return &GRPC{conns: make(map[string]*grpc.ClientConn)}
}

func (g *GRPC) Type() string {
	return "grpc-agent"
}

func (g *GRPC) client(endpoint string) (runnerv1.RunnerServiceClient, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	conn, ok := g.conns[endpoint]
	if !ok {
		var err error
		conn, err = grpc.NewClient(endpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, badRequest(fmt.Sprintf("invalid agent endpoint %q", endpoint), err)
		}
		g.conns[endpoint] = conn
	}
	return runnerv1.NewRunnerServiceClient(conn), nil
}

func (g *GRPC) Start(ctx context.Context, req Request) error {
	client, err := g.client(req.Runner.EndpointURL)
	if err != nil {
		return err
	}

	metadata := make(map[string]string, len(req.Execution.Metadata))
	for k, v := range req.Execution.Metadata {
		metadata[k] = fmt.Sprint(v)
	}

	_, err = client.StartExecution(ctx, &runnerv1.StartExecutionRequest{
		ExecutionId:   req.Execution.ID,
		TestSuite:     req.Execution.TestSuite,
		Environment:   req.Execution.Environment,
		Branch:        req.Execution.Branch,
		CommitSha:     req.Execution.CommitSha,
		TotalShards:   int32(req.Execution.TotalShards),
		Metadata:      metadata,
		CallbackUrl:   req.CallbackURL,
		CallbackToken: req.Token,
	})
	return classifyGRPC(err, "StartExecution")
}

func (g *GRPC) Cancel(ctx context.Context, req Request) error {
	client, err := g.client(req.Runner.EndpointURL)
	if err != nil {
		return err
	}
	_, err = client.CancelExecution(ctx, &runnerv1.CancelExecutionRequest{
		ExecutionId: req.Execution.ID,
	})
	return classifyGRPC(err, "CancelExecution")
}

// Close tears down the connection cache.
func (g *GRPC) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for endpoint, conn := range g.conns {
		_ = conn.Close()
		delete(g.conns, endpoint)
	}
	return nil
}

// classifyGRPC maps a status code onto the retry policy.
func classifyGRPC(err error, rpc string) error {
	if err == nil {
		return nil
	}
	switch status.Code(err) {
	case codes.InvalidArgument, codes.FailedPrecondition, codes.NotFound:
		return badRequest(fmt.Sprintf("agent rejected %s", rpc), err)
	case codes.Unauthenticated, codes.PermissionDenied:
		return unauthorized(fmt.Sprintf("agent rejected credentials on %s", rpc), err)
	case codes.ResourceExhausted:
		return unavailable(fmt.Sprintf("agent refused %s", rpc), err)
	default:
		return transient(fmt.Sprintf("%s failed", rpc), err)
	}
}
