package driver

import (
	"context"
	"fmt"
	"strconv"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/client"
)

// executionLabel marks containers started by this driver so Cancel can find
// them without tracking container ids.
const executionLabel = "baton.execution-id"

// Docker drives runners backed by a Docker daemon: each execution becomes a
// container of the image named in the runner's metadata. The container is
// expected to report progress through the callback env vars and exit.
type Docker struct {
	cli client.APIClient
}

// NewDocker creates a driver over an existing daemon client.
func NewDocker(cli client.APIClient) *Docker {
	return &Docker{cli: cli}
}

// NewDockerFromEnv connects to the daemon the usual way (DOCKER_HOST etc.).
func NewDockerFromEnv() (*Docker, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	return &Docker{cli: cli}, nil
}

func (d *Docker) Type() string {
	return "docker"
}

func (d *Docker) Start(ctx context.Context, req Request) error {
	image, _ := req.Runner.Metadata["image"].(string)
	if image == "" {
		return badRequest(fmt.Sprintf("runner %q has no image in metadata", req.Runner.Name), nil)
	}

	cfg := &container.Config{
		Image: image,
		Env: []string{
			"BATON_EXECUTION_ID=" + req.Execution.ID,
			"BATON_TEST_SUITE=" + req.Execution.TestSuite,
			"BATON_ENVIRONMENT=" + req.Execution.Environment,
			"BATON_BRANCH=" + req.Execution.Branch,
			"BATON_COMMIT_SHA=" + req.Execution.CommitSha,
			"BATON_TOTAL_SHARDS=" + strconv.Itoa(req.Execution.TotalShards),
			"BATON_CALLBACK_URL=" + req.CallbackURL,
			"BATON_CALLBACK_TOKEN=" + req.Token,
		},
		Labels: map[string]string{executionLabel: req.Execution.ID},
	}
	host := &container.HostConfig{AutoRemove: true}

	created, err := d.cli.ContainerCreate(ctx, cfg, host, nil, nil, "")
	if err != nil {
		if client.IsErrNotFound(err) {
			return badRequest(fmt.Sprintf("image %q not found", image), err)
		}
		return transient("failed to create container", err)
	}

	if err := d.cli.ContainerStart(ctx, created.ID, container.StartOptions{}); err != nil {
		return transient("failed to start container", err)
	}
	return nil
}

// Cancel stops every container labeled with the execution id. Containers run
// with AutoRemove, so stopping is enough.
func (d *Docker) Cancel(ctx context.Context, req Request) error {
	containers, err := d.cli.ContainerList(ctx, container.ListOptions{
		All: true,
		Filters: filters.NewArgs(
			filters.Arg("label", executionLabel+"="+req.Execution.ID),
		),
	})
	if err != nil {
		return transient("failed to list containers", err)
	}

	for _, c := range containers {
		if err := d.cli.ContainerStop(ctx, c.ID, container.StopOptions{}); err != nil && !client.IsErrNotFound(err) {
			return transient(fmt.Sprintf("failed to stop container %s", c.ID[:12]), err)
		}
	}
	return nil
}
