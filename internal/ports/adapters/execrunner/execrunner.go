// Package execrunner is the os/exec implementation of ports.Runner.
package execrunner

import (
	"context"
	"os/exec"
)

type Runner struct{}

func New() Runner { return Runner{} }

func (Runner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}
