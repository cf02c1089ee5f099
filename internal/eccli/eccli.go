// Package eccli wraps the external ec-cli tool that downloads puzzle
// content and submits answers. The harness itself never talks to the
// network; ec-cli is a collaborator that populates the data tree before
// the core runs.
package eccli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/agbru/questbench/internal/quest"
)

// ErrCommandNotFound signals that the ec-cli binary is not callable.
var ErrCommandNotFound = errors.New("ec-cli not found, install it from https://github.com/finnhartshorn/ec-cli")

// ExitStatusError reports a non-zero ec-cli exit status.
type ExitStatusError struct {
	Args []string
	Err  error
}

// Error returns a formatted message naming the failed invocation.
func (e ExitStatusError) Error() string {
	return fmt.Sprintf("ec-cli exited with a non-zero status (args: %v): %v", e.Args, e.Err)
}

// Unwrap returns the underlying exec error.
func (e ExitStatusError) Unwrap() error { return e.Err }

// Client invokes the ec-cli binary.
type Client struct {
	// Binary is the executable name, overridable for tests.
	Binary string
	// Year is the optional event year; zero means the tool's default.
	Year int
	// Stdout and Stderr receive the tool's own output. Nil falls back
	// to the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a Client for the ec-cli binary on PATH, picking up the
// optional EC_YEAR environment variable.
func New() *Client {
	year := 0
	if v := os.Getenv("EC_YEAR"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			year = parsed
		}
	}
	return &Client{Binary: "ec-cli", Year: year}
}

// Check verifies that the binary is present and callable.
func (c *Client) Check(ctx context.Context) error {
	if err := exec.CommandContext(ctx, c.Binary, "--version").Run(); err != nil {
		return ErrCommandNotFound
	}
	return nil
}

// Read opens the puzzle description for the given day.
func (c *Client) Read(ctx context.Context, day quest.Day) error {
	return c.run(ctx, c.withYear([]string{"read", "-d", day.String()}))
}

// Download fetches input, sample, sample answer and description for all
// three parts of the day into the data tree rooted at dataDir.
func (c *Client) Download(ctx context.Context, day quest.Day, dataDir string) error {
	for _, part := range quest.Parts() {
		if err := c.run(ctx, c.fetchArgs(day, part, dataDir)); err != nil {
			return err
		}
	}
	return nil
}

// Submit sends the computed answer for one cell.
func (c *Client) Submit(ctx context.Context, day quest.Day, part quest.Part, answer string) error {
	return c.run(ctx, c.withYear([]string{"submit", "-d", day.String(), "-p", part.String(), answer}))
}

// fetchArgs builds the argument vector of one per-part fetch call.
func (c *Client) fetchArgs(day quest.Day, part quest.Part, dataDir string) []string {
	file := fmt.Sprintf("%s-%s.txt", day, part)
	return c.withYear([]string{
		"fetch",
		"-d", day.String(),
		"-p", part.String(),
		"--input-path", filepath.Join(dataDir, "inputs", file),
		"--sample-path", filepath.Join(dataDir, "samples", file),
		"--sample-answer-path", filepath.Join(dataDir, "answers", file),
		"--description-path", filepath.Join(dataDir, "descriptions", fmt.Sprintf("%s-%s.html", day, part)),
	})
}

func (c *Client) withYear(args []string) []string {
	if c.Year > 0 {
		args = append(args, "-y", strconv.Itoa(c.Year))
	}
	return args
}

func (c *Client) run(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, c.Binary, args...)
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return ExitStatusError{Args: args, Err: err}
		}
		return ErrCommandNotFound
	}
	return nil
}
