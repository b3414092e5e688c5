package gdal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, onStdout func(string)) error
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client wraps GDAL CLI interactions.
type Client struct {
	warpBinary      string
	translateBinary string
	infoBinary      string
	timeout         time.Duration
	exec            Executor
}

// New constructs a GDAL client from the three tool binaries.
func New(warpBinary, translateBinary, infoBinary string, timeoutSeconds int, opts ...Option) (*Client, error) {
	warpBinary = strings.TrimSpace(warpBinary)
	translateBinary = strings.TrimSpace(translateBinary)
	infoBinary = strings.TrimSpace(infoBinary)
	if warpBinary == "" || translateBinary == "" || infoBinary == "" {
		return nil, errors.New("gdal binaries required")
	}
	client := &Client{
		warpBinary:      warpBinary,
		translateBinary: translateBinary,
		infoBinary:      infoBinary,
		timeout:         time.Duration(timeoutSeconds) * time.Second,
		exec:            commandExecutor{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

func (c *Client) runCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout > 0 {
		return context.WithTimeout(ctx, c.timeout)
	}
	return context.WithCancel(ctx)
}

// Warp reprojects src into dst using nearest-neighbour resampling.
// Elevation values must survive untouched, so no interpolating resampler is
// ever used.
func (c *Client) Warp(ctx context.Context, src, dst, targetCRS string) error {
	if strings.TrimSpace(targetCRS) == "" {
		return errors.New("target CRS required")
	}
	runCtx, cancel := c.runCtx(ctx)
	defer cancel()

	args := []string{"-t_srs", targetCRS, "-r", "near", "-overwrite", src, dst}
	if err := c.exec.Run(runCtx, c.warpBinary, args, nil); err != nil {
		return fmt.Errorf("gdalwarp %s: %w", src, err)
	}
	if _, err := os.Stat(dst); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("gdalwarp produced no output for %s", src)
	}
	return nil
}

// StreamXYZ converts src to XYZ text and feeds every non-empty line to
// onLine as it arrives. Lines are "east north value" triples with
// cell-center coordinates.
func (c *Client) StreamXYZ(ctx context.Context, src string, onLine func(string)) error {
	if onLine == nil {
		return errors.New("line callback required")
	}
	runCtx, cancel := c.runCtx(ctx)
	defer cancel()

	args := []string{"-of", "XYZ", src, "/vsistdout/"}
	err := c.exec.Run(runCtx, c.translateBinary, args, func(line string) {
		if strings.TrimSpace(line) == "" {
			return
		}
		onLine(line)
	})
	if err != nil {
		return fmt.Errorf("gdal_translate %s: %w", src, err)
	}
	return nil
}

// Info returns the gdalinfo report for src.
func (c *Client) Info(ctx context.Context, src string) (string, error) {
	runCtx, cancel := c.runCtx(ctx)
	defer cancel()

	var lines []string
	err := c.exec.Run(runCtx, c.infoBinary, []string{src}, func(line string) {
		lines = append(lines, line)
	})
	if err != nil {
		return "", fmt.Errorf("gdalinfo %s: %w", src, err)
	}
	return strings.Join(lines, "\n"), nil
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string, onStdout func(string)) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start command: %w", err)
	}

	var wg sync.WaitGroup
	var scanErr error
	var once sync.Once

	scan := func(r io.Reader, forward func(string)) {
		defer wg.Done()
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			forward(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			once.Do(func() {
				scanErr = err
			})
		}
	}

	forwardStdout := func(line string) {
		if onStdout != nil {
			onStdout(line)
		}
	}
	forwardStderr := func(line string) {
		if onStdout == nil {
			fmt.Fprintln(os.Stderr, line)
		}
	}

	wg.Add(2)
	go scan(stdout, forwardStdout)
	go scan(stderr, forwardStderr)

	wg.Wait()
	if scanErr != nil {
		_ = cmd.Process.Kill()
		return fmt.Errorf("scan output: %w", scanErr)
	}

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("wait command: %w", err)
	}
	return nil
}
