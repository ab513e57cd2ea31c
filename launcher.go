package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

type Launcher struct {
	Root     string
	Entry    EntryPoint
	Variants []Variant
}

type RunResult struct {
	Variant  Variant
	ExitCode int
	Seconds  float64
	Started  time.Time
}

// ResolveRoot computes the working root of the launcher: the parent of the
// directory containing the launcher executable, unless an explicit override
// is given.
func ResolveRoot(override string) (string, error) {
	if override != "" {
		return filepath.Abs(override)
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("unable to locate launcher executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("unable to resolve launcher executable path: %w", err)
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}

// Run changes the working directory to the root and executes every enabled
// variant in order, stopping at the first failure. It returns the run
// records produced so far and the exit code the launcher must terminate
// with. A non-nil error means the environment is broken and nothing ran.
func (l *Launcher) Run() ([]RunResult, int, error) {
	if err := os.Chdir(l.Root); err != nil {
		return nil, 0, fmt.Errorf("failed to change directory to %v: %w", l.Root, err)
	}
	results := make([]RunResult, 0)
	for _, variant := range l.Variants {
		if !variant.Enabled {
			Logger.Infof("skip disabled variant %v", variant.Name)
			continue
		}
		args := l.Entry.RunCmd(variant.FilePath)
		Logger.Infof("running variant %v cmd %v", variant.Name, args)

		start := time.Now()
		code, err := runCmd(args)
		elapsed := time.Since(start)

		results = append(results, RunResult{
			Variant:  variant,
			ExitCode: code,
			Seconds:  elapsed.Seconds(),
			Started:  start,
		})
		if err != nil {
			Logger.Errorf("failed to start variant %v: %v", variant.Name, err)
		}
		if code != 0 {
			Logger.Errorf("variant %v failed with exit code %v after %v", variant.Name, code, elapsed)
			return results, code, nil
		}
		Logger.Infof("variant %v finished in %v", variant.Name, elapsed)
	}
	return results, 0, nil
}

// runCmd waits for the command synchronously, forwarding its output streams.
// The returned code is the child's exit code when the OS reports one and 1
// otherwise (exec failure, signal kill).
func runCmd(args []string) (int, error) {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code > 0 {
			return code, nil
		}
		return 1, nil
	}
	return 1, err
}
