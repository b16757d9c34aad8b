package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"go.uber.org/zap"
)

// Environment variables passing the global flags to extensions.
const (
	EnvConfigFile = "FPL_CONFIG"
	EnvOutputDir  = "FPL_OUTPUT_DIR"
	EnvVerbose    = "FPL_VERBOSE"
)

// RunExtension attempts to find and execute an external fpl-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "fpl-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		zap.L().Debug("extension not found", zap.String("command", externalCmdName), zap.Error(err))
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr

	dir := *outputDir
	if dir == "" {
		dir = cfg.Chart.OutputDir
	}
	cmd.Env = append(os.Environ(),
		EnvConfigFile+"="+*configPath,
		EnvOutputDir+"="+dir,
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
