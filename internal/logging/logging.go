package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles is how many debug log files are kept when not configured
const DefaultMaxLogFiles = 1000

const (
	logFilePrefix     = "pickcheck-"
	logFileTimeLayout = "20060102T150405"
)

// Logger is the public logger instance accessible from all packages.
// It discards everything until Initialize enables debug logging.
var Logger = discard()

// RunID identifies this run in the debug log
var RunID = uuid.New().String()

// base is Logger before any run context was attached
var base = Logger

// Initialize sets up the logger based on the debug flag and configuration.
// PICKCHECK_DEBUG, PICKCHECK_DEBUG_FILE and PICKCHECK_MAX_LOG_FILES fill in
// values left at their defaults. It returns the path of the log file, or ""
// when logging is disabled.
func Initialize(debug bool, debugFile string, maxLogFiles int) (string, error) {
	debug, debugFile, maxLogFiles = fromEnv(debug, debugFile, maxLogFiles)

	if !debug && debugFile == "" {
		setBase(discard())
		return "", nil
	}

	path := debugFile
	if path == "" {
		dir, err := logDir()
		if err != nil {
			return "", fmt.Errorf("failed to get log directory: %w", err)
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		if maxLogFiles > 0 {
			// A failed prune still leaves us a place to log
			if err := pruneRunLogs(dir, maxLogFiles-1); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
			}
		}
		path = filepath.Join(dir, runLogName(time.Now(), RunID))
	} else if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	setBase(slog.New(handler).With("run_id", RunID))

	Logger.Info("Debug logging initialized", "log_file", path)
	fmt.Fprintf(os.Stderr, "Debug mode enabled. Logs: %s\n", path)

	return path, nil
}

// WithRun tags every following log line with what the run audits.
// Empty values are left out; calling it again replaces the previous context.
func WithRun(repo, author, branch string) *slog.Logger {
	var attrs []any
	for _, kv := range [][2]string{{"repo", repo}, {"author", author}, {"branch", branch}} {
		if kv[1] != "" {
			attrs = append(attrs, kv[0], kv[1])
		}
	}
	Logger = base.With(attrs...)
	return Logger
}

func setBase(l *slog.Logger) {
	base = l
	Logger = l
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// fromEnv applies the environment overrides for scripted runs
func fromEnv(debug bool, debugFile string, maxLogFiles int) (bool, string, int) {
	if os.Getenv("PICKCHECK_DEBUG") == "1" {
		debug = true
	}
	if env := os.Getenv("PICKCHECK_DEBUG_FILE"); env != "" && debugFile == "" {
		debugFile = env
	}
	if env := os.Getenv("PICKCHECK_MAX_LOG_FILES"); env != "" && maxLogFiles == DefaultMaxLogFiles {
		if n, err := strconv.Atoi(env); err == nil {
			maxLogFiles = n
		}
	}
	return debug, debugFile, maxLogFiles
}

// runLogName names a run's log so that names sort in start order
func runLogName(start time.Time, runID string) string {
	return logFilePrefix + start.UTC().Format(logFileTimeLayout) + "-" + runID + ".log"
}

// pruneRunLogs deletes the oldest run logs in dir until at most keep remain.
// Files that do not look like run logs are left alone.
func pruneRunLogs(dir string, keep int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, logFilePrefix) || filepath.Ext(name) != ".log" {
			continue
		}
		names = append(names, name)
	}
	if len(names) <= keep {
		return nil
	}

	slices.Sort(names)
	for _, name := range names[:len(names)-max(keep, 0)] {
		path := filepath.Join(dir, name)
		if err := os.Remove(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", path, err)
		}
	}
	return nil
}

// logDir returns the OS-specific log directory
func logDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", "pickcheck"), nil
	case "linux":
		state := os.Getenv("XDG_STATE_HOME")
		if state == "" {
			state = filepath.Join(home, ".local", "state")
		}
		return filepath.Join(state, "pickcheck"), nil
	case "windows":
		local := os.Getenv("LOCALAPPDATA")
		if local == "" {
			local = filepath.Join(home, "AppData", "Local")
		}
		return filepath.Join(local, "pickcheck", "logs"), nil
	default:
		return filepath.Join(home, ".pickcheck", "logs"), nil
	}
}
