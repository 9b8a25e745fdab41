package procfs

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	DefaultRoot = "/proc"
)

type ProcessState string

const (
	Running        = ProcessState("running")
	Sleeping       = ProcessState("sleeping")
	WaitingForDisk = ProcessState("waiting for disk")
	Zombie         = ProcessState("zombie")
	Stopped        = ProcessState("stopped")
	TracingStop    = ProcessState("tracing stop")
	Dead           = ProcessState("dead")
	Idle           = ProcessState("idle")
	UnknownState   = ProcessState("unknown")
)

var processStates = map[string]ProcessState{
	"R": Running,
	"S": Sleeping,
	"D": WaitingForDisk,
	"Z": Zombie,
	"T": Stopped,
	"t": TracingStop,
	"X": Dead,
	"I": Idle,
}

type ProcessStatus struct {
	Pid   int
	Comm  string
	State ProcessState
	Ppid  int

	// NOTE: See man page for the full list of (52) fields.
}

// FileSystem reads process information from a procfs mount.
type FileSystem struct {
	Root string
}

func New() FileSystem {
	return FileSystem{Root: DefaultRoot}
}

func (fs FileSystem) path(pid int, name string) string {
	return filepath.Join(fs.Root, strconv.Itoa(pid), name)
}

// ExecutablePath returns the path of the process' executable symlink.
// Opening the symlink yields the executable's content even if the file was
// deleted or replaced on disk.
func (fs FileSystem) ExecutablePath(pid int) string {
	return fs.path(pid, "exe")
}

func (fs FileSystem) GetProcessStatus(pid int) (ProcessStatus, error) {
	statPath := fs.path(pid, "stat")
	contentBytes, err := os.ReadFile(statPath)
	if err != nil {
		return ProcessStatus{}, fmt.Errorf(
			"failed to read process %d status: %w",
			pid,
			err)
	}

	return parseStat(string(contentBytes))
}

// The comm field may contain spaces and parentheses, hence the first "(" and
// the last ")" delimit it.
func parseStat(content string) (ProcessStatus, error) {
	commStart := strings.Index(content, "(")
	commEnd := strings.LastIndex(content, ")")
	if commStart == -1 || commEnd < commStart {
		return ProcessStatus{}, fmt.Errorf("malformed stat content: %q", content)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(content[:commStart]))
	if err != nil {
		return ProcessStatus{}, fmt.Errorf("malformed stat pid: %w", err)
	}

	chunks := strings.Fields(content[commEnd+1:])
	if len(chunks) < 2 {
		return ProcessStatus{}, fmt.Errorf("malformed stat content: %q", content)
	}

	state, ok := processStates[chunks[0]]
	if !ok {
		state = UnknownState
	}

	ppid, err := strconv.Atoi(chunks[1])
	if err != nil {
		return ProcessStatus{}, fmt.Errorf("malformed stat ppid: %w", err)
	}

	return ProcessStatus{
		Pid:   pid,
		Comm:  content[commStart+1 : commEnd],
		State: state,
		Ppid:  ppid,
	}, nil
}
