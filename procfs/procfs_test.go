package procfs

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/pattyshack/gt/testing/expect"
	"github.com/pattyshack/gt/testing/suite"
)

type ProcfsSuite struct{}

func TestProcfs(t *testing.T) {
	suite.RunTests(t, &ProcfsSuite{})
}

func (ProcfsSuite) TestExecutablePath(t *testing.T) {
	expect.Equal(t, "/proc/42/exe", New().ExecutablePath(42))
	expect.Equal(t, "/tmp/fake/7/exe", FileSystem{Root: "/tmp/fake"}.ExecutablePath(7))
}

func (ProcfsSuite) TestSelf(t *testing.T) {
	status, err := New().GetProcessStatus(os.Getpid())
	expect.Nil(t, err)
	expect.Equal(t, os.Getpid(), status.Pid)
	expect.Equal(t, os.Getppid(), status.Ppid)
	expect.Equal(t, Running, status.State)
}

func (ProcfsSuite) TestFakeRoot(t *testing.T) {
	root := t.TempDir()
	procDir := filepath.Join(root, strconv.Itoa(1234))
	err := os.MkdirAll(procDir, 0700)
	expect.Nil(t, err)

	err = os.WriteFile(
		filepath.Join(procDir, "stat"),
		[]byte("1234 (my (odd) prog) t 1 1234 1234 0 -1 4194560\n"),
		0600)
	expect.Nil(t, err)

	status, err := FileSystem{Root: root}.GetProcessStatus(1234)
	expect.Nil(t, err)
	expect.Equal(t, 1234, status.Pid)
	expect.Equal(t, "my (odd) prog", status.Comm)
	expect.Equal(t, TracingStop, status.State)
	expect.Equal(t, 1, status.Ppid)
}

func (ProcfsSuite) TestMissingProcess(t *testing.T) {
	_, err := FileSystem{Root: t.TempDir()}.GetProcessStatus(99)
	expect.Error(t, err, "failed to read process 99 status")
}

func (ProcfsSuite) TestMalformed(t *testing.T) {
	_, err := parseStat("garbage")
	expect.Error(t, err, "malformed stat content")

	_, err = parseStat("x (comm) S 1")
	expect.Error(t, err, "malformed stat pid")

	_, err = parseStat("12 (comm) S")
	expect.Error(t, err, "malformed stat content")

	status, err := parseStat("12 (comm) W 3 4")
	expect.Nil(t, err)
	expect.Equal(t, UnknownState, status.State)
}
