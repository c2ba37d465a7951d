package notifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-ps"
)

type fakeProcess struct {
	pid  int
	exec string
}

func (p *fakeProcess) Pid() int           { return p.pid }
func (p *fakeProcess) PPid() int          { return 0 }
func (p *fakeProcess) Executable() string { return p.exec }

func writeLockfile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pleno-notifier.lock")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindAndValidateTrayProcess(t *testing.T) {
	origFind := findProcessFunc
	defer func() { findProcessFunc = origFind }()

	tests := []struct {
		name     string
		content  string
		process  *fakeProcess
		wantErr  bool
		wantPort string
	}{
		{
			name:     "valid lockfile and process",
			content:  "4567|1234|s3cret",
			process:  &fakeProcess{pid: 1234, exec: "pleno-tray"},
			wantPort: "4567",
		},
		{
			name:    "missing lockfile",
			content: "",
			wantErr: true,
		},
		{
			name:    "malformed lockfile",
			content: "4567|1234",
			wantErr: true,
		},
		{
			name:    "port out of range",
			content: "70000|1234|s3cret",
			wantErr: true,
		},
		{
			name:    "non-numeric pid",
			content: "4567|abc|s3cret",
			wantErr: true,
		},
		{
			name:    "empty secret",
			content: "4567|1234| ",
			wantErr: true,
		},
		{
			name:    "process not running",
			content: "4567|1234|s3cret",
			process: nil,
			wantErr: true,
		},
		{
			name:    "wrong executable",
			content: "4567|1234|s3cret",
			process: &fakeProcess{pid: 1234, exec: "some-other-app"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var path string
			if tt.name == "missing lockfile" {
				path = filepath.Join(t.TempDir(), "absent.lock")
			} else {
				path = writeLockfile(t, tt.content)
			}

			findProcessFunc = func(pid int) (ps.Process, error) {
				if tt.process == nil {
					return nil, nil
				}
				return tt.process, nil
			}

			port, secret, err := findAndValidateTrayProcess(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				if port != tt.wantPort {
					t.Errorf("port = %s, want %s", port, tt.wantPort)
				}
				if secret != "s3cret" {
					t.Errorf("secret = %s, want s3cret", secret)
				}
			}
		})
	}
}
