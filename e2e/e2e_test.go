//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var monobaseBinary string

// fakeTools stand in for the delegated tools. They only create the files a real run would leave behind.
var fakeTools = map[string]string{
	"uv": `#!/bin/sh
case "$1 $2" in
"venv --python")
	mkdir -p "$4/bin" && touch "$4/bin/python" ;;
"pip compile")
	grep '==' ;;
"pip install")
	mkdir -p "$VIRTUAL_ENV/lib/site-packages" && touch "$VIRTUAL_ENV/lib/site-packages/installed" ;;
"pip freeze")
	echo "torch==2.2.0" ;;
"cache prune"|"cache clean")
	mkdir -p "$UV_CACHE_DIR" ;;
*)
	echo "unexpected uv $*" >&2
	exit 2 ;;
esac
`,
	"rdfind":   "#!/bin/sh\nexit 0\n",
	"ldconfig": "#!/bin/sh\nexit 0\n",
	"pget":     "#!/bin/sh\necho 'pget must not run in e2e' >&2\nexit 1\n",
}

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "monobase-e2e-*")
	if err != nil {
		panic(err)
	}

	monobaseBinary = filepath.Join(tmpDir, "monobase")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", monobaseBinary, "./cmd/monobase")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build monobase binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")

	toolDir := filepath.Join(env.WorkDir, ".tools")
	if err := os.MkdirAll(toolDir, 0o750); err != nil {
		return err
	}
	for name, script := range fakeTools {
		//nolint:gosec // Test tools must be executable
		if err := os.WriteFile(filepath.Join(toolDir, name), []byte(script), 0o755); err != nil {
			return err
		}
	}

	binDir := filepath.Dir(monobaseBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", toolDir+string(os.PathListSeparator)+binDir+string(os.PathListSeparator)+currentPath)

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)

	return nil
}
