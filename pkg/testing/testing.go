package testing

import (
	"os"
	"path"
	"runtime"
)

func init() {
	// Tests run with the package dir as cwd; cd to the project root so the
	// logger's logs/ dir and any .env fixtures resolve the same everywhere.
	// Import for side effect:
	//
	//   _ "homedash.xyz/smart-home-service/pkg/testing"

	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..", "..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}
