package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var (
	lock      sync.Mutex
	callCount = make(map[string]int)
)

// ValidateSnapshot compares the JSON encoding of obj with testdata/<test name>-<n>.json
// n counts the calls made from the same test. A missing snapshot file is created
// from obj, so the first run of a new test always passes.
func ValidateSnapshot(t *testing.T, obj interface{}, msgAndArgs ...interface{}) {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())

	lock.Lock()
	call := callCount[name]
	callCount[name] = call + 1
	lock.Unlock()

	filename := filepath.Join("testdata", fmt.Sprintf("%s-%d.json", name, call))

	expects, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			if err := create(filename, obj); err != nil {
				t.Fatal(err)
			}
			return
		}

		t.Fatal(err)
	}

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatal(err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}

func create(filename string, obj interface{}) error {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(obj)
}
