package archive

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// Entry declares an archive format: the constructor for its save direction
// and the constructor for the one input archive that can read it back. Both
// constructors borrow the stream handle; they never take ownership of it.
type Entry struct {
	NewOutput func(stream io.Writer) Output
	NewInput  func(stream io.Reader) Input
}

var (
	registryMutex sync.RWMutex
	registry      = make(map[string]Entry)
)

// Register makes an archive format available under the given name, declaring
// the output/input pairing explicitly. It is intended to be called from the
// init function of the package implementing the format. Register panics if
// the name is already taken or the entry is incomplete.
func Register(format string, entry Entry) {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	if entry.NewOutput == nil || entry.NewInput == nil {
		panic(fmt.Sprintf("archive: Register %q with incomplete entry", format))
	}
	if _, exists := registry[format]; exists {
		panic(fmt.Sprintf("archive: Register called twice for format %q", format))
	}

	registry[format] = entry
}

// Lookup returns the registered entry for the given format name.
func Lookup(format string) (Entry, error) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	entry, exists := registry[format]
	if !exists {
		return Entry{}, errors.Errorf("unknown archive format %q (forgotten import?)", format)
	}

	return entry, nil
}

// Formats returns the names of all registered archive formats in sorted
// order.
func Formats() []string {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	formats := make([]string, 0, len(registry))
	for format := range registry {
		formats = append(formats, format)
	}
	sort.Strings(formats)

	return formats
}
