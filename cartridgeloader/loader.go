// Package cartridgeloader loads BIOS and cartridge images from a local file
// or an HTTP(S) URL, verifying a content hash when one is known.
//
// Grounded on the teacher's cartridgeloader package (Loader/NewLoader/Load
// shape, file-vs-HTTP scheme dispatch, SHA1 hash verification), stripped of
// the teacher's mapper-fingerprinting concern: cartridge bank-switching is
// out of scope, so a Vectrex image is always a flat ROM with no Mapping
// field to infer.
package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/vectrexcore/vectrexcore/curated"
)

// FileExtensions is the list of file extensions commonly used for Vectrex
// images. NewLoader and Load do not check a filename against it.
var FileExtensions = [...]string{".BIN", ".VEC", ".GAM", ".ROM"}

// Loader specifies an image to load, and holds the result once Load has
// been called.
type Loader struct {
	// Filename of the image to load. A bare path is read from the local
	// filesystem; a URL with an "http" or "https" scheme is fetched instead.
	Filename string

	// Hash is the expected SHA1 hash of the loaded data, as a hex string.
	// Empty means unchecked. After a successful Load, Hash holds the hash
	// of the data that was actually loaded.
	Hash string

	// Data is the loaded image, populated by Load.
	Data []byte
}

// NewLoader returns a Loader for filename. It does no I/O; call Load to
// actually read the image.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// ShortName returns filename without its directory or extension, suitable
// for display.
func (cl Loader) ShortName() string {
	short := path.Base(cl.Filename)
	return strings.TrimSuffix(short, path.Ext(cl.Filename))
}

// HasLoaded reports whether Load has populated Data.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load reads the image into Data, verifying Hash if one was set. Repeated
// calls after a successful load are no-ops.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(cl.Filename); err == nil {
		scheme = u.Scheme
	}

	var err error
	switch scheme {
	case "http", "https":
		cl.Data, err = loadHTTP(cl.Filename)
	case "file", "":
		cl.Data, err = loadFile(cl.Filename)
	default:
		return curated.Errorf("cartridgeloader: unsupported URL scheme (%s)", scheme)
	}
	if err != nil {
		return err
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))
	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return curated.Errorf("cartridgeloader: unexpected hash value for %s", cl.Filename)
	}
	cl.Hash = hash

	return nil
}

func loadHTTP(u string) ([]byte, error) {
	resp, err := http.Get(u)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}
	return data, nil
}

func loadFile(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}
	return data, nil
}
