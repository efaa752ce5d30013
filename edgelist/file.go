package edgelist

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// ReadFile opens path on fs and decodes it.
func ReadFile(fs afero.Fs, path string) (*EdgeList, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.WithMessagef(err, "opening input file %q", path)
	}
	defer f.Close()

	el, err := Decode(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "decoding %q", path)
	}

	return el, nil
}

// WriteFile encodes el into path on fs, truncating any existing file.
func WriteFile(fs afero.Fs, path string, el *EdgeList) error {
	f, err := fs.Create(path)
	if err != nil {
		return errors.WithMessagef(err, "creating %q", path)
	}
	if err = Encode(f, el); err != nil {
		_ = f.Close()
		return errors.WithMessagef(err, "encoding %q", path)
	}

	return errors.WithMessagef(f.Close(), "closing %q", path)
}
