package platform

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/tally/pkg/adapters/codec"
	"github.com/aretw0/tally/pkg/core"
)

func (o *options) serializer(path string) (codec.Serializer, error) {
	if o.format != "" {
		return codec.ForFormat(o.format, o.strict)
	}
	return codec.ForPath(path, o.strict)
}

// Open reads an export file and returns a store holding its records in file order.
func Open(path string, opts ...Option) (*core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	s, err := o.serializer(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	store, err := Read(f, s, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	o.logger.Debug("export loaded", "path", path, "records", store.Len())
	return store, nil
}

// Read decodes entries from r with s and loads them into a new store.
func Read(r io.Reader, s codec.Serializer, opts ...Option) (*core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	entries, err := s.Decode(r)
	if err != nil {
		return nil, err
	}
	store := core.NewStore(append(o.storeOptions(), core.WithCapacity(len(entries)))...)
	if err := codec.Load(store, entries); err != nil {
		return nil, err
	}
	return store, nil
}

// Save writes the store's export to path atomically.
func Save(store *core.Store, path string, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	s, err := o.serializer(path)
	if err != nil {
		return err
	}
	err = replaceFile(path, 0o644, func(w io.Writer) error {
		data, err := s.Encode(store.Export())
		if err != nil {
			return fmt.Errorf("failed to encode export: %w", err)
		}
		_, err = w.Write(data)
		return err
	})
	if err != nil {
		return err
	}
	o.logger.Debug("export saved", "path", path, "records", store.Len())
	return nil
}
