// Package files provides JSON files holding plugin configuration or data,
// with defaults that apply to keys the file does not set.
//
// Usage:
//
//	f, err := files.Open("plugins/lobby/config.json", files.WithDefaults(func(f *files.File) {
//	    f.SetDefault("motd", jsonval.String("Welcome!"))
//	    f.SetDefault("max-players", jsonval.Int(50))
//	}))
//	if err != nil {
//	    return err
//	}
//	motd := f.String("motd")
//
// Files may contain comments and trailing commas; they are dropped on save.
package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tidwall/jsonc"

	"github.com/oriumgames/kit/jsonval"
	"github.com/oriumgames/kit/tag"
)

// File is a JSON object stored on disk. All methods are safe for concurrent
// use.
type File struct {
	path string
	opts options

	mu       sync.RWMutex
	json     *jsonval.Object
	defaults *jsonval.Object
	dirty    bool
}

// Open opens the JSON file at path, creating it and its parent directories
// from the defaults when it does not exist.
func Open(path string, opts ...Option) (*File, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	f := &File{
		path:     path,
		opts:     o,
		json:     jsonval.NewObject(),
		defaults: jsonval.NewObject(),
	}
	if o.noLoad {
		return f, nil
	}
	if err := f.Reload(); err != nil {
		return nil, err
	}
	return f, nil
}

// Path returns the path of the file.
func (f *File) Path() string {
	return f.path
}

// Name returns the file name without the ".json" extension.
func (f *File) Name() string {
	return strings.TrimSuffix(filepath.Base(f.path), ".json")
}

// Reload reads the file from disk, discarding unsaved changes. A missing file
// is created holding the defaults.
func (f *File) Reload() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("files: create directory for %s: %w", f.path, err)
	}

	defaultsLoaded := false
	if _, err := os.Stat(f.path); errors.Is(err, fs.ErrNotExist) {
		f.loadDefaults()
		defaultsLoaded = true

		f.mu.RLock()
		data, err := f.encode(f.defaults)
		f.mu.RUnlock()
		if err != nil {
			return err
		}
		if err := writeFile(f.path, data); err != nil {
			return err
		}
	} else if err != nil {
		return fmt.Errorf("files: stat %s: %w", f.path, err)
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return fmt.Errorf("files: read %s: %w", f.path, err)
	}
	obj, err := jsonval.ParseObject(jsonc.ToJSON(data))
	if err != nil {
		return fmt.Errorf("files: parse %s: %w", f.path, err)
	}

	f.mu.Lock()
	f.json = obj
	f.dirty = false
	f.mu.Unlock()

	if !defaultsLoaded {
		f.loadDefaults()
	}
	return nil
}

// loadDefaults resets the defaults and runs the defaults hook. The hook calls
// back into SetDefault, so no lock may be held here.
func (f *File) loadDefaults() {
	f.mu.Lock()
	f.defaults = jsonval.NewObject()
	f.mu.Unlock()

	if f.opts.defaults != nil {
		f.opts.defaults(f)
	}
}

// Save writes the values to disk. The file is replaced atomically, so a
// failed save leaves the previous content in place.
func (f *File) Save() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.encode(f.json)
	if err != nil {
		return err
	}
	if err := writeFile(f.path, data); err != nil {
		return err
	}
	f.dirty = false
	return nil
}

func (f *File) encode(obj *jsonval.Object) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if f.opts.indent == "" {
		data, err = jsonval.Marshal(obj)
	} else {
		data, err = jsonval.MarshalIndent(obj, f.opts.indent)
	}
	if err != nil {
		return nil, fmt.Errorf("files: encode %s: %w", f.path, err)
	}
	return append(data, '\n'), nil
}

// Dirty reports whether values were changed since the last load or save.
func (f *File) Dirty() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.dirty
}

// Keys returns the keys set in the file, excluding defaults.
func (f *File) Keys() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.json.Keys()
}

// Object returns a copy of the values set in the file.
func (f *File) Object() *jsonval.Object {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.json.Clone()
}

// HasKey reports whether the file sets key.
func (f *File) HasKey(key string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.json.Has(key)
}

// ContainsKey reports whether the file sets key or a default exists for it.
func (f *File) ContainsKey(key string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.json.Has(key) || f.defaults.Has(key)
}

// Value returns a copy of the value of key, falling back to its default.
// Changing the copy does not change the file; use Set for that.
func (f *File) Value(key string) (jsonval.Value, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.json.Get(key)
	if !ok {
		v, ok = f.defaults.Get(key)
	}
	if !ok {
		return nil, false
	}
	return jsonval.Clone(v), true
}

// DefaultValue returns a copy of the default of key.
func (f *File) DefaultValue(key string) (jsonval.Value, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.defaults.Get(key)
	if !ok {
		return nil, false
	}
	return jsonval.Clone(v), true
}

// Set sets the value of key. Call Save to write it to disk.
func (f *File) Set(key string, v jsonval.Value) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.json.Set(key, v)
	f.dirty = true
}

func (f *File) SetString(key, v string)        { f.Set(key, jsonval.String(v)) }
func (f *File) SetInt(key string, v int64)     { f.Set(key, jsonval.Int(v)) }
func (f *File) SetFloat(key string, v float64) { f.Set(key, jsonval.Float(v)) }
func (f *File) SetBool(key string, v bool)     { f.Set(key, jsonval.Bool(v)) }

// SetDefault sets the default of key. Defaults are never written to an
// existing file.
func (f *File) SetDefault(key string, v jsonval.Value) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.defaults.Set(key, v)
}

// Remove deletes key and its default, saving the file if anything was
// removed.
func (f *File) Remove(key string) error {
	f.mu.Lock()
	removed := f.defaults.Remove(key)
	if f.json.Remove(key) {
		removed = true
		f.dirty = true
	}
	f.mu.Unlock()

	if !removed {
		return nil
	}
	return f.Save()
}

// Move renames oldKey to newKey and saves the file. It reports false, without
// saving, when the file does not set oldKey.
func (f *File) Move(oldKey, newKey string) (bool, error) {
	f.mu.Lock()
	v, ok := f.json.Get(oldKey)
	if !ok {
		f.mu.Unlock()
		return false, nil
	}
	f.json.Remove(oldKey)
	f.json.Set(newKey, v)
	f.dirty = true
	f.mu.Unlock()

	if err := f.Save(); err != nil {
		return true, err
	}
	return true, nil
}

// SetTag stores c under key in the JSON form of tag.EncodeJSON.
func (f *File) SetTag(key string, c *tag.Compound) {
	f.Set(key, tag.EncodeJSON(c))
}

// Tag decodes the compound stored under key with tag.DecodeJSON. It reports
// false when key has no value.
func (f *File) Tag(key string) (*tag.Compound, bool, error) {
	v, ok := f.Value(key)
	if !ok {
		return nil, false, nil
	}
	obj, isObj := v.(*jsonval.Object)
	if !isObj {
		return nil, true, fmt.Errorf("files: %s: key %q holds a %s, not an object", f.Name(), key, v.Kind())
	}
	c, err := tag.DecodeJSON(obj)
	if err != nil {
		return nil, true, fmt.Errorf("files: %s: key %q: %w", f.Name(), key, err)
	}
	return c, true, nil
}
