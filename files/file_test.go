package files

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oriumgames/kit/jsonval"
	"github.com/oriumgames/kit/tag"
)

func quiet() Option {
	return WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func lobbyDefaults(f *File) {
	f.SetDefault("motd", jsonval.String("Welcome!"))
	f.SetDefault("max-players", jsonval.Int(50))
}

func TestOpenCreatesFileFromDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugins", "lobby", "config.json")

	f, err := Open(path, WithDefaults(lobbyDefaults), quiet())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"motd\": \"Welcome!\",\n  \"max-players\": 50\n}\n", string(data))

	assert.Equal(t, "config", f.Name())
	assert.Equal(t, "Welcome!", f.String("motd"))
	assert.Equal(t, 50, f.Int("max-players"))
	assert.True(t, f.HasKey("motd"))
	assert.False(t, f.Dirty())
}

func TestDefaultsApplyToMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"motd": "Hi"}`), 0o644))

	f, err := Open(path, WithDefaults(lobbyDefaults), quiet())
	require.NoError(t, err)

	assert.Equal(t, "Hi", f.String("motd"))
	assert.Equal(t, 50, f.Int("max-players"))
	assert.False(t, f.HasKey("max-players"))
	assert.True(t, f.ContainsKey("max-players"))
	assert.Equal(t, []string{"motd"}, f.Keys())

	def, ok := f.DefaultValue("motd")
	require.True(t, ok)
	assert.Equal(t, jsonval.String("Welcome!"), def)

	// Defaults are never written into an existing file.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"motd": "Hi"}`, string(data))
}

func TestCommentsAndTrailingCommas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	src := `{
	// shown on join
	"motd": "Hi",
	/* limit */ "max-players": 20,
}`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	f, err := Open(path, quiet())
	require.NoError(t, err)
	assert.Equal(t, "Hi", f.String("motd"))
	assert.Equal(t, 20, f.Int("max-players"))
}

func TestParseFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`[1, 2]`), 0o644))

	_, err := Open(path, quiet())
	assert.ErrorIs(t, err, jsonval.ErrNotObject)
}

func TestGetters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.json")
	id := uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")
	src := `{
		"count": "20",
		"fraction": 7.9,
		"big": 5000000000,
		"small": 300,
		"ratio": "0.25",
		"flag": "TRUE",
		"enabled": true,
		"id": "` + id.String() + `",
		"name": 12,
		"list": [1, 2]
	}`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	f, err := Open(path, quiet())
	require.NoError(t, err)

	assert.Equal(t, 20, f.Int("count"))
	assert.Equal(t, 7, f.Int("fraction"))
	assert.Equal(t, 9, f.IntOr("big", 9))
	assert.Equal(t, int64(5000000000), f.Long("big"))
	assert.Equal(t, int16(300), f.Short("small"))
	assert.Equal(t, int8(-1), f.ByteOr("small", -1))
	assert.Equal(t, float32(0.25), f.Float("ratio"))
	assert.Equal(t, 7.9, f.Double("fraction"))
	assert.True(t, f.Bool("flag"))
	assert.True(t, f.Bool("enabled"))
	assert.False(t, f.BoolOr("count", false))
	assert.Equal(t, id, f.UUID("id"))
	assert.Equal(t, uuid.Nil, f.UUID("name"))
	assert.Equal(t, "12", f.String("name"))
	assert.Equal(t, "true", f.String("enabled"))
	assert.Equal(t, "fallback", f.StringOr("list", "fallback"))
	assert.Equal(t, "fallback", f.StringOr("missing", "fallback"))
	assert.Equal(t, 3, f.IntOr("list", 3))
}

func TestUnusableValueIsLogged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"count": "many"}`), 0o644))

	var buf bytes.Buffer
	f, err := Open(path, WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	require.NoError(t, err)

	assert.Equal(t, 4, f.IntOr("count", 4))
	assert.Contains(t, buf.String(), "key=count")
	assert.Contains(t, buf.String(), "file=values")
}

func TestSetAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	f, err := Open(path, WithIndent(""), quiet())
	require.NoError(t, err)

	f.SetString("name", "Steve")
	f.SetInt("level", 30)
	f.SetBool("online", false)
	f.SetFloat("speed", 0.5)
	assert.True(t, f.Dirty())

	require.NoError(t, f.Save())
	assert.False(t, f.Dirty())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Steve","level":30,"online":false,"speed":0.5}`+"\n", string(data))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestReloadDiscardsChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a": 1}`), 0o644))

	f, err := Open(path, quiet())
	require.NoError(t, err)
	f.SetInt("a", 2)
	require.NoError(t, f.Reload())

	assert.Equal(t, 1, f.Int("a"))
	assert.False(t, f.Dirty())
}

func TestRemoveAndMove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a": 1, "b": 2}`), 0o644))

	f, err := Open(path, WithIndent(""), quiet())
	require.NoError(t, err)

	require.NoError(t, f.Remove("a"))
	require.NoError(t, f.Remove("missing"))

	moved, err := f.Move("b", "c")
	require.NoError(t, err)
	assert.True(t, moved)

	moved, err = f.Move("b", "d")
	require.NoError(t, err)
	assert.False(t, moved)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"c":2}`+"\n", string(data))
}

func TestTagRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	f, err := Open(path, quiet())
	require.NoError(t, err)

	c := tag.NewCompound()
	c.SetString("Name", "minecraft:diamond")
	c.SetByte("Count", 3)
	c.SetIntArray("Marks", []int32{1, 2})
	f.SetTag("slot", c)
	require.NoError(t, f.Save())

	require.NoError(t, f.Reload())
	got, ok, err := f.Tag("slot")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "minecraft:diamond", got.GetString("Name"))
	assert.Equal(t, int32(3), got.GetInt("Count"))
	assert.Equal(t, []int32{1, 2}, got.GetIntArray("Marks"))

	_, ok, err = f.Tag("missing")
	assert.NoError(t, err)
	assert.False(t, ok)

	f.SetString("plain", "x")
	_, ok, err = f.Tag("plain")
	assert.Error(t, err)
	assert.True(t, ok)
}

func TestWithoutLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lazy.json")
	f, err := Open(path, WithoutLoad(), WithDefaults(lobbyDefaults), quiet())
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, "", f.String("motd"))

	require.NoError(t, f.Reload())
	assert.Equal(t, "Welcome!", f.String("motd"))
}

func TestSaver(t *testing.T) {
	dir := t.TempDir()
	a, err := Open(filepath.Join(dir, "a.json"), WithIndent(""), quiet())
	require.NoError(t, err)
	b, err := Open(filepath.Join(dir, "b.json"), WithIndent(""), quiet())
	require.NoError(t, err)

	saver := NewSaver(10*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
	saver.Add(a, b, a)
	saver.Start()

	a.SetInt("n", 1)
	assert.Eventually(t, func() bool { return !a.Dirty() }, time.Second, 5*time.Millisecond)

	b.SetInt("n", 2)
	require.NoError(t, saver.Stop())
	assert.False(t, b.Dirty())

	data, err := os.ReadFile(filepath.Join(dir, "b.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"n":2}`+"\n", string(data))

	// Stop is idempotent and still flushes.
	b.SetInt("n", 3)
	require.NoError(t, saver.Stop())
	assert.False(t, b.Dirty())
}

func TestValueReturnsCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"slot": {"Name": "minecraft:apple", "list": ["a"]}}`), 0o644))

	f, err := Open(path, WithDefaults(func(f *File) {
		f.SetDefault("fallback", jsonval.NewObject())
	}), quiet())
	require.NoError(t, err)

	v, ok := f.Value("slot")
	require.True(t, ok)
	obj := v.(*jsonval.Object)
	obj.Set("Name", jsonval.String("minecraft:stone"))
	obj.Set("extra", jsonval.Bool(true))

	again, _ := f.Value("slot")
	name, _ := again.(*jsonval.Object).Get("Name")
	assert.Equal(t, jsonval.String("minecraft:apple"), name)
	assert.False(t, again.(*jsonval.Object).Has("extra"))
	assert.False(t, f.Dirty())

	def, ok := f.DefaultValue("fallback")
	require.True(t, ok)
	def.(*jsonval.Object).Set("x", jsonval.Int(1))
	def, _ = f.Value("fallback")
	assert.Equal(t, 0, def.(*jsonval.Object).Len())
}
