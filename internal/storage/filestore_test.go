package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	return store, path
}

func TestFileStoreSetGet(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Set("greeting", []byte(`"hello"`)))

	value, err := store.Get("greeting")
	require.NoError(t, err)
	assert.Equal(t, `"hello"`, string(value))
}

func TestFileStoreMissingKey(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFileStoreDelete(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Set("key", []byte(`1`)))
	require.NoError(t, store.Delete("key"))

	_, err := store.Get("key")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Olmayan anahtarı silmek hata değildir
	assert.NoError(t, store.Delete("key"))
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, store.Set("cart:abc", []byte(`{"items":[]}`)))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	value, err := reopened.Get("cart:abc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[]}`, string(value))
}

func TestFileStoreCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = store.Get("anything")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Bozuk dosyaya rağmen yazma çalışır
	require.NoError(t, store.Set("key", []byte(`true`)))
	value, err := store.Get("key")
	require.NoError(t, err)
	assert.Equal(t, "true", string(value))
}

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestGetSetJSON(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, SetJSON(store, "sample", sample{Name: "glow", Count: 3}))

	var out sample
	require.NoError(t, GetJSON(store, "sample", &out))
	assert.Equal(t, sample{Name: "glow", Count: 3}, out)
}

func TestGetJSONCorruptValue(t *testing.T) {
	store, _ := newTestStore(t)

	// Yanlış biçimli değer okunurken anahtar yokmuş gibi davranılır
	require.NoError(t, store.Set("sample", []byte(`[1,2,3]`)))

	var out sample
	err := GetJSON(store, "sample", &out)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}
