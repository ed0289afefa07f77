package storage

import (
	"encoding/json"
	"log"
	"os"
	"sync"
)

// FileStore, tüm anahtarları tek bir JSON dosyasında tutan Store
// uygulamasıdır. Her yazma işlemi dosyanın tamamını yeniden yazar; bu
// ölçekte yeterlidir.
type FileStore struct {
	mu       sync.RWMutex
	filePath string
	data     map[string]json.RawMessage
}

// NewFileStore, yeni bir FileStore örneği oluşturur ve verileri yükler.
// Dosya yoksa boş olarak başlar; bozuk dosya loglanır ve boş sayılır.
func NewFileStore(filePath string) (*FileStore, error) {
	fs := &FileStore{
		filePath: filePath,
		data:     make(map[string]json.RawMessage),
	}
	if err := fs.loadData(); err != nil {
		return nil, err
	}
	return fs, nil
}

func (fs *FileStore) loadData() error {
	if _, err := os.Stat(fs.filePath); os.IsNotExist(err) {
		return fs.saveData()
	}

	fileData, err := os.ReadFile(fs.filePath)
	if err != nil {
		return err
	}
	if len(fileData) == 0 {
		return nil
	}

	if err := json.Unmarshal(fileData, &fs.data); err != nil {
		log.Printf("FileStore.loadData - corrupt data file %s, starting empty: %v", fs.filePath, err)
		fs.data = make(map[string]json.RawMessage)
	}
	return nil
}

func (fs *FileStore) saveData() error {
	data, err := json.MarshalIndent(fs.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fs.filePath, data, 0644)
}

// Get, anahtarın değerini döndürür.
func (fs *FileStore) Get(key string) ([]byte, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	value, ok := fs.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

// Set, anahtarın değerini yazar ve dosyayı kaydeder.
func (fs *FileStore) Set(key string, value []byte) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	fs.data[key] = stored
	return fs.saveData()
}

// Delete, anahtarı siler. Olmayan anahtar için hata dönmez.
func (fs *FileStore) Delete(key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if _, ok := fs.data[key]; !ok {
		return nil
	}
	delete(fs.data, key)
	return fs.saveData()
}
