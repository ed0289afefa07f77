package storage

import (
	"encoding/json"
	"errors"
	"log"
)

// ErrKeyNotFound, anahtar depoda bulunamadığında döner.
var ErrKeyNotFound = errors.New("storage: key not found")

// Store, kalıcı anahtar-değer deposunu soyutlar. Değerler JSON parçaları
// olarak saklanır; dosya tabanlı depo yerine gerçek bir uzak depo aynı
// arayüzle takılabilir.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// GetJSON, anahtarın değerini v içine çözümler. Bozuk değer, anahtar yokmuş
// gibi ele alınır; loglanır ve ErrKeyNotFound döner.
func GetJSON(s Store, key string, v any) error {
	data, err := s.Get(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("storage.GetJSON - corrupt value for key %q: %v", key, err)
		return ErrKeyNotFound
	}
	return nil
}

// SetJSON, v'yi JSON'a çevirip anahtarın altına yazar.
func SetJSON(s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, data)
}
