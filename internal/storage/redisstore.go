package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "glow:"

// RedisStore, redis üzerinde çalışan Store uygulamasıdır. Dosya deposuyla
// aynı arayüzü sunar; birden fazla örnek aynı redis'i paylaşabilir.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore, verilen adrese bağlanan yeni bir RedisStore oluşturur.
// Bağlantı ping ile doğrulanır.
func NewRedisStore(addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{client: client}, nil
}

// Get, anahtarın değerini döndürür.
func (rs *RedisStore) Get(key string) ([]byte, error) {
	value, err := rs.client.Get(context.Background(), redisKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set, anahtarın değerini süresiz olarak yazar.
func (rs *RedisStore) Set(key string, value []byte) error {
	return rs.client.Set(context.Background(), redisKeyPrefix+key, value, 0).Err()
}

// Delete, anahtarı siler. Olmayan anahtar için hata dönmez.
func (rs *RedisStore) Delete(key string) error {
	return rs.client.Del(context.Background(), redisKeyPrefix+key).Err()
}

// Close, redis bağlantısını kapatır.
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
