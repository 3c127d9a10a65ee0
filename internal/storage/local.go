// Package storage содержит блоб-хранилище фотографий. Сейчас единственный
// бэкенд - локальный диск, раздаваемый сервером как статика; интерфейс
// service.BlobStore оставляет место для бакета объектного хранилища.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore пишет блобы на диск под заданным корнем и строит публичные
// URL от настроенной базы.
type LocalStore struct {
	rootDir   string
	publicURL string
}

// NewLocalStore создает хранилище и корневой каталог, если его нет.
func NewLocalStore(rootDir, publicURL string) (*LocalStore, error) {
	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &LocalStore{
		rootDir:   rootDir,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Put сохраняет блоб по ключу и возвращает его публичный URL.
// Ключ вида "incidents/<имя>" превращается в подкаталог.
func (s *LocalStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	path, err := s.resolve(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create blob directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write blob %s: %w", key, err)
	}

	return s.publicURL + "/" + key, nil
}

// Delete удаляет блоб. Отсутствующий файл не считается ошибкой,
// чтобы компенсация при сбое была идемпотентной.
func (s *LocalStore) Delete(ctx context.Context, key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}
	return nil
}

// resolve переводит ключ в путь на диске и отбрасывает попытки выйти
// за пределы корня.
func (s *LocalStore) resolve(key string) (string, error) {
	clean := filepath.Clean("/" + key)
	if strings.Contains(clean, "..") {
		return "", fmt.Errorf("invalid blob key %q", key)
	}
	return filepath.Join(s.rootDir, clean), nil
}
