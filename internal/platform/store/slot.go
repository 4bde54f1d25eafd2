package store

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Slot はひとつのスロットをラップするコレクション状態コンテナです。
// 構築時に一度だけストアから読み込み、以後はメモリ上のキャッシュを返します。
// すべての変更はスロット全体の置換であり、ストアへ同期的にミラーされます。
type Slot[T any] struct {
	store *Store
	key   string

	mu      sync.Mutex
	current T
}

// NewSlot はスロットを初期化します。スロットが存在しない、または
// 値が復元できない場合は defaultValue を採用し、ストアへは何も書き込みません。
// 破損は呼び出し側へエラーとして伝播しません(可用性優先)。
func NewSlot[T any](s *Store, key string, defaultValue T) *Slot[T] {
	slot := &Slot[T]{store: s, key: key, current: defaultValue}

	raw, found, err := s.Get(key)
	if err != nil || !found {
		return slot
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return slot
	}

	slot.current = v
	return slot
}

// Key はスロット名を返します。
func (s *Slot[T]) Key() string {
	return s.key
}

// Current はキャッシュ済みの現在値を返します。
func (s *Slot[T]) Current() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Replace はスロット全体を newValue で置換します。直列化とストア書き込みが
// 成功した場合のみキャッシュを更新します。途中で失敗した場合、キャッシュは
// ストアと整合する置換前の値のまま残ります。
func (s *Slot[T]) Replace(newValue T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceLocked(newValue)
}

// Update は現在値に fn を適用した結果でスロットを置換し、置換後の値を返します。
// 読み取りから置換までをスロットのロック下で行うため、変更は到着順に
// 直列化されます(論理的な書き込み主体は常にひとつ)。
func (s *Slot[T]) Update(fn func(T) T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := fn(s.current)
	if err := s.replaceLocked(next); err != nil {
		var zero T
		return zero, err
	}
	return s.current, nil
}

func (s *Slot[T]) replaceLocked(newValue T) error {
	raw, err := json.Marshal(newValue)
	if err != nil {
		return fmt.Errorf("store: marshal slot %s: %w", s.key, err)
	}
	if err := s.store.Set(s.key, raw); err != nil {
		return err
	}
	s.current = newValue
	return nil
}
