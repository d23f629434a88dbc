// Package registry cung cấp registry generic thread-safe để quản lý các tài nguyên dùng chung
// (collection, database) theo tên.
package registry

import (
	"fmt"
	"sync"
)

// Registry là cấu trúc generic quản lý các item theo tên
type Registry[T any] struct {
	items map[string]T
	mu    sync.RWMutex
}

// NewRegistry tạo mới một Registry
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register đăng ký một item mới với tên cho trước.
// Trả về lỗi nếu tên đã tồn tại.
func (r *Registry[T]) Register(name string, item T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		return fmt.Errorf("item với tên '%s' đã tồn tại trong registry", name)
	}
	r.items[name] = item
	return nil
}

// Get lấy item theo tên
func (r *Registry[T]) Get(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[name]
	return item, exists
}

// MustGet lấy item theo tên, panic nếu không tồn tại.
// Chỉ dùng trong giai đoạn khởi tạo khi item bắt buộc phải có.
func (r *Registry[T]) MustGet(name string) T {
	item, exists := r.Get(name)
	if !exists {
		panic(fmt.Sprintf("không tìm thấy item '%s' trong registry", name))
	}
	return item
}

// GetOrCreate lấy item theo tên, nếu chưa có thì tạo mới bằng hàm factory
func (r *Registry[T]) GetOrCreate(name string, factory func() T) T {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item, exists := r.items[name]; exists {
		return item
	}
	item := factory()
	r.items[name] = item
	return item
}

// Update cập nhật item đã tồn tại
func (r *Registry[T]) Update(name string, item T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; !exists {
		return fmt.Errorf("không tìm thấy item '%s' trong registry", name)
	}
	r.items[name] = item
	return nil
}

// Names trả về danh sách tên các item đã đăng ký
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	return names
}

// Count trả về số lượng item trong registry
func (r *Registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// ClearAll xóa toàn bộ item (dùng khi shutdown hoặc trong test)
func (r *Registry[T]) ClearAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[string]T)
}
