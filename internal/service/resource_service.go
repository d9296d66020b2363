package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ResourceService 以类型参数抽象各内容类型共享的五个基础操作，
// 每个实体实例化一份，避免逐实体重复同样的 CRUD 代码。
type ResourceService[T any] struct {
	db       *gorm.DB
	orderBy  []string
	notFound error
}

// NewResourceService 构造 ResourceService。
// orderBy 为固定的列表排序子句，按声明顺序依次生效。
func NewResourceService[T any](gdb *gorm.DB, notFound error, orderBy ...string) *ResourceService[T] {
	return &ResourceService[T]{db: gdb, orderBy: orderBy, notFound: notFound}
}

// List 返回全部记录，filters 中的列按等值条件过滤。
func (s *ResourceService[T]) List(filters map[string]interface{}) ([]T, error) {
	query := s.db.Model(new(T))
	for column, value := range filters {
		query = query.Where(column+" = ?", value)
	}
	for _, clause := range s.orderBy {
		query = query.Order(clause)
	}

	items := make([]T, 0)
	if err := query.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return items, nil
}

// Get 根据主键获取记录。
func (s *ResourceService[T]) Get(id uint) (*T, error) {
	var item T
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.notFound
		}
		return nil, fmt.Errorf("get record: %w", err)
	}
	return &item, nil
}

// Create 插入新记录，生成的主键与时间戳回写到 item。
func (s *ResourceService[T]) Create(item *T) error {
	if err := s.db.Create(item).Error; err != nil {
		return fmt.Errorf("create record: %w", err)
	}
	return nil
}

// Update 对已有记录应用稀疏补丁。
// updates 只包含请求中显式出现的列，未出现的列保持原值；
// UpdatedAt 由 gorm 在更新时自动刷新。
func (s *ResourceService[T]) Update(id uint, updates map[string]interface{}) (*T, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if len(updates) == 0 {
		return item, nil
	}

	delete(updates, "id")
	if err := s.db.Model(item).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update record: %w", err)
	}
	return s.Get(id)
}

// Delete 删除记录，硬删除且无级联。
func (s *ResourceService[T]) Delete(id uint) error {
	item, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(item).Error; err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}
