package repository

import (
	"context"
	"fmt"
	"sync"

	"study_buddy_backend/internal/model"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StateRepository 每用户键值状态。无事务，同键后写覆盖先写；
// 值是小整数字符串、日期字符串或 JSON 编码的集合
type StateRepository interface {
	Get(userID, key string) (string, bool, error)
	Set(userID, key, value string) error
}

// ---- redis 后端 ----

type RedisStateRepository struct {
	rdb *redis.Client
}

func NewRedisStateRepository(rdb *redis.Client) *RedisStateRepository {
	return &RedisStateRepository{rdb: rdb}
}

func stateKey(userID, key string) string {
	return fmt.Sprintf("sb:state:%s:%s", userID, key)
}

func (r *RedisStateRepository) Get(userID, key string) (string, bool, error) {
	val, err := r.rdb.Get(context.Background(), stateKey(userID, key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *RedisStateRepository) Set(userID, key, value string) error {
	// 状态不过期，只有笔记库的 20 条上限在业务层裁剪
	return r.rdb.Set(context.Background(), stateKey(userID, key), value, 0).Err()
}

// ---- database 后端 ----

type DBStateRepository struct {
	DB *gorm.DB
}

func NewDBStateRepository(db *gorm.DB) *DBStateRepository {
	return &DBStateRepository{DB: db}
}

func (r *DBStateRepository) Get(userID, key string) (string, bool, error) {
	var entry model.StateEntry
	err := r.DB.Where("user_id = ? AND `key` = ?", userID, key).First(&entry).Error
	if err == gorm.ErrRecordNotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (r *DBStateRepository) Set(userID, key, value string) error {
	entry := model.StateEntry{UserID: userID, Key: key, Value: value}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// ---- memory 后端 ----

// MemoryStateRepository 进程内存储。无任何外部依赖时的默认后端，也是测试替身
type MemoryStateRepository struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStateRepository() *MemoryStateRepository {
	return &MemoryStateRepository{data: make(map[string]string)}
}

func (r *MemoryStateRepository) Get(userID, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	val, ok := r.data[userID+"\x00"+key]
	return val, ok, nil
}

func (r *MemoryStateRepository) Set(userID, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[userID+"\x00"+key] = value
	return nil
}
