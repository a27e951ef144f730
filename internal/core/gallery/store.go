package gallery

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"plantlens/internal/infrastructure/config"
	"plantlens/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Item 使用者圖鑑中的一筆辨識紀錄
type Item struct {
	ID             string   `json:"id"`
	UserID         string   `json:"userId"`
	ScientificName string   `json:"scientificName"`
	CommonNames    []string `json:"commonNames"`
	Family         string   `json:"family,omitempty"`
	Genus          string   `json:"genus,omitempty"`
	Score          int      `json:"score,omitempty"`
	UploadedImage  string   `json:"uploadedImage,omitempty"`
	Timestamp      int64    `json:"timestamp"`
}

// SaveResult 儲存結果。重複儲存時回傳既有紀錄的 ID 而非建立新紀錄。
type SaveResult struct {
	Duplicate bool   `json:"duplicate"`
	ID        string `json:"id"`
}

// Store 使用者圖鑑儲存。每位使用者一個 hash，
// 另以 (user, scientificName, uploadedImage) 的雜湊作為重複偵測鍵。
type Store struct {
	client *redis.Client
}

// NewStore 創建圖鑑儲存，停用時回傳 nil
func NewStore(cfg *config.Config) (*Store, error) {
	if !cfg.Gallery.Enabled {
		common.LogInfo("Gallery storage disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Gallery.RedisAddr,
		DB:       cfg.Gallery.RedisDB,
		Password: cfg.Gallery.Password,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("圖鑑儲存已初始化",
		zap.String("addr", cfg.Gallery.RedisAddr),
		zap.Int("db", cfg.Gallery.RedisDB),
	)

	return &Store{client: client}, nil
}

func itemsKey(userID string) string {
	return fmt.Sprintf("gallery:items:%s", userID)
}

func dedupKey(userID, scientificName, uploadedImage string) string {
	sum := sha256.Sum256([]byte(userID + "|" + scientificName + "|" + uploadedImage))
	return fmt.Sprintf("gallery:dedup:%s", hex.EncodeToString(sum[:]))
}

// Save 儲存辨識紀錄。同一使用者對相同學名與圖片的重複儲存
// 回傳既有紀錄的 ID，Duplicate 為 true。
func (s *Store) Save(ctx context.Context, item Item) (*SaveResult, error) {
	item.ScientificName = strings.TrimSpace(item.ScientificName)
	if item.UserID == "" || item.ScientificName == "" {
		return nil, common.NewValidationError("userId and scientificName are required")
	}

	dk := dedupKey(item.UserID, item.ScientificName, item.UploadedImage)

	// 重複偵測：鍵已存在即回傳既有 ID
	existingID, err := s.client.Get(ctx, dk).Result()
	if err == nil && existingID != "" {
		common.LogInfo("圖鑑紀錄已存在，回傳既有 ID",
			zap.String("user_id", item.UserID),
			zap.String("scientific_name", item.ScientificName),
		)
		return &SaveResult{Duplicate: true, ID: existingID}, nil
	}
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to check duplicate: %w", err)
	}

	item.ID = uuid.New().String()
	if item.Timestamp == 0 {
		item.Timestamp = time.Now().UnixMilli()
	}
	if item.CommonNames == nil {
		item.CommonNames = []string{}
	}

	data, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gallery item: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, itemsKey(item.UserID), item.ID, data)
	pipe.Set(ctx, dk, item.ID, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save gallery item: %w", err)
	}

	common.LogInfo("圖鑑紀錄已儲存",
		zap.String("user_id", item.UserID),
		zap.String("id", item.ID),
		zap.String("scientific_name", item.ScientificName),
	)

	return &SaveResult{Duplicate: false, ID: item.ID}, nil
}

// List 取得使用者的所有紀錄，依時間新到舊排序
func (s *Store) List(ctx context.Context, userID string) ([]Item, error) {
	entries, err := s.client.HGetAll(ctx, itemsKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery items: %w", err)
	}

	items := make([]Item, 0, len(entries))
	for _, raw := range entries {
		var item Item
		if err := common.ParseJSON(raw, &item); err != nil {
			common.LogWarn("圖鑑紀錄解析失敗，已略過", zap.Error(err))
			continue
		}
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Timestamp > items[j].Timestamp
	})

	return items, nil
}

// Delete 刪除指定紀錄，連同其重複偵測鍵一併移除。
// 紀錄不存在時回傳 false，不視為錯誤。
func (s *Store) Delete(ctx context.Context, userID, id string) (bool, error) {
	raw, err := s.client.HGet(ctx, itemsKey(userID), id).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to fetch gallery item: %w", err)
	}

	var item Item
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		// 紀錄損毀時仍移除該筆資料
		common.LogWarn("圖鑑紀錄解析失敗，仍執行刪除", zap.Error(err))
	}

	pipe := s.client.TxPipeline()
	pipe.HDel(ctx, itemsKey(userID), id)
	if item.ScientificName != "" {
		pipe.Del(ctx, dedupKey(userID, item.ScientificName, item.UploadedImage))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to delete gallery item: %w", err)
	}

	common.LogInfo("圖鑑紀錄已刪除",
		zap.String("user_id", userID),
		zap.String("id", id),
	)

	return true, nil
}

// Ping 檢查儲存後端連線狀態
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close 關閉儲存連線
func (s *Store) Close() error {
	return s.client.Close()
}
