package sqlitecache

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sopeal/AskYourFeed/internal/domain"
	"github.com/sopeal/AskYourFeed/internal/ports/output"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Compile-time check to ensure QACache implements DetailCache interface
var _ output.DetailCache = (*QACache)(nil)

// cachedDetail is the persistence model for one QA detail entry.
type cachedDetail struct {
	ID        string `gorm:"primaryKey"`
	Payload   []byte
	FetchedAt time.Time
}

func (cachedDetail) TableName() string {
	return "qa_details"
}

// QACache struct - Output adapter caching QA details in a local sqlite file.
// Entries are fresh for the configured TTL; a stale entry behaves as a miss
// and is removed so the caller re-fetches.
type QACache struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

// NewQACache creates the cache and migrates its table.
func NewQACache(db *gorm.DB, ttl time.Duration) (*QACache, error) {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if err := db.AutoMigrate(&cachedDetail{}); err != nil {
		return nil, fmt.Errorf("failed to migrate qa cache: %w", err)
	}
	logrus.Infof("QA detail cache ready, staleness horizon: %v", ttl)
	return &QACache{
		db:  db,
		ttl: ttl,
		now: time.Now,
	}, nil
}

// Get returns a fresh cached detail, or a miss for absent and stale entries.
func (c *QACache) Get(id string) (*domain.QADetail, bool, error) {
	var row cachedDetail
	err := c.db.First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read qa cache: %w", err)
	}

	if c.now().Sub(row.FetchedAt) >= c.ttl {
		if err := c.Delete(id); err != nil {
			logrus.Warnf("Failed to drop stale cache entry %s: %v", id, err)
		}
		return nil, false, nil
	}

	var detail domain.QADetail
	if err := json.Unmarshal(row.Payload, &detail); err != nil {
		// A corrupt payload is treated like a miss after removal.
		if delErr := c.Delete(id); delErr != nil {
			logrus.Warnf("Failed to drop corrupt cache entry %s: %v", id, delErr)
		}
		return nil, false, nil
	}

	return &detail, true, nil
}

// Put stores or replaces the detail with a fresh fetch timestamp.
func (c *QACache) Put(detail *domain.QADetail) error {
	if detail == nil || detail.ID == "" {
		return errors.New("cannot cache a detail without an id")
	}

	payload, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("failed to marshal qa detail: %w", err)
	}

	row := cachedDetail{
		ID:        detail.ID,
		Payload:   payload,
		FetchedAt: c.now(),
	}
	err = c.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to write qa cache: %w", err)
	}
	return nil
}

// Delete removes one entry; absent entries are not an error.
func (c *QACache) Delete(id string) error {
	if err := c.db.Delete(&cachedDetail{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete qa cache entry: %w", err)
	}
	return nil
}

// Purge removes every entry.
func (c *QACache) Purge() error {
	if err := c.db.Exec("DELETE FROM qa_details").Error; err != nil {
		return fmt.Errorf("failed to purge qa cache: %w", err)
	}
	return nil
}
