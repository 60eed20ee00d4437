package store

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" // PostgreSQL driver
	_ "github.com/jinzhu/gorm/dialects/sqlite"   // SQLite driver

	"github.com/pritishraj04/delhi-lounge-new-menu/internal/menu"
)

// MenuRecord is one row of the menu table. Columns are loosely-typed
// strings on purpose: the table mirrors whatever the import source
// provided, and normalization happens on the way out, through the same
// path the CSV import uses.
type MenuRecord struct {
	ID              uint   `gorm:"primary_key"`
	Title           string `gorm:"column:title"`
	Description     string `gorm:"column:description"`
	Category        string `gorm:"column:category"`
	SubCategory     string `gorm:"column:sub_category"`
	Metrics         string `gorm:"column:metrics"`
	PriceFull       string `gorm:"column:price_full"`
	PriceHalf       string `gorm:"column:price_half"`
	Image           string `gorm:"column:image"`
	ChefSpecial     string `gorm:"column:chef_special"`
	MustTry         string `gorm:"column:must_try"`
	Vegan           string `gorm:"column:vegan"`
	Allergens       string `gorm:"column:allergens"`
	Enabled         string `gorm:"column:enabled"`
	TimeWindowStart string `gorm:"column:time_window_start"`
	TimeWindowEnd   string `gorm:"column:time_window_end"`
}

// TableName sets the table name for MenuRecord
func (MenuRecord) TableName() string {
	return "menu"
}

// BarRecord is one row of the bar_menu table.
type BarRecord struct {
	ID              uint   `gorm:"primary_key"`
	Title           string `gorm:"column:title"`
	Description     string `gorm:"column:description"`
	Category        string `gorm:"column:category"`
	SubCategory     string `gorm:"column:sub_category"`
	Price           string `gorm:"column:price"`
	Image           string `gorm:"column:image"`
	Enabled         string `gorm:"column:enabled"`
	TimeWindowStart string `gorm:"column:time_window_start"`
	TimeWindowEnd   string `gorm:"column:time_window_end"`
}

// TableName sets the table name for BarRecord
func (BarRecord) TableName() string {
	return "bar_menu"
}

// Store wraps the menu database.
type Store struct {
	db *gorm.DB
}

// Open connects to the database and ensures the schema exists. The
// driver is "sqlite3" for local use and tests, "postgres" in production.
func Open(driver, dsn string) (*Store, error) {
	db, err := gorm.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.AutoMigrate(&MenuRecord{}, &BarRecord{})

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// FoodRows returns the raw menu rows in id order, ready for the
// normalizer. The record's own id travels with the row so database
// items keep their stored identifiers.
func (s *Store) FoodRows() ([]menu.RawRow, error) {
	var records []MenuRecord
	if err := s.db.Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query menu rows: %w", err)
	}

	rows := make([]menu.RawRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, menu.RawRow{
			ID:              fmt.Sprintf("%d", rec.ID),
			Title:           rec.Title,
			Description:     rec.Description,
			Category:        rec.Category,
			SubCategory:     rec.SubCategory,
			Metrics:         rec.Metrics,
			PriceFull:       rec.PriceFull,
			PriceHalf:       rec.PriceHalf,
			Image:           rec.Image,
			ChefSpecial:     rec.ChefSpecial,
			MustTry:         rec.MustTry,
			Vegan:           rec.Vegan,
			Allergens:       rec.Allergens,
			Enabled:         rec.Enabled,
			TimeWindowStart: rec.TimeWindowStart,
			TimeWindowEnd:   rec.TimeWindowEnd,
		})
	}
	return rows, nil
}

// BarRows returns the raw bar rows in id order.
func (s *Store) BarRows() ([]menu.RawRow, error) {
	var records []BarRecord
	if err := s.db.Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query bar rows: %w", err)
	}

	rows := make([]menu.RawRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, menu.RawRow{
			ID:              fmt.Sprintf("%d", rec.ID),
			Title:           rec.Title,
			Description:     rec.Description,
			Category:        rec.Category,
			SubCategory:     rec.SubCategory,
			Price:           rec.Price,
			Image:           rec.Image,
			Enabled:         rec.Enabled,
			TimeWindowStart: rec.TimeWindowStart,
			TimeWindowEnd:   rec.TimeWindowEnd,
		})
	}
	return rows, nil
}

// ImportFood replaces the menu table contents with the given raw rows.
// Last write wins; a stale import finishing after a newer one simply
// overwrites it.
func (s *Store) ImportFood(rows []menu.RawRow) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin import: %w", tx.Error)
	}

	if err := tx.Delete(&MenuRecord{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear menu table: %w", err)
	}

	for _, r := range rows {
		rec := MenuRecord{
			Title:           r.Title,
			Description:     r.Description,
			Category:        r.Category,
			SubCategory:     r.SubCategory,
			Metrics:         r.Metrics,
			PriceFull:       r.PriceFull,
			PriceHalf:       r.PriceHalf,
			Image:           r.Image,
			ChefSpecial:     r.ChefSpecial,
			MustTry:         r.MustTry,
			Vegan:           r.Vegan,
			Allergens:       r.Allergens,
			Enabled:         r.Enabled,
			TimeWindowStart: r.TimeWindowStart,
			TimeWindowEnd:   r.TimeWindowEnd,
		}
		if err := tx.Create(&rec).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert menu row: %w", err)
		}
	}

	return tx.Commit().Error
}

// ImportBar replaces the bar_menu table contents with the given raw rows.
func (s *Store) ImportBar(rows []menu.RawRow) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin import: %w", tx.Error)
	}

	if err := tx.Delete(&BarRecord{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear bar_menu table: %w", err)
	}

	for _, r := range rows {
		rec := BarRecord{
			Title:           r.Title,
			Description:     r.Description,
			Category:        r.Category,
			SubCategory:     r.SubCategory,
			Price:           r.Price,
			Image:           r.Image,
			Enabled:         r.Enabled,
			TimeWindowStart: r.TimeWindowStart,
			TimeWindowEnd:   r.TimeWindowEnd,
		}
		if err := tx.Create(&rec).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert bar row: %w", err)
		}
	}

	return tx.Commit().Error
}
