package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pritishraj04/delhi-lounge-new-menu/internal/menu"
)

// loadMenuItems reads the menu table and normalizes it into canonical
// items, keeping only the ones currently offerable.
func (s *Server) loadMenuItems() ([]menu.MenuItem, error) {
	rows, err := s.store.FoodRows()
	if err != nil {
		return nil, err
	}

	seq := menu.NewSequence()
	items := make([]menu.MenuItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, menu.NormalizeMenuItem(r, seq))
	}

	items = s.schedule.AvailableItems(items, time.Now())
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// loadDrinkItems is loadMenuItems for the bar table.
func (s *Server) loadDrinkItems() ([]menu.DrinkItem, error) {
	rows, err := s.store.BarRows()
	if err != nil {
		return nil, err
	}

	seq := menu.NewSequence()
	items := make([]menu.DrinkItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, menu.NormalizeDrinkItem(r, seq))
	}

	items = s.schedule.AvailableDrinks(items, time.Now())
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// GetMenu serves the currently offerable food items.
func (s *Server) GetMenu(c *gin.Context) {
	items, err := s.loadMenuItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu data", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetBar serves the currently offerable bar items.
func (s *Server) GetBar(c *gin.Context) {
	items, err := s.loadDrinkItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bar menu data", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetEvents serves the upcoming events list.
func (s *Server) GetEvents(c *gin.Context) {
	c.JSON(http.StatusOK, s.events)
}

// GetCategories serves the filter-chip list for the requested menu. The
// vegan and allergens query parameters narrow the visible subset first,
// so the chips always reflect the active filters.
func (s *Server) GetCategories(c *gin.Context) {
	which := c.DefaultQuery("menu", "food")

	if which == "bar" {
		drinks, err := s.loadDrinkItems()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bar menu data", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, menu.BarCategories(drinks))
		return
	}

	items, err := s.loadMenuItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu data", "details": err.Error()})
		return
	}

	f := menu.Filter{
		VeganOnly:         c.Query("vegan") == "true",
		SelectedAllergens: splitParam(c.Query("allergens")),
		ActiveCategory:    menu.CategoryAll,
	}
	c.JSON(http.StatusOK, menu.MenuCategories(f.Apply(items)))
}

// SearchMenu serves free-text search across food, bar, and events.
func (s *Server) SearchMenu(c *gin.Context) {
	items, err := s.loadMenuItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu data", "details": err.Error()})
		return
	}
	drinks, err := s.loadDrinkItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bar menu data", "details": err.Error()})
		return
	}

	results := menu.Search(
		c.Query("q"),
		items,
		drinks,
		s.events,
		c.Query("vegan") == "true",
		splitParam(c.Query("allergens")),
	)
	if results == nil {
		results = []menu.SearchResult{}
	}

	s.collector.RecordSearch()
	c.JSON(http.StatusOK, results)
}

// GetStats serves the in-memory service stats.
func (s *Server) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.monitor.GetMetrics())
}

// ConvertFood reads the configured food CSV and writes the normalized
// JSON array next to the other generated data files.
func (s *Server) ConvertFood(c *gin.Context) {
	s.convertCSV(c, "food", s.config.Data.FoodCSV, "food-menu.json", func(content string) (interface{}, int) {
		seq := menu.NewSequence()
		items := menu.ConvertFoodCSV(content, seq)
		return items, len(items)
	})
}

// ConvertBar is ConvertFood for the bar CSV.
func (s *Server) ConvertBar(c *gin.Context) {
	s.convertCSV(c, "bar", s.config.Data.BarCSV, "bar-menu.json", func(content string) (interface{}, int) {
		seq := menu.NewSequence()
		items := menu.ConvertBarCSV(content, seq)
		return items, len(items)
	})
}

// convertCSV implements the shared conversion-endpoint contract: 404
// when the source file is missing, 500 with the error message on any
// failure, count and success message otherwise.
func (s *Server) convertCSV(c *gin.Context, source, csvPath, outName string, parse func(string) (interface{}, int)) {
	data, err := os.ReadFile(csvPath)
	if os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("%s CSV file not found at %s", titleCase(source), csvPath)})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": fmt.Sprintf("Error generating %s menu JSON: %s", source, err.Error())})
		return
	}

	items, count := parse(string(data))

	if err := writeJSONFile(filepath.Join(s.config.Data.OutputDir, outName), items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": fmt.Sprintf("Error generating %s menu JSON: %s", source, err.Error())})
		return
	}

	skipped := len(strings.Split(strings.TrimSpace(string(data)), "\n")) - 1 - count
	if skipped < 0 {
		skipped = 0
	}
	s.monitor.RecordImport(source, count, skipped)
	s.collector.RecordImport(source, count, skipped)

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%s menu JSON generated successfully with %d items", titleCase(source), count),
		"count":   count,
	})
}

// ImportCSV loads both CSV files into the database tables and notifies
// connected clients to refresh.
func (s *Server) ImportCSV(c *gin.Context) {
	foodData, err := os.ReadFile(s.config.Data.FoodCSV)
	if os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Food CSV file not found at %s", s.config.Data.FoodCSV)})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	barData, err := os.ReadFile(s.config.Data.BarCSV)
	if os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Bar CSV file not found at %s", s.config.Data.BarCSV)})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	foodRows := completeRows(menu.FoodCSVRows(string(foodData)))
	barRows := completeRows(menu.BarCSVRows(string(barData)))

	if err := s.store.ImportFood(foodRows); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if err := s.store.ImportBar(barRows); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	s.monitor.RecordImport("food", len(foodRows), 0)
	s.monitor.RecordImport("bar", len(barRows), 0)
	s.collector.RecordImport("food", len(foodRows), 0)
	s.collector.RecordImport("bar", len(barRows), 0)

	s.hub.Broadcast("menu_refresh")

	c.JSON(http.StatusOK, gin.H{
		"message":   "Menu data imported successfully",
		"foodCount": len(foodRows),
		"barCount":  len(barRows),
	})
}

// completeRows drops rows missing a title or category, the same policy
// the conversion endpoints apply.
func completeRows(rows []menu.RawRow) []menu.RawRow {
	out := make([]menu.RawRow, 0, len(rows))
	for _, r := range rows {
		if strings.TrimSpace(r.Title) == "" || strings.TrimSpace(r.Category) == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}

// titleCase upper-cases the first letter of an ASCII word.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// splitParam splits a semicolon-separated query parameter into values.
func splitParam(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// writeJSONFile writes indented JSON, creating the directory if needed.
func writeJSONFile(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
