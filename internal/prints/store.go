package prints

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

type catalogFile struct {
	ArtPrints []ArtPrint `json:"artPrints"`
}

// Catalog is the art-print list backed by a single JSON file. Reads degrade
// to an empty catalog; writes replace the whole list atomically.
type Catalog struct {
	path string
}

func NewCatalog(path string) *Catalog {
	return &Catalog{path: path}
}

func (c *Catalog) GetAll() []ArtPrint {
	data, err := os.ReadFile(c.path)
	if err != nil {
		log.Printf("Could not read art prints file: %v", err)
		return []ArtPrint{}
	}
	var doc catalogFile
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("Could not parse art prints file: %v", err)
		return []ArtPrint{}
	}
	if doc.ArtPrints == nil {
		return []ArtPrint{}
	}
	return doc.ArtPrints
}

func (c *Catalog) GetByID(id string) (ArtPrint, bool) {
	for _, p := range c.GetAll() {
		if p.ID == id {
			return p, true
		}
	}
	return ArtPrint{}, false
}

// ReplaceAll overwrites the catalog with the given list.
func (c *Catalog) ReplaceAll(prints []ArtPrint) error {
	if prints == nil {
		prints = []ArtPrint{}
	}
	data, err := json.MarshalIndent(catalogFile{ArtPrints: prints}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal art prints: %w", err)
	}

	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create art prints directory: %w", err)
		}
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write art prints: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write art prints: %w", err)
	}
	return nil
}
