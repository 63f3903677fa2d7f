package backend

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// Seed loads a db.json-style file (collection name to document list) into
// any collection that is still empty. Collections with data are left alone,
// so reseeding a live store is safe.
func Seed(store *Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var seed map[string][]map[string]any
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("parse seed file %s: %w", path, err)
	}

	for name, docs := range seed {
		if !ValidCollection(name) {
			log.Printf("⚠️  seed: skipping unknown collection %q", name)
			continue
		}
		n, err := store.Count(name)
		if err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		for _, doc := range docs {
			if _, err := store.Create(name, doc); err != nil {
				return fmt.Errorf("seed %s: %w", name, err)
			}
		}
		log.Printf("✅ seeded %s (%d records)", name, len(docs))
	}
	return nil
}
