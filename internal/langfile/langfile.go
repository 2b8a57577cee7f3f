package langfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"vue-i18n-extractor/internal/catalog"

	"github.com/rs/zerolog/log"
)

// Dir is the subdirectory of the output root holding generated modules.
const Dir = "lang"

// WriteModules writes the accumulated catalog as two ES modules,
// lang/zh.js and lang/en.js, each exporting a single default object that
// maps every translation key to its recorded text. JSON object keys come
// out sorted, so repeated runs over the same tree produce identical files.
func WriteModules(outputRoot string, cat *catalog.Catalog) error {
	dir := filepath.Join(outputRoot, Dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create lang directory: %w", err)
	}

	if err := writeModule(filepath.Join(dir, "zh.js"), cat.Source); err != nil {
		return err
	}
	if err := writeModule(filepath.Join(dir, "en.js"), cat.Target); err != nil {
		return err
	}

	log.Info().Int("entries", cat.Len()).Str("dir", dir).Msg("Wrote translation modules")
	return nil
}

func writeModule(path string, table map[string]string) error {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal translation table: %w", err)
	}

	content := append([]byte("export default "), data...)
	content = append(content, '\n')

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
