package converter

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-markdoc/internal/util"
	"github.com/goliatone/go-markdoc/pkg/interfaces"
)

// outputTimeFormat matches the timestamp prefix applied to output artifacts
// so repeated conversions never overwrite one another.
const outputTimeFormat = "2006-01-02_15-04-05"

// outputFileName derives "<stamp>_<base>.docx" from the source file name,
// falling back to the document title and finally a fixed name. The base is
// slug-normalised to keep artifact names filesystem-safe.
func (s *Service) outputFileName(req interfaces.ConvertRequest, meta interfaces.Metadata) string {
	base := strings.TrimSuffix(filepath.Base(req.SourcePath), filepath.Ext(req.SourcePath))
	if base == "." || base == string(filepath.Separator) {
		base = ""
	}
	title := ""
	if meta.HasTitle() {
		title = meta.Title
	}
	base = util.FirstNonEmpty(normalizeBase(base), normalizeBase(title), "document")

	if !s.cfg.TimestampNames {
		return base + ".docx"
	}
	return s.now().Format(outputTimeFormat) + "_" + base + ".docx"
}

func normalizeBase(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	normalized, err := slug.Normalize(value)
	if err != nil || normalized == "" {
		return value
	}
	return normalized
}

func sortedNames(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
