package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/hosts-concat/src/internal/config"
	"github.com/maksimkurb/hosts-concat/src/internal/hooks"
)

// Tags available in the header template.
const (
	HEADER_TMPL_DATE      = "date"
	HEADER_TMPL_COUNT     = "count"
	HEADER_TMPL_SCAN_FROM = "scanFrom"
	HEADER_TMPL_SAVE_TO   = "saveTo"
)

// newHeaderTransform returns a build transform that prepends the rendered
// header template, followed by the configured line break, to the output.
func newHeaderTransform(header string, now func() time.Time) (hooks.BuildFunc, error) {
	tmpl, err := fasttemplate.NewTemplate(header, "{{", "}}")
	if err != nil {
		return nil, fmt.Errorf("invalid header template: %v", err)
	}

	return func(text string, cfg *config.Config) string {
		count := 0
		if cfg.LineBreak != "" {
			count = strings.Count(text, cfg.LineBreak)
		}

		rendered := tmpl.ExecuteString(map[string]interface{}{
			HEADER_TMPL_DATE:      now().UTC().Format(time.RFC3339),
			HEADER_TMPL_COUNT:     strconv.Itoa(count),
			HEADER_TMPL_SCAN_FROM: cfg.ScanFrom,
			HEADER_TMPL_SAVE_TO:   cfg.SaveTo,
		})
		if !strings.HasSuffix(rendered, cfg.LineBreak) {
			rendered += cfg.LineBreak
		}
		return rendered + text
	}, nil
}
