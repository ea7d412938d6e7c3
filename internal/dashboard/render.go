package dashboard

import (
	"fmt"
	"html/template"
	"io"
	texttemplate "text/template"
)

const pageTitle = "Overview | agents-main Orchestration Suite"

// skeletonCount is how many placeholders a loading section shows.
const skeletonCount = 4

type pageData struct {
	View
	Title         string
	Skeletons     int
	QuickActions  []QuickAction
	LatestReports []Report
}

func newPageData(v View) pageData {
	return pageData{
		View:          v,
		Title:         pageTitle,
		Skeletons:     skeletonCount,
		QuickActions:  QuickActions,
		LatestReports: LatestReports,
	}
}

var funcMap = map[string]interface{}{
	"seq": func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	},
	"runBadge":    RunStatusBadge,
	"workerBadge": WorkerStatusBadge,
	"fmtTime":     FormatTimestamp,
	"pct": func(p *float64) string {
		if p == nil {
			return ""
		}
		return fmt.Sprintf("%d%%", ProgressPercent(*p))
	},
}

var (
	htmlPage = template.Must(template.New("page").Funcs(template.FuncMap(funcMap)).Parse(tmplPage))
	textPage = texttemplate.Must(texttemplate.New("text").Funcs(texttemplate.FuncMap(funcMap)).Parse(tmplText))
)

// RenderHTML writes the overview page.
func RenderHTML(w io.Writer, v View) error {
	return htmlPage.Execute(w, newPageData(v))
}

// RenderText writes a plain-text rendering of the overview for terminals.
func RenderText(w io.Writer, v View) error {
	return textPage.Execute(w, newPageData(v))
}
