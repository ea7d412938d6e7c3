package dashboard

import (
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/domain"
)

// View is everything a renderer needs: the raw fetch states plus the
// values derived from them.
type View struct {
	Stats FetchState[domain.StatSummary]      `json:"stats"`
	Run   FetchState[domain.OrchestrationRun] `json:"run"`

	MetricCards     []MetricCard `json:"metricCards"`
	ProgressPercent int          `json:"progressPercent"`
	// StatsLoading: stats neither loaded nor failed.
	StatsLoading bool `json:"statsLoading"`
	// RunLoading: stats loaded, run still pending.
	RunLoading bool `json:"runLoading"`
}

// MetricCard is one of the four headline counters.
type MetricCard struct {
	Label      string `json:"label"`
	Value      int    `json:"value"`
	Annotation string `json:"annotation"`
}

// DisplayValue formats the value with thousands separators.
func (m MetricCard) DisplayValue() string {
	return humanize.Comma(int64(m.Value))
}

// NewView derives presentation values from the two fetch states.
func NewView(stats FetchState[domain.StatSummary], run FetchState[domain.OrchestrationRun]) View {
	v := View{
		Stats:       stats,
		Run:         run,
		MetricCards: metricCards(stats.Data),
	}
	if run.Data != nil {
		v.ProgressPercent = ProgressPercent(run.Data.Progress)
	}
	v.StatsLoading = stats.Phase() == PhasePending
	v.RunLoading = stats.Data != nil && run.Phase() == PhasePending
	return v
}

// ShowWorkerSkeleton reports whether the progress and workers panels show
// loading placeholders. This stays true forever when stats failed, since
// the run is never fetched.
func (v View) ShowWorkerSkeleton() bool {
	return v.RunLoading || v.Run.Data == nil
}

// ProgressPercent converts a [0,1] fraction to a rounded percentage.
func ProgressPercent(progress float64) int {
	return int(math.Round(progress * 100))
}

func metricCards(stats *domain.StatSummary) []MetricCard {
	if stats == nil {
		return []MetricCard{}
	}
	return []MetricCard{
		{Label: "Plugins", Value: stats.Plugins, Annotation: "+8 new this week"},
		{Label: "Agents", Value: stats.Agents, Annotation: "92% active coverage"},
		{Label: "Skills", Value: stats.Skills, Annotation: "18 pending review"},
		{Label: "Orchestrators", Value: stats.Orchestrators, Annotation: "5 maintaining SLAs"},
	}
}

// StatusBadge is the label and colour tone a status renders with.
type StatusBadge struct {
	Label string
	Tone  string
}

var runStatusBadges = map[domain.RunStatus]StatusBadge{
	domain.RunStatusInitializing: {Label: "Initializing", Tone: "sky"},
	domain.RunStatusInProgress:   {Label: "In Progress", Tone: "indigo"},
	domain.RunStatusCompleted:    {Label: "Completed", Tone: "emerald"},
	domain.RunStatusPaused:       {Label: "Paused", Tone: "amber"},
	domain.RunStatusFailed:       {Label: "Failed", Tone: "rose"},
}

var workerStatusTones = map[domain.WorkerStatus]string{
	domain.WorkerStatusActive:   "emerald",
	domain.WorkerStatusQueued:   "sky",
	domain.WorkerStatusOnHold:   "amber",
	domain.WorkerStatusCooldown: "violet",
	domain.WorkerStatusComplete: "slate",
}

// RunStatusBadge returns the badge for a run status. Unknown statuses
// render their raw value in a neutral tone.
func RunStatusBadge(s domain.RunStatus) StatusBadge {
	if b, ok := runStatusBadges[s]; ok {
		return b
	}
	return StatusBadge{Label: string(s), Tone: "slate"}
}

// WorkerStatusBadge returns the badge for a worker status ("on_hold" reads "on hold").
func WorkerStatusBadge(s domain.WorkerStatus) StatusBadge {
	tone, ok := workerStatusTones[s]
	if !ok {
		tone = "slate"
	}
	return StatusBadge{Label: strings.Replace(string(s), "_", " ", 1), Tone: tone}
}

// FormatTimestamp renders a run timestamp like "Feb 17, 9:42 AM" in local time.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format("Jan 2, 3:04 PM")
}

// QuickAction is a navigation shortcut on the overview page.
type QuickAction struct {
	Title       string
	Description string
	Href        string
}

// Report is a link to a published report.
type Report struct {
	Title string
	Date  string
	URL   string
}

// QuickActions lists the overview shortcuts.
var QuickActions = []QuickAction{
	{Title: "Agent Directory", Description: "View orchestration-ready agents and manage availability.", Href: "/agents"},
	{Title: "Workflow Builder", Description: "Design new multi-agent workflows with reusable skills.", Href: "/workflows"},
	{Title: "Skill Library", Description: "Curate vetted skills, prompts, and SOP-backed recipes.", Href: "/skills"},
	{Title: "Analytics", Description: "Audit orchestration runs, SLAs, and efficiency insights.", Href: "/analytics"},
}

// LatestReports lists the most recent reports.
var LatestReports = []Report{
	{Title: "February Run Reliability Digest", Date: "Feb 17, 2025", URL: "https://docs.agents-main.dev/reports/feb-run-digest"},
	{Title: "Agent Safety & Guardrails Playbook", Date: "Feb 15, 2025", URL: "https://docs.agents-main.dev/guides/guardrails"},
	{Title: "Marketplace Partner Onboarding Guide", Date: "Feb 09, 2025", URL: "https://docs.agents-main.dev/marketplace/onboarding"},
}
