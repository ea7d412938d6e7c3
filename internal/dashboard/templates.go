package dashboard

const tmplPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.Title}}</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:system-ui,sans-serif;background:linear-gradient(135deg,#05060c,#0a1627 50%,#111);color:#e2e8f0;min-height:100vh;font-size:14px;line-height:1.5}
a{color:inherit;text-decoration:none}
main{max-width:1280px;margin:0 auto;padding:40px 24px;display:flex;flex-direction:column;gap:40px}
.hero{border-radius:24px;padding:48px;background:linear-gradient(135deg,#6366f1,#9333ea 50%,#3b82f6);color:#fff;display:flex;flex-wrap:wrap;gap:24px;justify-content:space-between;align-items:center}
.hero h1{font-size:40px;font-weight:600;line-height:1.1}
.hero .lede{font-size:17px;color:rgba(255,255,255,.8);max-width:640px}
.eyebrow{font-size:12px;text-transform:uppercase;letter-spacing:.3em;color:rgba(255,255,255,.7)}
.panel .eyebrow{color:#94a3b8}
.btn{display:inline-block;border-radius:999px;padding:12px 24px;font-weight:500;background:#fff;color:#4338ca}
.btn.ghost{background:transparent;color:#fff;border:1px solid rgba(255,255,255,.4)}
.section-head{display:flex;justify-content:space-between;align-items:flex-end;margin-bottom:24px;gap:8px;flex-wrap:wrap}
h2{font-size:20px;font-weight:600;color:#fff}
h3{font-size:24px;font-weight:600;color:#fff;margin-top:8px}
.dim{color:#94a3b8;font-size:13px}
.mono{font-family:ui-monospace,monospace;color:#e2e8f0}
.cards{display:grid;grid-template-columns:repeat(auto-fit,minmax(220px,1fr));gap:16px}
.card{border:1px solid rgba(255,255,255,.1);background:rgba(255,255,255,.05);border-radius:24px;padding:24px;min-height:128px}
.card .lbl{color:#94a3b8}
.card .val{font-size:36px;font-weight:600;color:#fff;margin-top:12px}
.card .note{font-size:11px;text-transform:uppercase;letter-spacing:.05em;color:#c7d2fe;margin-top:16px}
.grid{display:grid;grid-template-columns:1.7fr 1fr;gap:24px}
.panel{border:1px solid rgba(255,255,255,.05);background:rgba(255,255,255,.05);border-radius:24px;padding:32px;display:flex;flex-direction:column;gap:24px}
.panel header{display:flex;justify-content:space-between;gap:16px;flex-wrap:wrap}
.split{display:grid;grid-template-columns:1fr 1fr;gap:24px}
.pill{display:inline-block;border-radius:999px;padding:4px 14px;font-size:11px;font-weight:600;text-transform:uppercase;letter-spacing:.05em;border:1px solid}
.banner{border-radius:24px;padding:16px;border:1px solid}
.sky{border-color:rgba(56,189,248,.3);background:rgba(56,189,248,.1);color:#bae6fd}
.indigo{border-color:rgba(129,140,248,.3);background:rgba(99,102,241,.1);color:#e0e7ff}
.emerald{border-color:rgba(52,211,153,.3);background:rgba(16,185,129,.1);color:#a7f3d0}
.amber{border-color:rgba(251,191,36,.3);background:rgba(245,158,11,.1);color:#fde68a}
.rose{border-color:rgba(251,113,133,.4);background:rgba(244,63,94,.1);color:#fecdd3}
.violet{border-color:rgba(167,139,250,.3);background:rgba(167,139,250,.1);color:#ddd6fe}
.slate{border-color:rgba(148,163,184,.3);background:rgba(148,163,184,.1);color:#e2e8f0}
.track{height:8px;border-radius:999px;background:rgba(255,255,255,.1);flex:1}
.fill{height:100%;border-radius:999px;background:linear-gradient(90deg,#818cf8,#38bdf8,#34d399)}
.progress{display:flex;align-items:center;gap:12px;margin-top:8px}
.facts{border:1px solid rgba(255,255,255,.1);border-radius:24px;padding:16px;display:flex;flex-direction:column;gap:12px;margin-top:24px}
.facts div{display:flex;justify-content:space-between}
.worker{display:flex;justify-content:space-between;align-items:center;gap:16px;border:1px solid rgba(255,255,255,.1);background:rgba(255,255,255,.05);border-radius:24px;padding:16px;margin-top:12px}
.skeleton{background:rgba(255,255,255,.08);border-color:rgba(255,255,255,.05);animation:pulse 2s infinite}
.skeleton.bar{height:20px;width:192px;border-radius:999px}
.skeleton.block{height:64px;border-radius:24px;margin-top:24px}
.skeleton.pill{height:32px;width:128px}
.skeleton.row{height:64px;border-radius:16px;margin-top:12px}
aside{display:flex;flex-direction:column;gap:24px}
aside h4{font-size:13px;font-weight:600;text-transform:uppercase;letter-spacing:.25em;color:#cbd5e1}
aside li{list-style:none}
.action,.report{display:block;border-radius:24px;padding:16px;margin-top:12px}
.action:hover,.report:hover{background:rgba(255,255,255,.05)}
.action strong,.report strong{color:#fff;display:block}
@keyframes pulse{50%{opacity:.5}}
@media (max-width:1100px){.grid,.split{grid-template-columns:1fr}}
</style>
</head>
<body>
<main>
<section class="hero">
  <div>
    <p class="eyebrow">agents-main</p>
    <h1>Orchestration Suite Command Center</h1>
    <p class="lede">Monitor active runs, align distributed workers, and launch new automations across your agent fleet from a single control surface.</p>
  </div>
  <div>
    <a class="btn" href="/marketplace">Open Marketplace</a>
    <a class="btn ghost" href="/workflows">Start Workflow</a>
  </div>
</section>

<section>
  <div class="section-head">
    <div>
      <h2>Operational Snapshot</h2>
      <p class="dim">Live estate metrics sourced directly from the orchestration runtime.</p>
    </div>
    {{with .Stats.Error}}<span class="pill rose" data-role="stats-error">{{.}}</span>{{end}}
  </div>
  <div class="cards">
  {{- if .StatsLoading}}
    {{range seq $.Skeletons}}<div class="card skeleton" data-role="stat-skeleton"></div>{{end}}
  {{- else}}
    {{range .MetricCards}}
    <article class="card" data-role="metric">
      <p class="lbl">{{.Label}}</p>
      <p class="val">{{.DisplayValue}}</p>
      <p class="note">{{.Annotation}}</p>
    </article>
    {{end}}
  {{- end}}
  </div>
</section>

<section class="grid">
  <article class="panel">
    <header>
      <div>
        <p class="eyebrow">Active Orchestration Plan</p>
        <h3>{{with .Stats.Data}}{{.ActivePlanName}}{{else}}Loading plan…{{end}}</h3>
        {{with .Stats.Data}}<p class="dim">Run ID: <span class="mono">{{.ActiveRunID}}</span></p>{{end}}
      </div>
      {{if .RunLoading}}<div class="pill skeleton"></div>{{else}}{{with .Run.Data}}{{$badge := runBadge .Status}}<span class="pill {{$badge.Tone}}" data-role="run-status">{{$badge.Label}}</span>{{end}}{{end}}
    </header>

    {{with .Run.Error}}<div class="banner rose" data-role="run-error">{{.}}</div>{{end}}

    <div class="split">
      <div>
      {{- if .ShowWorkerSkeleton}}
        <div class="skeleton bar"></div>
        <div class="skeleton block"></div>
      {{- else}}{{with .Run.Data}}
        <p class="dim">Progress</p>
        <div class="progress">
          <div class="track"><div class="fill" style="width: {{$.ProgressPercent}}%"></div></div>
          <strong data-role="progress">{{$.ProgressPercent}}%</strong>
        </div>
        <div class="facts">
          <div><span class="dim">Started</span><span>{{fmtTime .StartedAt}}</span></div>
          <div><span class="dim">Last Update</span><span>{{fmtTime .UpdatedAt}}</span></div>
          <div><span class="dim">SLA Window</span><span>{{.SLAMinutes}} min</span></div>
        </div>
      {{- end}}{{end}}
      </div>
      <div>
        <p class="dim">Current Workers</p>
      {{- if .ShowWorkerSkeleton}}
        {{range seq $.Skeletons}}<div class="skeleton row" data-role="worker-skeleton"></div>{{end}}
      {{- else}}{{with .Run.Data}}
        {{range .Workers}}{{$badge := workerBadge .Status}}
        <div class="worker" data-role="worker" data-worker-id="{{.ID}}">
          <div>
            <strong>{{.Label}}</strong>
            <p class="dim">ETA: {{.ETA}}</p>
          </div>
          <span class="pill {{$badge.Tone}}">{{$badge.Label}}</span>
        </div>
        {{end}}
      {{- end}}{{end}}
      </div>
    </div>
  </article>

  <aside>
    <div class="panel">
      <h4>Quick Actions</h4>
      <div>
      {{range .QuickActions}}
        <a class="action" href="{{.Href}}"><strong>{{.Title}}</strong><span class="dim">{{.Description}}</span></a>
      {{end}}
      </div>
    </div>
    <div class="panel">
      <h4>Latest Reports</h4>
      <ul>
      {{range .LatestReports}}
        <li><a class="report" href="{{.URL}}" target="_blank" rel="noopener noreferrer"><strong>{{.Title}}</strong><span class="dim">{{.Date}}</span></a></li>
      {{end}}
      </ul>
    </div>
  </aside>
</section>
</main>
</body>
</html>
`

const tmplText = `ORCHESTRATION SUITE COMMAND CENTER
==================================

Operational Snapshot
{{- with .Stats.Error}}  [{{.}}]{{end}}
{{- if .StatsLoading}}
  loading…
{{- else}}
{{- range .MetricCards}}
  {{printf "%-14s" .Label}} {{printf "%8s" .DisplayValue}}   {{.Annotation}}
{{- end}}
{{- end}}

Active Orchestration Plan
  {{with .Stats.Data}}{{.ActivePlanName}}
  Run ID: {{.ActiveRunID}}{{else}}Loading plan…{{end}}
{{- with .Run.Error}}
  ! {{.}}
{{- end}}
{{- if .ShowWorkerSkeleton}}
  progress: loading…
  workers:  loading…
{{- else}}{{with .Run.Data}}
  Status:      {{(runBadge .Status).Label}}
  Progress:    {{$.ProgressPercent}}%
  Started:     {{fmtTime .StartedAt}}
  Last Update: {{fmtTime .UpdatedAt}}
  SLA Window:  {{.SLAMinutes}} min

Current Workers
{{- range .Workers}}
  {{printf "%-26s" .Label}} {{printf "%-10s" (workerBadge .Status).Label}} ETA: {{.ETA}}{{with pct .Progress}} ({{.}}){{end}}
{{- end}}
{{- end}}{{end}}
`
