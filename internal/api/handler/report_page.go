package handler

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/vfg2006/publimais-api/pkg/utils"
)

func formatCount(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

func formatBRL(v float64) string {
	return "R$ " + strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}

func formatPercent(v float64) string {
	return strings.Replace(fmt.Sprintf("%.2f%%", v), ".", ",", 1)
}

func formatDateBR(t time.Time) string {
	return t.Format(utils.DateLayoutBR)
}

var publicReportPage = template.Must(template.New("public_report").Funcs(template.FuncMap{
	"count":   formatCount,
	"brl":     formatBRL,
	"percent": formatPercent,
	"date":    formatDateBR,
}).Parse(publicReportHTML))

const publicReportHTML = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{ .ReportData.Profile.DisplayName }} | Publi+</title>
<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 0; background: #f6f7fb; color: #1f2430; }
main { max-width: 880px; margin: 0 auto; padding: 32px 16px; }
header { display: flex; gap: 16px; align-items: center; }
header img { width: 72px; height: 72px; border-radius: 50%; object-fit: cover; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr)); gap: 12px; margin: 24px 0; }
.card { background: #fff; border-radius: 12px; padding: 16px; box-shadow: 0 1px 3px rgba(0,0,0,.08); }
.card strong { display: block; font-size: 1.4rem; }
table { width: 100%; border-collapse: collapse; background: #fff; border-radius: 12px; overflow: hidden; }
th, td { padding: 10px 12px; text-align: left; border-bottom: 1px solid #eceef3; }
footer { margin-top: 32px; font-size: .85rem; color: #6b7280; }
</style>
</head>
<body>
<main>
{{ with .ReportData }}
<header>
  {{ with .Profile.AvatarURL }}<img src="{{ . }}" alt="avatar">{{ end }}
  <div>
    <h1>{{ .Profile.DisplayName }}</h1>
    {{ with .Profile.Niche }}<div>{{ . }}</div>{{ end }}
    {{ with .Profile.Location }}<div>{{ . }}</div>{{ end }}
    {{ with .Profile.Bio }}<p>{{ . }}</p>{{ end }}
    {{ with .Profile.Website }}<a href="{{ . }}" rel="noopener">{{ . }}</a>{{ end }}
  </div>
</header>

<section class="cards">
  <div class="card"><span>Seguidores</span><strong>{{ count .Summary.TotalFollowers }}</strong></div>
  <div class="card"><span>Engajamento médio</span><strong>{{ percent .Summary.AvgEngagementRate }}</strong></div>
  <div class="card"><span>Posts analisados</span><strong>{{ .Summary.TotalPosts }}</strong></div>
  <div class="card"><span>Plataformas</span><strong>{{ range $i, $p := .Summary.Platforms }}{{ if $i }}, {{ end }}{{ $p }}{{ end }}</strong></div>
</section>

<section>
  <h2>Engajamento</h2>
  <table>
    <tr><th></th><th>Likes</th><th>Comentários</th><th>Compart.</th><th>Views</th><th>ER</th></tr>
    <tr><td>Orgânico</td><td>{{ count .Engagement.Organic.Likes }}</td><td>{{ count .Engagement.Organic.Comments }}</td><td>{{ count .Engagement.Organic.Shares }}</td><td>{{ count .Engagement.Organic.Views }}</td><td>{{ percent .Engagement.Organic.ER }}</td></tr>
    <tr><td>Campanha</td><td>{{ count .Engagement.Campaign.Likes }}</td><td>{{ count .Engagement.Campaign.Comments }}</td><td>{{ count .Engagement.Campaign.Shares }}</td><td>{{ count .Engagement.Campaign.Views }}</td><td>{{ percent .Engagement.Campaign.ER }}</td></tr>
  </table>
  {{ with .GrowthPeak }}<p>Maior crescimento: {{ .Month }} (+{{ count .Delta }} seguidores, {{ percent .Pct }})</p>{{ end }}
</section>

{{ if .Campaigns }}
<section>
  <h2>Campanhas</h2>
  <table>
    <tr><th>Campanha</th><th>Período</th><th>CTR</th><th>CR</th><th>ROAS</th></tr>
    {{ range .Campaigns }}
    <tr><td>{{ .Campaign.Name }}</td><td>{{ .Campaign.Start }} a {{ .Campaign.End }}</td><td>{{ percent .KPIs.CTR }}</td><td>{{ percent .KPIs.CR }}</td><td>{{ printf "%.2fx" .KPIs.ROAS }}</td></tr>
    {{ end }}
  </table>
</section>
{{ end }}

{{ if .AdPackages }}
<section>
  <h2>Pacotes</h2>
  <table>
    <tr><th>Pacote</th><th>Inclui</th><th>Prazo</th><th>Preço</th></tr>
    {{ range .AdPackages }}
    <tr><td>{{ .Title }}<br><small>{{ .Description }}</small></td><td>{{ range $i, $item := .Includes }}{{ if $i }}, {{ end }}{{ $item }}{{ end }}</td><td>{{ .DeliveryDays }} dias</td><td>{{ brl .Price }}</td></tr>
    {{ end }}
  </table>
</section>
{{ end }}
{{ end }}

<footer>
  Gerado em {{ date .ReportData.GeneratedAt }} · válido até {{ date .ExpiresAt }} · {{ .ViewsCount }} visualizações
</footer>
</main>
</body>
</html>
`
