package api

// legalNotice is shown at the bottom of the page. The forecast is mocked;
// result judging relies on JMA open data served through cultivationdata.net.
const legalNotice = "Notice on weather data use: the forecasts on this page currently run on mock data. " +
	"Result announcements are judged against Japan Meteorological Agency open data (via cultivationdata.net). " +
	"This site produces no forecasts of its own and uses the data in accordance with the JMA terms of use."

// indexHTML renders the betting page: yesterday's result panel, then one
// card per forecast day with the two vote buttons and the current odds.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>One-Week Rain Betting Challenge</title>
<style>
  body { font-family: sans-serif; max-width: 640px; margin: 2em auto; padding: 0 1em; }
  .card { border: 1px solid #ccc; border-radius: 6px; padding: 1em; margin: 1em 0; }
  .result-panel { background: #f4f8ff; }
  .vote-buttons form { display: inline; }
  .caption { color: #666; font-size: 0.85em; }
  hr { border: none; border-top: 1px solid #ddd; }
</style>
</head>
<body>
<h1>&#127783;&#65039; One-Week Rain Betting Challenge</h1>
<p>Will it rain tomorrow? Cast your prediction for each of the next seven days and watch the odds move.</p>

<div class="card result-panel">
  <h2>&#127881; Yesterday's Result (mock)</h2>
  <p><strong>Result ({{.Yesterday.Date}}):</strong>
  {{if .Yesterday.IsRainResult}}&#128167; <strong>It rained</strong>{{else}}&#9728;&#65039; <strong>No rain</strong>{{end}}</p>
  <p>Observed precipitation: {{.Yesterday.PrecipitationMM}} mm</p>
  <p class="caption">Data source: mock data (display check only)</p>
</div>

<h2>&#128467;&#65039; Upcoming Rain Challenge</h2>
{{range .Days}}
<div class="card">
  <h3>{{.Forecast.Date}}</h3>
  <p><strong>Mock forecast:</strong>
  {{if .Forecast.IsRainForecast}}&#128167; Rain{{else}}&#9728;&#65039; Clear{{end}}
  ({{.Forecast.PrecipitationMM}} mm)</p>
  <p class="caption">Source: {{.Forecast.Source}}</p>

  <div class="vote-buttons">
    <form method="post" action="/bets">
      <input type="hidden" name="date" value="{{.Forecast.Date}}">
      <input type="hidden" name="category" value="rain">
      <button type="submit">I think it will rain</button>
    </form>
    <form method="post" action="/bets">
      <input type="hidden" name="date" value="{{.Forecast.Date}}">
      <input type="hidden" name="category" value="no_rain">
      <button type="submit">I think it won't</button>
    </form>
  </div>

  {{if gt .Odds.Total 0}}
  <p>Current votes: {{.Odds.Total}}</p>
  <p>"Rain" odds: {{.Odds.RainOdds}} ({{.Odds.RainCount}} votes)<br>
  "No rain" odds: {{.Odds.NoRainOdds}} ({{.Odds.NoRainCount}} votes)</p>
  {{else}}
  <p>No votes yet.</p>
  {{end}}
</div>
{{end}}

<hr>
<p class="caption">{{.Notice}}</p>
</body>
</html>
`
