package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"os"
)

func main() {
	fmt.Println("Rain Betting API Client Example")
	fmt.Println("===============================")

	// Base URL for the API
	baseURL := "http://localhost:8080"

	// A cookie jar keeps us inside one betting session across requests
	jar, err := cookiejar.New(nil)
	if err != nil {
		fmt.Printf("Error creating cookie jar: %v\n", err)
		os.Exit(1)
	}
	client := &http.Client{Jar: jar}

	// Fetch the week's forecast
	fmt.Println("\nFetching the weekly forecast...")
	forecastResp, err := client.Get(baseURL + "/api/forecast")
	if err != nil {
		fmt.Printf("Error fetching forecast: %v\n", err)
		os.Exit(1)
	}
	defer forecastResp.Body.Close()

	var forecastData map[string]interface{}
	forecastBody, _ := io.ReadAll(forecastResp.Body)
	json.Unmarshal(forecastBody, &forecastData)

	forecasts, ok := forecastData["forecasts"].([]interface{})
	if !ok || len(forecasts) == 0 {
		fmt.Println("No forecast days available.")
		return
	}

	for _, item := range forecasts {
		day := item.(map[string]interface{})
		fmt.Printf("  %s  rain=%v  (%v mm)\n", day["date"], day["isRainForecast"], day["precipitationMm"])
	}

	// Bet on the first day
	firstDay := forecasts[0].(map[string]interface{})
	date := firstDay["date"].(string)
	fmt.Printf("\nBetting 'rain' on %s...\n", date)

	betPayload, _ := json.Marshal(map[string]string{"date": date, "category": "rain"})
	betResp, err := client.Post(baseURL+"/api/bets", "application/json", bytes.NewReader(betPayload))
	if err != nil {
		fmt.Printf("Error recording bet: %v\n", err)
		os.Exit(1)
	}
	defer betResp.Body.Close()

	betBody, _ := io.ReadAll(betResp.Body)
	var betData map[string]interface{}
	json.Unmarshal(betBody, &betData)

	prettyJSON, _ := json.MarshalIndent(betData, "", "  ")
	fmt.Printf("\nUpdated odds after the bet:\n%s\n", string(prettyJSON))

	// Look up the odds directly
	oddsResp, err := client.Get(fmt.Sprintf("%s/api/odds/%s", baseURL, date))
	if err != nil {
		fmt.Printf("Error fetching odds: %v\n", err)
		os.Exit(1)
	}
	defer oddsResp.Body.Close()

	oddsBody, _ := io.ReadAll(oddsResp.Body)
	var oddsData map[string]interface{}
	json.Unmarshal(oddsBody, &oddsData)

	prettyJSON, _ = json.MarshalIndent(oddsData, "", "  ")
	fmt.Printf("\nOdds for %s:\n%s\n", date, string(prettyJSON))
}
