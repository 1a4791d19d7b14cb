package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const openMeteoURL = "https://api.open-meteo.com/v1/forecast"

// WeatherTool reports current conditions at coordinates via Open-Meteo
type WeatherTool struct {
	BaseTool
	baseURL string
	client  *http.Client
}

// NewWeatherTool creates the weather lookup tool
func NewWeatherTool() *WeatherTool {
	params := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"latitude": map[string]interface{}{
				"type":        "number",
				"description": "Latitude in decimal degrees (-90 to 90)",
			},
			"longitude": map[string]interface{}{
				"type":        "number",
				"description": "Longitude in decimal degrees (-180 to 180)",
			},
		},
		"required": []string{"latitude", "longitude"},
	}

	return &WeatherTool{
		BaseTool: NewBaseTool(
			"get_weather",
			"Current weather at coordinates via Open-Meteo. Returns temperature, wind speed, and conditions.",
			params,
		),
		baseURL: openMeteoURL,
		client:  newHTTPClient(DefaultTimeout),
	}
}

func (t *WeatherTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	lat, ok := toFloat(args["latitude"])
	if !ok {
		return nil, fmt.Errorf("latitude parameter is required")
	}
	lon, ok := toFloat(args["longitude"])
	if !ok {
		return nil, fmt.Errorf("longitude parameter is required")
	}
	if lat < -90 || lat > 90 {
		return nil, fmt.Errorf("latitude out of range: %v", lat)
	}
	if lon < -180 || lon > 180 {
		return nil, fmt.Errorf("longitude out of range: %v", lon)
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("current", "temperature_2m,weather_code,wind_speed_10m")
	params.Set("timezone", "auto")

	var meteoResp struct {
		Current struct {
			Temperature float64 `json:"temperature_2m"`
			WeatherCode int     `json:"weather_code"`
			WindSpeed   float64 `json:"wind_speed_10m"`
		} `json:"current"`
	}

	if err := getJSON(ctx, t.client, t.baseURL, params, &meteoResp); err != nil {
		return errResult(err), nil
	}

	cur := meteoResp.Current
	return map[string]interface{}{
		"ok":             true,
		"temperature":    cur.Temperature,
		"wind_speed_kmh": cur.WindSpeed,
		"weather_code":   cur.WeatherCode,
		"description":    describeWeatherCode(cur.WeatherCode),
	}, nil
}

// describeWeatherCode maps a WMO weather code to a short human description
func describeWeatherCode(code int) string {
	switch code {
	case 0:
		return "clear sky"
	case 1:
		return "mainly clear"
	case 2:
		return "partly cloudy"
	case 3:
		return "overcast"
	case 45, 48:
		return "foggy"
	case 51, 53, 55:
		return "drizzle"
	case 56, 57:
		return "freezing drizzle"
	case 61, 63, 65:
		return "rain"
	case 66, 67:
		return "freezing rain"
	case 71, 73, 75, 77:
		return "snow"
	case 80, 81, 82:
		return "rain showers"
	case 85, 86:
		return "snow showers"
	case 95:
		return "thunderstorm"
	case 96, 99:
		return "thunderstorm with hail"
	default:
		return "unknown conditions"
	}
}

// toFloat accepts the numeric shapes JSON decoding can hand us
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
