package fleet

type WeatherSnapshot struct {
	Temperature float64 `groups:"basic"`
	WindSpeed   float64 `groups:"basic"`

	ConditionCode  int    `groups:"basic"`
	ConditionIcon  string `groups:"basic"`
	ConditionLabel string `groups:"basic"`
}

type weatherCondition struct {
	Icon  string
	Label string
}

// WMO weather interpretation codes as reported by the forecast provider
var weatherConditions = map[int]weatherCondition{
	0:  {Icon: "clear", Label: "Clear sky"},
	1:  {Icon: "mostly-clear", Label: "Mainly clear"},
	2:  {Icon: "partly-cloudy", Label: "Partly cloudy"},
	3:  {Icon: "overcast", Label: "Overcast"},
	45: {Icon: "fog", Label: "Fog"},
	48: {Icon: "fog", Label: "Depositing rime fog"},
	51: {Icon: "drizzle", Label: "Light drizzle"},
	53: {Icon: "drizzle", Label: "Moderate drizzle"},
	55: {Icon: "drizzle", Label: "Dense drizzle"},
	61: {Icon: "rain", Label: "Slight rain"},
	63: {Icon: "rain", Label: "Moderate rain"},
	65: {Icon: "rain", Label: "Heavy rain"},
	66: {Icon: "sleet", Label: "Light freezing rain"},
	67: {Icon: "sleet", Label: "Heavy freezing rain"},
	71: {Icon: "snow", Label: "Slight snow"},
	73: {Icon: "snow", Label: "Moderate snow"},
	75: {Icon: "snow", Label: "Heavy snow"},
	77: {Icon: "snow", Label: "Snow grains"},
	80: {Icon: "showers", Label: "Slight rain showers"},
	81: {Icon: "showers", Label: "Moderate rain showers"},
	82: {Icon: "showers", Label: "Violent rain showers"},
	85: {Icon: "snow-showers", Label: "Slight snow showers"},
	86: {Icon: "snow-showers", Label: "Heavy snow showers"},
	95: {Icon: "thunderstorm", Label: "Thunderstorm"},
	96: {Icon: "thunderstorm", Label: "Thunderstorm with slight hail"},
	99: {Icon: "thunderstorm", Label: "Thunderstorm with heavy hail"},
}

var unknownWeatherCondition = weatherCondition{Icon: "unknown", Label: "Unknown"}

// NewWeatherSnapshot normalizes a provider reading, mapping the condition
// code through the closed lookup table with a fallback for codes it does
// not recognize.
func NewWeatherSnapshot(temperature float64, windSpeed float64, conditionCode int) WeatherSnapshot {
	condition, exists := weatherConditions[conditionCode]
	if !exists {
		condition = unknownWeatherCondition
	}

	return WeatherSnapshot{
		Temperature: temperature,
		WindSpeed:   windSpeed,

		ConditionCode:  conditionCode,
		ConditionIcon:  condition.Icon,
		ConditionLabel: condition.Label,
	}
}
