package config

const defaultCityName = "Moss"

// defaultCities maps Norwegian cities to coordinates and electricity price
// zone. Overridable through CITIES_FILE.
var defaultCities = map[string]City{
	"Moss":         {Lat: 59.43, Lon: 10.66, PowerZone: "NO1"},
	"Oslo":         {Lat: 59.91, Lon: 10.75, PowerZone: "NO1"},
	"Bergen":       {Lat: 60.39, Lon: 5.32, PowerZone: "NO5"},
	"Trondheim":    {Lat: 63.43, Lon: 10.39, PowerZone: "NO3"},
	"Stavanger":    {Lat: 58.97, Lon: 5.73, PowerZone: "NO2"},
	"Tromsø":       {Lat: 69.65, Lon: 18.96, PowerZone: "NO4"},
	"Kristiansand": {Lat: 58.15, Lon: 8.00, PowerZone: "NO2"},
	"Drammen":      {Lat: 59.74, Lon: 10.20, PowerZone: "NO1"},
	"Fredrikstad":  {Lat: 59.22, Lon: 10.93, PowerZone: "NO1"},
	"Sarpsborg":    {Lat: 59.28, Lon: 11.11, PowerZone: "NO1"},
	"Sandnes":      {Lat: 58.85, Lon: 5.74, PowerZone: "NO2"},
	"Bodø":         {Lat: 67.28, Lon: 14.40, PowerZone: "NO4"},
	"Ålesund":      {Lat: 62.47, Lon: 6.15, PowerZone: "NO3"},
	"Tønsberg":     {Lat: 59.27, Lon: 10.41, PowerZone: "NO1"},
	"Haugesund":    {Lat: 59.41, Lon: 5.27, PowerZone: "NO2"},
	"Sandefjord":   {Lat: 59.13, Lon: 10.22, PowerZone: "NO1"},
	"Larvik":       {Lat: 59.05, Lon: 10.03, PowerZone: "NO1"},
	"Halden":       {Lat: 59.12, Lon: 11.39, PowerZone: "NO1"},
	"Lillehammer":  {Lat: 61.12, Lon: 10.47, PowerZone: "NO1"},
	"Molde":        {Lat: 62.74, Lon: 7.16, PowerZone: "NO3"},
	"Hamar":        {Lat: 60.79, Lon: 11.07, PowerZone: "NO1"},
	"Kongsberg":    {Lat: 59.67, Lon: 9.65, PowerZone: "NO1"},
	"Gjøvik":       {Lat: 60.80, Lon: 10.69, PowerZone: "NO1"},
	"Harstad":      {Lat: 68.80, Lon: 16.54, PowerZone: "NO4"},
	"Narvik":       {Lat: 68.44, Lon: 17.43, PowerZone: "NO4"},
	"Alta":         {Lat: 69.97, Lon: 23.27, PowerZone: "NO4"},
	"Hammerfest":   {Lat: 70.66, Lon: 23.68, PowerZone: "NO4"},
	"Kirkenes":     {Lat: 69.73, Lon: 30.05, PowerZone: "NO4"},
}
