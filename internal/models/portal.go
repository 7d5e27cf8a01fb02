package models

// Disaster - активное событие на карте
type Disaster struct {
	ID        int     `json:"id"`
	Type      string  `json:"type"`
	Severity  string  `json:"severity"`
	Location  string  `json:"location"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Reports   int     `json:"reports"`
}

// EnvironmentalFactor - показатель окружающей среды на странице прогнозов
type EnvironmentalFactor struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Weather struct {
	TemperatureC float64 `json:"temperature_c"`
	HumidityPct  int     `json:"humidity_pct"`
	WindSpeedKmh int     `json:"wind_speed_kmh"`
	RainfallMm   float64 `json:"rainfall_mm"`
	Condition    string  `json:"condition,omitempty"`
}

// Shelter - пункт временного размещения
type Shelter struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Current  int    `json:"current"`
	Location string `json:"location"`
}

// Occupancy возвращает долю занятых мест
func (s Shelter) Occupancy() float64 {
	if s.Capacity <= 0 {
		return 0
	}
	return float64(s.Current) / float64(s.Capacity)
}

// NearCapacity сообщает, что заполнено больше 80%
func (s Shelter) NearCapacity() bool {
	return s.Occupancy() > 0.8
}

type Trend struct {
	Value      int  `json:"value"`
	IsPositive bool `json:"is_positive"`
}

// StatCard - карточка со сводным показателем
type StatCard struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	Subtitle string `json:"subtitle,omitempty"`
	Color    string `json:"color,omitempty"`
	Trend    *Trend `json:"trend,omitempty"`
}

type Alert struct {
	Type     string `json:"type"`
	Location string `json:"location"`
	Severity string `json:"severity"`
	Time     string `json:"time"`
}

type DisasterTypeCard struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type FloodForecastDay struct {
	Day        string `json:"day"`
	Risk       int    `json:"risk"`
	RainfallMm int    `json:"rainfall_mm"`
}

type RiskArea struct {
	Area  string `json:"area"`
	Risk  int    `json:"risk"`
	Trend string `json:"trend"`
}

// Insight - вывод прогнозной модели
type Insight struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Confidence  int    `json:"confidence"`
}

// Resource - запас на складе
type Resource struct {
	ID        int    `json:"id"`
	Type      string `json:"type"`
	Available int    `json:"available"`
	Unit      string `json:"unit"`
	Location  string `json:"location"`
	Status    string `json:"status"`
}

// Team - спасательная команда
type Team struct {
	Name     string `json:"name"`
	Members  int    `json:"members"`
	Status   string `json:"status"`
	Location string `json:"location"`
}

type ActivityPoint struct {
	Time    string `json:"time"`
	Reports int    `json:"reports"`
}

// RecentReport - строка ленты последних сообщений на панели администратора
type RecentReport struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Time     string `json:"time"`
	Status   string `json:"status"`
}

// EmergencyContact - телефон экстренной службы
type EmergencyContact struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	Dial   string `json:"dial"`
}
