package catalog

import (
	"slices"

	"github.com/shenikar/disaster_portal/internal/models"
)

const FilterAll = "all"

var mapFilters = []string{FilterAll, "flood", "landslide", "fire", "cyclone"}

// MapFilters возвращает фильтры карты в порядке отображения
func MapFilters() []string {
	return slices.Clone(mapFilters)
}

// IsMapFilter проверяет, что фильтр известен карте
func IsMapFilter(f string) bool {
	return slices.Contains(mapFilters, f)
}

// ToggleFilter переключает фильтр в списке активных.
// "all" сбрасывает выбор, повторный выбор снимает фильтр,
// пустой результат превращается в [all].
func ToggleFilter(active []string, filter string) []string {
	if filter == FilterAll {
		return []string{FilterAll}
	}

	if slices.Contains(active, filter) {
		next := make([]string, 0, len(active))
		for _, f := range active {
			if f != filter && f != FilterAll {
				next = append(next, f)
			}
		}
		if len(next) == 0 {
			return []string{FilterAll}
		}
		return next
	}

	next := make([]string, 0, len(active)+1)
	for _, f := range active {
		if f != FilterAll {
			next = append(next, f)
		}
	}
	return append(next, filter)
}

// NormalizeFilters убирает неизвестные и повторные фильтры
func NormalizeFilters(active []string) []string {
	next := make([]string, 0, len(active))
	for _, f := range active {
		if !IsMapFilter(f) || slices.Contains(next, f) {
			continue
		}
		if f == FilterAll {
			return []string{FilterAll}
		}
		next = append(next, f)
	}
	if len(next) == 0 {
		return []string{FilterAll}
	}
	return next
}

// FilterDisasters оставляет события, подходящие под активные фильтры
func FilterDisasters(disasters []models.Disaster, active []string) []models.Disaster {
	if len(active) == 0 || slices.Contains(active, FilterAll) {
		return disasters
	}
	out := make([]models.Disaster, 0, len(disasters))
	for _, d := range disasters {
		if slices.Contains(active, d.Type) {
			out = append(out, d)
		}
	}
	return out
}

// NearCapacity возвращает убежища, заполненные более чем на 80%
func NearCapacity(shelters []models.Shelter) []models.Shelter {
	var out []models.Shelter
	for _, s := range shelters {
		if s.NearCapacity() {
			out = append(out, s)
		}
	}
	return out
}
