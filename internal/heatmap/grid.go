// Package heatmap реализует сеточную кластеризацию инцидентов для тепловой карты.
//
// Ячейки привязаны к глобальному началу координат (0, 0), а не к границам выборки,
// поэтому одна и та же точка всегда попадает в одну и ту же ячейку. Размер ячейки задан
// в градусах: ширина ячейки в метрах уменьшается с ростом широты.
package heatmap

import (
	"math"
	"sort"

	"github.com/shenikar/urban_incident_system/internal/models"
)

const (
	// DefaultCellSize ~500 м на экваторе
	DefaultCellSize = 0.0045
	// DefaultRadius радиус отображения точки в метрах
	DefaultRadius = 500
)

// Grid - параметры сетки
type Grid struct {
	CellSize float64
	Radius   int
}

// CellKey - целочисленные индексы ячейки
type CellKey struct {
	Row int64
	Col int64
}

// Cell - занятая ячейка сетки
type Cell struct {
	Key       CellKey
	CenterLat float64
	CenterLng float64
	Count     int
	Intensity float64
}

func NewGrid(cellSize float64, radius int) Grid {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	if radius <= 0 {
		radius = DefaultRadius
	}
	return Grid{CellSize: cellSize, Radius: radius}
}

// Key возвращает ячейку для точки: (floor(lat/G), floor(lng/G))
func (g Grid) Key(lat, lng float64) CellKey {
	return CellKey{
		Row: int64(math.Floor(lat / g.CellSize)),
		Col: int64(math.Floor(lng / g.CellSize)),
	}
}

// Origin возвращает юго-западный угол ячейки
func (g Grid) Origin(k CellKey) (lat, lng float64) {
	return float64(k.Row) * g.CellSize, float64(k.Col) * g.CellSize
}

// Center возвращает центр ячейки
func (g Grid) Center(k CellKey) (lat, lng float64) {
	lat, lng = g.Origin(k)
	return lat + g.CellSize/2, lng + g.CellSize/2
}

// Aggregate группирует точки по ячейкам и нормализует интенсивность.
// Результат упорядочен по ключу ячейки.
func (g Grid) Aggregate(points []models.IncidentLocation) []Cell {
	if len(points) == 0 {
		return nil
	}

	counts := make(map[CellKey]int)
	for _, p := range points {
		counts[g.Key(p.Latitude, p.Longitude)]++
	}

	minCount, maxCount := math.MaxInt, 0
	for _, c := range counts {
		minCount = min(minCount, c)
		maxCount = max(maxCount, c)
	}

	cells := make([]Cell, 0, len(counts))
	for key, count := range counts {
		lat, lng := g.Center(key)
		cells = append(cells, Cell{
			Key:       key,
			CenterLat: lat,
			CenterLng: lng,
			Count:     count,
			Intensity: normalize(count, minCount, maxCount),
		})
	}

	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Key.Row != cells[j].Key.Row {
			return cells[i].Key.Row < cells[j].Key.Row
		}
		return cells[i].Key.Col < cells[j].Key.Col
	})
	return cells
}

// normalize: 1.0 при одинаковой плотности всех ячеек, иначе (count-min)/(max-min), 2 знака
func normalize(count, minCount, maxCount int) float64 {
	if minCount == maxCount {
		return 1.0
	}
	v := float64(count-minCount) / float64(maxCount-minCount)
	return math.Round(v*100) / 100
}

// Bounds вычисляет ограничивающий прямоугольник точек
func Bounds(points []models.IncidentLocation) models.BoundingBox {
	if len(points) == 0 {
		return models.BoundingBox{}
	}
	box := models.BoundingBox{
		MinLat: points[0].Latitude,
		MaxLat: points[0].Latitude,
		MinLng: points[0].Longitude,
		MaxLng: points[0].Longitude,
	}
	for _, p := range points[1:] {
		box.MinLat = math.Min(box.MinLat, p.Latitude)
		box.MaxLat = math.Max(box.MaxLat, p.Latitude)
		box.MinLng = math.Min(box.MinLng, p.Longitude)
		box.MaxLng = math.Max(box.MaxLng, p.Longitude)
	}
	return box
}

// MaxIntensity возвращает максимальную интенсивность среди ячеек
func MaxIntensity(cells []Cell) float64 {
	var m float64
	for _, c := range cells {
		m = math.Max(m, c.Intensity)
	}
	return m
}
