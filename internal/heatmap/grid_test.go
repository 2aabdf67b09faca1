package heatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/urban_incident_system/internal/models"
)

func loc(lat, lng float64) models.IncidentLocation {
	return models.IncidentLocation{Latitude: lat, Longitude: lng}
}

func TestAggregate_TwoCellsDifferentDensity(t *testing.T) {
	grid := NewGrid(DefaultCellSize, DefaultRadius)
	points := []models.IncidentLocation{
		loc(-12.0464, -77.0428),
		loc(-12.0464, -77.0428),
		loc(-12.0464, -77.0428),
		loc(-12.10, -77.10),
	}

	cells := grid.Aggregate(points)

	require.Len(t, cells, 2)
	byCount := map[int]Cell{}
	for _, c := range cells {
		byCount[c.Count] = c
	}
	require.Contains(t, byCount, 3)
	require.Contains(t, byCount, 1)
	assert.Equal(t, 1.0, byCount[3].Intensity)
	assert.Equal(t, 0.0, byCount[1].Intensity)
	assert.Equal(t, 1.0, MaxIntensity(cells))
}

func TestAggregate_EqualDensityIsFullIntensity(t *testing.T) {
	grid := NewGrid(DefaultCellSize, DefaultRadius)
	points := []models.IncidentLocation{
		loc(-12.0464, -77.0428),
		loc(-12.10, -77.10),
		loc(-11.90, -76.95),
	}

	cells := grid.Aggregate(points)

	require.Len(t, cells, 3)
	for _, c := range cells {
		assert.Equal(t, 1.0, c.Intensity)
		assert.Equal(t, 1, c.Count)
	}
}

func TestAggregate_SingleCell(t *testing.T) {
	grid := NewGrid(DefaultCellSize, DefaultRadius)

	cells := grid.Aggregate([]models.IncidentLocation{loc(10, 10), loc(10.0001, 10.0001)})

	require.Len(t, cells, 1)
	assert.Equal(t, 2, cells[0].Count)
	assert.Equal(t, 1.0, cells[0].Intensity)
}

func TestAggregate_NormalizationRange(t *testing.T) {
	grid := NewGrid(0.01, DefaultRadius)
	var points []models.IncidentLocation
	// ячейки с количеством 1, 2, 4 и 7
	for i, n := range []int{1, 2, 4, 7} {
		for j := 0; j < n; j++ {
			points = append(points, loc(float64(i)+0.005, 0.005))
		}
	}

	cells := grid.Aggregate(points)

	require.Len(t, cells, 4)
	got := map[int]float64{}
	minI, maxI := 1.0, 0.0
	for _, c := range cells {
		got[c.Count] = c.Intensity
		minI = min(minI, c.Intensity)
		maxI = max(maxI, c.Intensity)
	}
	assert.Equal(t, 0.0, minI)
	assert.Equal(t, 1.0, maxI)
	assert.Equal(t, 0.17, got[2]) // 1/6 округляется до 0.17
	assert.Equal(t, 0.5, got[4])
}

func TestAggregate_Empty(t *testing.T) {
	grid := NewGrid(DefaultCellSize, DefaultRadius)
	assert.Empty(t, grid.Aggregate(nil))
}

func TestKey_IndependentOfBatch(t *testing.T) {
	grid := NewGrid(DefaultCellSize, DefaultRadius)
	p := loc(-12.0464, -77.0428)

	alone := grid.Aggregate([]models.IncidentLocation{p})
	withOthers := grid.Aggregate([]models.IncidentLocation{p, loc(40.7, -74.0), loc(-33.9, 151.2)})

	key := grid.Key(p.Latitude, p.Longitude)
	require.Len(t, alone, 1)
	assert.Equal(t, key, alone[0].Key)

	found := false
	for _, c := range withOthers {
		if c.Key == key {
			found = true
			assert.Equal(t, alone[0].CenterLat, c.CenterLat)
			assert.Equal(t, alone[0].CenterLng, c.CenterLng)
		}
	}
	assert.True(t, found)
}

func TestKey_NegativeCoordinatesFloor(t *testing.T) {
	grid := NewGrid(1, DefaultRadius)

	assert.Equal(t, CellKey{Row: -1, Col: -1}, grid.Key(-0.5, -0.5))
	assert.Equal(t, CellKey{Row: 0, Col: 0}, grid.Key(0.5, 0.5))
	assert.Equal(t, CellKey{Row: -13, Col: -78}, grid.Key(-12.0464, -77.0428))
}

func TestCenter(t *testing.T) {
	grid := NewGrid(0.5, DefaultRadius)

	lat, lng := grid.Center(CellKey{Row: 2, Col: -3})

	assert.InDelta(t, 1.25, lat, 1e-9)
	assert.InDelta(t, -1.25, lng, 1e-9)
}

func TestBounds(t *testing.T) {
	box := Bounds([]models.IncidentLocation{
		loc(-12.0464, -77.0428),
		loc(-12.10, -77.10),
		loc(-11.95, -77.05),
	})

	assert.Equal(t, models.BoundingBox{MinLat: -12.10, MaxLat: -11.95, MinLng: -77.10, MaxLng: -77.0428}, box)
}

func TestNewGrid_Defaults(t *testing.T) {
	grid := NewGrid(0, 0)
	assert.Equal(t, DefaultCellSize, grid.CellSize)
	assert.Equal(t, DefaultRadius, grid.Radius)
}
