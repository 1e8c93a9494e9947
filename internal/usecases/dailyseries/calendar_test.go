package dailyseries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/nps-dashboard-api/internal/domain"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		month int
		year  int
		want  int
	}{
		{"Janeiro tem 31 dias", 1, 2025, 31},
		{"Abril tem 30 dias", 4, 2025, 30},
		{"Fevereiro comum tem 28 dias", 2, 2025, 28},
		{"Fevereiro bissexto tem 29 dias", 2, 2024, 29},
		{"Virada de século não bissexta (1900)", 2, 1900, 28},
		{"Virada de século bissexta (2000)", 2, 2000, 29},
		{"Dezembro tem 31 dias", 12, 2023, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysInMonth(tt.month, tt.year))
		})
	}
}

func TestBuildDayGrid(t *testing.T) {
	t.Run("Grade é total: uma entrada por dia do calendário", func(t *testing.T) {
		raw := []*domain.DailyValue{
			{Day: 3, NpsValue: 70, Month: 2, Year: 2024},
			{Day: 29, NpsValue: 55, Month: 2, Year: 2024},
		}

		grid := BuildDayGrid(raw, 2, 2024)

		assert.Len(t, grid, 29)
		for i, point := range grid {
			assert.Equal(t, i+1, point.Day)
		}
		assert.Equal(t, 70, grid[2].Nps)
		assert.Equal(t, 55, grid[28].Nps)
	})

	t.Run("Dias sem linha valem zero", func(t *testing.T) {
		grid := BuildDayGrid(nil, 1, 2025)

		assert.Len(t, grid, 31)
		for _, point := range grid {
			assert.Equal(t, 0, point.Nps)
		}
	})

	t.Run("Valores fora da faixa persistidos são grampeados na leitura", func(t *testing.T) {
		raw := []*domain.DailyValue{
			{Day: 1, NpsValue: 150, Month: 6, Year: 2025},
			{Day: 2, NpsValue: -5, Month: 6, Year: 2025},
			{Day: 3, NpsValue: 100, Month: 6, Year: 2025},
		}

		grid := BuildDayGrid(raw, 6, 2025)

		assert.Equal(t, 100, grid[0].Nps)
		assert.Equal(t, 0, grid[1].Nps)
		assert.Equal(t, 100, grid[2].Nps)
		for _, point := range grid {
			assert.GreaterOrEqual(t, point.Nps, 0)
			assert.LessOrEqual(t, point.Nps, 100)
		}
	})
}
