package dailyseries

import (
	"time"

	"github.com/vfg2006/nps-dashboard-api/internal/domain"
	"github.com/vfg2006/nps-dashboard-api/pkg/utils"
)

// DaysInMonth retorna o número de dias do mês no calendário gregoriano.
// O dia 0 do mês seguinte normaliza para o último dia do mês pedido, o que
// cobre anos bissextos sem tabela de consulta.
func DaysInMonth(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// BuildDayGrid deriva a grade densa do gráfico diário: exatamente uma entrada
// por dia do calendário, dias sem linha valem 0 e todo valor é grampeado em
// [0, 100] na leitura — valores fora da faixa já persistidos continuam
// exibíveis. A grade é derivada, nunca armazenada.
func BuildDayGrid(raw []*domain.DailyValue, month, year int) []domain.DayPoint {
	byDay := make(map[int]int, len(raw))
	for _, value := range raw {
		byDay[value.Day] = value.NpsValue
	}

	days := DaysInMonth(month, year)
	grid := make([]domain.DayPoint, 0, days)
	for day := 1; day <= days; day++ {
		grid = append(grid, domain.DayPoint{
			Day: day,
			Nps: utils.ClampNps(byDay[day]),
		})
	}

	return grid
}
