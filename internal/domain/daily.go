package domain

import (
	"time"
)

// DailyValue representa o NPS percentual de um dia dentro de um mês/ano.
// A chave natural é (day, month, year).
type DailyValue struct {
	ID        int64     `json:"id"`
	Day       int       `json:"day"`
	NpsValue  int       `json:"nps_value"`
	Month     int       `json:"month"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DayPoint é uma entrada da grade densa de dias usada pelo gráfico diário.
// É derivada, nunca persistida.
type DayPoint struct {
	Day int `json:"day"`
	Nps int `json:"nps"`
}
