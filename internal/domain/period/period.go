// Package period resolve limites de períodos de relatório (semana, mês,
// trimestre, ano) a partir de um instante de referência e um deslocamento.
package period

import (
	"fmt"
	"strconv"
	"time"

	appErrors "finsight/internal/errors"
)

type Granularity string

const (
	Weekly    Granularity = "weekly"
	Monthly   Granularity = "monthly"
	Quarterly Granularity = "quarterly"
	Yearly    Granularity = "yearly"
)

func (g Granularity) Valid() bool {
	switch g {
	case Weekly, Monthly, Quarterly, Yearly:
		return true
	}
	return false
}

func ParseGranularity(s string) (Granularity, error) {
	g := Granularity(s)
	if !g.Valid() {
		return "", appErrors.NewValidationError("granularity", "deve ser weekly, monthly, quarterly ou yearly")
	}
	return g, nil
}

// Info descreve um período resolvido. Derivado, nunca persistido: é
// recalculado a cada consulta.
type Info struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Label  string    `json:"label"`
	Offset int       `json:"offset"`
}

// Resolve calcula os limites do período. Offset 0 é o período corrente e
// valores positivos recuam períodos inteiros; para mês/trimestre/ano o
// deslocamento é aplicado antes de tomar o período que contém o instante,
// de modo que o resultado nunca é um período fracionado. Semanas começam
// na segunda-feira.
func Resolve(g Granularity, offset int, now time.Time) Info {
	var start, end time.Time
	var label string

	switch g {
	case Weekly:
		daysFromMonday := (int(now.Weekday()) + 6) % 7
		weekStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		weekStart = weekStart.AddDate(0, 0, -daysFromMonday)
		start = weekStart.AddDate(0, 0, -offset*7)
		end = endOfDay(start.AddDate(0, 0, 6))
		label = fmt.Sprintf("%s - %s", start.Format("Jan 02"), end.Format("Jan 02, 2006"))
	case Quarterly:
		quarterIndex := now.Year()*4 + (int(now.Month())-1)/3 - offset
		year, q := quarterIndex/4, quarterIndex%4
		start = time.Date(year, time.Month(q*3+1), 1, 0, 0, 0, 0, now.Location())
		end = endOfDay(start.AddDate(0, 3, -1))
		label = fmt.Sprintf("Q%d %d", q+1, year)
	case Yearly:
		year := now.Year() - offset
		start = time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location())
		end = endOfDay(time.Date(year, time.December, 31, 0, 0, 0, 0, now.Location()))
		label = strconv.Itoa(year)
	default: // Monthly
		monthIndex := now.Year()*12 + int(now.Month()) - 1 - offset
		year, m := monthIndex/12, monthIndex%12
		start = time.Date(year, time.Month(m+1), 1, 0, 0, 0, 0, now.Location())
		end = endOfDay(start.AddDate(0, 1, -1))
		label = start.Format("Jan 2006")
	}

	return Info{Start: start, End: end, Label: label, Offset: offset}
}

// Previous resolve o período da mesma granularidade imediatamente anterior,
// ancorado no início do período exibido e não no relógio de parede.
func Previous(g Granularity, p Info) Info {
	return Resolve(g, 1, p.Start)
}

// IsCurrent compara os limites resolvidos com os limites do offset 0 para o
// mesmo instante de referência, e não diretamente com o relógio.
func IsCurrent(g Granularity, p Info, now time.Time) bool {
	current := Resolve(g, 0, now)
	return p.Start.Equal(current.Start) && p.End.Equal(current.End)
}

// Contains verifica se o instante cai dentro do período, inclusivo nas bordas.
func Contains(p Info, t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
