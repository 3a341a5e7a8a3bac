package clock

import (
	"time"
)

// DateLayout es el formato de fecha civil usado en todos los logs.
const DateLayout = "2006-01-02"

// DefaultTimezone ancla toda la aritmética de fechas a una sola zona.
// El original siempre calcula "hoy" en hora de Seúl, nunca en UTC ni
// en la zona del host.
const DefaultTimezone = "Asia/Seoul"

// Clock entrega "hoy" como fecha civil en una zona horaria fija.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// New crea un Clock para la zona indicada. Si name está vacío o no se
// puede cargar, cae a DefaultTimezone.
func New(name string) *Clock {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		loc, _ = time.LoadLocation(DefaultTimezone)
	}
	return &Clock{loc: loc, now: time.Now}
}

// NewFixed crea un Clock congelado en un instante (para tests).
func NewFixed(t time.Time, name string) *Clock {
	c := New(name)
	c.now = func() time.Time { return t }
	return c
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Today devuelve la fecha civil de hoy (YYYY-MM-DD) en la zona del Clock.
func (c *Clock) Today() string {
	return c.Now().Format(DateLayout)
}

// TrailingWindow devuelve las últimas n fechas civiles terminando hoy,
// de la más antigua a la más reciente. n <= 0 devuelve slice vacío.
func (c *Clock) TrailingWindow(n int) []string {
	if n <= 0 {
		return []string{}
	}
	today := c.Now()
	out := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, today.AddDate(0, 0, -i).Format(DateLayout))
	}
	return out
}

// ForwardWindow devuelve n fechas civiles empezando hoy (inclusive).
func (c *Clock) ForwardWindow(n int) []string {
	if n <= 0 {
		return []string{}
	}
	today := c.Now()
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, today.AddDate(0, 0, i).Format(DateLayout))
	}
	return out
}

// ValidDate reporta si s es una fecha civil bien formada (YYYY-MM-DD).
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// AddDays suma días a una fecha civil. Asume fecha válida.
func AddDays(date string, days int) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, days).Format(DateLayout)
}
