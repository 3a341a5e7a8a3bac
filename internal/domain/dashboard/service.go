package dashboard

import (
	"context"

	"petmate/internal/domain/carelog"
	"petmate/internal/domain/hospital"
	"petmate/internal/domain/medications"
	"petmate/internal/domain/nutrition"
	"petmate/internal/domain/pets"
	"petmate/internal/platform/clock"
)

// medLookaheadDays es la ventana fija del timeline de tomas, como la
// vista "향후 7일" del original.
const medLookaheadDays = 7

// Service compone los módulos de dominio en las vistas agregadas del
// dashboard. Solo lee snapshots y llama funciones puras; no muta nada.
type Service struct {
	petsSvc *pets.Service
	logsSvc *carelog.Service
	medsSvc *medications.Service
	hospSvc *hospital.Service
	clk     *clock.Clock
}

func NewService(
	petsSvc *pets.Service,
	logsSvc *carelog.Service,
	medsSvc *medications.Service,
	hospSvc *hospital.Service,
	clk *clock.Clock,
) *Service {
	return &Service{
		petsSvc: petsSvc,
		logsSvc: logsSvc,
		medsSvc: medsSvc,
		hospSvc: hospSvc,
		clk:     clk,
	}
}

// TodaySummary es la vista "hoy de un vistazo": raciones recomendadas,
// consumo del día y ratios de adherencia acotados a [0,1].
type TodaySummary struct {
	Date string `json:"date"`

	FoodRecommendedG int     `json:"food_recommended_g"`
	SnackLimitG      int     `json:"snack_limit_g"`
	FoodEatenG       int     `json:"food_eaten_g"`
	FoodAdherence    float64 `json:"food_adherence"`

	WaterRecommendedMl int     `json:"water_recommended_ml"`
	WaterDrankMl       int     `json:"water_drank_ml"`
	WaterAdherence     float64 `json:"water_adherence"`
}

func (s *Service) Today(ctx context.Context, p pets.Pet) (TodaySummary, error) {
	today := s.clk.Today()

	feed, err := s.logsSvc.ListEvents(ctx, p.ID, carelog.KindFeeding)
	if err != nil {
		return TodaySummary{}, err
	}
	water, err := s.logsSvc.ListEvents(ctx, p.ID, carelog.KindWater)
	if err != nil {
		return TodaySummary{}, err
	}

	grams, snack := nutrition.FoodGrams(p.Species, p.WeightKg)
	waterMl := nutrition.WaterMl(p.WeightKg)

	eaten := carelog.DailyTotal(feed, p.ID, today)
	drank := carelog.DailyTotal(water, p.ID, today)

	return TodaySummary{
		Date:               today,
		FoodRecommendedG:   grams,
		SnackLimitG:        snack,
		FoodEatenG:         eaten,
		FoodAdherence:      nutrition.AdherenceRatio(float64(eaten), float64(grams)),
		WaterRecommendedMl: waterMl,
		WaterDrankMl:       drank,
		WaterAdherence:     nutrition.AdherenceRatio(float64(drank), float64(waterMl)),
	}, nil
}

// Trends es la vista de tendencias: series de consumo sobre una ventana
// hacia atrás, historia de peso, tomas próximas y citas futuras.
type Trends struct {
	Window []string `json:"window"`

	FeedSeries  []carelog.DatedTotal `json:"feed_series"`
	WaterSeries []carelog.DatedTotal `json:"water_series"`

	Weights      []carelog.WeightRecord   `json:"weights"`
	Medications  []medications.Occurrence `json:"medications"`
	Appointments []hospital.Appointment   `json:"appointments"`
}

func (s *Service) Trends(ctx context.Context, p pets.Pet, days int) (Trends, error) {
	window := s.clk.TrailingWindow(days)

	feed, err := s.logsSvc.ListEvents(ctx, p.ID, carelog.KindFeeding)
	if err != nil {
		return Trends{}, err
	}
	water, err := s.logsSvc.ListEvents(ctx, p.ID, carelog.KindWater)
	if err != nil {
		return Trends{}, err
	}
	weights, err := s.logsSvc.ListWeights(ctx, p.ID)
	if err != nil {
		return Trends{}, err
	}
	occs, err := s.medsSvc.Upcoming(ctx, p.ID, medLookaheadDays)
	if err != nil {
		return Trends{}, err
	}
	appts, err := s.hospSvc.ListUpcoming(ctx, p.ID)
	if err != nil {
		return Trends{}, err
	}

	return Trends{
		Window:       window,
		FeedSeries:   carelog.WindowedSeries(feed, p.ID, window),
		WaterSeries:  carelog.WindowedSeries(water, p.ID, window),
		Weights:      weights,
		Medications:  occs,
		Appointments: appts,
	}, nil
}

// PetSeries es la serie de consumo de comida de una mascota en la
// comparación multi-mascota.
type PetSeries struct {
	PetID  string               `json:"pet_id"`
	Name   string               `json:"name"`
	Series []carelog.DatedTotal `json:"series"`
}

// Compare arma las series de comida de varias mascotas del mismo dueño
// sobre una ventana compartida. IDs desconocidos o ajenos se omiten sin
// error (tolerancia a referencias colgantes).
func (s *Service) Compare(ctx context.Context, ownerUserID string, petIDs []string, days int) ([]PetSeries, []string, error) {
	window := s.clk.TrailingWindow(days)

	out := make([]PetSeries, 0, len(petIDs))
	for _, id := range petIDs {
		p, err := s.petsSvc.GetByID(ctx, id)
		if err != nil || p.OwnerUserID != ownerUserID {
			continue
		}

		feed, err := s.logsSvc.ListEvents(ctx, p.ID, carelog.KindFeeding)
		if err != nil {
			return nil, nil, err
		}

		out = append(out, PetSeries{
			PetID:  p.ID,
			Name:   p.Name,
			Series: carelog.WindowedSeries(feed, p.ID, window),
		})
	}

	return out, window, nil
}
