// Package jsonfile persiste todas las colecciones en un único documento
// JSON en disco. Pensado para uso personal o demos sin base de datos:
// cada escritura reescribe el archivo completo.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"petmate/internal/domain/carelog"
	"petmate/internal/domain/hospital"
	"petmate/internal/domain/medications"
	"petmate/internal/domain/pets"
	"petmate/internal/domain/unsafeitems"
	"petmate/internal/domain/users"
)

const storeFile = "petmate.json"

var ErrNotFound = errors.New("record not found")

// document es el layout on-disk. Los structs de dominio sin tags JSON
// tienen acá su record de persistencia con nombres snake_case.
type document struct {
	Version int `json:"version"`

	Users map[string]userRecord `json:"users"`
	Pets  map[string]petRecord  `json:"pets"`

	Events  []eventRecord          `json:"events"`
	Weights []carelog.WeightRecord `json:"weights"`

	Medications  map[string]scheduleRecord    `json:"medications"`
	Appointments map[string]hospital.Appointment `json:"appointments"`

	UnsafeItems []itemRecord `json:"unsafe_items"`
}

// Store es el dueño del archivo. Un mutex global alcanza: el documento
// entero se reescribe en cada mutación.
type Store struct {
	mu   sync.RWMutex
	path string
	doc  *document
}

// Open carga (o crea) el documento bajo dir. Un documento nuevo arranca
// con la tabla de sustancias peligrosas sembrada.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	s := &Store{path: filepath.Join(dir, storeFile)}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading store: %w", err)
		}
		s.doc = newDocument()
		if err := s.save(); err != nil {
			return nil, err
		}
		return s, nil
	}

	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parsing store: %w", err)
	}
	ensureMaps(doc)
	s.doc = doc
	return s, nil
}

func newDocument() *document {
	doc := &document{Version: 1}
	ensureMaps(doc)
	for _, it := range unsafeitems.Defaults() {
		doc.UnsafeItems = append(doc.UnsafeItems, toItemRecord(it))
	}
	return doc
}

func ensureMaps(doc *document) {
	if doc.Users == nil {
		doc.Users = make(map[string]userRecord)
	}
	if doc.Pets == nil {
		doc.Pets = make(map[string]petRecord)
	}
	if doc.Medications == nil {
		doc.Medications = make(map[string]scheduleRecord)
	}
	if doc.Appointments == nil {
		doc.Appointments = make(map[string]hospital.Appointment)
	}
}

// save serializa y reemplaza el archivo vía rename para no dejar un
// documento truncado si el proceso muere a mitad de escritura.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing store: %w", err)
	}
	return nil
}

// Path devuelve la ubicación del documento, útil para logs de arranque.
func (s *Store) Path() string {
	return s.path
}

// Records de persistencia para los tipos de dominio sin tags JSON.

type userRecord struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	CreatedAt    string `json:"created_at"`
}

type eventRecord struct {
	ID         string `json:"id"`
	PetID      string `json:"pet_id"`
	Kind       string `json:"kind"`
	Date       string `json:"date"`
	Amount     int    `json:"amount"`
	Memo       string `json:"memo,omitempty"`
	RecordedAt string `json:"recorded_at"`
}

type scheduleRecord struct {
	ID        string   `json:"id"`
	PetID     string   `json:"pet_id"`
	Drug      string   `json:"drug"`
	Dose      string   `json:"dose,omitempty"`
	Unit      string   `json:"unit,omitempty"`
	Times     []string `json:"times"`
	Start     string   `json:"start"`
	End       *string  `json:"end,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	CreatedAt string   `json:"created_at"`
}

type itemRecord struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Risk     string `json:"risk"`
	Why      string `json:"why,omitempty"`
}

func toItemRecord(i unsafeitems.Item) itemRecord {
	return itemRecord{
		ID:       i.ID,
		Category: string(i.Category),
		Name:     i.Name,
		Risk:     string(i.Risk),
		Why:      i.Why,
	}
}

func fromItemRecord(r itemRecord) unsafeitems.Item {
	return unsafeitems.Item{
		ID:       r.ID,
		Category: unsafeitems.Category(r.Category),
		Name:     r.Name,
		Risk:     unsafeitems.Risk(r.Risk),
		Why:      r.Why,
	}
}

func toEventRecord(e carelog.Event) eventRecord {
	return eventRecord{
		ID:         e.ID,
		PetID:      e.PetID,
		Kind:       string(e.Kind),
		Date:       e.Date,
		Amount:     e.Amount,
		Memo:       e.Memo,
		RecordedAt: formatTime(e.RecordedAt),
	}
}

func fromEventRecord(r eventRecord) carelog.Event {
	return carelog.Event{
		ID:         r.ID,
		PetID:      r.PetID,
		Kind:       carelog.Kind(r.Kind),
		Date:       r.Date,
		Amount:     r.Amount,
		Memo:       r.Memo,
		RecordedAt: parseTime(r.RecordedAt),
	}
}

func toScheduleRecord(sch medications.Schedule) scheduleRecord {
	return scheduleRecord{
		ID:        sch.ID,
		PetID:     sch.PetID,
		Drug:      sch.Drug,
		Dose:      sch.Dose,
		Unit:      sch.Unit,
		Times:     sch.Times,
		Start:     sch.Start,
		End:       sch.End,
		Notes:     sch.Notes,
		CreatedAt: formatTime(sch.CreatedAt),
	}
}

func fromScheduleRecord(r scheduleRecord) medications.Schedule {
	return medications.Schedule{
		ID:        r.ID,
		PetID:     r.PetID,
		Drug:      r.Drug,
		Dose:      r.Dose,
		Unit:      r.Unit,
		Times:     r.Times,
		Start:     r.Start,
		End:       r.End,
		Notes:     r.Notes,
		CreatedAt: parseTime(r.CreatedAt),
	}
}

type petRecord struct {
	ID          string  `json:"id"`
	OwnerUserID string  `json:"owner_user_id"`
	Name        string  `json:"name"`
	Species     string  `json:"species"`
	Breed       string  `json:"breed,omitempty"`
	BirthDate   *string `json:"birth_date,omitempty"`
	WeightKg    float64 `json:"weight_kg"`
	Notes       string  `json:"notes,omitempty"`
	PhotoPath   string  `json:"photo_path,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func toPetRecord(p pets.Pet) petRecord {
	return petRecord{
		ID:          p.ID,
		OwnerUserID: p.OwnerUserID,
		Name:        p.Name,
		Species:     p.Species,
		Breed:       p.Breed,
		BirthDate:   p.BirthDate,
		WeightKg:    p.WeightKg,
		Notes:       p.Notes,
		PhotoPath:   p.PhotoPath,
		CreatedAt:   formatTime(p.CreatedAt),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
}

func fromPetRecord(r petRecord) pets.Pet {
	return pets.Pet{
		ID:          r.ID,
		OwnerUserID: r.OwnerUserID,
		Name:        r.Name,
		Species:     r.Species,
		Breed:       r.Breed,
		BirthDate:   r.BirthDate,
		WeightKg:    r.WeightKg,
		Notes:       r.Notes,
		PhotoPath:   r.PhotoPath,
		CreatedAt:   parseTime(r.CreatedAt),
		UpdatedAt:   parseTime(r.UpdatedAt),
	}
}

func toUserRecord(u users.User) userRecord {
	return userRecord{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		CreatedAt:    formatTime(u.CreatedAt),
	}
}

func fromUserRecord(r userRecord) users.User {
	return users.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		CreatedAt:    parseTime(r.CreatedAt),
	}
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// parseTime tolera timestamps ilegibles devolviendo cero: un documento
// editado a mano no debe tirar abajo la lectura de la colección.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
