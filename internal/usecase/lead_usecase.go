package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"sumee_intake/internal/domain/entities"
	"sumee_intake/internal/domain/pricing"
	"sumee_intake/internal/usecase/interfaces"
)

var (
	ErrLeadNotFound     = errors.New("lead not found")
	ErrInvalidLeadID    = errors.New("invalid lead id")
	ErrInvalidLeadInput = errors.New("invalid lead input")
)

// Default intake location (CDMX) applied when the client shares none.
const (
	defaultLat = 19.4326
	defaultLng = -99.1332
)

const defaultUrgencia = 5

// ILeadUseCase exposes the lead intake pipeline and its read side.
//
// CreateLead runs classify -> reconcile -> persist. The classification call
// is advisory: any failure there degrades to safe defaults and the lead is
// created anyway.
type ILeadUseCase interface {
	CreateLead(ctx context.Context, input CreateLeadInput) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	MarkContacted(ctx context.Context, id string) (entities.Lead, error)
	AssignProfessional(ctx context.Context, id, professionalID string) (entities.Lead, error)
	AllowedWindowForProvider(ctx context.Context, id, providerID string) (pricing.Window, error)
}

type CreateLeadInput struct {
	NombreCliente       string
	Whatsapp            string
	DescripcionProyecto string
	Servicio            string
	ClienteID           string
	Zona                string
	UbicacionLat        float64
	UbicacionLng        float64
	UbicacionDireccion  string
	ImagenURL           string
	PhotosURLs          []string
	PriorityBoost       bool
	Disciplina          string
	Role                string
}

type LeadUseCase struct {
	repo              interfaces.ILeadRepository
	stats             interfaces.IHistoricalPriceRepository
	profiles          interfaces.IProviderProfileRepository
	classifier        interfaces.IServiceClassifier
	classifierTimeout time.Duration
	log               zerolog.Logger
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(
	repo interfaces.ILeadRepository,
	stats interfaces.IHistoricalPriceRepository,
	profiles interfaces.IProviderProfileRepository,
	classifier interfaces.IServiceClassifier,
	classifierTimeout time.Duration,
	log zerolog.Logger,
) *LeadUseCase {
	return &LeadUseCase{
		repo:              repo,
		stats:             stats,
		profiles:          profiles,
		classifier:        classifier,
		classifierTimeout: classifierTimeout,
		log:               log,
	}
}

func (u *LeadUseCase) CreateLead(ctx context.Context, input CreateLeadInput) (entities.Lead, error) {
	input.NombreCliente = strings.TrimSpace(input.NombreCliente)
	input.Whatsapp = strings.TrimSpace(input.Whatsapp)
	input.DescripcionProyecto = strings.TrimSpace(input.DescripcionProyecto)
	input.Servicio = strings.TrimSpace(input.Servicio)
	input.ClienteID = strings.TrimSpace(input.ClienteID)
	input.Zona = strings.TrimSpace(input.Zona)

	if input.NombreCliente == "" || input.Whatsapp == "" || input.DescripcionProyecto == "" ||
		input.Servicio == "" || input.ClienteID == "" {
		return entities.Lead{}, ErrInvalidLeadInput
	}

	result := u.classify(ctx, input)
	stat := u.resolveStat(ctx, result.Disciplina, input.Zona)
	suggested := pricing.Reconcile(result.RawSuggestedMin, result.RawSuggestedMax, stat)

	lat, lng := input.UbicacionLat, input.UbicacionLng
	if lat == 0 && lng == 0 {
		lat, lng = defaultLat, defaultLng
	}

	descripcion := input.DescripcionProyecto
	if result.DescripcionFinal != "" {
		descripcion = result.DescripcionFinal
	}

	now := time.Now().UTC()
	lead := entities.Lead{
		ID:                  uuid.NewString(),
		NombreCliente:       input.NombreCliente,
		Whatsapp:            input.Whatsapp,
		DescripcionProyecto: descripcion,
		Servicio:            input.Servicio,
		ClienteID:           input.ClienteID,
		Zona:                input.Zona,
		UbicacionLat:        lat,
		UbicacionLng:        lng,
		UbicacionDireccion:  strings.TrimSpace(input.UbicacionDireccion),
		ImagenURL:           input.ImagenURL,
		PhotosURLs:          input.PhotosURLs,
		PriorityBoost:       input.PriorityBoost,
		DisciplinaIA:        result.Disciplina,
		UrgenciaIA:          result.Urgencia,
		DiagnosticoIA:       result.Diagnostico,
		Negotiation: entities.NegotiationLedger{
			Status: entities.NegotiationStatusNuevo,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if suggested != nil {
		lead.AISuggestedPriceMin = suggested.Min
		lead.AISuggestedPriceMax = suggested.Max
		lead.PriceRationale = suggested.Rationale
	}

	return u.repo.Create(ctx, lead)
}

// classify calls the external model under a bounded timeout. Failures are
// logged and replaced with the safe default classification; they never
// surface to the intake caller.
func (u *LeadUseCase) classify(ctx context.Context, input CreateLeadInput) entities.ClassificationResult {
	cctx, cancel := context.WithTimeout(ctx, u.classifierTimeout)
	defer cancel()

	result, err := u.classifier.Classify(cctx, entities.ClassificationInput{
		Description: input.DescripcionProyecto,
		ImageURL:    input.ImagenURL,
		Discipline:  input.Disciplina,
		Role:        input.Role,
		Zone:        input.Zona,
	})
	if err != nil {
		u.log.Warn().Err(err).Str("servicio", input.Servicio).
			Msg("classification failed, proceeding with defaults")
		return entities.ClassificationResult{
			Disciplina: entities.DisciplinaOtros,
			Urgencia:   defaultUrgencia,
		}
	}
	if result.Disciplina == "" {
		result.Disciplina = entities.DisciplinaOtros
	}
	if result.Urgencia < 1 || result.Urgencia > 10 {
		result.Urgencia = defaultUrgencia
	}
	return result
}

// resolveStat walks the explicit lookup chain: (discipline, zone) first, then
// the discipline-wide global row when the zone row is absent or below the
// confidence floor. Lookup errors are advisory and degrade to no stat.
func (u *LeadUseCase) resolveStat(ctx context.Context, discipline, zone string) *entities.HistoricalPriceStat {
	if zone != "" {
		stat, err := u.stats.Lookup(ctx, discipline, zone)
		if err != nil {
			u.log.Warn().Err(err).Str("discipline", discipline).Str("zone", zone).
				Msg("zone stat lookup failed")
		} else if stat.Usable() {
			return stat
		}
	}

	stat, err := u.stats.Lookup(ctx, discipline, "")
	if err != nil {
		u.log.Warn().Err(err).Str("discipline", discipline).
			Msg("global stat lookup failed")
		return nil
	}
	return stat
}

func (u *LeadUseCase) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}

	lead, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if lead.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return lead, nil
}

func (u *LeadUseCase) MarkContacted(ctx context.Context, id string) (entities.Lead, error) {
	lead, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}

	eligible := []entities.NegotiationStatus{entities.NegotiationStatusNuevo}
	if !statusIn(lead.Negotiation.Status, eligible) {
		return entities.Lead{}, wrapInvalidState(lead.Negotiation.Status)
	}

	updated, err := u.repo.MarkContacted(ctx, lead.ID, eligible)
	if err != nil {
		if errors.Is(err, interfaces.ErrStatusConflict) {
			return entities.Lead{}, ErrConcurrentModification
		}
		return entities.Lead{}, err
	}
	return updated, nil
}

func (u *LeadUseCase) AssignProfessional(ctx context.Context, id, professionalID string) (entities.Lead, error) {
	professionalID = strings.TrimSpace(professionalID)
	if professionalID == "" {
		return entities.Lead{}, ErrInvalidLeadInput
	}

	lead, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}

	eligible := []entities.NegotiationStatus{
		entities.NegotiationStatusNuevo,
		entities.NegotiationStatusContactado,
	}
	if !statusIn(lead.Negotiation.Status, eligible) {
		return entities.Lead{}, wrapInvalidState(lead.Negotiation.Status)
	}

	updated, err := u.repo.AssignProfessional(ctx, lead.ID, professionalID, eligible)
	if err != nil {
		if errors.Is(err, interfaces.ErrStatusConflict) {
			return entities.Lead{}, ErrConcurrentModification
		}
		return entities.Lead{}, err
	}
	u.log.Info().Str("lead_id", lead.ID).Str("professional_id", professionalID).
		Msg("lead assigned")
	return updated, nil
}

// AllowedWindowForProvider is the pre-validation helper UIs call before
// submitting an agreement: the same window the confirm flow will enforce.
func (u *LeadUseCase) AllowedWindowForProvider(ctx context.Context, id, providerID string) (pricing.Window, error) {
	lead, err := u.GetByID(ctx, id)
	if err != nil {
		return pricing.Window{}, err
	}

	profile, err := u.profiles.GetByUserID(ctx, strings.TrimSpace(providerID))
	if err != nil {
		u.log.Warn().Err(err).Str("provider_id", providerID).
			Msg("profile lookup failed, using conservative tier")
		profile = entities.ProviderProfile{}
	}

	return pricing.AllowedWindow(suggestedRangeOf(lead), profile.ProTier), nil
}

func suggestedRangeOf(lead entities.Lead) *pricing.SuggestedRange {
	if !lead.HasSuggestedRange() {
		return nil
	}
	return &pricing.SuggestedRange{
		Min:       lead.AISuggestedPriceMin,
		Max:       lead.AISuggestedPriceMax,
		Rationale: lead.PriceRationale,
	}
}

func statusIn(status entities.NegotiationStatus, set []entities.NegotiationStatus) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}
