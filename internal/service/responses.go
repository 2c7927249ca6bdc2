package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/lexai-legal/lexai-backend/internal/domain"
)

// legalCategories is the static table of practice areas
var legalCategories = []domain.LegalCategory{
	{ID: "familia", Name: "Derecho de Familia", Icon: "👨‍👩‍👧‍👦", Description: "Divorcios, custodia, adopciones"},
	{ID: "laboral", Name: "Derecho Laboral", Icon: "💼", Description: "Despidos, contratos, demandas laborales"},
	{ID: "civil", Name: "Derecho Civil", Icon: "🏛️", Description: "Contratos, responsabilidad civil"},
	{ID: "penal", Name: "Derecho Penal", Icon: "⚖️", Description: "Delitos, defensas penales"},
	{ID: "mercantil", Name: "Derecho Mercantil", Icon: "🏢", Description: "Sociedades, contratos comerciales"},
	{ID: "inmobiliario", Name: "Derecho Inmobiliario", Icon: "🏠", Description: "Compraventa, alquileres, hipotecas"},
}

// LegalCategories returns the available practice areas
func LegalCategories() []domain.LegalCategory {
	return legalCategories
}

// categoryResponses maps a practice area to its canned assistant replies
var categoryResponses = map[string][]string{
	"familia": {
		"En casos de divorcio, es importante considerar la distribución de bienes gananciales...",
		"Para temas de custodia, el interés superior del menor es el principio rector...",
		"Los acuerdos prematrimoniales pueden ser una herramienta útil para...",
	},
	"laboral": {
		"En caso de despido improcedente, tiene derecho a indemnización...",
		"Los contratos temporales no pueden superar los 24 meses...",
		"Las horas extraordinarias deben compensarse según el convenio...",
	},
	"civil": {
		"En contratos de compraventa, es esencial verificar la capacidad legal...",
		"La responsabilidad civil extracontractual requiere demostrar...",
		"Los vicios ocultos en la compraventa pueden ser causa de...",
	},
	"penal": {
		"En el proceso penal, es fundamental ejercer el derecho de defensa...",
		"Las medidas cautelares deben ser proporcionales...",
		"La prescripción del delito depende de la pena prevista...",
	},
	"mercantil": {
		"Para constituir una sociedad limitada se requiere capital mínimo...",
		"Los administradores tienen deberes fiduciarios hacia la sociedad...",
		"Los contratos mercantiles se rigen por principios especiales...",
	},
	"inmobiliario": {
		"En compraventa inmobiliaria, es esencial verificar cargas...",
		"Los contratos de arrendamiento urbano se rigen por la LAU...",
		"Las hipotecas pueden ser novadas con mejores condiciones...",
	},
}

// generalResponses is used when no category matches
var generalResponses = []string{
	"Basándome en la información proporcionada, le recomiendo consultar la legislación aplicable...",
	"Es importante considerar todos los aspectos legales de su consulta...",
	"Para su caso específico, sería recomendable revisar la jurisprudencia más reciente...",
	"Le sugiero que prepare la siguiente documentación para fortalecer su posición legal...",
}

// responsesForCategory returns the canned replies for a category, or
// the general pool when the category is unknown or empty
func responsesForCategory(category string) []string {
	if responses, ok := categoryResponses[category]; ok {
		return responses
	}
	return generalResponses
}

// Responder selects the assistant's reply from a candidate pool.
// Implementations with a fixed selection keep chat flows testable.
type Responder interface {
	Pick(responses []string) string
}

// randomResponder selects uniformly at random
type randomResponder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomResponder creates a Responder seeded from the current time
func NewRandomResponder() Responder {
	return &randomResponder{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Pick returns a uniformly random entry from the pool
func (r *randomResponder) Pick(responses []string) string {
	if len(responses) == 0 {
		return ""
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return responses[r.rng.Intn(len(responses))]
}
