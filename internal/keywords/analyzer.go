package keywords

import (
	"log/slog"
	"strings"

	"github.com/spacesedan/adforge/internal/models"
)

var (
	esotericMarkers = []string{
		"amarre", "amarrar", "hechizo", "brujería", "magia",
		"tarot", "videncia", "brujo", "bruja", "ritual",
	}
	loveMarkers       = []string{"amarre", "amarrar", "amor", "pareja"}
	readingMarkers    = []string{"tarot", "lectura", "cartas", "videncia"}
	protectionMarkers = []string{"limpia", "limpieza", "protección", "negatividad"}
	onlineMarkers     = []string{"online", "línea", "virtual", "whatsapp"}
	urgencyMarkers    = []string{"rápido", "urgente", "inmediato", "24h", "hoy"}
	femaleMarkers     = []string{"mujer", "femenino", "ella"}
	maleMarkers       = []string{"hombre", "masculino", "él"}

	effectivenessMarkers = []string{"efectivo", "real", "verdadero", "funciona"}
	priceMarkers         = []string{"barato", "económico", "precio"}
	expertiseMarkers     = []string{"experto", "profesional", "maestro"}
)

const (
	IntentRecoverLove   = "recuperar_amor"
	IntentSeekAnswers   = "buscar_respuestas"
	IntentProtectEnergy = "proteccion_energia"
)

// Analyze classifies a keyword set into a business-intent profile.
// Matching is case-insensitive substring lookup against fixed vocabulary
// tables; unmatched keywords yield the generic default profile.
func Analyze(kws []string) models.KeywordProfile {
	joined := strings.ToLower(strings.Join(kws, " "))

	profile := models.KeywordProfile{
		BusinessType:    models.BusinessTypeGeneric,
		EmotionLevel:    "medio",
		Urgency:         "normal",
		TargetAudience:  "general",
		ServiceModality: []string{},
	}

	if containsAny(joined, esotericMarkers) {
		profile.BusinessType = models.BusinessTypeEsoteric

		if containsAny(joined, loveMarkers) {
			profile.Intents = append(profile.Intents, IntentRecoverLove)
			profile.EmotionLevel = "alto"
			profile.PainPoints = []string{"pérdida amorosa", "ruptura", "distancia emocional"}
			profile.Solutions = []string{"amarres efectivos", "rituales de amor", "unión espiritual"}
		}
		if containsAny(joined, readingMarkers) {
			profile.Intents = append(profile.Intents, IntentSeekAnswers)
			profile.EmotionLevel = "medio"
			profile.PainPoints = []string{"incertidumbre", "dudas", "necesidad de claridad"}
			profile.Solutions = []string{"respuestas claras", "orientación", "visión del futuro"}
		}
		if containsAny(joined, protectionMarkers) {
			profile.Intents = append(profile.Intents, IntentProtectEnergy)
			profile.PainPoints = []string{"mala suerte", "energías negativas", "bloqueos"}
			profile.Solutions = []string{"limpieza profunda", "protección espiritual", "renovación"}
		}
	}

	if containsAny(joined, onlineMarkers) {
		profile.ServiceModality = append(profile.ServiceModality, "online")
	}
	if containsAny(joined, urgencyMarkers) {
		profile.Urgency = "alta"
	}

	// First match wins for audience.
	if containsAny(joined, femaleMarkers) {
		profile.TargetAudience = "mujeres"
	} else if containsAny(joined, maleMarkers) {
		profile.TargetAudience = "hombres"
	}

	if containsAny(joined, effectivenessMarkers) {
		profile.CompetitiveAngles = append(profile.CompetitiveAngles, "efectividad_comprobada")
	}
	if containsAny(joined, priceMarkers) {
		profile.CompetitiveAngles = append(profile.CompetitiveAngles, "precio_accesible")
	}
	if containsAny(joined, expertiseMarkers) {
		profile.CompetitiveAngles = append(profile.CompetitiveAngles, "experiencia_profesional")
	}

	slog.Debug("[KeywordAnalyzer] Profile computed",
		slog.String("business_type", profile.BusinessType),
		slog.Int("intents", len(profile.Intents)),
		slog.String("emotion_level", profile.EmotionLevel))

	return profile
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
