package prompts

import (
	"github.com/spacesedan/adforge/internal/keywords"
	"github.com/spacesedan/adforge/internal/models"
)

var powerVerbs = map[string][]string{
	"esoteric_amor": {
		"Recupera", "Regresa", "Atrae", "Conquista", "Enamora",
		"Une", "Enlaza", "Hechiza", "Embruja", "Retorna",
	},
	"esoteric_respuestas": {
		"Descubre", "Revela", "Conoce", "Consulta", "Aclara",
		"Anticipa", "Visualiza", "Conecta", "Pregunta",
	},
	"esoteric_proteccion": {
		"Protege", "Limpia", "Libera", "Desbloquea", "Renueva",
		"Fortalece", "Sana", "Purifica", "Neutraliza",
	},
	"generic": {
		"Consigue", "Obtén", "Descubre", "Aprovecha", "Mejora",
		"Aumenta", "Optimiza", "Transforma", "Alcanza",
	},
}

// PowerVerbs returns the action verbs matching the profile's main intent.
func PowerVerbs(profile models.KeywordProfile) []string {
	if profile.BusinessType == models.BusinessTypeEsoteric {
		for _, intent := range profile.Intents {
			switch intent {
			case keywords.IntentRecoverLove:
				return powerVerbs["esoteric_amor"]
			case keywords.IntentSeekAnswers:
				return powerVerbs["esoteric_respuestas"]
			case keywords.IntentProtectEnergy:
				return powerVerbs["esoteric_proteccion"]
			}
		}
	}
	return powerVerbs["generic"]
}

// UrgencyPhrases returns urgency vocabulary calibrated to the profile.
func UrgencyPhrases(profile models.KeywordProfile) []string {
	var base []string
	if profile.Urgency == "alta" {
		base = []string{"ahora", "hoy", "24h", "inmediato", "urgente"}
	} else {
		base = []string{"disponible", "rápido", "pronto", "efectivo"}
	}
	for _, m := range profile.ServiceModality {
		if m == "online" {
			base = append(base, "online", "en línea", "por WhatsApp")
		}
	}
	return base
}

// CredibilityMarkers returns trust phrases for the profile's angles.
func CredibilityMarkers(profile models.KeywordProfile) []string {
	var markers []string
	for _, angle := range profile.CompetitiveAngles {
		switch angle {
		case "efectividad_comprobada":
			markers = append(markers, "Resultados reales", "Clientes satisfechos", "Métodos comprobados")
		case "experiencia_profesional":
			markers = append(markers, "Años de experiencia", "Experto certificado", "Maestro reconocido")
		case "precio_accesible":
			markers = append(markers, "Precios accesibles", "Primera consulta gratis", "Sin cargos ocultos")
		}
	}
	markers = append(markers, "100% discreto", "Atención personalizada", "Confidencial", "Disponible 24/7")
	return markers
}

var toneByEmotion = map[string]string{
	"alto":  "Empático, comprensivo, esperanzador pero realista",
	"medio": "Profesional, confiable, directo",
	"bajo":  "Informativo, claro, objetivo",
}

func emotionToneDescription(level string) string {
	if desc, ok := toneByEmotion[level]; ok {
		return desc
	}
	return toneByEmotion["medio"]
}

// DefaultTones is the rotation applied when a multi-ad batch does not
// specify per-ad tones.
var DefaultTones = []string{
	"emocional", "urgente", "profesional", "místico",
	"esperanzador", "poderoso", "tranquilizador",
}
