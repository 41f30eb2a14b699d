package scoring

// powerWords drive the engagement sub-factors. Categories map to fixed
// per-hit point values with a per-factor cap.
var powerWords = map[string][]string{
	"urgencia":      {"ahora", "ya", "hoy", "inmediato", "urgente", "rápido", "instantáneo"},
	"beneficios":    {"garantizado", "efectivo", "resultado", "éxito", "comprobado", "certificado"},
	"emocionales":   {"amor", "felicidad", "paz", "esperanza", "confianza", "seguridad", "armonía"},
	"accion":        {"consulta", "solicita", "contacta", "llama", "pide", "obtén", "descubre"},
	"profesionales": {"experto", "profesional", "especialista", "experiencia", "años"},
}

// complianceForbidden is the graded-deduction blocklist. It overlaps with
// the validator's blocklist but is scored, not pass/fail.
var complianceForbidden = []string{
	"100% garantizado", "gratis siempre", "milagro",
	"infalible", "nunca falla", "totalmente gratis",
}

var templatePhrases = []string{
	"haz clic aquí", "más información", "contacta ahora",
	"llama ya", "visita nuestra web",
}

var creativeWords = []string{"camino", "puerta", "luz", "poder", "energía", "vibración"}

var commonWords = map[string]struct{}{
	"el": {}, "la": {}, "de": {}, "en": {}, "y": {}, "a": {}, "con": {},
	"para": {}, "por": {}, "más": {}, "su": {}, "que": {}, "no": {},
	"un": {}, "una": {}, "es": {}, "como": {},
}

var repetitionStopwords = map[string]struct{}{
	"el": {}, "la": {}, "de": {}, "en": {}, "y": {}, "a": {}, "con": {}, "para": {},
}
