package prompts

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spacesedan/adforge/internal/models"
)

// SystemInstruction is sent alongside every composed prompt. It forbids
// copying the in-prompt examples and requires internal uniqueness.
const SystemInstruction = "Eres un copywriter experto en Google Ads. " +
	"Nunca copies literalmente los ejemplos incluidos en las instrucciones. " +
	"Antes de responder verifica que ningún par de títulos ni de descripciones " +
	"sea idéntico o casi idéntico entre sí. Responde únicamente con el objeto " +
	"JSON solicitado, sin texto adicional."

// Compose builds the generation instruction for one request. A caller
// supplied raw prompt bypasses composition entirely.
func Compose(profile models.KeywordProfile, req models.GenerationRequest, limits models.Limits) string {
	if req.RawPrompt != "" {
		slog.Debug("[PromptComposer] Raw prompt override, skipping composition")
		return req.RawPrompt
	}

	rotated := rotateKeywords(req.Keywords, req.VariationSeed)

	if profile.BusinessType == models.BusinessTypeEsoteric {
		return esotericPrompt(profile, req, rotated, limits)
	}
	return genericPrompt(req, rotated, limits)
}

// rotateKeywords shifts the keyword list by the variation seed so repeated
// calls for the same group lead with different keywords.
func rotateKeywords(kws []string, seed int) []string {
	if len(kws) == 0 || seed <= 0 {
		return kws
	}
	n := seed % len(kws)
	rotated := make([]string, 0, len(kws))
	rotated = append(rotated, kws[n:]...)
	rotated = append(rotated, kws[:n]...)
	return rotated
}

func variationStrategy(seed int) string {
	switch seed {
	case 0:
		return `**ESTRATEGIA DE VARIACIÓN - ANUNCIO #1:**
- PRIORIDAD: Títulos DIRECTOS con servicios y resultados
- Usar keywords COMPLETAS sin modificar
- Enfoque en PROFESIONALISMO y SERVICIOS`
	case 1:
		return `**ESTRATEGIA DE VARIACIÓN - ANUNCIO #2:**
- PRIORIDAD: Títulos de URGENCIA y TIEMPO específico
- Usar keywords con modificadores temporales (urgente, rápido, 24h)
- Enfoque en RAPIDEZ e INMEDIATEZ`
	default:
		return `**ESTRATEGIA DE VARIACIÓN - ANUNCIO #3:**
- PRIORIDAD: Títulos INFORMATIVOS y de AUTORIDAD
- Usar keywords con contexto de credibilidad (experto, testimonios)
- Enfoque en CONFIANZA y EXPERIENCIA`
	}
}

func esotericPrompt(profile models.KeywordProfile, req models.GenerationRequest, rotated []string, limits models.Limits) string {
	mainIntent := "general"
	if len(profile.Intents) > 0 {
		mainIntent = profile.Intents[0]
	}
	painPoints := joinOr(profile.PainPoints, "problemas comunes")
	solutions := joinOr(profile.Solutions, "soluciones efectivas")
	modality := joinOr(profile.ServiceModality, "presencial/online")

	emotionalContext := ""
	if profile.EmotionLevel == "alto" {
		emotionalContext = `
**CONTEXTO EMOCIONAL CRÍTICO:**
El usuario está pasando por una situación emocional difícil (pérdida, separación, dolor).
Los anuncios deben ser:
- Empáticos y comprensivos
- Ofrecer esperanza realista
- Transmitir profesionalismo y seriedad
- Evitar aprovecharse del dolor ajeno
`
	}

	var b strings.Builder
	fmt.Fprintf(&b, `Eres un MAESTRO copywriter especializado en servicios esotéricos con certificaciones en:
- Psicología del consumidor
- Marketing emocional ético
- Compliance de Google Ads
- Redacción persuasiva AIDA (Atención, Interés, Deseo, Acción)

**ANÁLISIS DEL GRUPO:**
- Tipo de servicio: %s
- Intención principal: %s
- Nivel emocional: %s
- Urgencia: %s
- Pain points del cliente: %s
- Soluciones que ofrecemos: %s
- Modalidad: %s

**KEYWORDS DEL GRUPO (INTEGRACIÓN OBLIGATORIA):**
%s

%s

%s

**FRAMEWORK DE CREACIÓN DE TÍTULOS (%d requeridos):**

**FÓRMULA GANADORA:**
[VERBO POTENTE] + [BENEFICIO EMOCIONAL] + [URGENCIA/MODALIDAD]

**VERBOS DE ACCIÓN CONTEXTUALES (usar estos):**
%s

**FRASES DE URGENCIA CONTEXTUAL:**
%s

**MARCADORES DE CREDIBILIDAD:**
%s

**REGLAS ESTRICTAS DE CARACTERES:**
- Títulos: mínimo %d, máximo ABSOLUTO %d caracteres (límite Google Ads)
- Descripciones: mínimo %d, máximo %d caracteres

**PROHIBICIONES CRÍTICAS:**
- NO garantías absolutas ("100%% garantizado", "siempre funciona")
- NO promesas médicas ("cura", "sana enfermedades")
- NO manipulación extrema ("última oportunidad", "te arrepentirás")
- NO mayúsculas consecutivas
- NO signos: ! ? ¡ ¿
- NO emojis
- NO mencionar a personas específicas por nombre

**FRAMEWORK DE DESCRIPCIONES (%d requeridas):**

**FÓRMULA P.A.S.C.A:**
- Problema (¿Qué duele?)
- Atención (Hook emocional)
- Solución (Qué ofrecemos)
- Credibilidad (Por qué confiar)
- Acción (Qué hacer ahora)

**EJEMPLOS CONTEXTUALES (NO COPIAR LITERALMENTE):**
1. "Recupera tu amor en 24h"
2. "Amarre efectivo online"
3. "Tarot amor certero ahora"

**KEYWORDS EN DESCRIPCIONES:**
- Cada descripción debe incluir mínimo 1 keyword del grupo
- Integración natural en el contexto de la frase
- Variar las keywords entre descripciones

**TONO SEGÚN EMOCIÓN:**
- Nivel emocional %s: %s

**FORMATO DE RESPUESTA (JSON PURO, sin markdown):**
{
  "headlines": ["..."],
  "descriptions": ["..."]
}
Exactamente %d títulos y %d descripciones.

**CHECKLIST PRE-ENVÍO:**
- Cada título entre %d-%d caracteres
- Cada descripción entre %d-%d caracteres
- Todas las keywords integradas naturalmente
- Sin garantías absolutas, sin mayúsculas consecutivas, sin signos prohibidos
- Tono %s mantenido consistentemente

**AHORA GENERA EL ANUNCIO PERFECTO.**`,
		profile.BusinessType, mainIntent, profile.EmotionLevel, profile.Urgency,
		painPoints, solutions, modality,
		strings.Join(rotated, ", "),
		variationStrategy(req.VariationSeed),
		emotionalContext,
		req.NumHeadlines,
		strings.Join(firstN(PowerVerbs(profile), 10), ", "),
		strings.Join(UrgencyPhrases(profile), ", "),
		strings.Join(firstN(CredibilityMarkers(profile), 8), ", "),
		limits.HeadlineMin, limits.HeadlineMax,
		limits.DescriptionMin, limits.DescriptionMax,
		req.NumDescriptions,
		profile.EmotionLevel, emotionToneDescription(profile.EmotionLevel),
		req.NumHeadlines, req.NumDescriptions,
		limits.HeadlineMin, limits.HeadlineMax,
		limits.DescriptionMin, limits.DescriptionMax,
		req.Tone)

	if req.IncludeLocation {
		b.WriteString("\n\n**UBICACIÓN:** Integra la ubicación o modalidad del servicio en al menos 2 títulos.")
	}
	return b.String()
}

func genericPrompt(req models.GenerationRequest, rotated []string, limits models.Limits) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Eres un copywriter experto en Google Ads con certificación en marketing digital y psicología del consumidor.

**KEYWORDS DEL GRUPO:** %s

**FRAMEWORK AIDA (Atención-Interés-Deseo-Acción):**

**TÍTULOS (%d requeridos, %d-%d caracteres):**

Fórmula: [VERBO ACCIÓN] + [BENEFICIO ESPECÍFICO] + [DIFERENCIADOR]

Distribución:
- 40%% Enfoque en BENEFICIO directo
- 30%% Enfoque en SOLUCIÓN a problema
- 20%% Enfoque en CTA (llamado a acción)
- 10%% Enfoque en DIFERENCIADOR/CREDIBILIDAD

Verbos potentes: Consigue, Obtén, Descubre, Mejora, Aumenta, Optimiza, Transforma, Aprovecha

**DESCRIPCIONES (%d requeridas, %d-%d caracteres):**

Fórmula P.A.S.: Problema + Agitación + Solución

**INTEGRACIÓN DE KEYWORDS:**
- Cada título/descripción debe incluir mínimo 1 keyword
- Variación natural entre elementos
- Sin keyword stuffing

**RESTRICCIONES:**
- Títulos: %d-%d caracteres
- Descripciones: %d-%d caracteres
- Sin mayúsculas consecutivas
- Sin signos: ! ? ¡ ¿
- Sin emojis
- Tono: %s

**RESPUESTA EN JSON (sin markdown):**
{
  "headlines": ["..."],
  "descriptions": ["..."]
}

**VERIFICAR:** Longitudes correctas + Keywords integradas + Políticas Google Ads`,
		strings.Join(rotated, ", "),
		req.NumHeadlines, limits.HeadlineMin, limits.HeadlineMax,
		req.NumDescriptions, limits.DescriptionMin, limits.DescriptionMax,
		limits.HeadlineMin, limits.HeadlineMax,
		limits.DescriptionMin, limits.DescriptionMax,
		req.Tone)

	if req.IncludeLocation {
		b.WriteString("\n\n**UBICACIÓN:** Integra la ubicación o modalidad del servicio en al menos 2 títulos.")
	}
	return b.String()
}

func joinOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}

func firstN(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}
