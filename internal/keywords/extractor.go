package keywords

import (
	"regexp"
	"sort"
	"strings"
)

// Term is one extracted keyword candidate with its relevance metadata.
type Term struct {
	Keyword   string  `json:"keyword"`
	Kind      string  `json:"type"`
	Frequency int     `json:"frequency"`
	Relevance float64 `json:"relevance_score"`
	IsDomain  bool    `json:"is_domain"`
}

var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"el", "la", "de", "que", "y", "a", "en", "un", "ser", "se", "no", "haber",
		"por", "con", "su", "para", "como", "estar", "tener", "le", "lo", "todo",
		"pero", "más", "hacer", "o", "poder", "decir", "este", "ir", "otro", "ese",
		"si", "me", "ya", "ver", "porque", "dar", "cuando", "él", "muy", "sin",
		"vez", "mucho", "saber", "qué", "sobre", "mi", "alguno", "mismo", "yo",
		"también", "hasta", "año", "dos", "querer", "entre", "así", "primero",
		"desde", "grande", "eso", "ni", "nos", "llegar", "pasar", "tiempo", "ella",
		"sí", "día", "uno", "bien", "poco", "deber", "entonces", "poner", "cosa",
		"tanto", "hombre", "parecer", "nuestro", "tan", "donde", "ahora", "parte",
		"después", "vida", "quedar", "siempre", "creer", "hablar", "llevar", "dejar",
		"nada", "cada", "seguir", "menos", "nuevo", "encontrar", "algo", "solo",
		"mundo", "país", "contra", "cual", "durante", "ha", "son", "fue", "sido",
		"estaba", "puede", "pueden", "puedo", "esta", "estos", "estas", "esa",
	} {
		stopwords[w] = struct{}{}
	}
}

var domainTerms = []string{
	"amarres", "hechizos", "brujería", "magia", "tarot", "videncia",
	"rituales", "conjuros", "limpieza", "espiritual", "energía",
	"consulta", "lectura", "cartas", "astrología", "horóscopo",
	"predicción", "futuro", "destino", "protección", "amor", "suerte",
	"dinero", "trabajo", "salud", "pareja", "reconciliación",
}

var (
	wordPattern = regexp.MustCompile(`[a-záéíóúñü]+`)
	urlPattern  = regexp.MustCompile(`https?://\S+`)
	numPattern  = regexp.MustCompile(`\b\d+\b`)
)

const (
	minTermLength   = 3
	maxTermsPerText = 50
)

// ExtractTerms pulls stopword-filtered unigrams and bigrams out of free text
// and ranks them by a frequency/length/domain relevance score. Used to
// suggest campaign keywords from a business description.
func ExtractTerms(text string) []Term {
	normalized := strings.ToLower(text)
	normalized = urlPattern.ReplaceAllString(normalized, "")
	normalized = numPattern.ReplaceAllString(normalized, "")

	words := wordPattern.FindAllString(normalized, -1)
	var filtered []string
	for _, w := range words {
		if len([]rune(w)) < minTermLength {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		filtered = append(filtered, w)
	}

	counts := make(map[string]int, len(filtered))
	for _, w := range filtered {
		counts[w]++
	}

	var terms []Term
	for word, freq := range counts {
		rel := relevance(word, freq, len(filtered))
		if isDomainTerm(word) {
			rel *= 1.5
		}
		terms = append(terms, Term{
			Keyword:   word,
			Kind:      "single",
			Frequency: freq,
			Relevance: capScore(rel),
			IsDomain:  isDomainTerm(word),
		})
	}

	bigramCounts := make(map[string]int)
	for i := 0; i+1 < len(filtered); i++ {
		bigramCounts[filtered[i]+" "+filtered[i+1]]++
	}
	for bigram, freq := range bigramCounts {
		rel := 30.0 + float64(freq)/float64(len(bigramCounts))*50 + 10
		if isDomainTerm(bigram) {
			rel = rel*1.3 + 15
		}
		terms = append(terms, Term{
			Keyword:   bigram,
			Kind:      "bigram",
			Frequency: freq,
			Relevance: capScore(rel),
			IsDomain:  isDomainTerm(bigram),
		})
	}

	sort.SliceStable(terms, func(i, j int) bool {
		return terms[i].Relevance > terms[j].Relevance
	})
	if len(terms) > maxTermsPerText {
		terms = terms[:maxTermsPerText]
	}
	return terms
}

func relevance(word string, freq, total int) float64 {
	var freqScore float64
	if total > 0 {
		freqScore = float64(freq) / float64(total) * 100 * 40
		if freqScore > 40 {
			freqScore = 40
		}
	}
	lengthScore := float64(len([]rune(word))) / 15 * 20
	if lengthScore > 20 {
		lengthScore = 20
	}
	rarityScore := 20.0
	if isDomainTerm(word) {
		rarityScore += 20
	}
	return freqScore + lengthScore + rarityScore
}

func isDomainTerm(s string) bool {
	for _, d := range domainTerms {
		if strings.Contains(s, d) {
			return true
		}
	}
	return false
}

func capScore(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}
