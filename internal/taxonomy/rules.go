package taxonomy

import (
	"fmt"
	"regexp"
)

// Category is one of the output genre buckets of the curated catalog.
type Category string

const (
	Vocal      Category = "vocal"
	Opera      Category = "opera"
	Ballet     Category = "ballet"
	Orchestral Category = "orchestral"
	Concerto   Category = "concerto"
	Chamber    Category = "chamber"
	Piano      Category = "piano"
	Other      Category = "other"
)

// Categories lists every output category in presentation order.
func Categories() []Category {
	return []Category{Vocal, Opera, Ballet, Orchestral, Concerto, Chamber, Piano, Other}
}

// ParseCategory validates a category name from configuration.
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", name)
}

// typeMapping resolves raw genre-types directly. Entries mapping to Other
// fall through to the keyword rules instead, so a generic "Sonata" can still
// land in piano or chamber by name.
var typeMapping = map[string]Category{
	"Aria":       Vocal,
	"Song":       Vocal,
	"Song-cycle": Vocal,
	"Madrigal":   Vocal,
	"Mass":       Vocal,
	"Cantata":    Vocal,
	"Oratorio":   Vocal,
	"Motet":      Vocal,
	"Vocal":      Vocal,

	"Opera":    Opera,
	"Operetta": Opera,
	"Zarzuela": Opera,

	"Ballet": Ballet,

	"Incidental music": Orchestral,
	"Symphony":         Orchestral,
	"Symphonic poem":   Orchestral,
	"Overture":         Orchestral,
	"Suite":            Orchestral,
	"Orchestral":       Orchestral,

	"Concerto": Concerto,

	"Chamber": Chamber,
	"Quartet": Chamber,

	"Sonata":  Other,
	"Partita": Other,
}

// keywordRule classifies by name. RE2 has no negative lookahead, so rules
// that need one carry a separate unless pattern suppressing the match.
type keywordRule struct {
	match    *regexp.Regexp
	unless   *regexp.Regexp
	category Category
}

func rule(category Category, match string) keywordRule {
	return keywordRule{match: regexp.MustCompile(`(?i)` + match), category: category}
}

func ruleUnless(category Category, match, unless string) keywordRule {
	return keywordRule{
		match:    regexp.MustCompile(`(?i)` + match),
		unless:   regexp.MustCompile(`(?i)` + unless),
		category: category,
	}
}

// keywordRules is evaluated top to bottom; the first match wins. Ordered
// most-specific-first: stage works, then vocal, then concerto, orchestral,
// chamber, and keyboard. The broad chamber catch-alls near the end would
// over-match almost anything scored "for X and Y" if checked earlier.
var keywordRules = []keywordRule{
	// Stage works (opera, ballet).
	rule(Opera, `\bopera\b|Singspiel|Musikdrama|Zoroastre|Armide|Orfeo|dramatico|Acte\b|Atto\b|Porgy and Bess`),
	rule(Ballet, `Swan Lake|Nutcracker|Creatures of Prometheus|L'Arlésienne`),

	// Vocal works, sacred and secular.
	rule(Vocal, `Cantata|Kantate|Oratorio|Stabat Mater|Requiem|Magnificat|Passion|Mass\b|Missa|Coronation Anthem|Chandos Anthem|(Gott|Herr|Jesu|Mensch).*BWV`),
	rule(Vocal, `Te Deum|Vesperae|Litaniae|Psalm|Salve Regina|Ave Maria|Kyrie|Credo|Agnus Dei|Dixit Dominus|Nisi Dominus|Offertorium|Motet|Hymn`),
	ruleUnless(Vocal,
		`Aria|Lied|Lieder|Gesänge|Chanson|Song|Recitative|Dichterliebe|Winterreise|Schwanengesang`,
		`Liedchen|Songs? Without Words`),
	rule(Vocal, `Choral|Choräl|Coro\b|Chorus|for Soprano|for Bass|for Solo Voice`),

	// Concerto: soloist(s) with orchestra.
	rule(Concerto, `Concerto|Konzert|Concertante|Concertstück|Rondo for .* and Orchestra|Variations on a Rococo Theme|for .* and Orchestra|Rhapsody in Blue`),

	// Orchestral works. Bach's keyboard Sinfonias are excluded by catalog number.
	ruleUnless(Orchestral, `Symphony|Symphonie|Symphonische|Sinfonia`, `Sinfonia (BWV 7|BWV 8)`),
	rule(Orchestral, `Overture|Ouverture|Poème symphonique|Symphonic|Serenade for Orchestra|Divertimento for Orchestra|Cassation|American in Paris`),
	rule(Orchestral, `Orchestersuite|for Orchestra|for strings|for Wind Ensemble|for Military Band`),

	// Chamber music: duos through nonets, most instrumental sonatas.
	rule(Chamber, `String Quartet|String Quintet|String Trio|Piano Quintet|Piano Trio|Clarinet Quintet|Horn Trio`),
	rule(Chamber, `Cello Sonata|Violin Sonata|Flute Sonata|Sonata for .* and|Trio Sonata|Triosonate|Pianoforte und Violine|violino e fagotto|Trio for Piano|four hands|4 hands`),
	ruleUnless(Chamber, `\bDuo\b|\bDuet\b|Trio\b|Quartet|Quintet|Sextet|Septet|Octet|Nonet`, `Trio for Piano`),
	rule(Chamber, `Serenade for (Flute|Violin|Strings)|Divertiment.* for (Violin|Strings|Winds)|Caprice sur des airs`),
	rule(Chamber, `for (.+) and (.+)|pour (.+) et (.+)|für (.+) und (.+)|for Clarinet and Viola|for .+ Violins|Viol.* Solo|Divertiment|for \d`),

	// Keyboard works (piano, harpsichord, organ).
	rule(Piano, `Piano Sonata|Sonata .* K .* |Klaviersonate|Keyboard Sonata|Harpsichord Sonata|Orgel`),
	rule(Piano, `(for|pour) Piano|für Klavier|Klavierstück|for Harpsichord|pour le Clavecin|Pièces de Clavecin|for Keyboard`),
	rule(Piano, `Album für die Jugend|Fantasiestück`),
	rule(Piano, `\bVariations? for Piano|\bVariationen für Klavier|Goldberg Variations|Diabelli Variations`),
	rule(Piano, `Kinderszenen|Albumblatt|Albumblätter|Papillons|Carnaval|Kreisleriana|Davidsbündlertänze|Waldszenen`),
	rule(Piano, `Well-Tempered Clavier|Wohltemperiert|Inventio|Präludium und Fuge`),
}
