package usecase

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"merenda_escolar/internal/domain/entities"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var ErrDuplicateFoodName = errors.New("duplicate normalized food name")

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeFoodName strips diacritics and lowercases, so that lookups match
// regardless of accents ("Feijão" == "feijao") or casing.
func NormalizeFoodName(name string) string {
	out, _, err := transform.String(stripAccents, name)
	if err != nil {
		// transform.String only fails on a broken transformer chain; fall back
		// to the plain lowercase form rather than dropping the entry.
		return strings.ToLower(name)
	}
	return strings.ToLower(out)
}

// BuildFoodCatalog indexes the raw food list by normalized name.
//
// Two distinct names that normalize to the same key would silently shadow each
// other, so the build rejects collisions instead of picking a winner.
//
// Malformed correction/cooking factors do NOT fail the build: they become NaN
// and flow through, keeping the catalog total over hand-maintained source data.
// Downstream consumers must guard before using the factors.
func BuildFoodCatalog(raw []entities.RawFood) (entities.FoodCatalog, error) {
	catalog := make(entities.FoodCatalog, len(raw))
	for _, r := range raw {
		key := NormalizeFoodName(r.Name)
		if _, exists := catalog[key]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFoodName, r.Name)
		}

		perCapita := make(map[entities.Stage]string, len(entities.AllStages()))
		for _, stage := range entities.AllStages() {
			perCapita[stage] = r.PerCapita[stage]
		}

		catalog[key] = entities.FoodItem{
			Name:             r.Name,
			CorrectionFactor: parseFactor(r.CorrectionFactor),
			CookingFactor:    parseFactor(r.CookingFactor),
			PerCapita:        perCapita,
		}
	}
	return catalog, nil
}

func parseFactor(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
