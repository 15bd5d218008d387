// Package address canonicalizes customer and store addresses before they are sent to a carrier.
package address

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"github.com/rawandfun/barfer-service/internal/entities"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const argentinaCallingCode = "+54"

var phoneNoise = strings.NewReplacer(" ", "", "\t", "", "(", "", ")", "", "-", "")

// FormatPhoneNumber normalizes a free-form phone number to the +54 format.
// Numbers it cannot recognize are returned unchanged.
func FormatPhoneNumber(raw string) string {
	cleaned := phoneNoise.Replace(strings.TrimSpace(raw))

	switch {
	case strings.HasPrefix(cleaned, argentinaCallingCode):
		return cleaned
	case strings.HasPrefix(cleaned, "54"):
		return "+" + cleaned
	case len(cleaned) >= 10:
		return argentinaCallingCode + cleaned
	default:
		return raw
	}
}

// provinces maps folded province names, aliases and codes to the state code the carrier expects.
// Buenos Aires City uses "C"; the legacy "CF" alias resolves to it as well.
var provinces = map[string]string{
	"buenos aires":                    "BA",
	"provincia de buenos aires":       "BA",
	"pcia de buenos aires":            "BA",
	"pcia. de buenos aires":           "BA",
	"bs as":                           "BA",
	"bs. as.":                         "BA",
	"bsas":                            "BA",
	"pba":                             "BA",
	"ba":                              "BA",
	"b":                               "BA",
	"caba":                            "C",
	"c.a.b.a.":                        "C",
	"capital federal":                 "C",
	"capital":                         "C",
	"ciudad de buenos aires":          "C",
	"ciudad autonoma de buenos aires": "C",
	"cf":                              "C",
	"c":                               "C",
	"catamarca":                       "K",
	"k":                               "K",
	"chaco":                           "H",
	"h":                               "H",
	"chubut":                          "U",
	"u":                               "U",
	"cordoba":                         "X",
	"x":                               "X",
	"corrientes":                      "W",
	"w":                               "W",
	"entre rios":                      "E",
	"e":                               "E",
	"formosa":                         "P",
	"p":                               "P",
	"jujuy":                           "Y",
	"y":                               "Y",
	"la pampa":                        "L",
	"l":                               "L",
	"la rioja":                        "F",
	"f":                               "F",
	"mendoza":                         "M",
	"m":                               "M",
	"misiones":                        "N",
	"n":                               "N",
	"neuquen":                         "Q",
	"q":                               "Q",
	"rio negro":                       "R",
	"r":                               "R",
	"salta":                           "A",
	"a":                               "A",
	"san juan":                        "J",
	"j":                               "J",
	"san luis":                        "D",
	"d":                               "D",
	"santa cruz":                      "Z",
	"z":                               "Z",
	"santa fe":                        "S",
	"s":                               "S",
	"santiago del estero":             "G",
	"g":                               "G",
	"tierra del fuego":                "V",
	"tierra del fuego, antartida e islas del atlantico sur": "V",
	"v":       "V",
	"tucuman": "T",
	"t":       "T",
}

// NormalizeState resolves a province name or alias to its state code. Unknown values fall back to
// the first two characters of the uppercased input, which are looked up again so that a
// truncated alias ("CF - Capital" to "CF") lands on the same code a second pass would.
func NormalizeState(raw string) string {
	if code, ok := provinces[fold(raw)]; ok {
		return code
	}

	upper := []rune(strings.ToUpper(strings.TrimSpace(raw)))
	if len(upper) > 2 {
		upper = upper[:2]
	}
	short := strings.TrimSpace(string(upper))
	if code, ok := provinces[fold(short)]; ok {
		return code
	}
	return short
}

func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

var bsAsPostalCodes = []*regexp.Regexp{
	regexp.MustCompile(`^C1[0-4]\d{2}[A-Z]{0,3}$`),
	regexp.MustCompile(`^1[0-4][0-2]\d$`),
	regexp.MustCompile(`^1[4-9]\d{2}$`),
}

// CorrectPostalCodeState forces state "BA" for Argentine postal codes that belong to the Buenos
// Aires area. Overrides are logged so silent data fixes stay auditable.
func CorrectPostalCodeState(logger *slog.Logger, addr *entities.Address) {
	if addr == nil || !strings.EqualFold(addr.Country, entities.CountryArgentina) {
		return
	}

	cp := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(addr.PostalCode), " ", ""))
	for _, re := range bsAsPostalCodes {
		if !re.MatchString(cp) {
			continue
		}
		if addr.State != "BA" {
			logger.Warn("state corrected from postal code",
				slog.String("postal_code", addr.PostalCode),
				slog.String("state", addr.State),
				slog.String("corrected_state", "BA"),
			)
			addr.State = "BA"
		}
		return
	}
}

// Normalize applies phone, state and postal-code canonicalization to an Argentine address.
// Addresses in other countries are returned untouched.
func Normalize(logger *slog.Logger, addr entities.Address) entities.Address {
	if !strings.EqualFold(addr.Country, entities.CountryArgentina) {
		return addr
	}
	addr.Country = entities.CountryArgentina
	addr.Phone = FormatPhoneNumber(addr.Phone)
	addr.State = NormalizeState(addr.State)
	CorrectPostalCodeState(logger, &addr)
	return addr
}
