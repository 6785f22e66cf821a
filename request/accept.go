package request

import (
	"mime"
	"strconv"
	"strings"
)

// mediaRange is one entry of an Accept header.
type mediaRange struct {
	mediatype string
	q         float64
}

func parseMediaRange(field string) (mediaRange, bool) {
	mediatype, params, err := mime.ParseMediaType(field)
	if err != nil {
		return mediaRange{}, false
	}
	// some clients abbreviate */* as *
	if mediatype == "*" {
		mediatype = "*/*"
	}

	q := 1.0
	if raw, ok := params["q"]; ok {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 || parsed > 1 {
			return mediaRange{}, false
		}
		q = parsed
	}

	return mediaRange{mediatype: mediatype, q: q}, true
}

func parseAccept(header string) []mediaRange {
	var ranges []mediaRange
	for _, field := range strings.Split(header, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if r, ok := parseMediaRange(field); ok {
			ranges = append(ranges, r)
		}
	}
	return ranges
}

// fitness scores offer against the range: 100 for an exact type match, 10
// for an exact subtype match. Wildcards on either side still match but
// score nothing, so exact matches always win.
func (r mediaRange) fitness(offer string) (int, bool) {
	offerType, offerSub, ok := strings.Cut(offer, "/")
	if !ok {
		return 0, false
	}
	rangeType, rangeSub, _ := strings.Cut(r.mediatype, "/")

	if rangeType != offerType && rangeType != "*" && offerType != "*" {
		return 0, false
	}
	if rangeSub != offerSub && rangeSub != "*" && offerSub != "*" {
		return 0, false
	}

	fitness := 0
	if rangeType == offerType {
		fitness += 100
	}
	if rangeSub == offerSub {
		fitness += 10
	}
	return fitness, true
}

// BestMatch returns the member of supported that best satisfies the Accept
// header, or "" when nothing is acceptable. Exact matches beat subtype
// wildcards, which beat */*; ties are broken by q value and then by offer
// order. A range with q=0 excludes its media types.
func BestMatch(supported []string, header string) string {
	ranges := parseAccept(header)
	if len(ranges) == 0 {
		return ""
	}

	best := ""
	bestQ := 0.0
	bestFitness := -1
	for _, offer := range supported {
		mediatype, _, err := mime.ParseMediaType(offer)
		if err != nil {
			continue
		}
		for _, r := range ranges {
			if r.q == 0 {
				continue
			}
			fitness, ok := r.fitness(mediatype)
			if !ok {
				continue
			}
			if fitness > bestFitness || (fitness == bestFitness && r.q > bestQ) {
				best, bestQ, bestFitness = offer, r.q, fitness
			}
		}
	}

	return best
}
