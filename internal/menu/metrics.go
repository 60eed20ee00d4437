package menu

import (
	"strconv"
	"strings"
)

// PortionMetrics holds the decoded numbers for one serving size. Zero
// means "not provided", mirroring the loose source format.
type PortionMetrics struct {
	Price    float64
	Calories int
	Weight   int
}

// Metrics is the decoded form of a food row's metrics string: optional
// flat values plus per-portion values. Full is always non-nil after
// ParseMetrics; Half is nil when the row defines no half portion.
type Metrics struct {
	Weight   int
	Calories int
	Price    float64
	Full     *PortionMetrics
	Half     *PortionMetrics
}

// ParseMetrics decodes the semicolon-separated metrics mini-language.
// Three overlapping dialects are accepted, and may be mixed per row:
//
//	weight:200g;kcal:350;full:12.99;half:7.99;full_kcal:350;half_kcal:175
//	portion:full;full_weight:200g;full_cal:300kcal;full_price:$400;portion:half;half_price:$200
//	weight:200ml;cal:120;price:$3.99
//
// The portion:full / portion:half tokens are accepted as markers but the
// portion identity always comes from the key prefix. Unparsable values
// fail silently to zero; the function never errors.
func ParseMetrics(metricsStr string) Metrics {
	var m Metrics

	if strings.TrimSpace(metricsStr) == "" {
		m.Full = &PortionMetrics{}
		return m
	}

	hasPortions := false

	for _, part := range strings.Split(metricsStr, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}

		key, value := splitToken(part)

		if key == "portion" {
			if value == "full" || value == "half" {
				hasPortions = true
			}
			continue
		}

		// Portion-prefixed keys carry the portion identity themselves.
		if strings.HasPrefix(key, "full_") || strings.HasPrefix(key, "half_") {
			p := m.portion(key[:4])
			switch key[5:] {
			case "weight":
				p.Weight = cleanInt(value)
			case "cal", "calories", "kcal":
				p.Calories = cleanInt(value)
			case "price":
				p.Price = cleanFloat(value)
			}
			hasPortions = true
			continue
		}

		switch key {
		case "weight":
			m.Weight = cleanInt(value)
		case "kcal", "cal", "calories":
			m.Calories = cleanInt(value)
		case "price":
			m.Price = cleanFloat(value)
			// A lone flat price doubles as the full-portion price.
			if !hasPortions {
				m.portion("full").Price = m.Price
			}
		case "full":
			m.portion("full").Price = cleanFloat(value)
			hasPortions = true
		case "half":
			m.portion("half").Price = cleanFloat(value)
			hasPortions = true
		}
	}

	if m.Full == nil {
		m.Full = &PortionMetrics{}
	}

	// Distribute flat calories/weight onto portions that lack them. The
	// half values are floor(full/2) estimates, not sourced data.
	if m.Calories != 0 && m.Full.Calories == 0 {
		m.Full.Calories = m.Calories
		if m.Half != nil && m.Half.Calories == 0 {
			m.Half.Calories = m.Calories / 2
		}
	}
	if m.Weight != 0 && m.Full.Weight == 0 {
		m.Full.Weight = m.Weight
		if m.Half != nil && m.Half.Weight == 0 {
			m.Half.Weight = m.Weight / 2
		}
	}

	return m
}

// portion returns the named portion, creating it on first use.
func (m *Metrics) portion(name string) *PortionMetrics {
	if name == "half" {
		if m.Half == nil {
			m.Half = &PortionMetrics{}
		}
		return m.Half
	}
	if m.Full == nil {
		m.Full = &PortionMetrics{}
	}
	return m.Full
}

// splitToken splits "key:value" on the first colon, trims both sides,
// and strips any dollar signs from the value.
func splitToken(part string) (string, string) {
	key, value, _ := strings.Cut(part, ":")
	return strings.TrimSpace(key), strings.ReplaceAll(strings.TrimSpace(value), "$", "")
}

// cleanInt strips every non-digit character and parses what remains.
// "200g" becomes 200; garbage becomes 0.
func cleanInt(value string) int {
	var b strings.Builder
	for _, ch := range value {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}

// cleanFloat strips everything but digits and dots before parsing.
// "$3.99" becomes 3.99; garbage becomes 0.
func cleanFloat(value string) float64 {
	var b strings.Builder
	for _, ch := range value {
		if (ch >= '0' && ch <= '9') || ch == '.' {
			b.WriteRune(ch)
		}
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return f
}
