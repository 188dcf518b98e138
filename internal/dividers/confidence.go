package dividers

import "division-engine/internal/model"

const (
	minConfidence = 50.0
	maxConfidence = 95.0
)

// ConfidenceLevel estimates how reliable the division is, on a [50, 95]
// scale. Hard-to-value holdings and conduct disputes lower it; a small
// estate or a prenuptial agreement raises it.
func ConfidenceLevel(in *model.CalculationInput) float64 {
	confidence := 85.0

	if f := in.SpecialFactors; f != nil {
		if f.DomesticViolence {
			confidence -= 10
		}
		if f.WastingOfAssets {
			confidence -= 10
		}
	}

	var hasBusiness, hasCrypto bool
	for _, a := range in.Assets {
		switch a.Type {
		case model.AssetBusinessInterest:
			hasBusiness = true
		case model.AssetCryptocurrency:
			hasCrypto = true
		}
	}
	if hasBusiness {
		confidence -= 15
	}
	if hasCrypto {
		confidence -= 10
	}

	if len(in.Assets) <= 5 && len(in.Debts) <= 3 {
		confidence += 5
	}
	if in.MarriageInfo.HasPrenup {
		confidence += 10
	}

	if confidence < minConfidence {
		confidence = minConfidence
	}
	if confidence > maxConfidence {
		confidence = maxConfidence
	}
	return confidence
}
