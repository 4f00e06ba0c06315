package flight

import "sort"

// BuildCombinations cross-joins every outbound option with every inbound
// option and orders the result by combined price. Ties keep construction
// order: outbound position first, inbound position second.
func BuildCombinations(outbound, inbound LegSearchResult) []FlightCombination {
	combos := make([]FlightCombination, 0, len(outbound.Options)*len(inbound.Options))
	for _, out := range outbound.Options {
		for _, in := range inbound.Options {
			combos = append(combos, FlightCombination{
				CombinedPrice: out.Price.Total + in.Price.Total,
				Outbound:      LegChoice{LegSummary: outbound.Summary, FlightOption: out},
				Inbound:       LegChoice{LegSummary: inbound.Summary, FlightOption: in},
			})
		}
	}

	sort.SliceStable(combos, func(i, j int) bool {
		return combos[i].CombinedPrice < combos[j].CombinedPrice
	})
	return combos
}
