package keyword

// defaultCompetitionIndex is assumed when a record carries no competition
// index, placing it in the middle band.
const defaultCompetitionIndex = 50

// ComputeBlogScore ranks how suitable a keyword is as a blog topic. The
// score is a deterministic weighted sum over search volume, competition,
// intent and the question/branded/low-value flags, floored at zero. It has
// no hidden state, so calling it at creation time and during a bulk
// recalculation pass yields the same result.
func ComputeBlogScore(rec Record) int {
	score := volumeScore(rec.MonthlySearches)
	score += competitionScore(rec.CompetitionIndex)
	score += intentScore(rec.Intent)

	if rec.IsQuestion {
		score += 15
	}
	if rec.IsBranded {
		score -= 30
	}
	if IsLowValueKeyword(rec.Text) {
		score -= 40
	}

	if score < 0 {
		return 0
	}
	return score
}

func volumeScore(monthlySearches int) int {
	switch {
	case monthlySearches >= 10000:
		return 30
	case monthlySearches >= 5000:
		return 25
	case monthlySearches >= 1000:
		return 20
	case monthlySearches >= 500:
		return 15
	case monthlySearches >= 100:
		return 10
	default:
		return 5
	}
}

func competitionScore(index *int) int {
	value := defaultCompetitionIndex
	if index != nil {
		value = *index
	}

	switch {
	case value <= 30:
		return 25
	case value <= 50:
		return 20
	case value <= 70:
		return 15
	case value <= 85:
		return 10
	default:
		return 5
	}
}

func intentScore(intent Intent) int {
	switch intent {
	case IntentInformational:
		return 20
	case IntentCommercial:
		return 15
	case IntentTransactional:
		return 5
	case IntentNavigational:
		return 0
	default:
		return 10
	}
}
