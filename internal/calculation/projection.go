package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/mfsim/fund-calculator/internal/domain"
)

// monthlyRate converts an annual percentage return to a monthly fractional
// rate: annual/100/12.
func monthlyRate(annualReturnPercent decimal.Decimal) decimal.Decimal {
	return annualReturnPercent.Div(hundred).Div(decimal.NewFromInt(12))
}

// ProjectSIP computes the future value of a fixed monthly contribution over
// the given number of years, compounding monthly. This is the ordinary
// annuity-due future value:
//
//	FV = amount × ((1+r)^n − 1)/r × (1+r)
//
// The zero-rate case is handled as the limit FV = amount × n.
func ProjectSIP(monthlyAmount decimal.Decimal, years int, annualReturnPercent decimal.Decimal) domain.ProjectionResult {
	months := decimal.NewFromInt(int64(years * 12))
	totalInvested := monthlyAmount.Mul(months)

	rate := monthlyRate(annualReturnPercent)
	var futureValue decimal.Decimal
	if rate.IsZero() {
		futureValue = totalInvested
	} else {
		onePlus := decimal.NewFromInt(1).Add(rate)
		futureValue = monthlyAmount.
			Mul(onePlus.Pow(months).Sub(decimal.NewFromInt(1))).
			Div(rate).
			Mul(onePlus)
	}
	return finalizeProjection(totalInvested, futureValue)
}

// ProjectStepUpSIP computes the future value of a monthly contribution that
// grows by stepUpPercent every twelve months. Each month's contribution
// compounds for the months remaining until the horizon, so the accumulation
// is O(months) rather than closed form.
func ProjectStepUpSIP(monthlyAmount decimal.Decimal, years int, annualReturnPercent, stepUpPercent decimal.Decimal) domain.ProjectionResult {
	rate := monthlyRate(annualReturnPercent)
	onePlus := decimal.NewFromInt(1).Add(rate)
	stepUp := decimal.NewFromInt(1).Add(stepUpPercent.Div(hundred))

	totalInvested := decimal.Zero
	futureValue := decimal.Zero
	current := monthlyAmount
	for y := 0; y < years; y++ {
		for m := 0; m < 12; m++ {
			remaining := int64((years-y)*12 - m)
			totalInvested = totalInvested.Add(current)
			futureValue = futureValue.Add(current.Mul(onePlus.Pow(decimal.NewFromInt(remaining))))
		}
		current = current.Mul(stepUp)
	}
	return finalizeProjection(totalInvested, futureValue)
}

// ProjectLumpSum compounds a one-time investment monthly over the horizon:
// FV = amount × (1+r)^n.
func ProjectLumpSum(amount decimal.Decimal, years int, annualReturnPercent decimal.Decimal) domain.ProjectionResult {
	rate := monthlyRate(annualReturnPercent)
	onePlus := decimal.NewFromInt(1).Add(rate)
	futureValue := amount.Mul(onePlus.Pow(decimal.NewFromInt(int64(years * 12))))
	return finalizeProjection(amount, futureValue)
}

func finalizeProjection(totalInvested, futureValue decimal.Decimal) domain.ProjectionResult {
	returns := futureValue.Sub(totalInvested)
	pct := decimal.Zero
	if totalInvested.IsPositive() {
		pct = returns.Div(totalInvested).Mul(hundred)
	}
	return domain.ProjectionResult{
		TotalInvested:     totalInvested,
		FutureValue:       futureValue,
		Returns:           returns,
		ReturnsPercentage: pct,
		IsProfit:          returns.GreaterThanOrEqual(decimal.Zero),
	}
}
