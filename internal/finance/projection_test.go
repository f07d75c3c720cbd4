package finance

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeProjection_ZeroRateIsLinear(t *testing.T) {
	got := ComputeProjection(
		decimal.NewFromInt(1000),
		decimal.NewFromInt(100),
		decimal.Zero,
		12,
	)
	want := decimal.NewFromInt(2200)
	if !got.Equal(want) {
		t.Fatalf("zero-rate projection = %s, want %s", got, want)
	}
}

func TestComputeProjection_NonPositiveHorizonReturnsCurrent(t *testing.T) {
	current := decimal.NewFromInt(5000)
	for _, months := range []int{0, -3} {
		got := ComputeProjection(current, decimal.NewFromInt(250), defaultAnnualReturnPct, months)
		if !got.Equal(current) {
			t.Fatalf("months=%d projection = %s, want current %s", months, got, current)
		}
	}
}

func TestComputeProjection_CompoundGrowth(t *testing.T) {
	// 12% annual is a 1% monthly rate; over two months,
	// 1000*1.0201 + 100*(1.0201-1)/0.01 = 1221.1 exactly.
	got := ComputeProjection(
		decimal.NewFromInt(1000),
		decimal.NewFromInt(100),
		decimal.NewFromInt(12),
		2,
	)
	want := decimal.RequireFromString("1221.1")
	if !got.Round(2).Equal(want) {
		t.Fatalf("compound projection = %s, want %s", got.Round(2), want)
	}
}

func TestBuildProjection_DefaultsAndDeficitFloor(t *testing.T) {
	// Expenses above income must not drain the projection; contributions
	// floor at zero and the balance still compounds.
	p := Profile{
		MonthlyIncome:   decimal.NewFromInt(2000),
		MonthlyExpenses: decimal.NewFromInt(2600),
		TotalSavings:    decimal.NewFromInt(9000),
	}
	proj := BuildProjection(p, 0)

	if proj.Months != defaultProjectionMonths {
		t.Fatalf("months = %d, want default %d", proj.Months, defaultProjectionMonths)
	}
	if !proj.MonthlySavings.IsZero() {
		t.Fatalf("monthly savings = %s, want 0", proj.MonthlySavings)
	}
	if !proj.Contributions.IsZero() {
		t.Fatalf("contributions = %s, want 0", proj.Contributions)
	}
	if !proj.FutureValue.GreaterThan(p.TotalSavings) {
		t.Fatalf("future value %s should exceed current savings %s at the default return", proj.FutureValue, p.TotalSavings)
	}
}

func TestBuildProjection_CapsHorizon(t *testing.T) {
	p := Profile{
		MonthlyIncome:   decimal.NewFromInt(5000),
		MonthlyExpenses: decimal.NewFromInt(3000),
		TotalSavings:    decimal.NewFromInt(1000),
	}
	proj := BuildProjection(p, 100000)
	if proj.Months != maxProjectionMonths {
		t.Fatalf("months = %d, want cap %d", proj.Months, maxProjectionMonths)
	}
}

func TestDemoSavingsProjection_GuestLabeled(t *testing.T) {
	payload := DemoSavingsProjection().(struct {
		IsGuest bool   `json:"isGuest"`
		Note    string `json:"note"`
		Projection
	})
	if !payload.IsGuest {
		t.Fatal("demo projection must be flagged as guest data")
	}
	if payload.Note == "" {
		t.Fatal("demo projection must carry the sample-data note")
	}
	if !payload.FutureValue.GreaterThan(payload.CurrentSavings) {
		t.Fatalf("demo future value %s should exceed current %s", payload.FutureValue, payload.CurrentSavings)
	}
}
