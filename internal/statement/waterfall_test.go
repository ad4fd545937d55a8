package statement

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/quipuapp/quipu/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func reserveParams() Params {
	return Params{
		ReservePercent: dec("0.05"),
		ReserveApplies: true,
	}
}

func TestCompute_StandardWaterfall(t *testing.T) {
	b := Bucket([]Line{
		line(domain.TypeIncome, "Ventas", "-10000"),
		line(domain.TypeCost, "Costo de Ventas", "4000"),
		line(domain.TypeExpense, "Sueldos y Salarios", "2000"),
	})

	got := Compute(b, reserveParams())

	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"VentasNetas", got.VentasNetas, "10000"},
		{"UtilidadBruta", got.UtilidadBruta, "6000"},
		{"TotalGastosOperativos", got.TotalGastosOperativos, "2000"},
		{"UtilidadBrutaEjercicio", got.UtilidadBrutaEjercicio, "4000"},
		{"BaseImponible", got.BaseImponible, "4000"},
		{"IUE", got.IUE, "1000"},
		{"UtilidadNeta", got.UtilidadNeta, "3000"},
		{"ReservaLegal", got.ReservaLegal, "150"},
		{"UtilidadLiquida", got.UtilidadLiquida, "2850"},
	}
	for _, c := range checks {
		if !c.got.Equal(dec(c.want)) {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
}

func TestCompute_ContraRevenueReducesNetSales(t *testing.T) {
	b := Bucket([]Line{
		line(domain.TypeIncome, "Ventas", "-10000"),
		line(domain.TypeIncome, "Devoluciones sobre Ventas", "500"),
	})

	got := Compute(b, reserveParams())

	if !got.VentasNetas.Equal(dec("9500")) {
		t.Errorf("VentasNetas = %s, want 9500", got.VentasNetas)
	}
}

func TestCompute_LossPeriod(t *testing.T) {
	b := Bucket([]Line{
		line(domain.TypeIncome, "Ventas", "-1000"),
		line(domain.TypeExpense, "Sueldos y Salarios", "2000"),
	})

	got := Compute(b, reserveParams())

	if !got.UtilidadBrutaEjercicio.Equal(dec("-1000")) {
		t.Fatalf("UtilidadBrutaEjercicio = %s, want -1000", got.UtilidadBrutaEjercicio)
	}
	if !got.IUE.IsZero() {
		t.Errorf("IUE = %s, want 0 on a loss", got.IUE)
	}
	if !got.ReservaLegal.IsZero() {
		t.Errorf("ReservaLegal = %s, want 0 on a loss", got.ReservaLegal)
	}
	if !got.UtilidadLiquida.Equal(dec("-1000")) {
		t.Errorf("UtilidadLiquida = %s, want -1000", got.UtilidadLiquida)
	}
}

func TestCompute_PriorLossCompensation(t *testing.T) {
	b := Bucket([]Line{
		line(domain.TypeIncome, "Ventas", "-4000"),
		line(domain.TypeEquity, "Resultados Acumulados", "500"),
	})

	got := Compute(b, reserveParams())

	if !got.RemanenteCompensacion.Equal(dec("500")) {
		t.Errorf("RemanenteCompensacion = %s, want 500", got.RemanenteCompensacion)
	}
	if !got.BaseImponible.Equal(dec("3500")) {
		t.Errorf("BaseImponible = %s, want 3500", got.BaseImponible)
	}
	if !got.IUE.Equal(dec("875")) {
		t.Errorf("IUE = %s, want 875", got.IUE)
	}
}

func TestCompute_CompensationCappedAtResult(t *testing.T) {
	b := Bucket([]Line{
		line(domain.TypeIncome, "Ventas", "-1000"),
		line(domain.TypeEquity, "Perdidas Acumuladas", "5000"),
	})

	got := Compute(b, reserveParams())

	if !got.RemanenteCompensacion.Equal(dec("1000")) {
		t.Errorf("RemanenteCompensacion = %s, want capped at 1000", got.RemanenteCompensacion)
	}
	if !got.BaseImponible.IsZero() {
		t.Errorf("BaseImponible = %s, want 0", got.BaseImponible)
	}
	if !got.IUE.IsZero() {
		t.Errorf("IUE = %s, want 0", got.IUE)
	}
}

func TestCompute_PriorProfitsDoNotCompensate(t *testing.T) {
	b := Bucket([]Line{
		line(domain.TypeIncome, "Ventas", "-4000"),
		line(domain.TypeEquity, "Resultados Acumulados", "-900"),
	})

	got := Compute(b, reserveParams())

	if !got.RemanenteCompensacion.IsZero() {
		t.Errorf("RemanenteCompensacion = %s, want 0 for prior profits", got.RemanenteCompensacion)
	}
	if !got.BaseImponible.Equal(dec("4000")) {
		t.Errorf("BaseImponible = %s, want 4000", got.BaseImponible)
	}
}

func TestCompute_NonTaxableIncomeIsNeverTaxed(t *testing.T) {
	b := Bucket([]Line{
		line(domain.TypeIncome, "Ventas", "-1000"),
		line(domain.TypeExpense, "Sueldos y Salarios", "1000"),
		line(domain.TypeIncome, "Dividendos Percibidos", "-800"),
	})

	got := Compute(b, reserveParams())

	if !got.IUE.IsZero() {
		t.Errorf("IUE = %s, want 0: exempt income must not enter the base", got.IUE)
	}
	if !got.UtilidadNeta.Equal(dec("800")) {
		t.Errorf("UtilidadNeta = %s, want 800", got.UtilidadNeta)
	}
}

func TestCompute_ReserveRequiresPolicy(t *testing.T) {
	b := Bucket([]Line{
		line(domain.TypeIncome, "Ventas", "-10000"),
	})

	got := Compute(b, Params{ReservePercent: dec("0.05"), ReserveApplies: false})

	if !got.ReservaLegal.IsZero() {
		t.Errorf("ReservaLegal = %s, want 0 when policy does not apply", got.ReservaLegal)
	}
}

func TestCompute_DefaultIUERate(t *testing.T) {
	b := Bucket([]Line{
		line(domain.TypeIncome, "Ventas", "-100"),
	})

	got := Compute(b, Params{})

	if !got.IUE.Equal(dec("25")) {
		t.Errorf("IUE = %s, want 25 at the default rate", got.IUE)
	}
}

func TestCompute_OtherResultsEnterAfterOperating(t *testing.T) {
	b := Bucket([]Line{
		line(domain.TypeIncome, "Ventas", "-1000"),
		line(domain.TypeExpense, "Diferencias de Cambio", "-200"),
		line(domain.TypeExpense, "Ajuste por Inflacion y Tenencia de Bienes", "50"),
	})

	got := Compute(b, reserveParams())

	if !got.UtilidadOperativa.Equal(dec("1200")) {
		t.Errorf("UtilidadOperativa = %s, want 1200", got.UtilidadOperativa)
	}
	if !got.UtilidadBrutaEjercicio.Equal(dec("1150")) {
		t.Errorf("UtilidadBrutaEjercicio = %s, want 1150", got.UtilidadBrutaEjercicio)
	}
}
