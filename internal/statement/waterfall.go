package statement

import (
	"github.com/shopspring/decimal"

	"github.com/quipuapp/quipu/internal/domain"
)

// DefaultIUERate is the flat corporate income tax rate (impuesto sobre las
// utilidades de las empresas).
var DefaultIUERate = decimal.New(25, -2)

// Params configures the tax and reserve steps of the waterfall.
type Params struct {
	IUERate        decimal.Decimal
	ReservePercent decimal.Decimal
	ReserveApplies bool
}

// Totals is the full sequential waterfall, revenue through distributable
// income. Field names follow the statement lines as presented to the user.
type Totals struct {
	Ingresos       decimal.Decimal // revenue bucket
	ContraIngresos decimal.Decimal
	CostoVentas    decimal.Decimal
	GastosAdmin    decimal.Decimal
	GastosVenta    decimal.Decimal
	GastosFin      decimal.Decimal
	OtrosIngresos  decimal.Decimal
	OtrosEgresos   decimal.Decimal
	NoGravados     decimal.Decimal

	VentasNetas            decimal.Decimal
	UtilidadBruta          decimal.Decimal
	TotalGastosOperativos  decimal.Decimal
	UtilidadEnVentas       decimal.Decimal
	UtilidadOperativa      decimal.Decimal
	UtilidadBrutaEjercicio decimal.Decimal
	RemanenteCompensacion  decimal.Decimal
	BaseImponible          decimal.Decimal
	IUE                    decimal.Decimal
	UtilidadNeta           decimal.Decimal
	ReservaLegal           decimal.Decimal
	UtilidadLiquida        decimal.Decimal
}

// Compute runs the fixed waterfall over bucketed accounts. Bucket totals are
// absolute-valued; tax and reserve arithmetic works on the signed pre-tax
// result. All intermediate lines are banker's-rounded to two decimals.
func Compute(b Buckets, p Params) Totals {
	if p.IUERate.IsZero() {
		p.IUERate = DefaultIUERate
	}

	t := Totals{
		Ingresos:       domain.Round(sum(b.Revenue)),
		ContraIngresos: domain.Round(sum(b.ContraRevenue)),
		CostoVentas:    domain.Round(sum(b.Cost)),
		GastosAdmin:    domain.Round(sum(b.Admin)),
		GastosVenta:    domain.Round(sum(b.Selling)),
		GastosFin:      domain.Round(sum(b.Financial)),
		OtrosIngresos:  domain.Round(sum(b.OtherIncome)),
		OtrosEgresos:   domain.Round(sum(b.OtherExpense)),
		NoGravados:     domain.Round(sum(b.NonTaxable)),
	}

	t.VentasNetas = t.Ingresos.Sub(t.ContraIngresos)
	t.UtilidadBruta = t.VentasNetas.Sub(t.CostoVentas)
	t.TotalGastosOperativos = t.GastosAdmin.Add(t.GastosVenta).Add(t.GastosFin)
	t.UtilidadEnVentas = t.UtilidadBruta.Sub(t.TotalGastosOperativos)
	t.UtilidadOperativa = t.UtilidadEnVentas.Add(t.OtrosIngresos)
	t.UtilidadBrutaEjercicio = t.UtilidadOperativa.Sub(t.OtrosEgresos)

	if t.UtilidadBrutaEjercicio.IsPositive() {
		losses := accumulatedDebit(b.Accumulated)
		t.RemanenteCompensacion = decimal.Min(losses, t.UtilidadBrutaEjercicio)
		t.BaseImponible = t.UtilidadBrutaEjercicio.Sub(t.RemanenteCompensacion)
		if t.BaseImponible.IsPositive() {
			t.IUE = domain.Round(t.BaseImponible.Mul(p.IUERate))
		}
		// Non-taxable income re-enters after tax: it must never be taxed and
		// never distort the pre-tax waterfall.
		t.UtilidadNeta = t.BaseImponible.Sub(t.IUE).Add(t.NoGravados)
		if t.UtilidadNeta.IsPositive() && p.ReserveApplies {
			t.ReservaLegal = domain.Round(t.UtilidadNeta.Mul(p.ReservePercent))
		}
		t.UtilidadLiquida = t.UtilidadNeta.Sub(t.ReservaLegal)
		return t
	}

	// Loss or break-even: no tax, no reserve, no compensation.
	t.UtilidadNeta = t.UtilidadBrutaEjercicio.Add(t.NoGravados)
	t.UtilidadLiquida = t.UtilidadNeta
	return t
}
