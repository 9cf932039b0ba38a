package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/assistravel/casetrack/modules/cases/domain/aggregates/caserecord"
)

func fixedNow() time.Time {
	return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
}

func testNormalizer() *Normalizer {
	cfg := DefaultConfig()
	cfg.Now = fixedNow
	return NewNormalizer(cfg)
}

func baseRow() Row {
	return Row{
		ColCaseNumber:    "AT-1001",
		ColCorrespondent: "Global Assist",
		ColStartDate:     "2023-01-05",
		ColCountry:       "Argentina",
	}
}

func TestNormalize_RequiredFields(t *testing.T) {
	n := testNormalizer()

	t.Run("AllPresent", func(t *testing.T) {
		out, err := n.Normalize(baseRow())
		require.NoError(t, err)
		require.Equal(t, "AT-1001", out.CaseNumber)
		require.Equal(t, "Global Assist", out.CorrespondentName)
		require.Equal(t, "Argentina", out.Country)
		require.Equal(t, time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC), out.StartDate)
	})

	t.Run("MissingSeveral", func(t *testing.T) {
		_, err := n.Normalize(Row{ColCaseNumber: "AT-1002"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "missing required field(s)")
		require.Contains(t, err.Error(), ColCorrespondent)
		require.Contains(t, err.Error(), ColStartDate)
		require.Contains(t, err.Error(), ColCountry)
	})

	t.Run("BlankCaseNumber", func(t *testing.T) {
		row := baseRow()
		row[ColCaseNumber] = "   "
		_, err := n.Normalize(row)
		require.Error(t, err)
		require.Contains(t, err.Error(), ColCaseNumber)
	})
}

func TestNormalize_Booleans(t *testing.T) {
	n := testNormalizer()

	for _, tc := range []struct {
		name     string
		value    any
		expected bool
	}{
		{"SpanishYes", "Sí", true},
		{"UppercaseSI", "SI", true},
		{"YesEnglish", "yes", true},
		{"SingleX", "x", true},
		{"StringOne", "1", true},
		{"NativeBool", true, true},
		{"NumericOne", float64(1), true},
		{"No", "No", false},
		{"Zero", float64(0), false},
		{"Absent", nil, false},
		{"Garbage", "maybe", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			row := baseRow()
			if tc.value != nil {
				row[ColMedicalReport] = tc.value
			}
			out, err := n.Normalize(row)
			require.NoError(t, err)
			require.Equal(t, tc.expected, out.MedicalReport)
		})
	}
}

func TestNormalize_Numbers(t *testing.T) {
	n := testNormalizer()

	for _, tc := range []struct {
		name     string
		value    any
		expected string
	}{
		{"Float", 1234.5, "1234.5"},
		{"CurrencyPrefix", "USD 1,234.50", "1234.5"},
		{"DollarSign", "$ 99.90", "99.9"},
		{"Negative", "-15.25", "-15.25"},
		{"PlainInt", 200, "200"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			row := baseRow()
			row[ColFee] = tc.value
			out, err := n.Normalize(row)
			require.NoError(t, err)
			require.NotNil(t, out.Fee)
			require.Equal(t, tc.expected, out.Fee.String())
		})
	}

	t.Run("UnparseableIsNil", func(t *testing.T) {
		row := baseRow()
		row[ColFee] = "n/a"
		out, err := n.Normalize(row)
		require.NoError(t, err)
		require.Nil(t, out.Fee)
	})

	t.Run("AbsentIsNil", func(t *testing.T) {
		out, err := n.Normalize(baseRow())
		require.NoError(t, err)
		require.Nil(t, out.Fee)
		require.Nil(t, out.CostUSD)
		require.Nil(t, out.CostLocal)
	})
}

func TestNormalize_Dates(t *testing.T) {
	n := testNormalizer()

	for _, tc := range []struct {
		name     string
		value    any
		expected time.Time
	}{
		{"ExcelSerial", float64(44927), time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{"ExcelSerialString", "44927", time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{"ExcelSerialOne", float64(1), time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)},
		{"ISO", "2023-07-09", time.Date(2023, time.July, 9, 0, 0, 0, 0, time.UTC)},
		{"DayMonthYear", "09/07/2023", time.Date(2023, time.July, 9, 0, 0, 0, 0, time.UTC)},
		{"ShortDayMonthYear", "9/7/2023", time.Date(2023, time.July, 9, 0, 0, 0, 0, time.UTC)},
		{"NativeTime", time.Date(2023, time.July, 9, 0, 0, 0, 0, time.UTC), time.Date(2023, time.July, 9, 0, 0, 0, 0, time.UTC)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			row := baseRow()
			row[ColStartDate] = tc.value
			out, err := n.Normalize(row)
			require.NoError(t, err)
			require.True(t, tc.expected.Equal(out.StartDate), "got %s", out.StartDate)
			require.Empty(t, out.Warnings)
		})
	}

	t.Run("UnparseableFallsBackToNow", func(t *testing.T) {
		row := baseRow()
		row[ColStartDate] = "soon"
		out, err := n.Normalize(row)
		require.NoError(t, err)
		require.True(t, fixedNow().Equal(out.StartDate))
		require.Len(t, out.Warnings, 1)
		require.Contains(t, out.Warnings[0], "unparseable")
		require.Contains(t, out.Warnings[0], "AT-1001")
	})

	t.Run("OptionalInvoiceDatesStayNil", func(t *testing.T) {
		out, err := n.Normalize(baseRow())
		require.NoError(t, err)
		require.Nil(t, out.InvoiceIssueDate)
		require.Nil(t, out.InvoiceDueDate)
		require.Nil(t, out.InvoicePaymentDate)
	})
}

func TestNormalize_Statuses(t *testing.T) {
	n := testNormalizer()

	for _, tc := range []struct {
		name     string
		value    any
		expected caserecord.Status
	}{
		{"SpanishLabel", "Cerrado", caserecord.StatusClosed},
		{"CanonicalValue", "PAUSED", caserecord.StatusPaused},
		{"MixedCaseCanonical", "cancelled", caserecord.StatusCancelled},
		{"UnknownDefaultsOpen", "archivado", caserecord.StatusOpen},
		{"AbsentDefaultsOpen", nil, caserecord.StatusOpen},
	} {
		t.Run(tc.name, func(t *testing.T) {
			row := baseRow()
			if tc.value != nil {
				row[ColStatus] = tc.value
			}
			out, err := n.Normalize(row)
			require.NoError(t, err)
			require.Equal(t, tc.expected, out.Status)
		})
	}

	for _, tc := range []struct {
		name     string
		value    any
		expected caserecord.BillingStatus
	}{
		{"SpanishCollected", "Cobrado", caserecord.BillingCollected},
		{"SpanishToRebill", "Para Refacturar", caserecord.BillingToRebill},
		{"LabelWithSpace", "On Going", caserecord.BillingOnGoing},
		{"CanonicalValue", "REBILLED", caserecord.BillingRebilled},
		{"UnknownDefaultsNoFee", "pendiente", caserecord.BillingNoFee},
	} {
		t.Run(tc.name, func(t *testing.T) {
			row := baseRow()
			row[ColBillingStatus] = tc.value
			out, err := n.Normalize(row)
			require.NoError(t, err)
			require.Equal(t, tc.expected, out.BillingStatus)
		})
	}
}

func TestNormalizeHeader(t *testing.T) {
	require.Equal(t, "fecha_de_inicio", NormalizeHeader("Fecha de Inicio"))
	require.Equal(t, "nro_caso_assistravel", NormalizeHeader("  NRO   CASO  ASSISTRAVEL "))
	require.Equal(t, "pais", NormalizeHeader("pais"))
}
