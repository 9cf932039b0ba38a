package importer

import (
	"regexp"
	"strings"
)

// Column names as they appear in the import template, lower-cased and
// whitespace-normalized. The correspondent column carries a name, not a
// numeric id; the header is kept for template compatibility.
const (
	ColCaseNumber              = "nro_caso_assistravel"
	ColCorrespondent           = "corresponsal_id"
	ColCorrespondentCaseNumber = "nro_caso_corresponsal"
	ColStartDate               = "fecha_de_inicio"
	ColCountry                 = "pais"
	ColMedicalReport           = "informe_medico"
	ColFee                     = "fee"
	ColCostUSD                 = "costo_usd"
	ColCostLocal               = "costo_moneda_local"
	ColCurrencySymbol          = "simbolo_moneda"
	ColExtraAmount             = "monto_agregado"
	ColHasInvoice              = "tiene_factura"
	ColInvoiceNumber           = "nro_factura"
	ColInvoiceIssueDate        = "fecha_emision_factura"
	ColInvoiceDueDate          = "fecha_vencimiento_factura"
	ColInvoicePaymentDate      = "fecha_pago_factura"
	ColStatus                  = "estado_interno"
	ColBillingStatus           = "estado_del_caso"
	ColNotes                   = "observaciones"
)

// RequiredColumns must all be present in the header row or the import is
// rejected before any data row is processed.
var RequiredColumns = []string{
	ColCaseNumber,
	ColCorrespondent,
	ColStartDate,
	ColCountry,
	ColStatus,
	ColBillingStatus,
}

// Row maps a normalized column name to the raw cell value. Values may be
// strings, numbers, booleans or native dates depending on the source.
type Row map[string]any

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeHeader lower-cases a header cell and joins whitespace runs with
// underscores, so "Fecha de Inicio" becomes "fecha_de_inicio".
func NormalizeHeader(h string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(h)), "_")
}
