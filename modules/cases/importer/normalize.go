package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/assistravel/casetrack/modules/cases/domain/aggregates/caserecord"
)

// Config carries the label vocabulary and defaults used during
// normalization. Deployments can swap vocabulary without a rebuild.
type Config struct {
	StatusLabels         map[string]caserecord.Status
	BillingLabels        map[string]caserecord.BillingStatus
	DefaultStatus        caserecord.Status
	DefaultBillingStatus caserecord.BillingStatus
	// AffirmativeTokens is the case-insensitive set of strings treated as
	// a boolean true.
	AffirmativeTokens []string
	// Now supplies the fallback for unparseable start dates. Defaults to
	// time.Now.
	Now func() time.Time
}

func DefaultConfig() Config {
	return Config{
		StatusLabels: map[string]caserecord.Status{
			"abierto":   caserecord.StatusOpen,
			"cerrado":   caserecord.StatusClosed,
			"pausado":   caserecord.StatusPaused,
			"cancelado": caserecord.StatusCancelled,
		},
		BillingLabels: map[string]caserecord.BillingStatus{
			"on going":        caserecord.BillingOnGoing,
			"refacturado":     caserecord.BillingRebilled,
			"cobrado":         caserecord.BillingCollected,
			"para refacturar": caserecord.BillingToRebill,
			"no fee":          caserecord.BillingNoFee,
		},
		DefaultStatus:        caserecord.StatusOpen,
		DefaultBillingStatus: caserecord.BillingNoFee,
		AffirmativeTokens:    []string{"si", "sí", "s", "yes", "y", "true", "verdadero", "1", "x"},
	}
}

// NormalizedCase is a fully-typed case row. The correspondent is still a
// name at this point; resolution to an id is a separate step.
type NormalizedCase struct {
	CaseNumber              string
	CorrespondentName       string
	CorrespondentCaseNumber *string
	StartDate               time.Time
	Country                 string
	MedicalReport           bool
	Fee                     *decimal.Decimal
	CostUSD                 *decimal.Decimal
	CostLocal               *decimal.Decimal
	CurrencySymbol          *string
	ExtraAmount             *decimal.Decimal
	HasInvoice              bool
	InvoiceNumber           *string
	InvoiceIssueDate        *time.Time
	InvoiceDueDate          *time.Time
	InvoicePaymentDate      *time.Time
	Status                  caserecord.Status
	BillingStatus           caserecord.BillingStatus
	Notes                   *string
	// Warnings collects soft fallbacks applied while normalizing, such as
	// an unparseable start date replaced with the current time.
	Warnings []string
}

// Normalizer converts one raw spreadsheet row into a NormalizedCase. It is
// a pure function of its input; it never touches storage.
type Normalizer struct {
	cfg         Config
	affirmative map[string]struct{}
}

func NewNormalizer(cfg Config) *Normalizer {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	affirmative := make(map[string]struct{}, len(cfg.AffirmativeTokens))
	for _, token := range cfg.AffirmativeTokens {
		affirmative[strings.ToLower(token)] = struct{}{}
	}
	return &Normalizer{cfg: cfg, affirmative: affirmative}
}

func (n *Normalizer) Normalize(row Row) (*NormalizedCase, error) {
	caseNumber := cellString(row[ColCaseNumber])
	correspondentName := cellString(row[ColCorrespondent])
	country := cellString(row[ColCountry])

	var missing []string
	if caseNumber == "" {
		missing = append(missing, ColCaseNumber)
	}
	if correspondentName == "" {
		missing = append(missing, ColCorrespondent)
	}
	if isEmptyCell(row[ColStartDate]) {
		missing = append(missing, ColStartDate)
	}
	if country == "" {
		missing = append(missing, ColCountry)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required field(s): %s", strings.Join(missing, ", "))
	}

	out := &NormalizedCase{
		CaseNumber:        caseNumber,
		CorrespondentName: correspondentName,
		Country:           country,
	}

	if startDate := n.parseDate(row[ColStartDate]); startDate != nil {
		out.StartDate = *startDate
	} else {
		// Deliberate soft fallback: a present but unparseable start date
		// does not fail the row.
		out.StartDate = n.cfg.Now()
		out.Warnings = append(out.Warnings, fmt.Sprintf(
			"case %s: unparseable %s %q, defaulted to current date",
			caseNumber, ColStartDate, cellString(row[ColStartDate]),
		))
	}

	out.CorrespondentCaseNumber = optionalString(row[ColCorrespondentCaseNumber])
	out.MedicalReport = n.parseBool(row[ColMedicalReport])
	out.Fee = n.parseNumber(row[ColFee])
	out.CostUSD = n.parseNumber(row[ColCostUSD])
	out.CostLocal = n.parseNumber(row[ColCostLocal])
	out.CurrencySymbol = optionalString(row[ColCurrencySymbol])
	out.ExtraAmount = n.parseNumber(row[ColExtraAmount])
	out.HasInvoice = n.parseBool(row[ColHasInvoice])
	out.InvoiceNumber = optionalString(row[ColInvoiceNumber])
	out.InvoiceIssueDate = n.parseDate(row[ColInvoiceIssueDate])
	out.InvoiceDueDate = n.parseDate(row[ColInvoiceDueDate])
	out.InvoicePaymentDate = n.parseDate(row[ColInvoicePaymentDate])
	out.Status = n.parseStatus(row[ColStatus])
	out.BillingStatus = n.parseBillingStatus(row[ColBillingStatus])
	out.Notes = optionalString(row[ColNotes])

	return out, nil
}

func (n *Normalizer) parseStatus(v any) caserecord.Status {
	key := strings.ToLower(cellString(v))
	if status, ok := n.cfg.StatusLabels[key]; ok {
		return status
	}
	if status := caserecord.Status(strings.ToUpper(key)); status.IsValid() {
		return status
	}
	return n.cfg.DefaultStatus
}

func (n *Normalizer) parseBillingStatus(v any) caserecord.BillingStatus {
	key := strings.ToLower(cellString(v))
	if status, ok := n.cfg.BillingLabels[key]; ok {
		return status
	}
	if status := caserecord.BillingStatus(strings.ToUpper(key)); status.IsValid() {
		return status
	}
	return n.cfg.DefaultBillingStatus
}

func (n *Normalizer) parseBool(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case float64:
		return value == 1
	case int:
		return value == 1
	case string:
		_, ok := n.affirmative[strings.ToLower(strings.TrimSpace(value))]
		return ok
	default:
		return false
	}
}

// parseNumber coerces a cell to a decimal amount. String values are
// stripped to digits, dot, minus and comma before parsing; anything that
// still fails to parse is treated as absent, not as an error.
func (n *Normalizer) parseNumber(v any) *decimal.Decimal {
	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		d := decimal.NewFromFloat(value)
		return &d
	case int:
		d := decimal.NewFromInt(int64(value))
		return &d
	case decimal.Decimal:
		return &value
	case string:
		cleaned := strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == ',' {
				return r
			}
			return -1
		}, value)
		cleaned = strings.ReplaceAll(cleaned, ",", "")
		if cleaned == "" {
			return nil
		}
		d, err := decimal.NewFromString(cleaned)
		if err != nil {
			return nil
		}
		return &d
	default:
		return nil
	}
}

// excelEpoch is 1900-01-01. Excel serials are converted with the
// historical leap-year off-by-one correction: subtract 2 days, not 1.
var excelEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

func serialToDate(serial float64) time.Time {
	days := int(serial)
	return excelEpoch.AddDate(0, 0, days-2)
}

func (n *Normalizer) parseDate(v any) *time.Time {
	switch value := v.(type) {
	case nil:
		return nil
	case time.Time:
		return &value
	case float64:
		if value <= 0 {
			return nil
		}
		t := serialToDate(value)
		return &t
	case int:
		if value <= 0 {
			return nil
		}
		t := serialToDate(float64(value))
		return &t
	case string:
		s := strings.TrimSpace(value)
		if s == "" {
			return nil
		}
		for _, layout := range []string{"2006-01-02", "02/01/2006", "2/1/2006"} {
			if t, err := time.Parse(layout, s); err == nil {
				return &t
			}
		}
		// Raw spreadsheet cells surface serial dates as numeric strings.
		if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
			t := serialToDate(serial)
			return &t
		}
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return &t
		}
		return nil
	default:
		return nil
	}
}

func cellString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	case bool:
		return strconv.FormatBool(value)
	case time.Time:
		return value.Format("2006-01-02")
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", value))
	}
}

func optionalString(v any) *string {
	s := cellString(v)
	if s == "" {
		return nil
	}
	return &s
}

func isEmptyCell(v any) bool {
	return cellString(v) == ""
}
